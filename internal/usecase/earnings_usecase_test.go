package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketdata_sync/internal/domain/entity"
)

func TestEarningsUsecase_Refresh(t *testing.T) {
	ctx := context.Background()
	d := time.Date(2025, 7, 24, 0, 0, 0, 0, time.UTC)

	t.Run("keeps only tracked symbols", func(t *testing.T) {
		var captured []entity.EarningsDate
		mockSymbols := &mockSymbolRepository{
			ListActiveCodesFunc: func(ctx context.Context) ([]string, error) {
				return []string{"AAPL", "MSFT"}, nil
			},
		}
		mockCal := &mockEarningsCalendarRepository{
			UpcomingFunc: func(ctx context.Context) ([]entity.EarningsDate, error) {
				return []entity.EarningsDate{
					{Symbol: "AAPL", ReportDate: d},
					{Symbol: "UNTRACKED", ReportDate: d},
					{Symbol: "MSFT", ReportDate: d},
				}, nil
			},
		}
		mockEarnings := &mockEarningsRepository{
			UpsertBatchFunc: func(ctx context.Context, dates []entity.EarningsDate) error {
				captured = dates
				return nil
			},
		}

		uc := NewEarningsUsecase(mockCal, mockSymbols, mockEarnings)
		n, err := uc.Refresh(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 2 {
			t.Errorf("expected 2 dates written, got %d", n)
		}
		for _, date := range captured {
			if date.Symbol == "UNTRACKED" {
				t.Error("untracked symbol should be filtered out")
			}
		}
	})

	t.Run("empty universe skips the fetch", func(t *testing.T) {
		mockSymbols := &mockSymbolRepository{
			ListActiveCodesFunc: func(ctx context.Context) ([]string, error) {
				return nil, nil
			},
		}
		mockCal := &mockEarningsCalendarRepository{
			UpcomingFunc: func(ctx context.Context) ([]entity.EarningsDate, error) {
				t.Error("Upcoming should not be called")
				return nil, nil
			},
		}
		mockEarnings := &mockEarningsRepository{}

		uc := NewEarningsUsecase(mockCal, mockSymbols, mockEarnings)
		n, err := uc.Refresh(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 0 {
			t.Errorf("expected 0, got %d", n)
		}
	})

	t.Run("calendar failure is surfaced", func(t *testing.T) {
		mockSymbols := &mockSymbolRepository{
			ListActiveCodesFunc: func(ctx context.Context) ([]string, error) {
				return []string{"AAPL"}, nil
			},
		}
		mockCal := &mockEarningsCalendarRepository{
			UpcomingFunc: func(ctx context.Context) ([]entity.EarningsDate, error) {
				return nil, ErrMarketAPI
			},
		}
		mockEarnings := &mockEarningsRepository{}

		uc := NewEarningsUsecase(mockCal, mockSymbols, mockEarnings)
		_, err := uc.Refresh(ctx)
		if !errors.Is(err, ErrMarketAPI) {
			t.Fatalf("expected %v, got %v", ErrMarketAPI, err)
		}
		if mockEarnings.UpsertBatchCalls != 0 {
			t.Errorf("UpsertBatch was called %d times, expected 0", mockEarnings.UpsertBatchCalls)
		}
	})

	t.Run("no overlap writes nothing", func(t *testing.T) {
		mockSymbols := &mockSymbolRepository{
			ListActiveCodesFunc: func(ctx context.Context) ([]string, error) {
				return []string{"AAPL"}, nil
			},
		}
		mockCal := &mockEarningsCalendarRepository{
			UpcomingFunc: func(ctx context.Context) ([]entity.EarningsDate, error) {
				return []entity.EarningsDate{{Symbol: "OTHER", ReportDate: d}}, nil
			},
		}
		mockEarnings := &mockEarningsRepository{}

		uc := NewEarningsUsecase(mockCal, mockSymbols, mockEarnings)
		n, err := uc.Refresh(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 0 {
			t.Errorf("expected 0, got %d", n)
		}
		if mockEarnings.UpsertBatchCalls != 0 {
			t.Errorf("UpsertBatch was called %d times, expected 0", mockEarnings.UpsertBatchCalls)
		}
	})
}
