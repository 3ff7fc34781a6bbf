package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"marketdata_sync/internal/domain/entity"
	"marketdata_sync/internal/domain/repository"
)

// EarningsUsecase refreshes the earnings calendar for tracked symbols.
type EarningsUsecase struct {
	calendar repository.EarningsCalendarRepository
	symbols  repository.SymbolRepository
	earnings repository.EarningsRepository
}

func NewEarningsUsecase(calendar repository.EarningsCalendarRepository, symbols repository.SymbolRepository, earnings repository.EarningsRepository) *EarningsUsecase {
	return &EarningsUsecase{calendar: calendar, symbols: symbols, earnings: earnings}
}

// Refresh fetches the full upcoming calendar, keeps only tracked symbols
// and upserts the remainder. Returns how many dates were written.
func (u *EarningsUsecase) Refresh(ctx context.Context) (int, error) {
	codes, err := u.symbols.ListActiveCodes(ctx)
	if err != nil {
		return 0, fmt.Errorf("list universe: %w", err)
	}
	if len(codes) == 0 {
		slog.Info("no tracked symbols, skipping earnings refresh")
		return 0, nil
	}

	tracked := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		tracked[c] = struct{}{}
	}

	all, err := u.calendar.Upcoming(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch earnings calendar: %w", err)
	}

	var dates []entity.EarningsDate
	for _, d := range all {
		if _, ok := tracked[d.Symbol]; ok {
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 {
		return 0, nil
	}

	if err := u.earnings.UpsertBatch(ctx, dates); err != nil {
		return 0, fmt.Errorf("upsert earnings: %w", err)
	}
	return len(dates), nil
}
