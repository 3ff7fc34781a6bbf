package usecase

import (
	"context"
	"errors"
	"time"

	"marketdata_sync/internal/domain/entity"
)

var (
	ErrMarketAPI = errors.New("market API error")
	ErrDB        = errors.New("database error")
)

// mockMarketRepository is a mock implementation of the MarketRepository interface.
type mockMarketRepository struct {
	GetBarsFunc       func(ctx context.Context, symbol string, tf entity.Timeframe, start, end time.Time) ([]entity.Bar, error)
	GetBarsCalls      int
	GetLatestBarFunc  func(ctx context.Context, symbol string, tf entity.Timeframe) (*entity.Bar, error)
	GetLatestBarCalls int
}

func (m *mockMarketRepository) GetBars(ctx context.Context, symbol string, tf entity.Timeframe, start, end time.Time) ([]entity.Bar, error) {
	m.GetBarsCalls++
	if m.GetBarsFunc != nil {
		return m.GetBarsFunc(ctx, symbol, tf, start, end)
	}
	return nil, errors.New("GetBarsFunc is not implemented")
}

func (m *mockMarketRepository) GetLatestBar(ctx context.Context, symbol string, tf entity.Timeframe) (*entity.Bar, error) {
	m.GetLatestBarCalls++
	if m.GetLatestBarFunc != nil {
		return m.GetLatestBarFunc(ctx, symbol, tf)
	}
	return nil, errors.New("GetLatestBarFunc is not implemented")
}

// mockBarRepository is a mock implementation of the BarRepository interface.
type mockBarRepository struct {
	UpsertBatchFunc      func(ctx context.Context, bars []entity.Bar) error
	UpsertBatchCalls     int
	StatsFunc            func(ctx context.Context, tf entity.Timeframe) ([]entity.SymbolStats, error)
	StatsCalls           int
	DeleteOlderThanFunc  func(ctx context.Context, tf entity.Timeframe, cutoff time.Time) (int64, error)
	DeleteOlderThanCalls int
}

func (m *mockBarRepository) UpsertBatch(ctx context.Context, bars []entity.Bar) error {
	m.UpsertBatchCalls++
	if m.UpsertBatchFunc != nil {
		return m.UpsertBatchFunc(ctx, bars)
	}
	return errors.New("UpsertBatchFunc is not implemented")
}

func (m *mockBarRepository) Stats(ctx context.Context, tf entity.Timeframe) ([]entity.SymbolStats, error) {
	m.StatsCalls++
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, tf)
	}
	return nil, errors.New("StatsFunc is not implemented")
}

func (m *mockBarRepository) DeleteOlderThan(ctx context.Context, tf entity.Timeframe, cutoff time.Time) (int64, error) {
	m.DeleteOlderThanCalls++
	if m.DeleteOlderThanFunc != nil {
		return m.DeleteOlderThanFunc(ctx, tf, cutoff)
	}
	return 0, errors.New("DeleteOlderThanFunc is not implemented")
}

// mockSymbolRepository is a mock implementation of the SymbolRepository interface.
type mockSymbolRepository struct {
	ListActiveCodesFunc func(ctx context.Context) ([]string, error)
	UpsertBatchFunc     func(ctx context.Context, symbols []entity.Symbol) error
	UpsertBatchCalls    int
}

func (m *mockSymbolRepository) ListActiveCodes(ctx context.Context) ([]string, error) {
	if m.ListActiveCodesFunc != nil {
		return m.ListActiveCodesFunc(ctx)
	}
	return nil, errors.New("ListActiveCodesFunc is not implemented")
}

func (m *mockSymbolRepository) UpsertBatch(ctx context.Context, symbols []entity.Symbol) error {
	m.UpsertBatchCalls++
	if m.UpsertBatchFunc != nil {
		return m.UpsertBatchFunc(ctx, symbols)
	}
	return errors.New("UpsertBatchFunc is not implemented")
}

// mockAssetRepository is a mock implementation of the AssetRepository interface.
type mockAssetRepository struct {
	ListActiveAssetsFunc func(ctx context.Context) ([]entity.Asset, error)
}

func (m *mockAssetRepository) ListActiveAssets(ctx context.Context) ([]entity.Asset, error) {
	if m.ListActiveAssetsFunc != nil {
		return m.ListActiveAssetsFunc(ctx)
	}
	return nil, errors.New("ListActiveAssetsFunc is not implemented")
}

// mockEarningsCalendarRepository is a mock implementation of the
// EarningsCalendarRepository interface.
type mockEarningsCalendarRepository struct {
	UpcomingFunc func(ctx context.Context) ([]entity.EarningsDate, error)
}

func (m *mockEarningsCalendarRepository) Upcoming(ctx context.Context) ([]entity.EarningsDate, error) {
	if m.UpcomingFunc != nil {
		return m.UpcomingFunc(ctx)
	}
	return nil, errors.New("UpcomingFunc is not implemented")
}

// mockEarningsRepository is a mock implementation of the EarningsRepository interface.
type mockEarningsRepository struct {
	UpsertBatchFunc  func(ctx context.Context, dates []entity.EarningsDate) error
	UpsertBatchCalls int
}

func (m *mockEarningsRepository) UpsertBatch(ctx context.Context, dates []entity.EarningsDate) error {
	m.UpsertBatchCalls++
	if m.UpsertBatchFunc != nil {
		return m.UpsertBatchFunc(ctx, dates)
	}
	return errors.New("UpsertBatchFunc is not implemented")
}

// mockMaintenanceRepository is a mock implementation of the MaintenanceRepository interface.
type mockMaintenanceRepository struct {
	VacuumAnalyzeFunc  func(ctx context.Context) error
	VacuumAnalyzeCalls int
	AnalyzeFunc        func(ctx context.Context) error
	AnalyzeCalls       int
}

func (m *mockMaintenanceRepository) VacuumAnalyze(ctx context.Context) error {
	m.VacuumAnalyzeCalls++
	if m.VacuumAnalyzeFunc != nil {
		return m.VacuumAnalyzeFunc(ctx)
	}
	return nil
}

func (m *mockMaintenanceRepository) Analyze(ctx context.Context) error {
	m.AnalyzeCalls++
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx)
	}
	return nil
}

// mockRateLimiter is a mock implementation of the RateLimiterInterface.
type mockRateLimiter struct {
	WaitIfNeededCalls int
}

func (m *mockRateLimiter) WaitIfNeeded() {
	m.WaitIfNeededCalls++
	// For testing purposes, return immediately without waiting
}
