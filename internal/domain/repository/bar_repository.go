package repository

import (
	"context"
	"time"

	"marketdata_sync/internal/domain/entity"
)

// BarRepository abstracts persistence of OHLCV bars.
type BarRepository interface {
	// UpsertBatch inserts or updates bars keyed on
	// (symbol, timeframe, timestamp). Re-running with the same input
	// leaves the stored rows unchanged.
	UpsertBatch(ctx context.Context, bars []entity.Bar) error

	// Stats returns per-symbol earliest/latest timestamps and row counts
	// for one timeframe.
	Stats(ctx context.Context, tf entity.Timeframe) ([]entity.SymbolStats, error)

	// DeleteOlderThan removes bars of a timeframe before the cutoff and
	// reports how many rows were deleted.
	DeleteOlderThan(ctx context.Context, tf entity.Timeframe, cutoff time.Time) (int64, error)
}
