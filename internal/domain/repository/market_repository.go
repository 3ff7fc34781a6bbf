package repository

import (
	"context"
	"time"

	"marketdata_sync/internal/domain/entity"
)

// MarketRepository abstracts the external bar-data provider.
type MarketRepository interface {
	// GetBars returns all bars for the symbol and timeframe within
	// [start, end], oldest first, following provider pagination until the
	// range is drained. An empty range is not an error.
	GetBars(ctx context.Context, symbol string, tf entity.Timeframe, start, end time.Time) ([]entity.Bar, error)

	// GetLatestBar returns the most recent bar for the symbol and
	// timeframe, or nil when the provider has none.
	GetLatestBar(ctx context.Context, symbol string, tf entity.Timeframe) (*entity.Bar, error)
}

// AssetRepository abstracts the provider's instrument listing, used to
// refresh the symbol universe.
type AssetRepository interface {
	// ListActiveAssets returns all active US equities known to the
	// provider, unfiltered.
	ListActiveAssets(ctx context.Context) ([]entity.Asset, error)
}

// EarningsCalendarRepository abstracts the upcoming-earnings feed.
type EarningsCalendarRepository interface {
	// Upcoming returns the provider's earnings calendar for the next few
	// months, for all symbols.
	Upcoming(ctx context.Context) ([]entity.EarningsDate, error)
}
