package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketdata_sync/internal/domain/entity"
	"marketdata_sync/internal/domain/repository"
	"marketdata_sync/internal/shared/ratelimiter"
)

// sipSafetyLag keeps requested ranges behind real time; the provider's
// free tier rejects queries into the most recent SIP data.
const sipSafetyLag = 16 * time.Minute

func safeNow() time.Time {
	return time.Now().UTC().Add(-sipSafetyLag)
}

// SyncUsecase upserts the most recent bar for every symbol × timeframe
// pair in the universe.
type SyncUsecase struct {
	market      repository.MarketRepository
	bars        repository.BarRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

func NewSyncUsecase(market repository.MarketRepository, bars repository.BarRepository, rl ratelimiter.RateLimiterInterface) *SyncUsecase {
	return &SyncUsecase{market: market, bars: bars, rateLimiter: rl}
}

// SyncAll processes pairs sequentially in iteration order. A provider
// error for one pair is logged and skipped; a database error aborts the
// run. An empty universe is a successful no-op.
func (u *SyncUsecase) SyncAll(ctx context.Context, symbols []string) error {
	for _, s := range symbols {
		for _, tf := range entity.Timeframes {
			u.rateLimiter.WaitIfNeeded()

			bar, err := u.market.GetLatestBar(ctx, s, tf)
			if err != nil {
				slog.Error("failed to fetch latest bar", "symbol", s, "timeframe", tf, "error", err)
				continue
			}
			if bar == nil {
				// Nothing traded recently; common for thin symbols.
				continue
			}

			if err := u.bars.UpsertBatch(ctx, []entity.Bar{*bar}); err != nil {
				return fmt.Errorf("upsert latest bar %s %s: %w", s, tf, err)
			}
		}
	}
	return nil
}
