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

// Window is an explicit backfill range. Zero fields fall back to the
// per-timeframe lookback tiers and the safe current instant.
type Window struct {
	Start time.Time
	End   time.Time
}

// BackfillUsecase loads historical bars: full windows, gap catch-up from
// the latest stored timestamp, and deep extension before the earliest one.
type BackfillUsecase struct {
	market      repository.MarketRepository
	bars        repository.BarRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

func NewBackfillUsecase(market repository.MarketRepository, bars repository.BarRepository, rl ratelimiter.RateLimiterInterface) *BackfillUsecase {
	return &BackfillUsecase{market: market, bars: bars, rateLimiter: rl}
}

// BackfillAll fetches and upserts a historical window for every
// symbol × timeframe pair. Re-running over the same window yields
// identical stored state. An empty result for a pair is not an error.
func (u *BackfillUsecase) BackfillAll(ctx context.Context, symbols []string, win Window) error {
	for _, s := range symbols {
		for _, tf := range entity.Timeframes {
			start, end := win.Start, win.End
			if start.IsZero() {
				start = safeNow().AddDate(0, 0, -tf.BackfillLookbackDays())
			}
			if end.IsZero() {
				end = safeNow()
			}

			u.rateLimiter.WaitIfNeeded()

			bars, err := u.market.GetBars(ctx, s, tf, start, end)
			if err != nil {
				slog.Error("failed to fetch bars", "symbol", s, "timeframe", tf, "error", err)
				continue
			}
			if len(bars) == 0 {
				slog.Debug("no bars in range", "symbol", s, "timeframe", tf)
				continue
			}

			if err := u.bars.UpsertBatch(ctx, bars); err != nil {
				return fmt.Errorf("upsert bars %s %s: %w", s, tf, err)
			}
			slog.Info("backfilled", "symbol", s, "timeframe", tf, "bars", len(bars))
		}
	}
	return nil
}

// CatchupAll resumes every stored symbol × timeframe pair from its latest
// timestamp to now. Pairs whose gap is smaller than one bar period are
// skipped; the start is nudged one minute past the stored boundary to
// avoid refetching the boundary bar.
func (u *BackfillUsecase) CatchupAll(ctx context.Context) error {
	for _, tf := range entity.Timeframes {
		stats, err := u.bars.Stats(ctx, tf)
		if err != nil {
			return fmt.Errorf("symbol stats %s: %w", tf, err)
		}

		for _, st := range stats {
			start := st.Latest.Add(time.Minute)
			end := safeNow()
			if end.Sub(start) < tf.Period() {
				continue
			}

			u.rateLimiter.WaitIfNeeded()

			bars, err := u.market.GetBars(ctx, st.Symbol, tf, start, end)
			if err != nil {
				slog.Error("failed to catch up", "symbol", st.Symbol, "timeframe", tf, "error", err)
				continue
			}
			if len(bars) == 0 {
				continue
			}

			if err := u.bars.UpsertBatch(ctx, bars); err != nil {
				return fmt.Errorf("upsert bars %s %s: %w", st.Symbol, tf, err)
			}
			slog.Info("caught up", "symbol", st.Symbol, "timeframe", tf, "bars", len(bars))
		}
	}
	return nil
}

// DeepBackfill extends daily history back to target for symbols whose
// earliest stored bar is later than it. Only the daily lane is deepened;
// intraday lanes are capped by retention anyway.
func (u *BackfillUsecase) DeepBackfill(ctx context.Context, target time.Time) error {
	tf := entity.TimeframeDay

	stats, err := u.bars.Stats(ctx, tf)
	if err != nil {
		return fmt.Errorf("symbol stats %s: %w", tf, err)
	}

	for _, st := range stats {
		if !st.Earliest.After(target) {
			continue
		}
		// Stop just before the data we already hold.
		end := st.Earliest.Add(-24 * time.Hour)

		u.rateLimiter.WaitIfNeeded()

		bars, err := u.market.GetBars(ctx, st.Symbol, tf, target, end)
		if err != nil {
			slog.Error("failed to deep backfill", "symbol", st.Symbol, "error", err)
			continue
		}
		if len(bars) == 0 {
			slog.Debug("no earlier history", "symbol", st.Symbol)
			continue
		}

		if err := u.bars.UpsertBatch(ctx, bars); err != nil {
			return fmt.Errorf("upsert bars %s %s: %w", st.Symbol, tf, err)
		}
		slog.Info("deepened history", "symbol", st.Symbol, "bars", len(bars))
	}
	return nil
}
