// Command backfill loads historical bars for every symbol × timeframe
// pair. The window comes from BACKFILL_START/BACKFILL_END; without them
// each timeframe uses its default lookback tier. BACKFILL_MODE=deep
// instead extends daily history before the earliest stored bar.
package main

import (
	"context"
	"log"
	"time"

	"marketdata_sync/internal/config"
	"marketdata_sync/internal/infrastructure/alpaca"
	"marketdata_sync/internal/infrastructure/db"
	infrahttp "marketdata_sync/internal/infrastructure/http"
	"marketdata_sync/internal/infrastructure/postgres"
	"marketdata_sync/internal/shared/ratelimiter"
	"marketdata_sync/internal/usecase"

	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()
	if err := cfg.RequireAlpaca(); err != nil {
		log.Fatal(err)
	}
	if err := cfg.RequireDatabase(); err != nil {
		log.Fatal(err)
	}

	handle, err := db.Open(cfg.DatabaseURL, cfg.RunMigrations)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB(handle)

	market := alpaca.NewMarket(cfg, infrahttp.NewHTTPClient(cfg.HTTPTimeout))
	barRepo := postgres.NewBarRepository(handle)
	symbolRepo := postgres.NewSymbolRepository(handle)
	rl := ratelimiter.New(cfg.RateLimitPerMin, time.Minute)
	uc := usecase.NewBackfillUsecase(market, barRepo, rl)

	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Hour)
	defer cancel()

	if cfg.BackfillMode == "deep" {
		// The provider's plan caps history at roughly five years back.
		target := cfg.BackfillStart
		if target.IsZero() {
			target = time.Now().UTC().AddDate(-5, 0, 0)
		}
		log.Printf("deep backfill to %s", target.Format("2006-01-02"))
		if err := uc.DeepBackfill(ctx, target); err != nil {
			log.Fatal(err)
		}
		log.Println("deep backfill ok")
		return
	}

	symbols, err := symbolRepo.ListActiveCodes(ctx)
	if err != nil {
		log.Fatal("failed to load symbols: ", err)
	}
	log.Printf("backfilling %d symbols", len(symbols))

	win := usecase.Window{Start: cfg.BackfillStart, End: cfg.BackfillEnd}
	if err := uc.BackfillAll(ctx, symbols, win); err != nil {
		log.Fatal(err)
	}
	log.Println("backfill ok")
}

// closeDB releases the connection pool at run end.
func closeDB(handle *gorm.DB) {
	if sqlDB, err := handle.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
