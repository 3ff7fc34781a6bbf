// Command sync upserts the most recent bar for every symbol × timeframe
// pair in the configured universe. Intended to run once per day from a
// system timer.
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
	uc := usecase.NewSyncUsecase(market, barRepo, rl)

	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Hour)
	defer cancel()

	symbols, err := symbolRepo.ListActiveCodes(ctx)
	if err != nil {
		log.Fatal("failed to load symbols: ", err)
	}
	log.Printf("syncing %d symbols", len(symbols))

	if err := uc.SyncAll(ctx, symbols); err != nil {
		log.Fatal(err)
	}
	log.Println("sync ok")
}

// closeDB releases the connection pool at run end.
func closeDB(handle *gorm.DB) {
	if sqlDB, err := handle.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
