// Command catchup resumes every stored symbol × timeframe pair from its
// latest stored timestamp, filling any gap up to now. Useful after a
// missed sync run or an outage.
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
	rl := ratelimiter.New(cfg.RateLimitPerMin, time.Minute)
	uc := usecase.NewBackfillUsecase(market, barRepo, rl)

	ctx, cancel := context.WithTimeout(context.Background(), 6*time.Hour)
	defer cancel()

	if err := uc.CatchupAll(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("catchup ok")
}

// closeDB releases the connection pool at run end.
func closeDB(handle *gorm.DB) {
	if sqlDB, err := handle.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
