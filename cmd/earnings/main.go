// Command earnings refreshes the earnings calendar for every tracked
// symbol from the Alpha Vantage feed.
package main

import (
	"context"
	"log"
	"time"

	"marketdata_sync/internal/config"
	"marketdata_sync/internal/infrastructure/alphavantage"
	"marketdata_sync/internal/infrastructure/db"
	infrahttp "marketdata_sync/internal/infrastructure/http"
	"marketdata_sync/internal/infrastructure/postgres"
	"marketdata_sync/internal/usecase"

	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()
	if err := cfg.RequireDatabase(); err != nil {
		log.Fatal(err)
	}
	if cfg.AlphaVantageAPIKey == "" {
		log.Fatal("ALPHAVANTAGE_API_KEY must be set")
	}

	handle, err := db.Open(cfg.DatabaseURL, cfg.RunMigrations)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB(handle)

	calendar := alphavantage.NewCalendar(cfg, infrahttp.NewHTTPClient(cfg.HTTPTimeout))
	uc := usecase.NewEarningsUsecase(
		calendar,
		postgres.NewSymbolRepository(handle),
		postgres.NewEarningsRepository(handle),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	n, err := uc.Refresh(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("earnings ok: %d dates", n)
}

// closeDB releases the connection pool at run end.
func closeDB(handle *gorm.DB) {
	if sqlDB, err := handle.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
