// Command universe refreshes the ticker reference table. With TICKER_FILE
// set it loads symbols from a local .csv/.txt list; otherwise it pulls the
// provider's active assets and applies the universe filter.
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
	"marketdata_sync/internal/usecase"

	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()
	if err := cfg.RequireDatabase(); err != nil {
		log.Fatal(err)
	}

	handle, err := db.Open(cfg.DatabaseURL, cfg.RunMigrations)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB(handle)

	symbolRepo := postgres.NewSymbolRepository(handle)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	if cfg.TickerFile != "" {
		uc := usecase.NewUniverseUsecase(nil, symbolRepo)
		n, err := uc.RefreshFromFile(ctx, cfg.TickerFile)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("universe ok: %d symbols from %s", n, cfg.TickerFile)
		return
	}

	if err := cfg.RequireAlpaca(); err != nil {
		log.Fatal(err)
	}
	trading := alpaca.NewTrading(cfg, infrahttp.NewHTTPClient(cfg.HTTPTimeout))
	uc := usecase.NewUniverseUsecase(trading, symbolRepo)

	n, err := uc.RefreshFromProvider(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("universe ok: %d symbols from provider", n)
}

// closeDB releases the connection pool at run end.
func closeDB(handle *gorm.DB) {
	if sqlDB, err := handle.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
