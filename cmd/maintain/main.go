// Command maintain purges bars past their retention period and runs
// VACUUM ANALYZE on the bars table. Scheduled weekly, off trading hours.
package main

import (
	"context"
	"log"
	"time"

	"marketdata_sync/internal/config"
	"marketdata_sync/internal/infrastructure/db"
	"marketdata_sync/internal/infrastructure/postgres"
	"marketdata_sync/internal/usecase"

	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()
	if err := cfg.RequireDatabase(); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	handle, err := db.Open(cfg.DatabaseURL, cfg.RunMigrations)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB(handle)

	maintRepo, err := postgres.NewMaintenanceRepository(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer maintRepo.Close(context.Background())

	uc := usecase.NewMaintenanceUsecase(maintRepo, postgres.NewBarRepository(handle))
	if err := uc.Run(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("maintenance ok")
}

// closeDB releases the connection pool at run end.
func closeDB(handle *gorm.DB) {
	if sqlDB, err := handle.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
