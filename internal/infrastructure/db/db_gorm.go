package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	pg "marketdata_sync/internal/infrastructure/postgres"
)

// Open connects to the hosted Postgres instance. The connection pool often
// needs a moment after the instance wakes, so connecting retries for up to
// a minute before giving up.
func Open(databaseURL string, runMigrations bool) (*gorm.DB, error) {
	var (
		handle *gorm.DB
		err    error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		handle, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after 60s: %w", err)
		}
		log.Printf("db connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if runMigrations {
		if err := handle.AutoMigrate(
			&pg.BarModel{},
			&pg.SymbolModel{},
			&pg.EarningsModel{},
		); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return handle, nil
}
