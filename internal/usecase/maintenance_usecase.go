package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketdata_sync/internal/domain/entity"
	"marketdata_sync/internal/domain/repository"
)

// MaintenanceUsecase purges expired intraday bars and then vacuums the
// table. Any database error is fatal for the run and surfaced to the
// caller; there is nothing sensible to continue with.
type MaintenanceUsecase struct {
	maintenance repository.MaintenanceRepository
	bars        repository.BarRepository
}

func NewMaintenanceUsecase(maintenance repository.MaintenanceRepository, bars repository.BarRepository) *MaintenanceUsecase {
	return &MaintenanceUsecase{maintenance: maintenance, bars: bars}
}

// Run applies the retention policy and reclaims space. Purging runs first
// so the vacuum can reclaim the rows it just deleted.
func (u *MaintenanceUsecase) Run(ctx context.Context) error {
	now := time.Now().UTC()

	for _, tf := range entity.Timeframes {
		retention, ok := tf.Retention()
		if !ok {
			continue
		}
		cutoff := now.Add(-retention)

		rows, err := u.bars.DeleteOlderThan(ctx, tf, cutoff)
		if err != nil {
			return fmt.Errorf("purge %s: %w", tf, err)
		}
		if rows > 0 {
			slog.Info("purged expired bars", "timeframe", tf, "rows", rows, "cutoff", cutoff)
		}
	}

	if err := u.maintenance.VacuumAnalyze(ctx); err != nil {
		return err
	}
	slog.Info("vacuum analyze complete")
	return nil
}
