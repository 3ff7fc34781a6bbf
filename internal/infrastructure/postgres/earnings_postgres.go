package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marketdata_sync/internal/domain/entity"
	"marketdata_sync/internal/domain/repository"
)

type earningsPostgres struct {
	db *gorm.DB
}

var _ repository.EarningsRepository = (*earningsPostgres)(nil)

func NewEarningsRepository(db *gorm.DB) repository.EarningsRepository {
	return &earningsPostgres{db: db}
}

type EarningsModel struct {
	ID         uint      `gorm:"primaryKey"`
	Symbol     string    `gorm:"size:16;not null;uniqueIndex:earnings_sym_date,priority:1"`
	ReportDate time.Time `gorm:"not null;uniqueIndex:earnings_sym_date,priority:2"`
}

func (EarningsModel) TableName() string {
	return "earnings_calendar"
}

// UpsertBatch inserts new (symbol, report_date) pairs; already-known dates
// are skipped rather than rewritten.
func (r *earningsPostgres) UpsertBatch(ctx context.Context, dates []entity.EarningsDate) error {
	if len(dates) == 0 {
		return nil
	}
	ms := make([]EarningsModel, 0, len(dates))
	for _, d := range dates {
		ms = append(ms, EarningsModel{Symbol: d.Symbol, ReportDate: d.ReportDate})
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "report_date"}},
		DoNothing: true,
	}).CreateInBatches(&ms, upsertChunkSize).Error
}
