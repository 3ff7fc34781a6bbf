package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marketdata_sync/internal/domain/entity"
	"marketdata_sync/internal/domain/repository"
)

// upsertChunkSize bounds one INSERT statement; the hosted database rejects
// very large payloads.
const upsertChunkSize = 500

type barPostgres struct {
	db *gorm.DB
}

var _ repository.BarRepository = (*barPostgres)(nil)

func NewBarRepository(db *gorm.DB) repository.BarRepository {
	return &barPostgres{db: db}
}

type BarModel struct {
	ID        uint      `gorm:"primaryKey"`
	Symbol    string    `gorm:"size:16;not null;uniqueIndex:market_data_sym_tf_ts,priority:1"`
	Timeframe string    `gorm:"size:8;not null;uniqueIndex:market_data_sym_tf_ts,priority:2"`
	Timestamp time.Time `gorm:"not null;uniqueIndex:market_data_sym_tf_ts,priority:3"`

	Open   decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	High   decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	Low    decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	Close  decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	Volume int64           `gorm:"not null;default:0"`
	Vwap   decimal.Decimal `gorm:"type:numeric(18,6)"`
}

func (BarModel) TableName() string {
	return "market_data"
}

func toModel(e entity.Bar) BarModel {
	return BarModel{
		Symbol:    e.Symbol,
		Timeframe: string(e.Timeframe),
		Timestamp: e.Timestamp,
		Open:      e.Open,
		High:      e.High,
		Low:       e.Low,
		Close:     e.Close,
		Volume:    e.Volume,
		Vwap:      e.VWAP,
	}
}

// UpsertBatch inserts or updates bars on the (symbol, timeframe, timestamp)
// unique key, in chunks.
func (r *barPostgres) UpsertBatch(ctx context.Context, bars []entity.Bar) error {
	if len(bars) == 0 {
		return nil
	}
	ms := make([]BarModel, 0, len(bars))
	for _, e := range bars {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "timeframe"}, {Name: "timestamp"}},
		DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume", "vwap"}),
	}).CreateInBatches(&ms, upsertChunkSize).Error
}

// statsRow scans timestamps as strings because MIN/MAX strip the column
// type information some drivers rely on for time conversion.
type statsRow struct {
	Symbol   string
	Earliest string
	Latest   string
	Bars     int64
}

// Stats returns per-symbol earliest/latest timestamps and row counts for
// one timeframe.
func (r *barPostgres) Stats(ctx context.Context, tf entity.Timeframe) ([]entity.SymbolStats, error) {
	var rows []statsRow
	err := r.db.WithContext(ctx).
		Model(&BarModel{}).
		Select("symbol, MIN(timestamp) AS earliest, MAX(timestamp) AS latest, COUNT(*) AS bars").
		Where("timeframe = ?", string(tf)).
		Group("symbol").
		Order("symbol ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make([]entity.SymbolStats, 0, len(rows))
	for _, row := range rows {
		earliest, err := parseDBTime(row.Earliest)
		if err != nil {
			return nil, fmt.Errorf("stats %s: %w", row.Symbol, err)
		}
		latest, err := parseDBTime(row.Latest)
		if err != nil {
			return nil, fmt.Errorf("stats %s: %w", row.Symbol, err)
		}
		stats = append(stats, entity.SymbolStats{
			Symbol:   row.Symbol,
			Earliest: earliest,
			Latest:   latest,
			Bars:     row.Bars,
		})
	}
	return stats, nil
}

// DeleteOlderThan removes bars of one timeframe before the cutoff.
func (r *barPostgres) DeleteOlderThan(ctx context.Context, tf entity.Timeframe, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("timeframe = ? AND timestamp < ?", string(tf), cutoff).
		Delete(&BarModel{})
	return res.RowsAffected, res.Error
}

// dbTimeLayouts covers Postgres timestamptz and the sqlite text formats the
// tests run against.
var dbTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
}

func parseDBTime(s string) (time.Time, error) {
	for _, layout := range dbTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable timestamp %q", s)
}
