package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marketdata_sync/internal/domain/entity"
	"marketdata_sync/internal/domain/repository"
)

type symbolPostgres struct {
	db *gorm.DB
}

var _ repository.SymbolRepository = (*symbolPostgres)(nil)

func NewSymbolRepository(db *gorm.DB) repository.SymbolRepository {
	return &symbolPostgres{db: db}
}

type SymbolModel struct {
	ID         uint   `gorm:"primaryKey"`
	Symbol     string `gorm:"size:16;not null;uniqueIndex"`
	Name       string `gorm:"size:128"`
	Exchange   string `gorm:"size:16"`
	AssetClass string `gorm:"size:16"`
	IsActive   bool   `gorm:"not null;default:true"`
}

func (SymbolModel) TableName() string {
	return "ticker_reference"
}

// ListActiveCodes returns the active universe in symbol order, so every run
// iterates pairs in the same sequence.
func (r *symbolPostgres) ListActiveCodes(ctx context.Context) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&SymbolModel{}).
		Where("is_active = ?", true).
		Order("symbol ASC").
		Pluck("symbol", &codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// UpsertBatch inserts or updates reference rows keyed on symbol.
func (r *symbolPostgres) UpsertBatch(ctx context.Context, symbols []entity.Symbol) error {
	if len(symbols) == 0 {
		return nil
	}
	ms := make([]SymbolModel, 0, len(symbols))
	for _, s := range symbols {
		ms = append(ms, SymbolModel{
			Symbol:     s.Symbol,
			Name:       s.Name,
			Exchange:   s.Exchange,
			AssetClass: s.AssetClass,
			IsActive:   s.IsActive,
		})
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "exchange", "asset_class", "is_active"}),
	}).CreateInBatches(&ms, upsertChunkSize).Error
}
