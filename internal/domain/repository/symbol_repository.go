package repository

import (
	"context"

	"marketdata_sync/internal/domain/entity"
)

// SymbolRepository abstracts the ticker reference table.
type SymbolRepository interface {
	// ListActiveCodes returns the active symbol universe in iteration
	// order.
	ListActiveCodes(ctx context.Context) ([]string, error)

	// UpsertBatch inserts or updates reference rows keyed on symbol.
	UpsertBatch(ctx context.Context, symbols []entity.Symbol) error
}
