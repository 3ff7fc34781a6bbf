package repository

import (
	"context"

	"marketdata_sync/internal/domain/entity"
)

// EarningsRepository abstracts persistence of the earnings calendar.
type EarningsRepository interface {
	// UpsertBatch inserts earnings dates keyed on (symbol, report_date);
	// existing pairs are left as they are.
	UpsertBatch(ctx context.Context, dates []entity.EarningsDate) error
}
