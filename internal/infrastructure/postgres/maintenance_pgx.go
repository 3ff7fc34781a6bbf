package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"marketdata_sync/internal/domain/repository"
)

// maintenancePgx issues table maintenance over a direct pgx connection.
// VACUUM cannot run inside a transaction block, so these statements go
// through a raw connection rather than the gorm handle.
type maintenancePgx struct {
	conn *pgx.Conn
}

var _ repository.MaintenanceRepository = (*maintenancePgx)(nil)

// NewMaintenanceRepository connects directly to the database. The caller
// must Close the returned repository at run end.
func NewMaintenanceRepository(ctx context.Context, databaseURL string) (*maintenancePgx, error) {
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect for maintenance: %w", err)
	}
	return &maintenancePgx{conn: conn}, nil
}

func (m *maintenancePgx) VacuumAnalyze(ctx context.Context) error {
	if _, err := m.conn.Exec(ctx, "VACUUM ANALYZE market_data"); err != nil {
		return fmt.Errorf("vacuum analyze: %w", err)
	}
	return nil
}

func (m *maintenancePgx) Analyze(ctx context.Context) error {
	if _, err := m.conn.Exec(ctx, "ANALYZE market_data"); err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	return nil
}

func (m *maintenancePgx) Close(ctx context.Context) error {
	return m.conn.Close(ctx)
}
