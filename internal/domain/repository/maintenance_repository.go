package repository

import "context"

// MaintenanceRepository issues table-level maintenance statements against
// the database. These run outside any transaction.
type MaintenanceRepository interface {
	// VacuumAnalyze reclaims space and refreshes planner statistics for
	// the bars table.
	VacuumAnalyze(ctx context.Context) error

	// Analyze refreshes planner statistics only. Cheaper than a full
	// vacuum; used between deep cleans.
	Analyze(ctx context.Context) error
}
