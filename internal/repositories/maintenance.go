package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// MaintenanceRepository runs store housekeeping statements.
type MaintenanceRepository struct {
	db *sqlx.DB
}

func NewMaintenanceRepository(db *sqlx.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// Checkpoint folds the SQLite write-ahead log back into the database file.
// It is a no-op for other drivers.
func (r *MaintenanceRepository) Checkpoint(ctx context.Context) error {
	if r.db.DriverName() != DriverSQLite {
		return nil
	}
	const query = `PRAGMA wal_checkpoint(TRUNCATE)`

	_, err := r.db.ExecContext(ctx, query)
	logQuery(query, nil, nil, err)

	return classify(err)
}
