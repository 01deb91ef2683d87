package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

// BackupRepository handles the backups table.
type BackupRepository struct {
	db *sqlx.DB
}

func NewBackupRepository(db *sqlx.DB) *BackupRepository {
	return &BackupRepository{db: db}
}

// Create stores a backup code. A reused code fails with ErrDuplicateID.
func (r *BackupRepository) Create(ctx context.Context, b models.BackupCode) error {
	const query = `INSERT INTO backups (code, user_id, created_at) VALUES (?, ?, ?)`
	ex := executor(ctx, r.db)

	_, err := ex.ExecContext(ctx, ex.Rebind(query), b.Code, b.UserID, b.CreatedAt)
	logQuery(query, []any{b.UserID, b.CreatedAt}, nil, err)

	return classify(err)
}

// GetByCode returns the backup for code or ErrUnknownCode.
func (r *BackupRepository) GetByCode(ctx context.Context, code string) (*models.BackupCode, error) {
	const query = `SELECT code, user_id, created_at FROM backups WHERE code = ?`
	ex := executor(ctx, r.db)

	var b models.BackupCode
	err := sqlx.GetContext(ctx, ex, &b, ex.Rebind(query), code)
	logQuery(query, nil, b.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrUnknownCode
	}
	if err != nil {
		return nil, classify(err)
	}
	return &b, nil
}

// DeleteByCode removes a code. Removing an unknown code is not an error.
func (r *BackupRepository) DeleteByCode(ctx context.Context, code string) error {
	const query = `DELETE FROM backups WHERE code = ?`
	ex := executor(ctx, r.db)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), code)
	logQuery(query, nil, rowsAffected(res), err)

	return classify(err)
}

// ListByUser returns every outstanding code of userID, oldest first.
func (r *BackupRepository) ListByUser(ctx context.Context, userID string) ([]models.BackupCode, error) {
	const query = `
		SELECT code, user_id, created_at
		FROM backups
		WHERE user_id = ?
		ORDER BY created_at, code
	`
	ex := executor(ctx, r.db)

	codes := []models.BackupCode{}
	err := sqlx.SelectContext(ctx, ex, &codes, ex.Rebind(query), userID)
	logQuery(query, []any{userID}, len(codes), err)

	return codes, classify(err)
}

// Exists reports whether code is an outstanding backup code.
func (r *BackupRepository) Exists(ctx context.Context, code string) (bool, error) {
	const query = `SELECT COUNT(*) FROM backups WHERE code = ?`
	ex := executor(ctx, r.db)

	var n int
	err := sqlx.GetContext(ctx, ex, &n, ex.Rebind(query), code)
	logQuery(query, nil, n, err)

	return n > 0, classify(err)
}
