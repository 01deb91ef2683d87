package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

// TransactionRepository handles the transactions table.
type TransactionRepository struct {
	db *sqlx.DB
}

func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Insert writes a new record. An id that is already used fails with
// ErrDuplicateID.
func (r *TransactionRepository) Insert(ctx context.Context, t models.Transaction) error {
	const query = `
		INSERT INTO transactions (id, date, from_id, to_id, amount)
		VALUES (?, ?, ?, ?, ?)
	`
	args := []any{t.ID, t.Date, t.FromID, t.ToID, t.Amount}
	ex := executor(ctx, r.db)

	_, err := ex.ExecContext(ctx, ex.Rebind(query), args...)
	logQuery(query, args, nil, err)

	return classify(err)
}

// Upsert writes a record, replacing the fields of any record with the same id.
func (r *TransactionRepository) Upsert(ctx context.Context, t models.Transaction) error {
	const query = `
		INSERT INTO transactions (id, date, from_id, to_id, amount)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET date = excluded.date,
		    from_id = excluded.from_id,
		    to_id = excluded.to_id,
		    amount = excluded.amount
	`
	args := []any{t.ID, t.Date, t.FromID, t.ToID, t.Amount}
	ex := executor(ctx, r.db)

	_, err := ex.ExecContext(ctx, ex.Rebind(query), args...)
	logQuery(query, args, nil, err)

	return classify(err)
}

// Get returns the record with the given id or ErrTransactionNotFound.
func (r *TransactionRepository) Get(ctx context.Context, id string) (*models.Transaction, error) {
	const query = `
		SELECT id, date, from_id, to_id, amount
		FROM transactions
		WHERE id = ?
	`
	ex := executor(ctx, r.db)

	var t models.Transaction
	err := sqlx.GetContext(ctx, ex, &t, ex.Rebind(query), id)
	logQuery(query, []any{id}, t, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrTransactionNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	return &t, nil
}

// Exists reports whether a record with the given id exists.
func (r *TransactionRepository) Exists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT COUNT(*) FROM transactions WHERE id = ?`
	ex := executor(ctx, r.db)

	var n int
	err := sqlx.GetContext(ctx, ex, &n, ex.Rebind(query), id)
	logQuery(query, []any{id}, n, err)

	return n > 0, classify(err)
}

// ListByUser returns one page of the records a user sent or received, newest first.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error) {
	const query = `
		SELECT id, date, from_id, to_id, amount
		FROM transactions
		WHERE from_id = ? OR to_id = ?
		ORDER BY date DESC, seq DESC
		LIMIT ? OFFSET ?
	`
	args := []any{userID, userID, limit, offset}
	ex := executor(ctx, r.db)

	txs := []models.Transaction{}
	err := sqlx.SelectContext(ctx, ex, &txs, ex.Rebind(query), args...)
	logQuery(query, args, len(txs), err)

	return txs, classify(err)
}

// Count returns the number of records, restricted to userID unless it is empty.
func (r *TransactionRepository) Count(ctx context.Context, userID string) (int64, error) {
	query := `SELECT COUNT(*) FROM transactions`
	var args []any
	if userID != "" {
		query += ` WHERE from_id = ? OR to_id = ?`
		args = append(args, userID, userID)
	}
	ex := executor(ctx, r.db)

	var n int64
	err := sqlx.GetContext(ctx, ex, &n, ex.Rebind(query), args...)
	logQuery(query, args, n, err)

	return n, classify(err)
}

// Deduplicate removes records that repeat (date, amount, from_id, to_id),
// keeping the earliest inserted copy. An empty userID deduplicates globally.
// It returns the number of removed records.
func (r *TransactionRepository) Deduplicate(ctx context.Context, userID string) (int64, error) {
	query := `
		DELETE FROM transactions
		WHERE seq NOT IN (
			SELECT MIN(seq) FROM transactions
			GROUP BY date, amount, from_id, to_id
		)
	`
	var args []any
	if userID != "" {
		query += ` AND (from_id = ? OR to_id = ?)`
		args = append(args, userID, userID)
	}
	ex := executor(ctx, r.db)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), args...)
	rows := rowsAffected(res)
	logQuery(query, args, rows, err)

	return rows, classify(err)
}

// DeleteOlderThan removes records dated before cutoff (an ISO-8601 timestamp).
func (r *TransactionRepository) DeleteOlderThan(ctx context.Context, cutoff string) (int64, error) {
	const query = `DELETE FROM transactions WHERE date < ?`
	ex := executor(ctx, r.db)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), cutoff)
	rows := rowsAffected(res)
	logQuery(query, []any{cutoff}, rows, err)

	return rows, classify(err)
}

// SumFrom returns the total amount sent by fromID.
func (r *TransactionRepository) SumFrom(ctx context.Context, fromID string) (int64, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE from_id = ?`
	ex := executor(ctx, r.db)

	var total int64
	err := sqlx.GetContext(ctx, ex, &total, ex.Rebind(query), fromID)
	logQuery(query, []any{fromID}, total, err)

	return total, classify(err)
}
