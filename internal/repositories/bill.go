package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

// BillRepository handles the bills table.
type BillRepository struct {
	db *sqlx.DB
}

func NewBillRepository(db *sqlx.DB) *BillRepository {
	return &BillRepository{db: db}
}

// Create inserts a bill. A reused id fails with ErrDuplicateID.
func (r *BillRepository) Create(ctx context.Context, b models.Bill) error {
	const query = `
		INSERT INTO bills (id, from_id, to_id, amount, expiry, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	args := []any{b.ID, b.FromID, b.ToID, b.Amount, b.Expiry, b.CreatedAt}
	ex := executor(ctx, r.db)

	_, err := ex.ExecContext(ctx, ex.Rebind(query), args...)
	logQuery(query, args, nil, err)

	return classify(err)
}

// Get returns the bill or ErrBillNotFound.
func (r *BillRepository) Get(ctx context.Context, id string) (*models.Bill, error) {
	const query = `
		SELECT id, from_id, to_id, amount, expiry, created_at
		FROM bills
		WHERE id = ?
	`
	ex := executor(ctx, r.db)

	var b models.Bill
	err := sqlx.GetContext(ctx, ex, &b, ex.Rebind(query), id)
	logQuery(query, []any{id}, b, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrBillNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	return &b, nil
}

// Exists reports whether a bill with the given id exists.
func (r *BillRepository) Exists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT COUNT(*) FROM bills WHERE id = ?`
	ex := executor(ctx, r.db)

	var n int
	err := sqlx.GetContext(ctx, ex, &n, ex.Rebind(query), id)
	logQuery(query, []any{id}, n, err)

	return n > 0, classify(err)
}

// Delete removes the bill or fails with ErrBillNotFound.
func (r *BillRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM bills WHERE id = ?`
	ex := executor(ctx, r.db)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), id)
	rows := rowsAffected(res)
	logQuery(query, []any{id}, rows, err)

	if err != nil {
		return classify(err)
	}
	if rows == 0 {
		return models.ErrBillNotFound
	}
	return nil
}

// ListByUser returns one page of bills where userID plays role, soonest expiry first.
func (r *BillRepository) ListByUser(ctx context.Context, userID string, role models.BillRole, limit, offset int) ([]models.Bill, error) {
	column := "to_id"
	if role == models.BillRolePayer {
		column = "from_id"
	}
	query := `
		SELECT id, from_id, to_id, amount, expiry, created_at
		FROM bills
		WHERE ` + column + ` = ?
		ORDER BY expiry, id
		LIMIT ? OFFSET ?
	`
	args := []any{userID, limit, offset}
	ex := executor(ctx, r.db)

	bills := []models.Bill{}
	err := sqlx.SelectContext(ctx, ex, &bills, ex.Rebind(query), args...)
	logQuery(query, args, len(bills), err)

	return bills, classify(err)
}

// ListExpired returns up to limit bills whose expiry is before now (epoch ms).
func (r *BillRepository) ListExpired(ctx context.Context, now int64, limit int) ([]models.Bill, error) {
	const query = `
		SELECT id, from_id, to_id, amount, expiry, created_at
		FROM bills
		WHERE expiry < ?
		ORDER BY expiry
		LIMIT ?
	`
	ex := executor(ctx, r.db)

	bills := []models.Bill{}
	err := sqlx.SelectContext(ctx, ex, &bills, ex.Rebind(query), now, limit)
	logQuery(query, []any{now, limit}, len(bills), err)

	return bills, classify(err)
}
