package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

// UserRepository handles the users table.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Get returns the account or ErrUserNotFound. It never creates a row.
func (r *UserRepository) Get(ctx context.Context, id string) (*models.Account, error) {
	const query = `
		SELECT id, balance, cooldown, notified, username, password_hash
		FROM users
		WHERE id = ?
	`
	ex := executor(ctx, r.db)

	var acc models.Account
	err := sqlx.GetContext(ctx, ex, &acc, ex.Rebind(query), id)
	logQuery(query, []any{id}, acc.Balance, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	return &acc, nil
}

// Ensure provisions an account with a zero balance if it does not exist yet.
func (r *UserRepository) Ensure(ctx context.Context, id string) error {
	const query = `
		INSERT INTO users (id, balance, cooldown, notified)
		VALUES (?, 0, 0, FALSE)
		ON CONFLICT (id) DO NOTHING
	`
	ex := executor(ctx, r.db)

	_, err := ex.ExecContext(ctx, ex.Rebind(query), id)
	logQuery(query, []any{id}, nil, err)

	return classify(err)
}

// GetOrCreate provisions the account if needed and returns it.
func (r *UserRepository) GetOrCreate(ctx context.Context, id string) (*models.Account, error) {
	if err := r.Ensure(ctx, id); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// GetByUsername returns the account registered for HTTP API access under username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	const query = `
		SELECT id, balance, cooldown, notified, username, password_hash
		FROM users
		WHERE username = ?
	`
	ex := executor(ctx, r.db)

	var acc models.Account
	err := sqlx.GetContext(ctx, ex, &acc, ex.Rebind(query), username)
	logQuery(query, []any{username}, acc.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	return &acc, nil
}

// SetBalance overwrites the balance of an existing account.
func (r *UserRepository) SetBalance(ctx context.Context, id string, balance int64) error {
	const query = `UPDATE users SET balance = ? WHERE id = ?`
	ex := executor(ctx, r.db)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), balance, id)
	rows := rowsAffected(res)
	logQuery(query, []any{balance, id}, rows, err)

	if err != nil {
		return classify(err)
	}
	if rows == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// AdjustBalance adds delta to the balance and returns the new balance. A
// debit that would drive the balance below zero fails with
// ErrInsufficientFunds and changes nothing.
func (r *UserRepository) AdjustBalance(ctx context.Context, id string, delta int64) (int64, error) {
	const query = `
		UPDATE users
		SET balance = balance + ?
		WHERE id = ? AND balance + ? >= 0
		RETURNING balance
	`
	ex := executor(ctx, r.db)

	var balance int64
	err := sqlx.GetContext(ctx, ex, &balance, ex.Rebind(query), delta, id, delta)
	logQuery(query, []any{delta, id}, balance, err)

	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := r.Get(ctx, id); getErr != nil {
			return 0, getErr
		}
		return 0, models.ErrInsufficientFunds
	}
	if err != nil {
		return 0, classify(err)
	}
	return balance, nil
}

// SetCooldown records the last claim time and the reminder flag.
func (r *UserRepository) SetCooldown(ctx context.Context, id string, cooldownMs int64, notified bool) error {
	const query = `UPDATE users SET cooldown = ?, notified = ? WHERE id = ?`
	ex := executor(ctx, r.db)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), cooldownMs, notified, id)
	rows := rowsAffected(res)
	logQuery(query, []any{cooldownMs, notified, id}, rows, err)

	if err != nil {
		return classify(err)
	}
	if rows == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// SetNotified updates the "claim ready" reminder flag.
func (r *UserRepository) SetNotified(ctx context.Context, id string, notified bool) error {
	const query = `UPDATE users SET notified = ? WHERE id = ?`
	ex := executor(ctx, r.db)

	_, err := ex.ExecContext(ctx, ex.Rebind(query), notified, id)
	logQuery(query, []any{notified, id}, nil, err)

	return classify(err)
}

// ListClaimReady returns accounts whose cooldown ended before readyBefore and
// that have not been reminded yet.
func (r *UserRepository) ListClaimReady(ctx context.Context, readyBefore int64, limit int) ([]models.Account, error) {
	const query = `
		SELECT id, balance, cooldown, notified, username, password_hash
		FROM users
		WHERE notified = FALSE AND cooldown > 0 AND cooldown <= ?
		ORDER BY cooldown
		LIMIT ?
	`
	ex := executor(ctx, r.db)

	var accounts []models.Account
	err := sqlx.SelectContext(ctx, ex, &accounts, ex.Rebind(query), readyBefore, limit)
	logQuery(query, []any{readyBefore, limit}, len(accounts), err)

	return accounts, classify(err)
}

// UpdateCredentials sets the HTTP API username and password hash.
func (r *UserRepository) UpdateCredentials(ctx context.Context, id, username, passwordHash string) error {
	const query = `UPDATE users SET username = ?, password_hash = ? WHERE id = ?`
	ex := executor(ctx, r.db)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), username, passwordHash, id)
	rows := rowsAffected(res)
	logQuery(query, []any{username, id}, rows, err)

	if err != nil {
		err = classify(err)
		if errors.Is(err, models.ErrDuplicateID) {
			return models.ErrUsernameTaken
		}
		return err
	}
	if rows == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// TotalBalance returns the sum of all balances.
func (r *UserRepository) TotalBalance(ctx context.Context) (int64, error) {
	const query = `SELECT COALESCE(SUM(balance), 0) FROM users`
	ex := executor(ctx, r.db)

	var total int64
	err := sqlx.GetContext(ctx, ex, &total, query)
	logQuery(query, nil, total, err)

	return total, classify(err)
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
