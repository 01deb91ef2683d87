package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

// SessionRepository handles the sessions table.
type SessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores a session.
func (r *SessionRepository) Create(ctx context.Context, s models.Session) error {
	const query = `
		INSERT INTO sessions (id, user_id, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`
	args := []any{s.ID, s.UserID, s.CreatedAt, s.ExpiresAt}
	ex := executor(ctx, r.db)

	_, err := ex.ExecContext(ctx, ex.Rebind(query), args...)
	logQuery(query, []any{s.UserID, s.ExpiresAt}, nil, err)

	return classify(err)
}

// GetActive returns the session if it has not expired at now (epoch seconds),
// or ErrSessionNotFound.
func (r *SessionRepository) GetActive(ctx context.Context, id string, now int64) (*models.Session, error) {
	const query = `
		SELECT id, user_id, created_at, expires_at
		FROM sessions
		WHERE id = ? AND expires_at > ?
	`
	ex := executor(ctx, r.db)

	var s models.Session
	err := sqlx.GetContext(ctx, ex, &s, ex.Rebind(query), id, now)
	logQuery(query, []any{now}, s.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrSessionNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	return &s, nil
}

// Delete removes a session.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM sessions WHERE id = ?`
	ex := executor(ctx, r.db)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), id)
	logQuery(query, nil, rowsAffected(res), err)

	return classify(err)
}

// DeleteExpired removes sessions that expired at or before now (epoch seconds).
func (r *SessionRepository) DeleteExpired(ctx context.Context, now int64) (int64, error) {
	const query = `DELETE FROM sessions WHERE expires_at <= ?`
	ex := executor(ctx, r.db)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), now)
	rows := rowsAffected(res)
	logQuery(query, []any{now}, rows, err)

	return rows, classify(err)
}
