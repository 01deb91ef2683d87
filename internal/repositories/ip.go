package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// IPRepository handles the ips table used to throttle requests per client address.
type IPRepository struct {
	db *sqlx.DB
}

func NewIPRepository(db *sqlx.DB) *IPRepository {
	return &IPRepository{db: db}
}

// Hit records an attempt from ip at now (epoch ms) and returns the number of
// attempts inside the current window. A window older than windowMs restarts
// at one.
func (r *IPRepository) Hit(ctx context.Context, ip string, now, windowMs int64) (int64, error) {
	const query = `
		INSERT INTO ips (ip, attempts, window_start, last_seen)
		VALUES (?, 1, ?, ?)
		ON CONFLICT (ip) DO UPDATE
		SET attempts = CASE WHEN ips.window_start <= ? THEN 1 ELSE ips.attempts + 1 END,
		    window_start = CASE WHEN ips.window_start <= ? THEN excluded.window_start ELSE ips.window_start END,
		    last_seen = excluded.last_seen
		RETURNING attempts
	`
	windowOpen := now - windowMs
	args := []any{ip, now, now, windowOpen, windowOpen}
	ex := executor(ctx, r.db)

	var attempts int64
	err := sqlx.GetContext(ctx, ex, &attempts, ex.Rebind(query), args...)
	logQuery(query, args, attempts, err)

	return attempts, classify(err)
}

// Reset forgets the attempts of ip.
func (r *IPRepository) Reset(ctx context.Context, ip string) error {
	const query = `DELETE FROM ips WHERE ip = ?`
	ex := executor(ctx, r.db)

	_, err := ex.ExecContext(ctx, ex.Rebind(query), ip)
	logQuery(query, []any{ip}, nil, err)

	return classify(err)
}

// DeleteStale removes records last seen before cutoff (epoch ms).
func (r *IPRepository) DeleteStale(ctx context.Context, cutoff int64) (int64, error) {
	const query = `DELETE FROM ips WHERE last_seen < ?`
	ex := executor(ctx, r.db)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), cutoff)
	rows := rowsAffected(res)
	logQuery(query, []any{cutoff}, rows, err)

	return rows, classify(err)
}
