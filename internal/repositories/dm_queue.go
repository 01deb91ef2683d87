package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

// DMQueueRepository handles the dm_queue table, a FIFO of pending direct messages.
type DMQueueRepository struct {
	db *sqlx.DB
}

func NewDMQueueRepository(db *sqlx.DB) *DMQueueRepository {
	return &DMQueueRepository{db: db}
}

// Enqueue appends a job and returns its sequence number.
func (r *DMQueueRepository) Enqueue(ctx context.Context, userID, payload string, now int64) (int64, error) {
	const query = `
		INSERT INTO dm_queue (user_id, payload, enqueued_at)
		VALUES (?, ?, ?)
		RETURNING seq
	`
	ex := executor(ctx, r.db)

	var seq int64
	err := sqlx.GetContext(ctx, ex, &seq, ex.Rebind(query), userID, payload, now)
	logQuery(query, []any{userID, now}, seq, err)

	return seq, classify(err)
}

// Next returns the oldest job, or nil when the queue is empty.
func (r *DMQueueRepository) Next(ctx context.Context) (*models.DMJob, error) {
	const query = `
		SELECT seq, user_id, payload, enqueued_at
		FROM dm_queue
		ORDER BY seq
		LIMIT 1
	`
	ex := executor(ctx, r.db)

	var job models.DMJob
	err := sqlx.GetContext(ctx, ex, &job, query)
	logQuery(query, nil, job.Seq, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return &job, nil
}

// Remove deletes a job.
func (r *DMQueueRepository) Remove(ctx context.Context, seq int64) error {
	const query = `DELETE FROM dm_queue WHERE seq = ?`
	ex := executor(ctx, r.db)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), seq)
	logQuery(query, []any{seq}, rowsAffected(res), err)

	return classify(err)
}

// Len returns the number of pending jobs.
func (r *DMQueueRepository) Len(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM dm_queue`
	ex := executor(ctx, r.db)

	var n int64
	err := sqlx.GetContext(ctx, ex, &n, query)
	return n, classify(err)
}
