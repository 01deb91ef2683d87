package workers

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

//go:generate mockgen -source=dm.go -destination=dm_mock.go -package=workers

// DMQueue is the consuming side of the DM queue.
type DMQueue interface {
	Next(ctx context.Context) (*models.DMJob, error)
	Remove(ctx context.Context, seq int64) error
}

// DMSender delivers a direct message on the chat platform.
type DMSender interface {
	SendDM(ctx context.Context, userID string, msg models.DMMessage) error
}

// DMDispatcher drains the DM queue in FIFO order.
type DMDispatcher struct {
	queue   DMQueue
	sender  DMSender
	running atomic.Bool
}

func NewDMDispatcher(queue DMQueue, sender DMSender) *DMDispatcher {
	return &DMDispatcher{queue: queue, sender: sender}
}

// Drain delivers queued messages until the queue is empty and returns how
// many jobs it consumed. Every job is removed after one delivery attempt.
// A call made while another drain runs returns immediately.
func (d *DMDispatcher) Drain(ctx context.Context) (int, error) {
	if !d.running.CompareAndSwap(false, true) {
		return 0, nil
	}
	defer d.running.Store(false)

	n := 0
	for ctx.Err() == nil {
		job, err := d.queue.Next(ctx)
		if err != nil {
			logger.Log.Errorw("failed to read dm queue", "err", err)
			return n, err
		}
		if job == nil {
			return n, nil
		}

		d.deliver(ctx, job)

		if err := d.queue.Remove(ctx, job.Seq); err != nil {
			logger.Log.Errorw("failed to remove dm job", "seq", job.Seq, "err", err)
			return n, err
		}
		n++
	}
	return n, ctx.Err()
}

func (d *DMDispatcher) deliver(ctx context.Context, job *models.DMJob) {
	var msg models.DMMessage
	if err := json.Unmarshal([]byte(job.Payload), &msg); err != nil {
		logger.Log.Errorw("dropping malformed dm job", "seq", job.Seq, "err", err)
		return
	}

	if err := d.sender.SendDM(ctx, job.UserID, msg); err != nil {
		logger.Log.Warnw("failed to deliver dm", "seq", job.Seq, "user_id", job.UserID, "err", err)
		return
	}
	logger.Log.Debugw("dm delivered", "seq", job.Seq, "user_id", job.UserID)
}

// Trigger starts a drain in the background.
func (d *DMDispatcher) Trigger() {
	go func() {
		if _, err := d.Drain(context.Background()); err != nil {
			logger.Log.Errorw("dm drain failed", "err", err)
		}
	}()
}
