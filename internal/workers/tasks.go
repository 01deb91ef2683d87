package workers

import (
	"context"
	"time"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

//go:generate mockgen -source=tasks.go -destination=tasks_mock.go -package=workers

const reminderBatchSize = 100

// BillSweeper removes expired bills.
type BillSweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

// Checkpointer compacts the store's write-ahead log.
type Checkpointer interface {
	Checkpoint(ctx context.Context) error
}

// TransactionPruner drops old records and duplicate rows.
type TransactionPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff string) (int64, error)
	Deduplicate(ctx context.Context, userID string) (int64, error)
}

// IPCleaner forgets clients not seen for a while.
type IPCleaner interface {
	DeleteStale(ctx context.Context, cutoff int64) (int64, error)
}

// SessionCleaner deletes expired API sessions.
type SessionCleaner interface {
	DeleteExpired(ctx context.Context, now int64) (int64, error)
}

// ReminderStore finds users whose claim cooldown ended.
type ReminderStore interface {
	ListClaimReady(ctx context.Context, readyBefore int64, limit int) ([]models.Account, error)
	SetNotified(ctx context.Context, id string, notified bool) error
}

// Notifier queues a direct message.
type Notifier interface {
	Notify(ctx context.Context, userID string, msg models.DMMessage)
}

// Drainer empties the DM queue.
type Drainer interface {
	Drain(ctx context.Context) (int, error)
}

// BillSweepTask deletes expired bills every interval.
func BillSweepTask(s BillSweeper, every time.Duration) Task {
	return Task{
		Name:     "bill-sweep",
		Interval: every,
		Run: func(ctx context.Context) error {
			_, err := s.SweepExpired(ctx)
			return err
		},
	}
}

// CheckpointTask truncates the SQLite write-ahead log every interval.
func CheckpointTask(c Checkpointer, every time.Duration) Task {
	return Task{
		Name:     "wal-checkpoint",
		Interval: every,
		Run:      c.Checkpoint,
	}
}

// PruneTask deletes records older than retention and then removes duplicate
// rows. A zero retention disables the task.
func PruneTask(p TransactionPruner, retention, every time.Duration, now func() time.Time) Task {
	if retention <= 0 {
		every = 0
	}
	return Task{
		Name:     "tx-prune",
		Interval: every,
		Run: func(ctx context.Context) error {
			cutoff := models.FormatTimestamp(now().Add(-retention))
			pruned, err := p.DeleteOlderThan(ctx, cutoff)
			if err != nil {
				return err
			}
			dups, err := p.Deduplicate(ctx, "")
			if err != nil {
				return err
			}
			logger.Log.Infow("transactions pruned", "older_than", cutoff, "pruned", pruned, "duplicates", dups)
			return nil
		},
	}
}

// IPCleanupTask forgets throttle records idle for longer than idle.
func IPCleanupTask(c IPCleaner, idle, every time.Duration, now func() time.Time) Task {
	return Task{
		Name:     "ip-cleanup",
		Interval: every,
		Run: func(ctx context.Context) error {
			_, err := c.DeleteStale(ctx, now().Add(-idle).UnixMilli())
			return err
		},
	}
}

// SessionCleanupTask deletes expired sessions.
func SessionCleanupTask(c SessionCleaner, every time.Duration, now func() time.Time) Task {
	return Task{
		Name:     "session-cleanup",
		Interval: every,
		Run: func(ctx context.Context) error {
			_, err := c.DeleteExpired(ctx, now().Unix())
			return err
		},
	}
}

// ClaimReminderTask tells users once that their next claim is available.
func ClaimReminderTask(store ReminderStore, notifier Notifier, cooldown, every time.Duration, now func() time.Time) Task {
	return Task{
		Name:     "claim-reminder",
		Interval: every,
		Run: func(ctx context.Context) error {
			readyBefore := now().Add(-cooldown).UnixMilli()
			for {
				accounts, err := store.ListClaimReady(ctx, readyBefore, reminderBatchSize)
				if err != nil {
					return err
				}
				for _, acc := range accounts {
					if err := store.SetNotified(ctx, acc.ID, true); err != nil {
						return err
					}
					notifier.Notify(ctx, acc.ID, models.DMMessage{
						Title: "Reward ready",
						Body:  "Your reward can be claimed again. Use `!claim`.",
					})
				}
				if len(accounts) < reminderBatchSize {
					return nil
				}
			}
		},
	}
}

// DMDrainTask retries the DM queue every interval.
func DMDrainTask(d Drainer, every time.Duration) Task {
	return Task{
		Name:     "dm-drain",
		Interval: every,
		Run: func(ctx context.Context) error {
			_, err := d.Drain(ctx)
			return err
		},
	}
}
