package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

var fixedNow = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestPruneTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pruner := NewMockTransactionPruner(ctrl)

	disabled := PruneTask(pruner, 0, time.Hour, clock)
	assert.Zero(t, disabled.Interval)

	task := PruneTask(pruner, 7*24*time.Hour, time.Hour, clock)
	assert.Equal(t, time.Hour, task.Interval)

	gomock.InOrder(
		pruner.EXPECT().DeleteOlderThan(gomock.Any(), "2024-05-03T00:00:00.000Z").Return(int64(4), nil),
		pruner.EXPECT().Deduplicate(gomock.Any(), "").Return(int64(1), nil),
	)
	assert.NoError(t, task.Run(context.Background()))

	pruner.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("locked"))
	assert.EqualError(t, task.Run(context.Background()), "locked")
}

func TestClaimReminderTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockReminderStore(ctrl)
	notifier := NewMockNotifier(ctrl)
	task := ClaimReminderTask(store, notifier, time.Hour, time.Minute, clock)
	readyBefore := fixedNow.Add(-time.Hour).UnixMilli()

	gomock.InOrder(
		store.EXPECT().ListClaimReady(gomock.Any(), readyBefore, 100).
			Return([]models.Account{{ID: "U1"}, {ID: "U2"}}, nil),
		store.EXPECT().SetNotified(gomock.Any(), "U1", true).Return(nil),
		notifier.EXPECT().Notify(gomock.Any(), "U1", gomock.Any()),
		store.EXPECT().SetNotified(gomock.Any(), "U2", true).Return(nil),
		notifier.EXPECT().Notify(gomock.Any(), "U2", gomock.Any()),
	)
	assert.NoError(t, task.Run(context.Background()))

	store.EXPECT().ListClaimReady(gomock.Any(), readyBefore, 100).Return(nil, errors.New("db down"))
	assert.Error(t, task.Run(context.Background()))
}

func TestCleanupTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ips := NewMockIPCleaner(ctrl)
	sessions := NewMockSessionCleaner(ctrl)
	sweeper := NewMockBillSweeper(ctrl)
	checkpointer := NewMockCheckpointer(ctrl)
	drainer := NewMockDrainer(ctrl)
	ctx := context.Background()

	ips.EXPECT().DeleteStale(gomock.Any(), fixedNow.Add(-24*time.Hour).UnixMilli()).Return(int64(2), nil)
	assert.NoError(t, IPCleanupTask(ips, 24*time.Hour, time.Hour, clock).Run(ctx))

	sessions.EXPECT().DeleteExpired(gomock.Any(), fixedNow.Unix()).Return(int64(0), nil)
	assert.NoError(t, SessionCleanupTask(sessions, time.Hour, clock).Run(ctx))

	sweeper.EXPECT().SweepExpired(gomock.Any()).Return(3, nil)
	assert.NoError(t, BillSweepTask(sweeper, 10*time.Minute).Run(ctx))

	checkpointer.EXPECT().Checkpoint(gomock.Any()).Return(nil)
	assert.NoError(t, CheckpointTask(checkpointer, 5*time.Minute).Run(ctx))

	drainer.EXPECT().Drain(gomock.Any()).Return(0, nil)
	assert.NoError(t, DMDrainTask(drainer, 5*time.Second).Run(ctx))
}
