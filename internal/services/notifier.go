package services

import (
	"context"
	"encoding/json"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

//go:generate mockgen -source=notifier.go -destination=notifier_mock.go -package=services

// DMEnqueuer appends a job to the DM queue.
type DMEnqueuer interface {
	Enqueue(ctx context.Context, userID, payload string, now int64) (int64, error)
}

// DMNotifier queues direct messages and wakes the dispatcher.
type DMNotifier struct {
	queue   DMEnqueuer
	trigger func()
	options
}

// NewDMNotifier creates a notifier. trigger is called after every successful
// enqueue and may be nil.
func NewDMNotifier(queue DMEnqueuer, trigger func(), opts ...Option) *DMNotifier {
	return &DMNotifier{
		queue:   queue,
		trigger: trigger,
		options: newOptions(opts),
	}
}

// Notify queues msg for userID. Failures are logged only.
func (n *DMNotifier) Notify(ctx context.Context, userID string, msg models.DMMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		logger.Log.Errorw("failed to encode dm", "user_id", userID, "err", err)
		return
	}

	seq, err := n.queue.Enqueue(context.WithoutCancel(ctx), userID, string(payload), n.now().UnixMilli())
	if err != nil {
		logger.Log.Errorw("failed to enqueue dm", "user_id", userID, "err", err)
		return
	}
	logger.Log.Debugw("dm enqueued", "user_id", userID, "seq", seq)

	if n.trigger != nil {
		n.trigger()
	}
}
