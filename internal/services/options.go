package services

import (
	"context"
	"time"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

//go:generate mockgen -source=options.go -destination=options_mock.go -package=services

// TxRunner runs fn inside one atomic unit of the ledger store.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher receives ledger events after their unit committed.
type EventPublisher interface {
	Publish(ctx context.Context, event models.LedgerEvent) error
}

// Notifier queues a direct message for a user. Delivery failures never
// reach the caller.
type Notifier interface {
	Notify(ctx context.Context, userID string, msg models.DMMessage)
}

type options struct {
	now       func() time.Time
	publisher EventPublisher
	notifier  Notifier
}

// Option configures a service.
type Option func(*options)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithPublisher sets the ledger event publisher.
func WithPublisher(p EventPublisher) Option {
	return func(o *options) {
		o.publisher = p
	}
}

// WithNotifier sets the DM notifier.
func WithNotifier(n Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *options) publish(ctx context.Context, event models.LedgerEvent) {
	if o.publisher == nil {
		return
	}
	if err := o.publisher.Publish(ctx, event); err != nil {
		logger.Log.Errorw("failed to publish ledger event", "kind", event.Kind, "tx_id", event.TransactionID, "err", err)
	}
}

func (o *options) notify(ctx context.Context, userID, title, body string) {
	if o.notifier == nil || userID == "" {
		return
	}
	o.notifier.Notify(ctx, userID, models.DMMessage{Title: title, Body: body})
}
