package events

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

//go:generate mockgen -source=nats.go -destination=nats_mock.go -package=events

// NATSConn is the part of *nats.Conn used for publishing.
type NATSConn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NATSPublisher publishes ledger events on a NATS subject. The event kind is
// appended to the subject, e.g. "ledger.transfer".
type NATSPublisher struct {
	conn    NATSConn
	subject string
}

// ConnectNATS dials the NATS server at url.
func ConnectNATS(url string) (*nats.Conn, error) {
	return nats.Connect(url, nats.Name("dccoin-ledger"), nats.MaxReconnects(-1))
}

func NewNATSPublisher(conn NATSConn, subject string) *NATSPublisher {
	return &NATSPublisher{conn: conn, subject: subject}
}

// Publish sends event to NATS.
func (p *NATSPublisher) Publish(ctx context.Context, event models.LedgerEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	subject := p.subject + "." + event.Kind
	if err := p.conn.Publish(subject, data); err != nil {
		return err
	}
	logger.Log.Debugw("ledger event published to NATS", "subject", subject, "transaction_id", event.TransactionID)
	return nil
}

// Close drains the connection.
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
