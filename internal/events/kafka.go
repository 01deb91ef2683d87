package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

//go:generate mockgen -source=kafka.go -destination=kafka_mock.go -package=events

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaPublisher publishes ledger events to a Kafka topic, keyed by transaction id.
type KafkaPublisher struct {
	writer KafkaWriter
}

// NewKafkaWriter returns a writer for topic on brokers.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

func NewKafkaPublisher(writer KafkaWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish writes event to Kafka.
func (p *KafkaPublisher) Publish(ctx context.Context, event models.LedgerEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}
	logger.Log.Infow("ledger event published to Kafka", "transaction_id", event.TransactionID, "kind", event.Kind)
	return nil
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
