package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

var testEvent = models.LedgerEvent{
	TransactionID: "tx-1",
	Timestamp:     "2024-05-01T12:00:00.000Z",
	FromID:        "U1",
	ToID:          "U2",
	Amount:        50000000,
	Kind:          models.EventTransfer,
}

func TestKafkaPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	p := NewKafkaPublisher(writer)

	writer.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, []byte("tx-1"), msgs[0].Key)

			var got models.LedgerEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			assert.Equal(t, testEvent, got)
			return nil
		})
	require.NoError(t, p.Publish(context.Background(), testEvent))

	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("no brokers"))
	assert.EqualError(t, p.Publish(context.Background(), testEvent), "no brokers")

	writer.EXPECT().Close().Return(nil)
	assert.NoError(t, p.Close())
}

func TestNATSPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockNATSConn(ctrl)
	p := NewNATSPublisher(conn, "ledger")

	conn.EXPECT().
		Publish("ledger.transfer", gomock.Any()).
		DoAndReturn(func(_ string, data []byte) error {
			var got models.LedgerEvent
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, testEvent, got)
			return nil
		})
	require.NoError(t, p.Publish(context.Background(), testEvent))

	claim := testEvent
	claim.Kind = models.EventClaim
	conn.EXPECT().Publish("ledger.claim", gomock.Any()).Return(errors.New("closed"))
	assert.EqualError(t, p.Publish(context.Background(), claim), "closed")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Publish(ctx, testEvent), context.Canceled)

	conn.EXPECT().Drain().Return(nil)
	assert.NoError(t, p.Close())
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter([]string{"localhost:9092"}, "ledger-events")
	assert.Equal(t, "ledger-events", w.Topic)
	assert.Equal(t, "localhost:9092", w.Addr.String())
}
