package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

func TestDMDispatcher_Drain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := NewMockDMQueue(ctrl)
	sender := NewMockDMSender(ctrl)
	d := NewDMDispatcher(queue, sender)

	gomock.InOrder(
		queue.EXPECT().Next(gomock.Any()).Return(&models.DMJob{Seq: 1, UserID: "U1", Payload: `{"title":"a","body":"b"}`}, nil),
		sender.EXPECT().SendDM(gomock.Any(), "U1", models.DMMessage{Title: "a", Body: "b"}).Return(nil),
		queue.EXPECT().Remove(gomock.Any(), int64(1)).Return(nil),

		queue.EXPECT().Next(gomock.Any()).Return(&models.DMJob{Seq: 2, UserID: "U2", Payload: `{"title":"c"}`}, nil),
		sender.EXPECT().SendDM(gomock.Any(), "U2", models.DMMessage{Title: "c"}).Return(errors.New("dms closed")),
		queue.EXPECT().Remove(gomock.Any(), int64(2)).Return(nil),

		queue.EXPECT().Next(gomock.Any()).Return(&models.DMJob{Seq: 3, UserID: "U3", Payload: `not json`}, nil),
		queue.EXPECT().Remove(gomock.Any(), int64(3)).Return(nil),

		queue.EXPECT().Next(gomock.Any()).Return(nil, nil),
	)

	n, err := d.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestDMDispatcher_DrainStopsOnQueueError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := NewMockDMQueue(ctrl)
	d := NewDMDispatcher(queue, NewMockDMSender(ctrl))

	queue.EXPECT().Next(gomock.Any()).Return(nil, errors.New("db locked"))

	n, err := d.Drain(context.Background())
	assert.EqualError(t, err, "db locked")
	assert.Equal(t, 0, n)
}

func TestDMDispatcher_SingleFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := NewMockDMQueue(ctrl)
	sender := NewMockDMSender(ctrl)
	d := NewDMDispatcher(queue, sender)

	started := make(chan struct{})
	release := make(chan struct{})

	queue.EXPECT().Next(gomock.Any()).Return(&models.DMJob{Seq: 1, UserID: "U1", Payload: `{}`}, nil)
	sender.EXPECT().SendDM(gomock.Any(), "U1", gomock.Any()).DoAndReturn(func(context.Context, string, models.DMMessage) error {
		close(started)
		<-release
		return nil
	})
	queue.EXPECT().Remove(gomock.Any(), int64(1)).Return(nil)
	queue.EXPECT().Next(gomock.Any()).Return(nil, nil)

	done := make(chan int)
	go func() {
		n, _ := d.Drain(context.Background())
		done <- n
	}()

	<-started
	n, err := d.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	close(release)
	select {
	case n := <-done:
		assert.Equal(t, 1, n)
	case <-time.After(5 * time.Second):
		t.Fatal("drain did not finish")
	}
}

func TestDMDispatcher_DrainHonoursCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := NewDMDispatcher(NewMockDMQueue(ctrl), NewMockDMSender(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := d.Drain(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, n)
}
