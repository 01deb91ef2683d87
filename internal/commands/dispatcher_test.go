package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/commands"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	ledger  *commands.MockLedger
	bills   *commands.MockBills
	backups *commands.MockBackups
	cards   *commands.MockCards
}

func newDispatcher(t *testing.T) (*commands.Dispatcher, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		ledger:  commands.NewMockLedger(ctrl),
		bills:   commands.NewMockBills(ctrl),
		backups: commands.NewMockBackups(ctrl),
		cards:   commands.NewMockCards(ctrl),
	}
	d := commands.NewDispatcher(m.ledger, m.bills, m.backups, m.cards, func() time.Time { return now })
	return d, m
}

func TestDispatcher_IgnoresNonCommands(t *testing.T) {
	d, _ := newDispatcher(t)

	for _, content := range []string{"", "hello", "!unknown", "  ", "pay <@1> 2"} {
		_, ok := d.Handle(context.Background(), "42", content)
		assert.False(t, ok, content)
	}
}

func TestDispatcher_Saldo(t *testing.T) {
	d, m := newDispatcher(t)
	ctx := context.Background()

	m.ledger.EXPECT().Balance(ctx, "42").Return(int64(150_000_000), nil)
	reply, ok := d.Handle(ctx, "42", "!saldo")
	require.True(t, ok)
	assert.Contains(t, reply.Text, "1.50000000")
	assert.False(t, reply.Private)

	m.ledger.EXPECT().Balance(ctx, "77").Return(int64(0), nil)
	reply, _ = d.Handle(ctx, "42", "!SALDO <@!77>")
	assert.Contains(t, reply.Text, "<@77>")
	assert.Contains(t, reply.Text, "0.00000000")

	reply, _ = d.Handle(ctx, "42", "!saldo nobody")
	assert.Contains(t, reply.Text, "Usage")
}

func TestDispatcher_Pay(t *testing.T) {
	d, m := newDispatcher(t)
	ctx := context.Background()

	m.ledger.EXPECT().Transfer(ctx, "42", "77", int64(250_000_000), "").
		Return(&models.Receipt{TxID: "tx-1"}, nil)
	reply, _ := d.Handle(ctx, "42", "!pay <@77> 2.5")
	assert.Contains(t, reply.Text, "2.50000000")
	assert.Contains(t, reply.Text, "tx-1")

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"missing amount", "!pay <@77>", "Usage"},
		{"bad user", "!pay bob 1", "Usage"},
		{"too many decimals", "!pay <@77> 0.000000001", "Invalid amount"},
		{"zero", "!pay <@77> 0", "Invalid amount"},
		{"negative", "!pay <@77> -1", "Invalid amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, ok := d.Handle(ctx, "42", tt.content)
			require.True(t, ok)
			assert.Contains(t, reply.Text, tt.want)
		})
	}
}

func TestDispatcher_ErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{models.ErrInsufficientFunds, "Insufficient funds"},
		{models.ErrSenderNotFound, "no wallet"},
		{models.ErrInvalidArgument, "Invalid arguments"},
		{errors.New("disk on fire"), "Operation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			d, m := newDispatcher(t)
			m.ledger.EXPECT().Transfer(gomock.Any(), "42", "77", int64(100_000_000), "").Return(nil, tt.err)

			reply, _ := d.Handle(context.Background(), "42", "!pay 77 1")
			assert.Contains(t, reply.Text, tt.want)
		})
	}
}

func TestDispatcher_Claim(t *testing.T) {
	d, m := newDispatcher(t)
	ctx := context.Background()

	m.ledger.EXPECT().Claim(ctx, "42").Return(&models.Receipt{TxID: "c-1"}, nil)
	m.ledger.EXPECT().Reward().Return(int64(138_889))
	reply, _ := d.Handle(ctx, "42", "!claim")
	assert.Contains(t, reply.Text, "0.00138889")

	m.ledger.EXPECT().Claim(ctx, "42").Return(nil, &models.CooldownError{Remaining: 90 * time.Second})
	reply, _ = d.Handle(ctx, "42", "!claim")
	assert.Contains(t, reply.Text, "1m30s")
}

func TestDispatcher_Bill(t *testing.T) {
	d, m := newDispatcher(t)
	ctx := context.Background()

	m.bills.EXPECT().CreateBill(ctx, "77", "42", int64(100_000_000), now.Add(2*time.Hour)).
		Return(&models.Bill{ID: "b-1", FromID: "77", ToID: "42", Amount: 100_000_000, Expiry: now.Add(2 * time.Hour).UnixMilli()}, nil)
	reply, _ := d.Handle(ctx, "42", "!bill <@77> 1 2h")
	assert.Contains(t, reply.Text, "`b-1`")
	assert.Contains(t, reply.Text, "!paybill b-1")

	m.bills.EXPECT().CreateBill(ctx, "", "42", int64(100_000_000), now.Add(24*time.Hour)).
		Return(&models.Bill{ID: "b-2", ToID: "42", Amount: 100_000_000}, nil)
	reply, _ = d.Handle(ctx, "42", "!bill - 1")
	assert.Contains(t, reply.Text, "`b-2`")

	reply, _ = d.Handle(ctx, "42", "!bill - 1 tomorrow")
	assert.Contains(t, reply.Text, "Usage")
}

func TestDispatcher_PayBill(t *testing.T) {
	d, m := newDispatcher(t)
	ctx := context.Background()

	m.bills.EXPECT().PayBill(ctx, "77", "b-1").
		Return(&models.Receipt{TxID: "b-1"}, &models.Bill{ID: "b-1", ToID: "42", Amount: 5}, nil)
	reply, _ := d.Handle(ctx, "77", "!paybill b-1")
	assert.Contains(t, reply.Text, "Paid bill `b-1`")
	assert.Contains(t, reply.Text, "<@42>")

	m.bills.EXPECT().PayBill(ctx, "77", "gone").Return(nil, nil, models.ErrBillNotFound)
	reply, _ = d.Handle(ctx, "77", "!paybill gone")
	assert.Contains(t, reply.Text, "Bill not found")
}

func TestDispatcher_BackupAndRestore(t *testing.T) {
	d, m := newDispatcher(t)
	ctx := context.Background()

	m.backups.EXPECT().CreateCodes(ctx, "42").Return([]string{"aaa", "bbb"}, nil)
	reply, _ := d.Handle(ctx, "42", "!backup")
	assert.True(t, reply.Private)
	assert.Contains(t, reply.Text, "`aaa`")
	assert.Contains(t, reply.Text, "`bbb`")

	m.backups.EXPECT().Redeem(ctx, "aaa", "77").Return(int64(300_000_000), &models.Receipt{TxID: "r"}, nil)
	reply, _ = d.Handle(ctx, "77", "!restore aaa")
	assert.Contains(t, reply.Text, "3.00000000")

	m.backups.EXPECT().Redeem(ctx, "bbb", "42").Return(int64(0), nil, models.ErrSelfRestoreNotAllowed)
	reply, _ = d.Handle(ctx, "42", "!restore bbb")
	assert.Contains(t, reply.Text, "cannot restore your own")

	m.backups.EXPECT().Redeem(ctx, "ccc", "42").Return(int64(0), nil, models.ErrUnknownCode)
	reply, _ = d.Handle(ctx, "42", "!restore ccc")
	assert.Contains(t, reply.Text, "Unknown backup code")
}

func TestDispatcher_Card(t *testing.T) {
	d, m := newDispatcher(t)
	ctx := context.Background()

	m.cards.EXPECT().GetOrCreate(ctx, "42").Return(&models.Card{Code: "secret", Hash: "h", OwnerID: "42"}, nil)
	reply, _ := d.Handle(ctx, "42", "!card")
	assert.True(t, reply.Private)
	assert.Contains(t, reply.Text, "`secret`")
}

func TestDispatcher_History(t *testing.T) {
	d, m := newDispatcher(t)
	ctx := context.Background()

	m.ledger.EXPECT().History(ctx, "42", 2, 10).Return([]models.Transaction{
		{ID: "t1", Date: "2024-05-01T12:00:00.000Z", FromID: models.MintID, ToID: "42", Amount: 138_889},
		{ID: "t2", Date: "2024-05-01T12:01:00.000Z", FromID: "42", ToID: "77", Amount: 1},
	}, 3, nil)
	reply, _ := d.Handle(ctx, "42", "!history 2")
	assert.Contains(t, reply.Text, "page 2 of 3")
	assert.Contains(t, reply.Text, "claim")
	assert.Contains(t, reply.Text, "<@77>")

	m.ledger.EXPECT().History(ctx, "42", 1, 10).Return(nil, 0, nil)
	reply, _ = d.Handle(ctx, "42", "!history")
	assert.Contains(t, reply.Text, "No transactions")

	reply, _ = d.Handle(ctx, "42", "!history zero")
	assert.Contains(t, reply.Text, "Usage")
}

func TestDispatcher_Active(t *testing.T) {
	hash := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

	tests := []struct {
		name    string
		content string
		setup   func(m mocks)
		want    string
	}{
		{
			name:    "paid",
			content: "!active " + hash + " 77 1",
			setup: func(m mocks) {
				m.cards.EXPECT().PayWithCard(gomock.Any(), hash, "77", int64(100_000_000)).
					Return("42", &models.Receipt{TxID: "x"}, nil)
			},
			want: "42:true",
		},
		{
			name:    "insufficient funds",
			content: "!active " + hash + " <@77> 1",
			setup: func(m mocks) {
				m.cards.EXPECT().PayWithCard(gomock.Any(), hash, "77", int64(100_000_000)).
					Return("42", nil, models.ErrInsufficientFunds)
			},
			want: "42:false",
		},
		{
			name:    "unknown card",
			content: "!active " + hash + " 77 1",
			setup: func(m mocks) {
				m.cards.EXPECT().PayWithCard(gomock.Any(), hash, "77", int64(100_000_000)).
					Return("", nil, models.ErrUnauthorized)
			},
			want: ":false",
		},
		{"malformed amount", "!active " + hash + " 77 abc", func(mocks) {}, ":false"},
		{"missing args", "!active " + hash, func(mocks) {}, ":false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, m := newDispatcher(t)
			tt.setup(m)

			reply, ok := d.Handle(context.Background(), "bot", tt.content)
			require.True(t, ok)
			assert.Equal(t, tt.want, reply.Text)
		})
	}
}

func TestDispatcher_RecoversFromPanic(t *testing.T) {
	d, m := newDispatcher(t)

	m.ledger.EXPECT().Balance(gomock.Any(), "42").DoAndReturn(func(context.Context, string) (int64, error) {
		panic("boom")
	})

	var reply commands.Reply
	require.NotPanics(t, func() {
		reply, _ = d.Handle(context.Background(), "42", "!saldo")
	})
	assert.Contains(t, reply.Text, "Something went wrong")
}
