package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/services"
)

func TestBillExpiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration string
		want     time.Duration
		wantErr  bool
	}{
		{"default", "", 24 * time.Hour, false},
		{"hours", "5h", 5 * time.Hour, false},
		{"days", "3d", 72 * time.Hour, false},
		{"clamped to minimum", "30m", time.Hour, false},
		{"seconds clamped to minimum", "10s", time.Hour, false},
		{"clamped to maximum", "400d", services.MaxBillDuration, false},
		{"overflow clamped to maximum", "99999999999999999d", services.MaxBillDuration, false},
		{"no unit", "5", 0, true},
		{"unknown unit", "5w", 0, true},
		{"garbage", "soon", 0, true},
		{"negative", "-1h", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := services.BillExpiry(now, tt.duration)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, now.Add(tt.want), got)
		})
	}
}

func newBillService(f *fixture, opts ...services.Option) *services.BillService {
	ids := services.NewIDGenerator(f.bills, f.txs)
	return services.NewBillService(f.tm, f.bills, f.ledger, ids, f.options(opts...)...)
}

func TestBillService_CreateAndPay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := services.NewMockNotifier(ctrl)
	f := newFixture(t)
	svc := newBillService(f, services.WithNotifier(notifier))
	ctx := context.Background()

	f.fund(t, "U1", 500)
	f.fund(t, "U2", 3000000)

	notifier.EXPECT().Notify(gomock.Any(), "U2", gomock.Any())
	bill, err := svc.CreateBill(ctx, "U2", "U1", 1000000, f.clock.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, f.clock.Now().Add(time.Hour).UnixMilli(), bill.Expiry)

	gomock.InOrder(
		notifier.EXPECT().Notify(gomock.Any(), "U1", gomock.Any()),
		notifier.EXPECT().Notify(gomock.Any(), "U2", gomock.Any()),
	)
	receipt, paid, err := svc.PayBill(ctx, "U2", bill.ID)
	require.NoError(t, err)
	assert.Equal(t, bill.ID, receipt.TxID)
	assert.Equal(t, *bill, *paid)

	assert.Equal(t, int64(1000500), f.balance(t, "U1"))
	assert.Equal(t, int64(2000000), f.balance(t, "U2"))

	_, err = f.bills.Get(ctx, bill.ID)
	assert.ErrorIs(t, err, models.ErrBillNotFound)

	rec, err := f.txs.Get(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, "U2", rec.FromID)
	assert.Equal(t, "U1", rec.ToID)
	assert.Equal(t, int64(1000000), rec.Amount)
	assert.Equal(t, int64(1), f.txCount(t))
}

func TestBillService_AnyoneMayPayOpenBill(t *testing.T) {
	f := newFixture(t)
	svc := newBillService(f)
	ctx := context.Background()
	f.fund(t, "PAYER", 50)

	bill, err := svc.CreateBill(ctx, "", "U1", 20, f.clock.Now().Add(2*time.Hour))
	require.NoError(t, err)

	_, _, err = svc.PayBill(ctx, "PAYER", bill.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(30), f.balance(t, "PAYER"))
	assert.Equal(t, int64(20), f.balance(t, "U1"))
}

func TestBillService_PayUnknownBill(t *testing.T) {
	f := newFixture(t)
	svc := newBillService(f)
	f.fund(t, "U1", 10)

	_, _, err := svc.PayBill(context.Background(), "U1", "nope")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, int64(10), f.balance(t, "U1"))
	assert.Equal(t, int64(0), f.txCount(t))
}

func TestBillService_FailedPaymentDiscardsBill(t *testing.T) {
	f := newFixture(t)
	svc := newBillService(f)
	ctx := context.Background()
	f.fund(t, "U1", 0)
	f.fund(t, "U2", 5)

	bill, err := svc.CreateBill(ctx, "U2", "U1", 10, f.clock.Now().Add(time.Hour))
	require.NoError(t, err)

	_, _, err = svc.PayBill(ctx, "U2", bill.ID)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)

	assert.Equal(t, int64(5), f.balance(t, "U2"))
	assert.Equal(t, int64(0), f.balance(t, "U1"))
	assert.Equal(t, int64(0), f.txCount(t))

	_, err = f.bills.Get(ctx, bill.ID)
	assert.ErrorIs(t, err, models.ErrBillNotFound)
}

func TestBillService_PayeeSettlesOwnBill(t *testing.T) {
	f := newFixture(t)
	svc := newBillService(f)
	ctx := context.Background()
	f.fund(t, "U1", 40)

	bill, err := svc.CreateBill(ctx, "U2", "U1", 25, f.clock.Now().Add(time.Hour))
	require.NoError(t, err)

	_, _, err = svc.PayBill(ctx, "U1", bill.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(40), f.balance(t, "U1"))

	rec, err := f.txs.Get(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, "U1", rec.FromID)
	assert.Equal(t, "U1", rec.ToID)

	_, err = f.bills.Get(ctx, bill.ID)
	assert.ErrorIs(t, err, models.ErrBillNotFound)
}

func TestBillService_NewPayeeCancelsOwnBill(t *testing.T) {
	f := newFixture(t)
	svc := newBillService(f)
	ctx := context.Background()

	bill, err := svc.CreateBill(ctx, "", "NEWPAYEE", 25, f.clock.Now().Add(time.Hour))
	require.NoError(t, err)

	receipt, _, err := svc.PayBill(ctx, "NEWPAYEE", bill.ID)
	require.NoError(t, err)
	assert.Equal(t, bill.ID, receipt.TxID)
	assert.Equal(t, int64(0), f.balance(t, "NEWPAYEE"))

	rec, err := f.txs.Get(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, "NEWPAYEE", rec.FromID)
	assert.Equal(t, "NEWPAYEE", rec.ToID)
	assert.Equal(t, int64(25), rec.Amount)

	_, err = f.bills.Get(ctx, bill.ID)
	assert.ErrorIs(t, err, models.ErrBillNotFound)
}

func TestBillService_UnknownExecutorStillRejected(t *testing.T) {
	f := newFixture(t)
	svc := newBillService(f)
	ctx := context.Background()

	bill, err := svc.CreateBill(ctx, "", "U1", 25, f.clock.Now().Add(time.Hour))
	require.NoError(t, err)

	_, _, err = svc.PayBill(ctx, "STRANGER", bill.ID)
	assert.ErrorIs(t, err, models.ErrSenderNotFound)

	_, err = f.txs.Get(ctx, bill.ID)
	assert.ErrorIs(t, err, models.ErrTransactionNotFound)
}

func TestBillService_CreateBillValidation(t *testing.T) {
	f := newFixture(t)
	svc := newBillService(f)
	ctx := context.Background()
	later := f.clock.Now().Add(time.Hour)

	_, err := svc.CreateBill(ctx, "U2", "U1", 0, later)
	assert.ErrorIs(t, err, models.ErrInvalidAmount)

	_, err = svc.CreateBill(ctx, "U2", "", 10, later)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	_, err = svc.CreateBill(ctx, "U2", "U1", 10, f.clock.Now())
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestBillService_ExpiredBills(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := services.NewMockNotifier(ctrl)
	f := newFixture(t)
	svc := newBillService(f, services.WithNotifier(notifier))
	ctx := context.Background()
	f.fund(t, "U2", 100)

	notifier.EXPECT().Notify(gomock.Any(), "U2", gomock.Any())
	short, err := svc.CreateBill(ctx, "U2", "U1", 10, f.clock.Now().Add(time.Hour))
	require.NoError(t, err)
	open, err := svc.CreateBill(ctx, "", "U1", 10, f.clock.Now().Add(time.Hour))
	require.NoError(t, err)
	long, err := svc.CreateBill(ctx, "", "U1", 10, f.clock.Now().Add(48*time.Hour))
	require.NoError(t, err)

	f.clock.Advance(2 * time.Hour)

	_, _, err = svc.PayBill(ctx, "U2", short.ID)
	assert.ErrorIs(t, err, models.ErrBillNotFound)
	assert.Equal(t, int64(100), f.balance(t, "U2"))

	notifier.EXPECT().Notify(gomock.Any(), "U2", gomock.Any())
	n, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = f.bills.Get(ctx, open.ID)
	assert.ErrorIs(t, err, models.ErrBillNotFound)
	_, err = f.bills.Get(ctx, long.ID)
	assert.NoError(t, err)
}

func TestBillService_ListBills(t *testing.T) {
	f := newFixture(t)
	svc := newBillService(f)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateBill(ctx, "U2", "U1", int64(i+1), f.clock.Now().Add(time.Duration(i+1)*time.Hour))
		require.NoError(t, err)
	}

	asPayee, err := svc.ListBills(ctx, "U1", models.BillRolePayee, 1, 2)
	require.NoError(t, err)
	require.Len(t, asPayee, 2)
	assert.Equal(t, int64(1), asPayee[0].Amount)

	next, err := svc.ListBills(ctx, "U1", models.BillRolePayee, 2, 2)
	require.NoError(t, err)
	require.Len(t, next, 1)

	asPayer, err := svc.ListBills(ctx, "U2", models.BillRolePayer, 1, 10)
	require.NoError(t, err)
	assert.Len(t, asPayer, 3)

	none, err := svc.ListBills(ctx, "U2", models.BillRolePayee, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = svc.ListBills(ctx, "U1", "owner", 1, 10)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}
