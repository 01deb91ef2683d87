package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/units"
)

//go:generate mockgen -source=bills.go -destination=bills_mock.go -package=services

const (
	// DefaultBillDuration applies when no duration is given.
	DefaultBillDuration = "1d"
	MinBillDuration     = time.Hour
	MaxBillDuration     = 182 * 24 * time.Hour

	sweepBatchSize = 100
)

var durationPattern = regexp.MustCompile(`^(\d+)([dhms])$`)

// BillStore defines bill persistence used by BillService.
type BillStore interface {
	Create(ctx context.Context, b models.Bill) error
	Get(ctx context.Context, id string) (*models.Bill, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string, role models.BillRole, limit, offset int) ([]models.Bill, error)
	ListExpired(ctx context.Context, now int64, limit int) ([]models.Bill, error)
}

// Settler runs transfers inside an existing atomic unit.
type Settler interface {
	TransferWithin(ctx context.Context, fromID, toID string, amount int64, txID string) (*models.Receipt, error)
	TransferWithinEnsuringSender(ctx context.Context, fromID, toID string, amount int64, txID string) (*models.Receipt, error)
}

// BillService implements the bill protocol.
type BillService struct {
	tx      TxRunner
	bills   BillStore
	settler Settler
	ids     *IDGenerator
	options
}

// NewBillService creates a new BillService. ids must probe both bills and
// transactions, since a bill id becomes the id of its settling transaction.
func NewBillService(tx TxRunner, bills BillStore, settler Settler, ids *IDGenerator, opts ...Option) *BillService {
	return &BillService{
		tx:      tx,
		bills:   bills,
		settler: settler,
		ids:     ids,
		options: newOptions(opts),
	}
}

// BillExpiry parses a "<n>[dhms]" duration, clamps it to
// [MinBillDuration, MaxBillDuration] and adds it to now.
func BillExpiry(now time.Time, duration string) (time.Time, error) {
	if duration == "" {
		duration = DefaultBillDuration
	}

	m := durationPattern.FindStringSubmatch(duration)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: duration %q", models.ErrInvalidArgument, duration)
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: duration %q", models.ErrInvalidArgument, duration)
	}

	unit := map[string]time.Duration{
		"d": 24 * time.Hour,
		"h": time.Hour,
		"m": time.Minute,
		"s": time.Second,
	}[m[2]]

	var d time.Duration
	if n > int64(MaxBillDuration/unit) {
		d = MaxBillDuration
	} else {
		d = time.Duration(n) * unit
	}
	d = min(max(d, MinBillDuration), MaxBillDuration)

	return now.Add(d), nil
}

// CreateBill stores a bill asking fromID (or anyone, when empty) to pay
// amount to toID before expiry.
func (svc *BillService) CreateBill(ctx context.Context, fromID, toID string, amount int64, expiry time.Time) (*models.Bill, error) {
	if amount <= 0 {
		return nil, models.ErrInvalidAmount
	}
	if toID == "" || toID == models.MintID || fromID == models.MintID {
		return nil, models.ErrInvalidArgument
	}

	now := svc.now()
	if !expiry.After(now) {
		return nil, fmt.Errorf("%w: expiry in the past", models.ErrInvalidArgument)
	}

	var bill models.Bill
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		id, err := svc.ids.Next(ctx)
		if err != nil {
			return err
		}
		bill = models.Bill{
			ID:        id,
			FromID:    fromID,
			ToID:      toID,
			Amount:    amount,
			Expiry:    expiry.UnixMilli(),
			CreatedAt: now.UnixMilli(),
		}
		return svc.bills.Create(ctx, bill)
	})
	if err != nil {
		logger.Log.Errorw("failed to create bill", "from", fromID, "to", toID, "err", err)
		return nil, err
	}

	if fromID != "" && fromID != toID {
		svc.notify(ctx, fromID, "New bill",
			fmt.Sprintf("<@%s> billed you %s coins.\nPay with `!paybill %s`", toID, units.FromMinorUnits(amount), bill.ID))
	}
	return &bill, nil
}

// PayBill settles billID with coins of executorID. The settling transaction
// reuses the bill id. A payee settling their own bill cancels it with a
// self-pay record. The bill is removed after any settlement attempt.
func (svc *BillService) PayBill(ctx context.Context, executorID, billID string) (*models.Receipt, *models.Bill, error) {
	if executorID == "" || billID == "" {
		return nil, nil, models.ErrInvalidArgument
	}

	var (
		bill    *models.Bill
		receipt *models.Receipt
	)
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		bill, err = svc.bills.Get(ctx, billID)
		if err != nil {
			return err
		}
		if bill.Expiry < svc.now().UnixMilli() {
			bill = nil
			return models.ErrBillNotFound
		}

		settle := svc.settler.TransferWithin
		if executorID == bill.ToID {
			// Payee cancelling: a self-pay that may come before any credit.
			settle = svc.settler.TransferWithinEnsuringSender
		}
		receipt, err = settle(ctx, executorID, bill.ToID, bill.Amount, bill.ID)
		if err != nil {
			return err
		}
		return svc.bills.Delete(ctx, bill.ID)
	})
	if err != nil {
		if bill != nil {
			svc.discard(ctx, bill.ID)
		}
		logger.Log.Errorw("failed to pay bill", "bill_id", billID, "executor", executorID, "err", err)
		return nil, nil, err
	}

	svc.publish(ctx, models.LedgerEvent{
		TransactionID: receipt.TxID,
		Timestamp:     receipt.Timestamp,
		FromID:        executorID,
		ToID:          bill.ToID,
		Amount:        bill.Amount,
		Kind:          models.EventBillPaid,
	})

	amount := units.FromMinorUnits(bill.Amount)
	svc.notify(ctx, bill.ToID, "Bill paid",
		fmt.Sprintf("<@%s> paid your bill `%s` of %s coins.", executorID, bill.ID, amount))
	if bill.FromID != "" && bill.FromID != bill.ToID {
		svc.notify(ctx, bill.FromID, "Bill settled",
			fmt.Sprintf("Bill `%s` of %s coins was settled by <@%s>.", bill.ID, amount, executorID))
	}

	return receipt, bill, nil
}

func (svc *BillService) discard(ctx context.Context, billID string) {
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		return svc.bills.Delete(ctx, billID)
	})
	if err != nil && !errors.Is(err, models.ErrBillNotFound) {
		logger.Log.Errorw("failed to discard bill", "bill_id", billID, "err", err)
	}
}

// GetBill returns a bill by id.
func (svc *BillService) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	return svc.bills.Get(ctx, billID)
}

// ListBills returns one page of bills where userID plays role. Pages start at 1.
func (svc *BillService) ListBills(ctx context.Context, userID string, role models.BillRole, page, pageSize int) ([]models.Bill, error) {
	if role != models.BillRolePayer && role != models.BillRolePayee {
		return nil, fmt.Errorf("%w: role %q", models.ErrInvalidArgument, role)
	}
	if page < 1 {
		page = 1
	}

	list, err := svc.bills.ListByUser(ctx, userID, role, pageSize, (page-1)*pageSize)
	if err != nil {
		logger.Log.Errorw("failed to list bills", "user_id", userID, "role", role, "err", err)
		return nil, err
	}
	return list, nil
}

// SweepExpired deletes every bill whose expiry is before now and tells the
// payer, if known. It returns the number of bills removed.
func (svc *BillService) SweepExpired(ctx context.Context) (int, error) {
	now := svc.now().UnixMilli()
	swept := 0

	for {
		expired, err := svc.bills.ListExpired(ctx, now, sweepBatchSize)
		if err != nil {
			logger.Log.Errorw("failed to list expired bills", "err", err)
			return swept, err
		}

		for _, b := range expired {
			err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
				return svc.bills.Delete(ctx, b.ID)
			})
			if errors.Is(err, models.ErrBillNotFound) {
				continue
			}
			if err != nil {
				logger.Log.Errorw("failed to delete expired bill", "bill_id", b.ID, "err", err)
				return swept, err
			}
			swept++

			if b.FromID != "" {
				svc.notify(ctx, b.FromID, "Bill expired",
					fmt.Sprintf("Bill `%s` of %s coins from <@%s> expired.", b.ID, units.FromMinorUnits(b.Amount), b.ToID))
			}
		}

		if len(expired) < sweepBatchSize {
			break
		}
	}

	if swept > 0 {
		logger.Log.Infow("expired bills swept", "count", swept)
	}
	return swept, nil
}
