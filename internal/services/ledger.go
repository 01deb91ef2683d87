package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/units"
)

//go:generate mockgen -source=ledger.go -destination=ledger_mock.go -package=services

// AccountStore defines the account operations used by the ledger protocols.
type AccountStore interface {
	Get(ctx context.Context, id string) (*models.Account, error)
	GetOrCreate(ctx context.Context, id string) (*models.Account, error)
	AdjustBalance(ctx context.Context, id string, delta int64) (int64, error)
	SetCooldown(ctx context.Context, id string, cooldownMs int64, notified bool) error
}

// TransactionStore defines the transaction record operations used by the ledger protocols.
type TransactionStore interface {
	Insert(ctx context.Context, t models.Transaction) error
	Get(ctx context.Context, id string) (*models.Transaction, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error)
	Count(ctx context.Context, userID string) (int64, error)
}

// payerLoader resolves the paying account inside an atomic unit.
type payerLoader func(ctx context.Context, id string) (*models.Account, error)

// LedgerService implements the transfer and claim protocols.
type LedgerService struct {
	tx       TxRunner
	accounts AccountStore
	txs      TransactionStore
	ids      *IDGenerator
	reward   int64
	cooldown time.Duration
	options
}

// NewLedgerService creates a new LedgerService. reward is the claim amount in
// sats, cooldown the minimum time between two claims of the same user.
func NewLedgerService(
	tx TxRunner,
	accounts AccountStore,
	txs TransactionStore,
	ids *IDGenerator,
	reward int64,
	cooldown time.Duration,
	opts ...Option,
) *LedgerService {
	return &LedgerService{
		tx:       tx,
		accounts: accounts,
		txs:      txs,
		ids:      ids,
		reward:   reward,
		cooldown: cooldown,
		options:  newOptions(opts),
	}
}

// Transfer moves amount from an existing account to toID. An unknown payer
// fails with ErrSenderNotFound. An empty txID gets a generated identifier.
func (svc *LedgerService) Transfer(ctx context.Context, fromID, toID string, amount int64, txID string) (*models.Receipt, error) {
	return svc.transfer(ctx, svc.existingPayer, fromID, toID, amount, txID)
}

// TransferEnsuringSender is Transfer for callers that may act for an account
// which was never provisioned. The payer is created with a zero balance.
func (svc *LedgerService) TransferEnsuringSender(ctx context.Context, fromID, toID string, amount int64, txID string) (*models.Receipt, error) {
	return svc.transfer(ctx, svc.accounts.GetOrCreate, fromID, toID, amount, txID)
}

// TransferWithin runs the strict transfer inside the caller's atomic unit.
// No event is published; the caller does that after its unit commits.
func (svc *LedgerService) TransferWithin(ctx context.Context, fromID, toID string, amount int64, txID string) (*models.Receipt, error) {
	if err := validateTransfer(fromID, toID, amount); err != nil {
		return nil, err
	}
	return svc.transferWithin(ctx, svc.existingPayer, fromID, toID, amount, txID)
}

// TransferWithinEnsuringSender is TransferWithin with the payer provisioned
// like TransferEnsuringSender does.
func (svc *LedgerService) TransferWithinEnsuringSender(ctx context.Context, fromID, toID string, amount int64, txID string) (*models.Receipt, error) {
	if err := validateTransfer(fromID, toID, amount); err != nil {
		return nil, err
	}
	return svc.transferWithin(ctx, svc.accounts.GetOrCreate, fromID, toID, amount, txID)
}

func (svc *LedgerService) existingPayer(ctx context.Context, id string) (*models.Account, error) {
	acc, err := svc.accounts.Get(ctx, id)
	if errors.Is(err, models.ErrUserNotFound) {
		return nil, models.ErrSenderNotFound
	}
	return acc, err
}

func validateTransfer(fromID, toID string, amount int64) error {
	if amount <= 0 {
		return models.ErrInvalidAmount
	}
	if fromID == "" || toID == "" || fromID == models.MintID || toID == models.MintID {
		return models.ErrInvalidArgument
	}
	return nil
}

func (svc *LedgerService) transfer(ctx context.Context, load payerLoader, fromID, toID string, amount int64, txID string) (*models.Receipt, error) {
	if err := validateTransfer(fromID, toID, amount); err != nil {
		return nil, err
	}

	var receipt *models.Receipt
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		receipt, err = svc.transferWithin(ctx, load, fromID, toID, amount, txID)
		return err
	})
	if err != nil {
		logger.Log.Errorw("transfer failed", "from", fromID, "to", toID, "amount", amount, "err", err)
		return nil, err
	}

	svc.publish(ctx, models.LedgerEvent{
		TransactionID: receipt.TxID,
		Timestamp:     receipt.Timestamp,
		FromID:        fromID,
		ToID:          toID,
		Amount:        amount,
		Kind:          models.EventTransfer,
	})
	return receipt, nil
}

// transferWithin checks, debits, credits and records in that order. It must
// run inside an atomic unit so that any failure undoes the earlier steps.
func (svc *LedgerService) transferWithin(ctx context.Context, load payerLoader, fromID, toID string, amount int64, txID string) (*models.Receipt, error) {
	payer, err := load(ctx, fromID)
	if err != nil {
		return nil, err
	}

	if fromID != toID {
		if payer.Balance < amount {
			return nil, models.ErrInsufficientFunds
		}
		if _, err := svc.accounts.AdjustBalance(ctx, fromID, -amount); err != nil {
			return nil, err
		}
		if _, err := svc.accounts.GetOrCreate(ctx, toID); err != nil {
			return nil, err
		}
		if _, err := svc.accounts.AdjustBalance(ctx, toID, amount); err != nil {
			return nil, err
		}
	}

	return svc.record(ctx, txID, fromID, toID, amount)
}

func (svc *LedgerService) record(ctx context.Context, txID, fromID, toID string, amount int64) (*models.Receipt, error) {
	if txID == "" {
		id, err := svc.ids.Next(ctx)
		if err != nil {
			return nil, err
		}
		txID = id
	}

	t := models.Transaction{
		ID:     txID,
		Date:   models.FormatTimestamp(svc.now()),
		FromID: fromID,
		ToID:   toID,
		Amount: amount,
	}
	if err := svc.txs.Insert(ctx, t); err != nil {
		return nil, err
	}
	return &models.Receipt{TxID: t.ID, Timestamp: t.Date}, nil
}

// Claim credits the configured reward to userID, at most once per cooldown.
// A claim inside the cooldown fails with a *models.CooldownError.
func (svc *LedgerService) Claim(ctx context.Context, userID string) (*models.Receipt, error) {
	if userID == "" || userID == models.MintID {
		return nil, models.ErrInvalidArgument
	}

	var receipt *models.Receipt
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		acc, err := svc.accounts.GetOrCreate(ctx, userID)
		if err != nil {
			return err
		}

		now := svc.now()
		if remaining := svc.cooldownRemaining(acc, now); remaining > 0 {
			return &models.CooldownError{Remaining: remaining}
		}

		if _, err := svc.accounts.AdjustBalance(ctx, userID, svc.reward); err != nil {
			return err
		}
		if err := svc.accounts.SetCooldown(ctx, userID, now.UnixMilli(), false); err != nil {
			return err
		}

		receipt, err = svc.record(ctx, "", models.MintID, userID, svc.reward)
		return err
	})
	if err != nil {
		if !errors.Is(err, models.ErrCooldownActive) {
			logger.Log.Errorw("claim failed", "user_id", userID, "err", err)
		}
		return nil, err
	}

	svc.publish(ctx, models.LedgerEvent{
		TransactionID: receipt.TxID,
		Timestamp:     receipt.Timestamp,
		FromID:        models.MintID,
		ToID:          userID,
		Amount:        svc.reward,
		Kind:          models.EventClaim,
	})
	return receipt, nil
}

// CooldownRemaining returns how long acc still has to wait before claiming.
func (svc *LedgerService) CooldownRemaining(acc *models.Account) time.Duration {
	return svc.cooldownRemaining(acc, svc.now())
}

func (svc *LedgerService) cooldownRemaining(acc *models.Account, now time.Time) time.Duration {
	if acc == nil || acc.Cooldown == 0 {
		return 0
	}
	elapsed := now.Sub(time.UnixMilli(acc.Cooldown))
	if elapsed >= svc.cooldown {
		return 0
	}
	return svc.cooldown - elapsed
}

// Reward returns the claim amount in sats.
func (svc *LedgerService) Reward() int64 {
	return svc.reward
}

// Balance returns the balance of userID. Unknown users have a zero balance
// and are not provisioned.
func (svc *LedgerService) Balance(ctx context.Context, userID string) (int64, error) {
	acc, err := svc.accounts.Get(ctx, userID)
	if errors.Is(err, models.ErrUserNotFound) {
		return 0, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to get balance", "user_id", userID, "err", err)
		return 0, err
	}
	return acc.Balance, nil
}

// Account returns the stored account of userID.
func (svc *LedgerService) Account(ctx context.Context, userID string) (*models.Account, error) {
	return svc.accounts.Get(ctx, userID)
}

// History returns one page of userID's transactions, newest first, and the
// total number of pages. Pages start at 1.
func (svc *LedgerService) History(ctx context.Context, userID string, page, pageSize int) ([]models.Transaction, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return nil, 0, fmt.Errorf("%w: page size %d", models.ErrInvalidArgument, pageSize)
	}

	total, err := svc.txs.Count(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count transactions", "user_id", userID, "err", err)
		return nil, 0, err
	}

	list, err := svc.txs.ListByUser(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "user_id", userID, "err", err)
		return nil, 0, err
	}

	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return list, pages, nil
}

// Transaction returns the record with the given id.
func (svc *LedgerService) Transaction(ctx context.Context, id string) (*models.Transaction, error) {
	return svc.txs.Get(ctx, id)
}

// FormatReward renders the claim amount as coins.
func (svc *LedgerService) FormatReward() string {
	return units.FromMinorUnits(svc.reward)
}
