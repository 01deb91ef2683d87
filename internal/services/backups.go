package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/units"
)

//go:generate mockgen -source=backups.go -destination=backups_mock.go -package=services

// BackupStore defines backup code persistence used by BackupService.
type BackupStore interface {
	Create(ctx context.Context, b models.BackupCode) error
	GetByCode(ctx context.Context, code string) (*models.BackupCode, error)
	DeleteByCode(ctx context.Context, code string) error
	ListByUser(ctx context.Context, userID string) ([]models.BackupCode, error)
}

// BackupService implements wallet backup codes and their redemption.
type BackupService struct {
	tx       TxRunner
	backups  BackupStore
	accounts AccountStore
	txs      TransactionStore
	codes    *IDGenerator
	txIDs    *IDGenerator
	options
}

// NewBackupService creates a new BackupService. codes generates backup codes,
// txIDs the ids of restore transactions.
func NewBackupService(
	tx TxRunner,
	backups BackupStore,
	accounts AccountStore,
	txs TransactionStore,
	codes *IDGenerator,
	txIDs *IDGenerator,
	opts ...Option,
) *BackupService {
	return &BackupService{
		tx:       tx,
		backups:  backups,
		accounts: accounts,
		txs:      txs,
		codes:    codes,
		txIDs:    txIDs,
		options:  newOptions(opts),
	}
}

// CreateCodes tops up userID's outstanding codes to models.MaxBackupCodes and
// returns all of them, oldest first. Existing codes are kept as they are.
func (svc *BackupService) CreateCodes(ctx context.Context, userID string) ([]string, error) {
	if userID == "" || userID == models.MintID {
		return nil, models.ErrInvalidArgument
	}

	var codes []string
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := svc.accounts.GetOrCreate(ctx, userID); err != nil {
			return err
		}

		existing, err := svc.backups.ListByUser(ctx, userID)
		if err != nil {
			return err
		}

		codes = make([]string, 0, models.MaxBackupCodes)
		for _, b := range existing {
			codes = append(codes, b.Code)
		}

		now := svc.now().UnixMilli()
		for i := len(codes); i < models.MaxBackupCodes; i++ {
			code, err := svc.codes.Next(ctx)
			if err != nil {
				return err
			}
			if err := svc.backups.Create(ctx, models.BackupCode{Code: code, UserID: userID, CreatedAt: now}); err != nil {
				return err
			}
			codes = append(codes, code)
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to create backup codes", "user_id", userID, "err", err)
		return nil, err
	}
	return codes, nil
}

// ListCodes returns userID's outstanding codes, oldest first.
func (svc *BackupService) ListCodes(ctx context.Context, userID string) ([]string, error) {
	list, err := svc.backups.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list backup codes", "user_id", userID, "err", err)
		return nil, err
	}

	codes := make([]string, 0, len(list))
	for _, b := range list {
		codes = append(codes, b.Code)
	}
	return codes, nil
}

// Redeem moves the current full balance of the code's owner to newUserID and
// consumes the code. Redeeming one's own code, or the code of an empty
// wallet, consumes the code and fails.
func (svc *BackupService) Redeem(ctx context.Context, code, newUserID string) (int64, *models.Receipt, error) {
	if code == "" || newUserID == "" || newUserID == models.MintID {
		return 0, nil, models.ErrInvalidArgument
	}

	var (
		outcome error
		ownerID string
		amount  int64
		receipt *models.Receipt
	)
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := svc.backups.GetByCode(ctx, code)
		if err != nil {
			return err
		}
		ownerID = b.UserID

		if ownerID == newUserID {
			outcome = models.ErrSelfRestoreNotAllowed
			return svc.backups.DeleteByCode(ctx, code)
		}

		owner, err := svc.accounts.Get(ctx, ownerID)
		if err != nil && !errors.Is(err, models.ErrUserNotFound) {
			return err
		}
		if owner == nil || owner.Balance == 0 {
			outcome = models.ErrEmptyWallet
			return svc.backups.DeleteByCode(ctx, code)
		}
		amount = owner.Balance

		if _, err := svc.accounts.AdjustBalance(ctx, ownerID, -amount); err != nil {
			return err
		}
		if _, err := svc.accounts.GetOrCreate(ctx, newUserID); err != nil {
			return err
		}
		if _, err := svc.accounts.AdjustBalance(ctx, newUserID, amount); err != nil {
			return err
		}

		id, err := svc.txIDs.Next(ctx)
		if err != nil {
			return err
		}
		t := models.Transaction{
			ID:     id,
			Date:   models.FormatTimestamp(svc.now()),
			FromID: ownerID,
			ToID:   newUserID,
			Amount: amount,
		}
		if err := svc.txs.Insert(ctx, t); err != nil {
			return err
		}
		receipt = &models.Receipt{TxID: t.ID, Timestamp: t.Date}

		return svc.backups.DeleteByCode(ctx, code)
	})
	if err == nil {
		err = outcome
	}
	if err != nil {
		logger.Log.Errorw("failed to redeem backup code", "user_id", newUserID, "err", err)
		return 0, nil, err
	}

	svc.publish(ctx, models.LedgerEvent{
		TransactionID: receipt.TxID,
		Timestamp:     receipt.Timestamp,
		FromID:        ownerID,
		ToID:          newUserID,
		Amount:        amount,
		Kind:          models.EventRestore,
	})
	svc.notify(ctx, ownerID, "Wallet restored",
		fmt.Sprintf("A backup code moved %s coins from your wallet to <@%s>.", units.FromMinorUnits(amount), newUserID))

	return amount, receipt, nil
}
