package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

//go:generate mockgen -source=cards.go -destination=cards_mock.go -package=services

var cardHashPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// CardStore defines card persistence used by CardService.
type CardStore interface {
	Replace(ctx context.Context, c models.Card) error
	GetByOwner(ctx context.Context, ownerID string) (*models.Card, error)
	GetByCode(ctx context.Context, code string) (*models.Card, error)
	GetByHash(ctx context.Context, hash string) (*models.Card, error)
}

// CardTransferer moves coins for a card owner, provisioning the owner if needed.
type CardTransferer interface {
	TransferEnsuringSender(ctx context.Context, fromID, toID string, amount int64, txID string) (*models.Receipt, error)
}

// CardService manages bearer cards and the card-hash payment flow.
type CardService struct {
	tx     TxRunner
	cards  CardStore
	ledger CardTransferer
	codes  *IDGenerator
}

// NewCardService creates a new CardService.
func NewCardService(tx TxRunner, cards CardStore, ledger CardTransferer, codes *IDGenerator) *CardService {
	return &CardService{
		tx:     tx,
		cards:  cards,
		ledger: ledger,
		codes:  codes,
	}
}

// HashCardCode returns the hex SHA-256 of a card code.
func HashCardCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// GetOrCreate returns the active card of ownerID, issuing one if needed.
func (svc *CardService) GetOrCreate(ctx context.Context, ownerID string) (*models.Card, error) {
	if ownerID == "" || ownerID == models.MintID {
		return nil, models.ErrInvalidArgument
	}

	var card *models.Card
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		card, err = svc.cards.GetByOwner(ctx, ownerID)
		if !errors.Is(err, models.ErrCardNotFound) {
			return err
		}
		card, err = svc.issue(ctx, ownerID)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to get card", "owner_id", ownerID, "err", err)
		return nil, err
	}
	return card, nil
}

// Reset replaces the card of ownerID with a new one. The old code stops resolving.
func (svc *CardService) Reset(ctx context.Context, ownerID string) (*models.Card, error) {
	if ownerID == "" || ownerID == models.MintID {
		return nil, models.ErrInvalidArgument
	}

	var card *models.Card
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		card, err = svc.issue(ctx, ownerID)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to reset card", "owner_id", ownerID, "err", err)
		return nil, err
	}
	return card, nil
}

func (svc *CardService) issue(ctx context.Context, ownerID string) (*models.Card, error) {
	code, err := svc.codes.Next(ctx)
	if err != nil {
		return nil, err
	}
	card := models.Card{Code: code, Hash: HashCardCode(code), OwnerID: ownerID}
	if err := svc.cards.Replace(ctx, card); err != nil {
		return nil, err
	}
	return &card, nil
}

// ResolveOwnerByCode returns the owner of the card with the given code.
func (svc *CardService) ResolveOwnerByCode(ctx context.Context, code string) (string, error) {
	card, err := svc.cards.GetByCode(ctx, code)
	if err != nil {
		return "", err
	}
	return card.OwnerID, nil
}

// ResolveOwnerByHash returns the owner of the card whose code hashes to hash.
// A malformed or unknown hash fails with models.ErrUnauthorized.
func (svc *CardService) ResolveOwnerByHash(ctx context.Context, hash string) (string, error) {
	if !cardHashPattern.MatchString(hash) {
		return "", models.ErrUnauthorized
	}

	card, err := svc.cards.GetByHash(ctx, hash)
	if errors.Is(err, models.ErrCardNotFound) {
		return "", models.ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	return card.OwnerID, nil
}

// PayWithCard transfers amount from the owner of the card identified by hash
// to toID. The owner id is returned whenever the card resolved, even if the
// transfer failed.
func (svc *CardService) PayWithCard(ctx context.Context, hash, toID string, amount int64) (string, *models.Receipt, error) {
	ownerID, err := svc.ResolveOwnerByHash(ctx, hash)
	if err != nil {
		logger.Log.Warnw("card payment rejected", "err", err)
		return "", nil, err
	}

	receipt, err := svc.ledger.TransferEnsuringSender(ctx, ownerID, toID, amount, "")
	if err != nil {
		return ownerID, nil, err
	}
	return ownerID, receipt, nil
}
