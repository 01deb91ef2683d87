package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/services"
)

func newCardService(f *fixture) *services.CardService {
	return services.NewCardService(f.tm, f.cards, f.ledger, services.NewCodeGenerator(f.cards))
}

func TestHashCardCode(t *testing.T) {
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		services.HashCardCode("hello"))
}

func TestCardService_GetOrCreateAndReset(t *testing.T) {
	f := newFixture(t)
	svc := newCardService(f)
	ctx := context.Background()

	card, err := svc.GetOrCreate(ctx, "U1")
	require.NoError(t, err)
	assert.Regexp(t, hexCode, card.Code)
	assert.Equal(t, services.HashCardCode(card.Code), card.Hash)
	assert.Equal(t, "U1", card.OwnerID)

	same, err := svc.GetOrCreate(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, card.Code, same.Code)

	owner, err := svc.ResolveOwnerByCode(ctx, card.Code)
	require.NoError(t, err)
	assert.Equal(t, "U1", owner)

	reset, err := svc.Reset(ctx, "U1")
	require.NoError(t, err)
	assert.NotEqual(t, card.Code, reset.Code)

	_, err = svc.ResolveOwnerByCode(ctx, card.Code)
	assert.ErrorIs(t, err, models.ErrCardNotFound)
	_, err = svc.ResolveOwnerByHash(ctx, card.Hash)
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	owner, err = svc.ResolveOwnerByHash(ctx, reset.Hash)
	require.NoError(t, err)
	assert.Equal(t, "U1", owner)

	_, err = svc.GetOrCreate(ctx, "")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestCardService_ResolveOwnerByHashRejectsMalformed(t *testing.T) {
	f := newFixture(t)
	svc := newCardService(f)

	for _, hash := range []string{"", "abc", "ZZ" + services.HashCardCode("x")[2:], services.HashCardCode("x") + "0"} {
		_, err := svc.ResolveOwnerByHash(context.Background(), hash)
		assert.ErrorIs(t, err, models.ErrUnauthorized, hash)
	}
}

func TestCardService_PayWithCard(t *testing.T) {
	f := newFixture(t)
	svc := newCardService(f)
	ctx := context.Background()
	f.fund(t, "OWNER", 100)

	card, err := svc.GetOrCreate(ctx, "OWNER")
	require.NoError(t, err)

	owner, receipt, err := svc.PayWithCard(ctx, card.Hash, "SHOP", 60)
	require.NoError(t, err)
	assert.Equal(t, "OWNER", owner)
	assert.NotEmpty(t, receipt.TxID)
	assert.Equal(t, int64(40), f.balance(t, "OWNER"))
	assert.Equal(t, int64(60), f.balance(t, "SHOP"))

	owner, _, err = svc.PayWithCard(ctx, card.Hash, "SHOP", 60)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
	assert.Equal(t, "OWNER", owner)

	owner, _, err = svc.PayWithCard(ctx, services.HashCardCode("forged"), "SHOP", 1)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.Empty(t, owner)
}
