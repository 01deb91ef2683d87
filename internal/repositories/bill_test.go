package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

func TestBillRepository_Lifecycle(t *testing.T) {
	db := setupSQLite(t)
	repo := NewBillRepository(db)
	ctx := context.Background()

	b := models.Bill{ID: "b1", FromID: "payer", ToID: "payee", Amount: 100, Expiry: 5000, CreatedAt: 1000}
	require.NoError(t, repo.Create(ctx, b))
	assert.ErrorIs(t, repo.Create(ctx, b), models.ErrDuplicateID)

	got, err := repo.Get(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, b, *got)

	ok, err := repo.Exists(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Delete(ctx, "b1"))
	assert.ErrorIs(t, repo.Delete(ctx, "b1"), models.ErrBillNotFound)

	_, err = repo.Get(ctx, "b1")
	assert.ErrorIs(t, err, models.ErrBillNotFound)
}

func TestBillRepository_ListByUser(t *testing.T) {
	db := setupSQLite(t)
	repo := NewBillRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, models.Bill{ID: "b1", FromID: "u1", ToID: "u2", Amount: 1, Expiry: 30}))
	require.NoError(t, repo.Create(ctx, models.Bill{ID: "b2", FromID: "u1", ToID: "u3", Amount: 1, Expiry: 10}))
	require.NoError(t, repo.Create(ctx, models.Bill{ID: "b3", FromID: "", ToID: "u1", Amount: 1, Expiry: 20}))

	asPayer, err := repo.ListByUser(ctx, "u1", models.BillRolePayer, 10, 0)
	require.NoError(t, err)
	require.Len(t, asPayer, 2)
	assert.Equal(t, "b2", asPayer[0].ID)
	assert.Equal(t, "b1", asPayer[1].ID)

	asPayee, err := repo.ListByUser(ctx, "u1", models.BillRolePayee, 10, 0)
	require.NoError(t, err)
	require.Len(t, asPayee, 1)
	assert.Equal(t, "b3", asPayee[0].ID)

	page2, err := repo.ListByUser(ctx, "u1", models.BillRolePayer, 1, 1)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "b1", page2[0].ID)
}

func TestBillRepository_ListExpired(t *testing.T) {
	db := setupSQLite(t)
	repo := NewBillRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, models.Bill{ID: "old", ToID: "u", Amount: 1, Expiry: 100}))
	require.NoError(t, repo.Create(ctx, models.Bill{ID: "edge", ToID: "u", Amount: 1, Expiry: 200}))
	require.NoError(t, repo.Create(ctx, models.Bill{ID: "fresh", ToID: "u", Amount: 1, Expiry: 300}))

	expired, err := repo.ListExpired(ctx, 200, 10)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "old", expired[0].ID)
}
