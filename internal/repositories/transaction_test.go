package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

func record(id, date, from, to string, amount int64) models.Transaction {
	return models.Transaction{ID: id, Date: date, FromID: from, ToID: to, Amount: amount}
}

func TestTransactionRepository_InsertStrict(t *testing.T) {
	db := setupSQLite(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, record("t1", "2025-01-01T00:00:00.000Z", "a", "b", 10)))

	err := repo.Insert(ctx, record("t1", "2025-01-02T00:00:00.000Z", "a", "b", 99))
	assert.ErrorIs(t, err, models.ErrDuplicateID)

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Amount)

	n, err := repo.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestTransactionRepository_Upsert(t *testing.T) {
	db := setupSQLite(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, record("t1", "2025-01-01T00:00:00.000Z", "a", "b", 10)))
	require.NoError(t, repo.Upsert(ctx, record("t1", "2025-01-02T00:00:00.000Z", "a", "c", 20)))

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "c", got.ToID)
	assert.Equal(t, int64(20), got.Amount)

	n, err := repo.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestTransactionRepository_GetMissing(t *testing.T) {
	db := setupSQLite(t)
	repo := NewTransactionRepository(db)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, models.ErrTransactionNotFound)

	ok, err := repo.Exists(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTransactionRepository_ListByUser(t *testing.T) {
	db := setupSQLite(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		date := fmt.Sprintf("2025-01-0%dT00:00:00.000Z", i+1)
		require.NoError(t, repo.Insert(ctx, record(fmt.Sprintf("t%d", i), date, "a", "b", int64(i+1))))
	}
	require.NoError(t, repo.Insert(ctx, record("other", "2025-02-01T00:00:00.000Z", "c", "d", 1)))

	page, err := repo.ListByUser(ctx, "b", 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "t4", page[0].ID)
	assert.Equal(t, "t3", page[1].ID)

	page, err = repo.ListByUser(ctx, "a", 2, 4)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "t0", page[0].ID)

	n, err := repo.Count(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestTransactionRepository_Deduplicate(t *testing.T) {
	db := setupSQLite(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	date := "2025-01-01T00:00:00.000Z"
	require.NoError(t, repo.Insert(ctx, record("first", date, "a", "b", 10)))
	require.NoError(t, repo.Insert(ctx, record("second", date, "a", "b", 10)))
	require.NoError(t, repo.Insert(ctx, record("third", date, "c", "d", 10)))
	require.NoError(t, repo.Insert(ctx, record("fourth", date, "c", "d", 10)))
	require.NoError(t, repo.Insert(ctx, record("distinct", date, "a", "b", 11)))

	// Scoped pass only touches rows of "a".
	removed, err := repo.Deduplicate(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.Get(ctx, "first")
	assert.NoError(t, err)
	_, err = repo.Get(ctx, "second")
	assert.ErrorIs(t, err, models.ErrTransactionNotFound)

	removed, err = repo.Deduplicate(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	countOnce, err := repo.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), countOnce)

	removed, err = repo.Deduplicate(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)

	countTwice, err := repo.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, countOnce, countTwice)
}

func TestTransactionRepository_DeleteOlderThanAndSum(t *testing.T) {
	db := setupSQLite(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, record("old", "2024-01-01T00:00:00.000Z", models.MintID, "a", 5)))
	require.NoError(t, repo.Insert(ctx, record("new", "2025-06-01T00:00:00.000Z", models.MintID, "a", 7)))

	minted, err := repo.SumFrom(ctx, models.MintID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), minted)

	removed, err := repo.DeleteOlderThan(ctx, "2025-01-01T00:00:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	ok, err := repo.Exists(ctx, "new")
	require.NoError(t, err)
	assert.True(t, ok)
}
