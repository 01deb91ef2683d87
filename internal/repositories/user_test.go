package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

func TestUserRepository_GetOrCreate(t *testing.T) {
	db := setupSQLite(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, "u1")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.ErrorIs(t, err, models.ErrNotFound)

	acc, err := repo.GetOrCreate(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", acc.ID)
	assert.Equal(t, int64(0), acc.Balance)
	assert.False(t, acc.Notified)
	assert.Nil(t, acc.Username)

	// Second call does not reset the row.
	require.NoError(t, repo.SetBalance(ctx, "u1", 42))
	acc, err = repo.GetOrCreate(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), acc.Balance)
}

func TestUserRepository_AdjustBalance(t *testing.T) {
	db := setupSQLite(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.AdjustBalance(ctx, "ghost", 10)
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	require.NoError(t, repo.Ensure(ctx, "u1"))

	balance, err := repo.AdjustBalance(ctx, "u1", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	balance, err = repo.AdjustBalance(ctx, "u1", -40)
	require.NoError(t, err)
	assert.Equal(t, int64(60), balance)

	_, err = repo.AdjustBalance(ctx, "u1", -61)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)

	acc, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(60), acc.Balance)
}

func TestUserRepository_SetBalanceRejectsNegative(t *testing.T) {
	db := setupSQLite(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Ensure(ctx, "u1"))
	err := repo.SetBalance(ctx, "u1", -1)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)

	assert.ErrorIs(t, repo.SetBalance(ctx, "ghost", 1), models.ErrUserNotFound)
}

func TestUserRepository_AdjustBalanceConcurrency(t *testing.T) {
	db := setupSQLite(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Ensure(ctx, "u1"))
	require.NoError(t, repo.SetBalance(ctx, "u1", 50))

	const numGoroutines = 100
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			_, _ = repo.AdjustBalance(ctx, "u1", -1)
		}()
	}
	wg.Wait()

	acc, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), acc.Balance)
}

func TestUserRepository_CooldownAndReminders(t *testing.T) {
	db := setupSQLite(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Ensure(ctx, "u1"))
	require.NoError(t, repo.Ensure(ctx, "u2"))
	require.NoError(t, repo.SetCooldown(ctx, "u1", 1000, false))
	require.NoError(t, repo.SetCooldown(ctx, "u2", 5000, false))

	ready, err := repo.ListClaimReady(ctx, 2000, 10)
	require.NoError(t, err)
	require.Len(t, ready, 1)
	assert.Equal(t, "u1", ready[0].ID)

	require.NoError(t, repo.SetNotified(ctx, "u1", true))
	ready, err = repo.ListClaimReady(ctx, 2000, 10)
	require.NoError(t, err)
	assert.Empty(t, ready)

	assert.ErrorIs(t, repo.SetCooldown(ctx, "ghost", 1, false), models.ErrUserNotFound)
}

func TestUserRepository_Credentials(t *testing.T) {
	db := setupSQLite(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Ensure(ctx, "u1"))
	require.NoError(t, repo.Ensure(ctx, "u2"))

	require.NoError(t, repo.UpdateCredentials(ctx, "u1", "alice", "hash"))
	acc, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", acc.ID)
	require.NotNil(t, acc.PasswordHash)
	assert.Equal(t, "hash", *acc.PasswordHash)

	err = repo.UpdateCredentials(ctx, "u2", "alice", "other")
	assert.ErrorIs(t, err, models.ErrUsernameTaken)

	_, err = repo.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserRepository_TotalBalance(t *testing.T) {
	db := setupSQLite(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	total, err := repo.TotalBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	require.NoError(t, repo.Ensure(ctx, "u1"))
	require.NoError(t, repo.Ensure(ctx, "u2"))
	require.NoError(t, repo.SetBalance(ctx, "u1", 7))
	require.NoError(t, repo.SetBalance(ctx, "u2", 8))

	total, err = repo.TotalBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
}
