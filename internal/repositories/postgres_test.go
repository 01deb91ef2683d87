package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

// TestPostgresDialect runs the core statements against a real Postgres to keep
// both migration sets and the rebinding of placeholders honest.
func TestPostgresDialect(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer container.Terminate(ctx)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := Open(ctx, DriverPostgres, dsn)
	require.NoError(t, err)
	defer db.Close()

	users := NewUserRepository(db)
	txs := NewTransactionRepository(db)
	ips := NewIPRepository(db)
	tm := NewTxManager(db)

	require.NoError(t, users.Ensure(ctx, "u1"))
	require.NoError(t, users.Ensure(ctx, "u1"))

	balance, err := users.AdjustBalance(ctx, "u1", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	_, err = users.AdjustBalance(ctx, "u1", -101)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)

	err = tm.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := users.AdjustBalance(ctx, "u1", -50); err != nil {
			return err
		}
		return txs.Insert(ctx, models.Transaction{ID: "t1", Date: "2025-01-01T00:00:00.000Z", FromID: "u1", ToID: "u2", Amount: 50})
	})
	require.NoError(t, err)

	err = txs.Insert(ctx, models.Transaction{ID: "t1", Date: "2025-01-01T00:00:00.000Z", FromID: "u1", ToID: "u2", Amount: 50})
	assert.ErrorIs(t, err, models.ErrDuplicateID)

	require.NoError(t, txs.Insert(ctx, models.Transaction{ID: "t2", Date: "2025-01-01T00:00:00.000Z", FromID: "u1", ToID: "u2", Amount: 50}))
	removed, err := txs.Deduplicate(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	total, err := users.TotalBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(50), total)

	n, err := ips.Hit(ctx, "ip", 10_000, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = ips.Hit(ctx, "ip", 10_100, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	assert.NoError(t, NewMaintenanceRepository(db).Checkpoint(ctx))
}
