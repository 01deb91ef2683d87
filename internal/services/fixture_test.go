package services_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/repositories"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/services"
)

const (
	testReward   = int64(138889)
	testCooldown = time.Hour
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// fixture wires the services to a migrated SQLite store.
type fixture struct {
	db      *sqlx.DB
	clock   *fakeClock
	tm      *repositories.TxManager
	users   *repositories.UserRepository
	txs     *repositories.TransactionRepository
	bills   *repositories.BillRepository
	backups *repositories.BackupRepository
	cards   *repositories.CardRepository
	ledger  *services.LedgerService
}

func newFixture(t *testing.T, opts ...services.Option) *fixture {
	t.Helper()
	logger.Initialize("error")

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_txlock=immediate",
		filepath.Join(t.TempDir(), "ledger.db"))
	db, err := repositories.Open(context.Background(), repositories.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &fixture{
		db:      db,
		clock:   &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
		tm:      repositories.NewTxManager(db),
		users:   repositories.NewUserRepository(db),
		txs:     repositories.NewTransactionRepository(db),
		bills:   repositories.NewBillRepository(db),
		backups: repositories.NewBackupRepository(db),
		cards:   repositories.NewCardRepository(db),
	}
	f.ledger = services.NewLedgerService(f.tm, f.users, f.txs, services.NewIDGenerator(f.txs),
		testReward, testCooldown, f.options(opts...)...)
	return f
}

func (f *fixture) options(opts ...services.Option) []services.Option {
	return append([]services.Option{services.WithClock(f.clock.Now)}, opts...)
}

func (f *fixture) fund(t *testing.T, userID string, balance int64) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.users.Ensure(ctx, userID))
	require.NoError(t, f.users.SetBalance(ctx, userID, balance))
}

func (f *fixture) balance(t *testing.T, userID string) int64 {
	t.Helper()
	b, err := f.ledger.Balance(context.Background(), userID)
	require.NoError(t, err)
	return b
}

func (f *fixture) txCount(t *testing.T) int64 {
	t.Helper()
	n, err := f.txs.Count(context.Background(), "")
	require.NoError(t, err)
	return n
}
