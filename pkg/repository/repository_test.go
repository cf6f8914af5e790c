package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tubefeed/pkg/domain"
)

// setupTestDB creates in-memory repositories, single connection keeps the in-memory db shared
func setupTestDB(t *testing.T) (repos *Repositories, cleanup func()) {
	t.Helper()
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}
	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	return repos, func() { assert.NoError(t, repos.Close()) }
}

func TestRepositories_Init(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, repos.Ping(ctx))

	var triggers int
	err := repos.DB.GetContext(ctx, &triggers, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'trigger'")
	require.NoError(t, err)
	assert.Equal(t, 3, triggers)

	// schema creation is idempotent
	_, err = repos.DB.ExecContext(ctx, schemaSQL)
	require.NoError(t, err)
}

func TestWithPragmas(t *testing.T) {
	tbl := []struct {
		dsn, want string
	}{
		{":memory:", ":memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)" +
			"&_pragma=synchronous(NORMAL)&_pragma=temp_store(MEMORY)"},
		{"file:x.db?mode=rwc&_pragma=busy_timeout(100)", "file:x.db?mode=rwc&_pragma=busy_timeout(100)" +
			"&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=temp_store(MEMORY)"},
	}
	for _, tt := range tbl {
		assert.Equal(t, tt.want, withPragmas(tt.dsn))
	}
}

// every pooled connection must enforce foreign keys, otherwise cascades depend on which connection runs the delete
func TestRepositories_ForeignKeysOnEveryConnection(t *testing.T) {
	ctx := context.Background()
	repos, err := NewRepositories(ctx, Config{
		DSN:          "file:" + filepath.Join(t.TempDir(), "pool.db") + "?mode=rwc&_txlock=immediate",
		MaxOpenConns: 10,
		MaxIdleConns: 10,
	})
	require.NoError(t, err)
	defer func() { assert.NoError(t, repos.Close()) }()

	f := &domain.FoodFormula{Name: "Jevity", DefaultCalories: domain.IntPtr(360)}
	require.NoError(t, repos.Formula.Create(ctx, f))
	e := &domain.ScheduleTemplateEntry{Timing: domain.MustTimeOfDay("08:00"), FoodFormulaID: &f.ID,
		Nutrients: domain.Nutrients{QuantityML: domain.IntPtr(200)}}
	require.NoError(t, repos.Template.Create(ctx, e))

	// hold a few connections so the following statements run on different ones
	var conns []*sql.Conn
	for range 3 {
		conn, err := repos.DB.Conn(ctx)
		require.NoError(t, err)
		var fk int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
		assert.Equal(t, 1, fk)
		conns = append(conns, conn)
	}
	defer func() {
		for _, c := range conns {
			_ = c.Close()
		}
	}()

	require.NoError(t, repos.Formula.Delete(ctx, f.ID))
	entries, err := repos.Template.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries, "template entries removed with their formula")

	items, err := repos.FeedItem.ListByDate(ctx, domain.MustDate("2026-04-01"))
	require.NoError(t, err)
	assert.Empty(t, items)

	bad := &domain.ScheduleTemplateEntry{Timing: domain.MustTimeOfDay("09:00"), FoodFormulaID: domain.Int64Ptr(f.ID),
		Nutrients: domain.Nutrients{QuantityML: domain.IntPtr(100)}}
	require.ErrorIs(t, repos.Template.Create(ctx, bad), ErrReference)
}

func TestWithRetry(t *testing.T) {
	t.Run("retries lock errors", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errors.New("database is locked (5) (SQLITE_BUSY)")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on other errors", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), func() error {
			calls++
			return fmt.Errorf("feed item 1: %w", ErrNotFound)
		})
		require.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 1, calls)
		var ce *criticalError
		assert.False(t, errors.As(err, &ce), "critical wrapper is removed")
	})
}

func TestCriticalError(t *testing.T) {
	originalErr := ErrNotFound
	critErr := &criticalError{err: originalErr}
	assert.Equal(t, "not found", critErr.Error())
	assert.ErrorIs(t, critErr, errCritical)
	assert.ErrorIs(t, critErr, ErrNotFound)
	assert.True(t, isLockError(errors.New("database table is locked")))
	assert.False(t, isLockError(nil))
}
