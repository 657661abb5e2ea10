package db

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectAndMigrate_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cuotas.db")

	database, err := Connect("sqlite", path)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, RunMigrations(database))
	// Second run is a no-op.
	require.NoError(t, RunMigrations(database))

	var count int
	require.NoError(t, database.Get(&count, `SELECT COUNT(*) FROM subscriptions`))
	assert.Equal(t, 0, count)

	exists, err := Exists(context.Background(), database,
		`SELECT EXISTS(SELECT 1 FROM subscriptions WHERE id = ?)`, 1)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunMigrations_UnknownDriver(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	err = RunMigrations(sqlx.NewDb(sqlDB, "sqlmock"))
	assert.Error(t, err)
}

func TestHandle_OpensOnce(t *testing.T) {
	var calls int32
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	want := sqlx.NewDb(sqlDB, "sqlmock")

	h := NewHandleFunc(func() (*sqlx.DB, error) {
		atomic.AddInt32(&calls, 1)
		return want, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := h.Get(context.Background())
			assert.NoError(t, err)
			assert.Same(t, want, got)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	require.NoError(t, h.Close())
}

func TestHandle_SharesFailure(t *testing.T) {
	var calls int32
	boom := errors.New("disk full")
	h := NewHandleFunc(func() (*sqlx.DB, error) {
		atomic.AddInt32(&calls, 1)
		return nil, boom
	})

	_, err1 := h.Get(context.Background())
	_, err2 := h.Get(context.Background())
	assert.ErrorIs(t, err1, boom)
	assert.ErrorIs(t, err2, boom)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestHandle_CloseBeforeOpen(t *testing.T) {
	h := NewHandleFunc(func() (*sqlx.DB, error) {
		t.Fatal("open must not run after Close")
		return nil, nil
	})

	require.NoError(t, h.Close())
	_, err := h.Get(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestHandle_CanceledContext(t *testing.T) {
	h := NewHandleFunc(func() (*sqlx.DB, error) { return nil, nil })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Get(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExists(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	database := sqlx.NewDb(sqlDB, "sqlmock")
	defer database.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM subscriptions WHERE id = ?)`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := Exists(context.Background(), database, `SELECT EXISTS(SELECT 1 FROM subscriptions WHERE id = ?)`, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}
