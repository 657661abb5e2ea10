package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var ErrClosed = errors.New("store closed")

//go:embed migrations
var migrationsFS embed.FS

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Connect opens and pings a database for driver ("sqlite" or "postgres").
// SQLite paths get WAL, foreign keys and a busy timeout.
func Connect(driver, databaseURL string) (*sqlx.DB, error) {
	dsn := databaseURL
	if driver == "sqlite" {
		dsn = sqliteDSN(databaseURL)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == "sqlite" {
		// One writer keeps SQLITE_BUSY out of the request path.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func sqliteDSN(path string) string {
	if path == ":memory:" {
		return "file::memory:?_pragma=foreign_keys(1)"
	}
	return "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// RunMigrations applies the embedded migrations for db's driver.
func RunMigrations(db *sqlx.DB) error {
	var (
		driver database.Driver
		err    error
	)
	name := db.DriverName()
	switch name {
	case "postgres":
		driver, err = postgres.WithInstance(db.DB, &postgres.Config{})
	case "sqlite":
		driver, err = sqlite.WithInstance(db.DB, &sqlite.Config{})
	default:
		return fmt.Errorf("no migrations for driver %q", name)
	}
	if err != nil {
		return fmt.Errorf("failed to create %s migration driver: %w", name, err)
	}

	src, err := iofs.New(migrationsFS, "migrations/"+name)
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, name, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Handle opens the store lazily. The first Get connects and migrates;
// every other caller, concurrent or later, receives that same result.
type Handle struct {
	once sync.Once
	open func() (*sqlx.DB, error)
	db   *sqlx.DB
	err  error
}

func NewHandle(driver, databaseURL string) *Handle {
	return NewHandleFunc(func() (*sqlx.DB, error) {
		db, err := Connect(driver, databaseURL)
		if err != nil {
			return nil, err
		}
		if err := RunMigrations(db); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	})
}

func NewHandleFunc(open func() (*sqlx.DB, error)) *Handle {
	return &Handle{open: open}
}

func (h *Handle) Get(ctx context.Context) (*sqlx.DB, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h.once.Do(func() {
		h.db, h.err = h.open()
	})
	return h.db, h.err
}

// Close releases an opened store. A Handle that was never opened is
// marked closed so later Get calls fail instead of connecting.
func (h *Handle) Close() error {
	h.once.Do(func() {
		h.err = ErrClosed
	})
	if h.db == nil {
		return nil
	}
	return h.db.Close()
}

func Exists(ctx context.Context, db *sqlx.DB, query string, args ...interface{}) (bool, error) {
	var exists bool
	err := db.GetContext(ctx, &exists, db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return exists, err
}
