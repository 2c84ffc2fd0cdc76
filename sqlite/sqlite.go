// Package sqlite provides SQLite-based storage implementations for wordma services.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/fwojciec/wordma"
	"github.com/ncruces/go-sqlite3"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// DB represents a SQLite database connection.
//
// The connection is opened lazily on first use and shared by every service
// built on the DB until Close is called.
type DB struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Path returns the database path.
func (db *DB) Path() string {
	return db.path
}

// Open opens the database connection and migrates the schema if needed.
// Calling Open is optional; every query opens the database on demand.
func (db *DB) Open() error {
	_, err := db.conn(context.Background())
	return err
}

// Close closes the database connection.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.db == nil {
		return nil
	}
	err := db.db.Close()
	db.db = nil
	return err
}

// conn returns the shared connection, opening it on first use.
// Failures are reported as EUNAVAILABLE and retried on the next call.
func (db *DB) conn(ctx context.Context) (*sql.DB, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.db != nil {
		return db.db, nil
	}

	conn, err := open(ctx, db.path)
	if err != nil {
		return nil, wordma.Errorf(wordma.EUNAVAILABLE, "database %q unavailable: %v", db.path, err)
	}
	db.db = conn
	return conn, nil
}

func open(ctx context.Context, path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait up to 5 seconds on lock contention instead of failing immediately.
	if _, err := conn.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL mode is not supported for in-memory databases.
	if path != ":memory:" {
		if _, err := conn.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := migrate(ctx, conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return conn, nil
}

// migrate applies the embedded migrations that have not run yet.
func migrate(ctx context.Context, conn *sql.DB) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, conn, fsys)
	if err != nil {
		return err
	}
	_, err = provider.Up(ctx)
	return err
}

// Row is the result of QueryRowContext. It carries the error from opening
// the database so callers see it when they Scan.
type Row struct {
	row *sql.Row
	err error
}

// Scan copies the columns of the row into dest.
func (r *Row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return r.row.Scan(dest...)
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *Row {
	conn, err := db.conn(ctx)
	if err != nil {
		return &Row{err: err}
	}
	return &Row{row: conn.QueryRowContext(ctx, query, args...)}
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	conn, err := db.conn(ctx)
	if err != nil {
		return nil, err
	}
	return conn.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	conn, err := db.conn(ctx)
	if err != nil {
		return nil, err
	}
	return conn.ExecContext(ctx, query, args...)
}

// uniqueViolation reports whether err is a UNIQUE constraint failure on the
// given table column, e.g. "site.name".
func uniqueViolation(err error, column string) bool {
	var serr *sqlite3.Error
	if !errors.As(err, &serr) || serr.ExtendedCode() != sqlite3.CONSTRAINT_UNIQUE {
		return false
	}
	return strings.Contains(serr.Error(), column)
}
