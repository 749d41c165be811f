// Package sqlite implements the store ports on top of an embedded SQLite
// database. The default DSN is in-memory, so state is lost on restart just
// like the memory adapter.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

//go:embed schema.sql
var schema string

// Compile-time check that DB implements ports.HealthChecker.
var _ ports.HealthChecker = (*DB)(nil)

// DB owns the connection shared by the task and user stores.
type DB struct {
	db *sql.DB
}

// Open opens the database at dsn and applies the schema.
func Open(ctx context.Context, dsn string) (*DB, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Every connection to ":memory:" gets its own database, and SQLite
	// serializes writers anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close releases the underlying connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Name implements ports.HealthChecker.
func (d *DB) Name() string { return "sqlite" }

// HealthCheck implements ports.HealthChecker.
func (d *DB) HealthCheck(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging sqlite: %w", err)
	}
	return nil
}

// TaskStore returns the task store backed by this database.
func (d *DB) TaskStore() *TaskStore {
	return &TaskStore{db: d.db, now: time.Now}
}

// UserStore returns the user store backed by this database.
func (d *DB) UserStore() *UserStore {
	return &UserStore{db: d.db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func isUniqueViolation(err error) bool {
	var se *sqlitedriver.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}
