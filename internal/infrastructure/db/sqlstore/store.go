package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DriverFor picks the sql driver from the DSN scheme: postgres:// URLs use
// lib/pq, anything else is treated as a SQLite DSN (file path, file: URI, or
// :memory:).
func DriverFor(databaseURL string) string {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// Open connects to the event store. SQLite is limited to a single connection
// so writes serialize through the driver instead of failing with
// "database is locked".
func Open(databaseURL string) (*sql.DB, string, error) {
	driver := DriverFor(databaseURL)
	db, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	return db, driver, nil
}

// InitSchema creates the events table if it does not exist. One row per
// event, id as primary key; the primary-key constraint is what enforces the
// no-duplicate-id invariant.
func InitSchema(ctx context.Context, db *sql.DB, driver string) error {
	schema := schemaSQLite
	if driver == DriverPostgres {
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}
