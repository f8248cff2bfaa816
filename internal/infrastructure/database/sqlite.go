package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteClient is a local single-file database, used for development and offline demos
type SQLiteClient struct {
	DB *sql.DB
}

// NewSQLiteClient opens (and creates) the database file
func NewSQLiteClient(ctx context.Context, path string) (*SQLiteClient, error) {
	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteClient{DB: db}, nil
}

// GetDB returns the connection pool
func (sc *SQLiteClient) GetDB() *sql.DB {
	return sc.DB
}

// Dialect returns DialectSQLite
func (sc *SQLiteClient) Dialect() Dialect {
	return DialectSQLite
}

// Close closes the database
func (sc *SQLiteClient) Close() error {
	if sc.DB != nil {
		return sc.DB.Close()
	}
	return nil
}

// HealthCheck pings the database
func (sc *SQLiteClient) HealthCheck(ctx context.Context) error {
	if sc.DB == nil {
		return errors.New("SQLite client is not initialized")
	}
	return sc.DB.PingContext(ctx)
}
