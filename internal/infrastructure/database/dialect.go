package database

import (
	"context"
	"database/sql"
	"strconv"
)

// Dialect selects SQL syntax differences between the supported engines
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Placeholder returns the n-th (1-based) bind parameter
func (d Dialect) Placeholder(n int) string {
	if d == DialectPostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// SQLClient is implemented by the direct database clients
type SQLClient interface {
	GetDB() *sql.DB
	Dialect() Dialect
	HealthCheck(ctx context.Context) error
	Close() error
}
