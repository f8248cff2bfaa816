package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// PostgreSQLClient is a direct PostgreSQL connection
type PostgreSQLClient struct {
	DB *sql.DB
}

// SupabaseDSN builds the pooled connection string for a Supabase project
// (https://xxx.supabase.co -> db.xxx.supabase.co:6543)
func SupabaseDSN(supabaseURL, password string) (string, error) {
	u, err := url.Parse(supabaseURL)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid SUPABASE_URL %q", supabaseURL)
	}
	if password == "" {
		return "", errors.New("SUPABASE_DB_PASSWORD is not set")
	}

	return fmt.Sprintf(
		"host=db.%s port=6543 user=postgres password=%s dbname=postgres sslmode=require",
		u.Hostname(), quoteDSNValue(password),
	), nil
}

func quoteDSNValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// NewPostgreSQLClient opens and pings a PostgreSQL connection
func NewPostgreSQLClient(ctx context.Context, dsn string) (*PostgreSQLClient, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	return &PostgreSQLClient{
		DB: db,
	}, nil
}

// NewPostgreSQLClientWithRetry retries the initial connection, for databases that start
// after the service (docker compose, cold poolers)
func NewPostgreSQLClientWithRetry(ctx context.Context, dsn string, attempts uint, delay time.Duration, lggr *zap.SugaredLogger) (*PostgreSQLClient, error) {
	return retry.DoWithData(func() (*PostgreSQLClient, error) {
		return NewPostgreSQLClient(ctx, dsn)
	},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			lggr.Warnw("PostgreSQL connection failed, retrying", "attempt", attempt+1, "err", err)
		}),
	)
}

// GetDB returns the connection pool
func (pc *PostgreSQLClient) GetDB() *sql.DB {
	return pc.DB
}

// Dialect returns DialectPostgres
func (pc *PostgreSQLClient) Dialect() Dialect {
	return DialectPostgres
}

// Close closes the connection pool
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}

// HealthCheck pings the database
func (pc *PostgreSQLClient) HealthCheck(ctx context.Context) error {
	if pc.DB == nil {
		return errors.New("PostgreSQL client is not initialized")
	}
	return pc.DB.PingContext(ctx)
}
