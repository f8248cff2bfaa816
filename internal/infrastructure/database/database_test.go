package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/logger"
)

func TestSupabaseDSN(t *testing.T) {
	dsn, err := SupabaseDSN("https://abcd.supabase.co", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "host=db.abcd.supabase.co port=6543 user=postgres password=s3cret dbname=postgres sslmode=require", dsn)

	dsn, err = SupabaseDSN("https://abcd.supabase.co/", "with space'")
	require.NoError(t, err)
	assert.Contains(t, dsn, `password='with space\''`)

	_, err = SupabaseDSN("not a url", "x")
	assert.Error(t, err)

	_, err = SupabaseDSN("https://abcd.supabase.co", "")
	assert.Error(t, err)
}

func TestDialectPlaceholder(t *testing.T) {
	assert.Equal(t, "$1", DialectPostgres.Placeholder(1))
	assert.Equal(t, "$12", DialectPostgres.Placeholder(12))
	assert.Equal(t, "?", DialectSQLite.Placeholder(3))
}

func TestNewSupabaseClient_MissingConfig(t *testing.T) {
	_, err := NewSupabaseClient("", "key")
	assert.Error(t, err)

	_, err = NewSupabaseClient("https://abcd.supabase.co", "")
	assert.Error(t, err)
}

func TestSQLiteMigrations(t *testing.T) {
	ctx := context.Background()
	client, err := NewSQLiteClient(ctx, filepath.Join(t.TempDir(), "umkm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.HealthCheck(ctx))
	require.NoError(t, RunMigrations(client, logger.Test(t)))
	// idempotent
	require.NoError(t, RunMigrations(client, logger.Test(t)))

	var count int
	require.NoError(t, client.GetDB().QueryRowContext(ctx, `SELECT COUNT(*) FROM umkm`).Scan(&count))
	assert.Equal(t, 8, count)

	require.NoError(t, client.GetDB().QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestNewPostgreSQLClientWithRetry_GivesUp(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	_, err := NewPostgreSQLClientWithRetry(ctx, "host=127.0.0.1 port=1 user=x dbname=x sslmode=disable connect_timeout=1", 2, 10*time.Millisecond, logger.Test(t))
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
