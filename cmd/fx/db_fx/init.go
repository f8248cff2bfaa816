package db_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/config"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/handler"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/infrastructure/database"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/logger"
	repoimpl "github.com/Marcellinus08/UMKM-Tasikmalaya/internal/repository"
)

var Module = fx.Provide(
	provideBackend,
	func(b *Backend) repository.UMKMRepository { return b.UMKM },
	func(b *Backend) repository.ContactRepository { return b.Contact },
	func(b *Backend) handler.HealthChecker { return b.Health },
)

// Backend is the selected data store with its repositories
type Backend struct {
	UMKM    repository.UMKMRepository
	Contact repository.ContactRepository
	Health  handler.HealthChecker
}

func provideBackend(lc fx.Lifecycle, cfg *config.Config, lggr logger.Logger) (*Backend, error) {
	lggr = lggr.Named("database")

	switch cfg.Database.Backend {
	case config.BackendSupabase:
		client, err := database.NewSupabaseClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)
		if err != nil {
			return nil, err
		}
		lggr.Infow("using Supabase REST backend", "url", cfg.Supabase.URL)
		return &Backend{
			UMKM:    repoimpl.NewSupabaseUMKMRepository(client),
			Contact: repoimpl.NewSupabaseContactRepository(client),
			Health:  client,
		}, nil

	case config.BackendPostgres, config.BackendSQLite:
		client, err := openSQL(cfg, lggr)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.StopHook(client.Close))

		if cfg.Database.AutoMigrate || cfg.Database.Backend == config.BackendSQLite {
			if err := database.RunMigrations(client, lggr); err != nil {
				_ = client.Close()
				return nil, err
			}
		}
		return &Backend{
			UMKM:    repoimpl.NewSQLUMKMRepository(client),
			Contact: repoimpl.NewSQLContactRepository(client),
			Health:  client,
		}, nil
	}

	return nil, fmt.Errorf("unknown DATA_BACKEND %q", cfg.Database.Backend)
}

func openSQL(cfg *config.Config, lggr logger.Logger) (database.SQLClient, error) {
	ctx := context.Background()

	if cfg.Database.Backend == config.BackendSQLite {
		lggr.Infow("using SQLite backend", "path", cfg.Database.SQLitePath)
		return database.NewSQLiteClient(ctx, cfg.Database.SQLitePath)
	}

	dsn := cfg.Database.URL
	if dsn == "" {
		var err error
		if dsn, err = database.SupabaseDSN(cfg.Supabase.URL, cfg.Supabase.DBPassword); err != nil {
			return nil, err
		}
	}
	lggr.Infow("using PostgreSQL backend", "attempts", cfg.Database.ConnectAttempts)
	return database.NewPostgreSQLClientWithRetry(ctx, dsn, cfg.Database.ConnectAttempts, cfg.Database.ConnectDelay, lggr)
}
