package storage_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/config"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/infrastructure/database"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/infrastructure/storage"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/logger"
)

var Module = fx.Provide(provideImageStorage)

func provideImageStorage(lc fx.Lifecycle, cfg *config.Config, lggr logger.Logger) (repository.ImageStorageRepository, error) {
	lggr = lggr.Named("storage")

	switch cfg.Storage.Backend {
	case config.BackendSupabase:
		client, err := database.NewSupabaseClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)
		if err != nil {
			return nil, err
		}
		lggr.Infow("using Supabase Storage", "bucket", cfg.Storage.Bucket)
		return storage.NewSupabaseImageStorage(client, cfg.Storage.Bucket), nil

	case config.BackendMinIO:
		s, err := storage.NewMinIOImageStorage(storage.MinIOConfig{
			Endpoint:  cfg.Storage.MinIOEndpoint,
			AccessKey: cfg.Storage.MinIOAccessKey,
			SecretKey: cfg.Storage.MinIOSecretKey,
			UseSSL:    cfg.Storage.MinIOUseSSL,
			Bucket:    cfg.Storage.Bucket,
			PublicURL: cfg.Storage.MinIOPublicURL,
		})
		if err != nil {
			return nil, err
		}
		lc.Append(fx.StartHook(func(ctx context.Context) error {
			return s.EnsureBucket(ctx)
		}))
		lggr.Infow("using MinIO storage", "endpoint", cfg.Storage.MinIOEndpoint, "bucket", cfg.Storage.Bucket)
		return s.AsRepository(), nil
	}

	return nil, fmt.Errorf("unknown IMAGE_BACKEND %q", cfg.Storage.Backend)
}
