package routing_fx

import (
	"context"

	"go.uber.org/fx"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/config"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/infrastructure/firestore"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/infrastructure/maps"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/logger"
	repoimpl "github.com/Marcellinus08/UMKM-Tasikmalaya/internal/repository"
)

var Module = fx.Provide(
	provideRouteProvider,
	provideRouteCache,
)

func provideRouteProvider(cfg *config.Config) repository.RouteProvider {
	return maps.NewOSRMRouteProvider(cfg.Routing.OSRMBaseURL)
}

func provideRouteCache(lc fx.Lifecycle, cfg *config.Config, lggr logger.Logger) (repository.RouteCacheRepository, error) {
	lggr = lggr.Named("route_cache")

	if cfg.Routing.FirestoreProjectID == "" {
		lggr.Infow("using in-memory route cache")
		return repoimpl.NewMemoryRouteCacheRepository(), nil
	}

	client, err := firestore.NewFirestoreClient(context.Background(), cfg.Routing.FirestoreProjectID, cfg.Routing.CredentialsFile, lggr)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(client.Close))
	return repoimpl.NewFirestoreRouteCacheRepository(client.GetClient()), nil
}
