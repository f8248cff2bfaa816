package usecase_fx

import (
	"go.uber.org/fx"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/auth"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/cache"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/config"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/service"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/logger"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/usecase"
)

var Module = fx.Options(
	fx.Provide(
		provideTokenIssuer,
		provideCatalog,
		service.NewStatisticsService,
		service.NewMapOverlayService,
		provideUMKMUseCase,
		provideAdminUseCase,
		provideImageUseCase,
		provideNavigationUseCase,
		provideContactUseCase,
		usecase.NewStatisticsUseCase,
		usecase.NewMapUseCase,
	),
)

func provideTokenIssuer(cfg *config.Config, lggr logger.Logger) (*auth.TokenIssuer, error) {
	if cfg.Admin.TokenSecret == "" {
		lggr.Warnw("ADMIN_TOKEN_SECRET is not set, tokens will not survive a restart")
	}
	return auth.NewTokenIssuer(cfg.Admin.TokenSecret, cfg.Admin.TokenTTL)
}

func provideCatalog(cfg *config.Config, repo repository.UMKMRepository) *usecase.UMKMCatalog {
	return usecase.NewUMKMCatalog(repo, cache.NewListCache(cfg.Directory.ListCacheTTL))
}

func provideUMKMUseCase(cfg *config.Config, repo repository.UMKMRepository, catalog *usecase.UMKMCatalog, lggr logger.Logger) usecase.UMKMUseCase {
	return usecase.NewUMKMUseCase(repo, catalog, cfg.Location(), lggr.Named("umkm_usecase"))
}

func provideAdminUseCase(cfg *config.Config, repo repository.UMKMRepository, issuer *auth.TokenIssuer, lggr logger.Logger) usecase.AdminUseCase {
	if !cfg.AdminEnabled() {
		lggr.Warnw("ADMIN_PASSWORD is not set, admin login is disabled")
	}
	return usecase.NewAdminUseCase(cfg.Admin.Password, repo, issuer, lggr.Named("admin_usecase"))
}

func provideImageUseCase(repo repository.UMKMRepository, storage repository.ImageStorageRepository, catalog *usecase.UMKMCatalog, lggr logger.Logger) usecase.ImageUseCase {
	return usecase.NewImageUseCase(repo, storage, catalog, lggr.Named("image_usecase"))
}

func provideNavigationUseCase(cfg *config.Config, provider repository.RouteProvider, routeCache repository.RouteCacheRepository, lggr logger.Logger) usecase.NavigationUseCase {
	return usecase.NewNavigationUseCase(provider, routeCache, cfg.Routing.CacheTTL, lggr.Named("navigation_usecase"))
}

func provideContactUseCase(repo repository.ContactRepository, notifier repository.ContactNotifierRepository, lggr logger.Logger) usecase.ContactUseCase {
	return usecase.NewContactUseCase(repo, notifier, lggr.Named("contact_usecase"))
}
