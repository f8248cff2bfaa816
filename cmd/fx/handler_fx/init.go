package handler_fx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/auth"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/config"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/handler"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/logger"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/usecase"
)

var Module = fx.Options(
	fx.Provide(
		handler.NewHealthHandler,
		provideUMKMHandler,
		handler.NewImageHandler,
		handler.NewStatsHandler,
		handler.NewMapHandler,
		handler.NewNavigationHandler,
		handler.NewContactHandler,
		handler.NewAdminHandler,
		provideRouter,
	),
)

func provideUMKMHandler(umkm usecase.UMKMUseCase, admin usecase.AdminUseCase, lggr logger.Logger) *handler.UMKMHandler {
	return handler.NewUMKMHandler(umkm, admin, lggr.Named("umkm_handler"))
}

type routerParams struct {
	fx.In

	Config     *config.Config
	Issuer     *auth.TokenIssuer
	Logger     logger.Logger
	Health     *handler.HealthHandler
	UMKM       *handler.UMKMHandler
	Image      *handler.ImageHandler
	Stats      *handler.StatsHandler
	Map        *handler.MapHandler
	Navigation *handler.NavigationHandler
	Contact    *handler.ContactHandler
	Admin      *handler.AdminHandler
}

func provideRouter(p routerParams) *gin.Engine {
	if p.Config.Server.GinMode != "" {
		gin.SetMode(p.Config.Server.GinMode)
	}
	return handler.NewRouter(handler.Handlers{
		Health:     p.Health,
		UMKM:       p.UMKM,
		Image:      p.Image,
		Stats:      p.Stats,
		Map:        p.Map,
		Navigation: p.Navigation,
		Contact:    p.Contact,
		Admin:      p.Admin,
	}, p.Issuer, p.Config.Server.CORSAllowedOrigins, p.Logger.Named("http"))
}
