package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/auth"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/middleware"
)

// Handlers groups every HTTP handler mounted by NewRouter
type Handlers struct {
	Health     *HealthHandler
	UMKM       *UMKMHandler
	Image      *ImageHandler
	Stats      *StatsHandler
	Map        *MapHandler
	Navigation *NavigationHandler
	Contact    *ContactHandler
	Admin      *AdminHandler
}

// NewRouter builds the gin engine with middleware and the /api routes
func NewRouter(h Handlers, issuer *auth.TokenIssuer, corsOrigins string, lggr *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceID())
	r.Use(middleware.RequestLogger(lggr))
	r.Use(middleware.CORS(corsOrigins))

	requireToken := middleware.TokenAuth(issuer)

	api := r.Group("/api")
	api.GET("/health", h.Health.Health)
	api.GET("/dashboard", h.Stats.Dashboard)
	api.GET("/statistics", h.Stats.Statistics)
	api.GET("/categories", h.Stats.Categories)

	umkm := api.Group("/umkm")
	umkm.GET("", h.UMKM.List)
	umkm.GET("/nearby", h.UMKM.Nearby)
	umkm.GET("/:id", h.UMKM.GetDetail)
	umkm.POST("", requireToken, middleware.RequireAdmin(), h.UMKM.Create)
	umkm.PUT("/:id", requireToken, middleware.RequireEditorOf("id"), h.UMKM.Update)
	umkm.POST("/:id/verify-password", h.UMKM.VerifyPassword)
	umkm.POST("/update-image", requireToken, h.Image.UpdateImage)

	mapGroup := api.Group("/map")
	mapGroup.GET("/markers", h.Map.Markers)
	mapGroup.GET("/tiles", h.Map.Tiles)

	api.GET("/navigation/route", h.Navigation.Route)

	api.POST("/contact", h.Contact.Submit)
	api.GET("/contact", requireToken, middleware.RequireAdmin(), h.Contact.List)

	api.POST("/admin/login", h.Admin.Login)

	return r
}
