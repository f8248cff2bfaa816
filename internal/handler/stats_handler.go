package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/usecase"
)

// StatsHandler serves the dashboard, statistics page and category list
type StatsHandler struct {
	statsUseCase usecase.StatisticsUseCase
}

func NewStatsHandler(statsUseCase usecase.StatisticsUseCase) *StatsHandler {
	return &StatsHandler{
		statsUseCase: statsUseCase,
	}
}

// Dashboard GET /api/dashboard
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsUseCase.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Gagal memuat dashboard")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Statistics GET /api/statistics
func (h *StatsHandler) Statistics(c *gin.Context) {
	stats, err := h.statsUseCase.Statistics(c.Request.Context())
	if err != nil {
		respondError(c, err, "Gagal memuat statistik")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Categories GET /api/categories
func (h *StatsHandler) Categories(c *gin.Context) {
	categories, err := h.statsUseCase.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Gagal memuat kategori")
		return
	}
	c.JSON(http.StatusOK, categories)
}
