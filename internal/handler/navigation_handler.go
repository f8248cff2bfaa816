package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/usecase"
)

type NavigationHandler struct {
	navigationUseCase usecase.NavigationUseCase
}

func NewNavigationHandler(navigationUseCase usecase.NavigationUseCase) *NavigationHandler {
	return &NavigationHandler{
		navigationUseCase: navigationUseCase,
	}
}

// Route GET /api/navigation/route?fromLat=&fromLng=&toLat=&toLng=
func (h *NavigationHandler) Route(c *gin.Context) {
	from, okFrom, err := parseLatLng(c, "fromLat", "fromLng")
	if err != nil {
		respondError(c, err, "")
		return
	}
	to, okTo, err := parseLatLng(c, "toLat", "toLng")
	if err != nil {
		respondError(c, err, "")
		return
	}
	if !okFrom || !okTo {
		badRequest(c, "Parameter fromLat, fromLng, toLat dan toLng wajib diisi")
		return
	}

	route, err := h.navigationUseCase.Route(c.Request.Context(), model.RouteRequest{From: from, To: to})
	if err != nil {
		respondError(c, err, "Gagal menghitung rute")
		return
	}
	c.JSON(http.StatusOK, route)
}
