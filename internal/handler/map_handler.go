package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/usecase"
)

type MapHandler struct {
	mapUseCase usecase.MapUseCase
}

func NewMapHandler(mapUseCase usecase.MapUseCase) *MapHandler {
	return &MapHandler{
		mapUseCase: mapUseCase,
	}
}

// Markers GET /api/map/markers?category=&selected=&lat=&lng=&navLat=&navLng=
func (h *MapHandler) Markers(c *gin.Context) {
	query := model.MarkerQuery{Category: strings.TrimSpace(c.Query("category"))}

	if s := c.Query("selected"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			badRequest(c, "Parameter selected tidak valid")
			return
		}
		query.SelectedID = id
	}

	nav, ok, err := parseLatLng(c, "navLat", "navLng")
	if err != nil {
		respondError(c, err, "")
		return
	}
	if ok {
		query.NavigationTarget = &nav
	}

	loc, ok, err := parseLatLng(c, "lat", "lng")
	if err != nil {
		respondError(c, err, "")
		return
	}
	if ok {
		query.SelectedLocation = &loc
	}

	resp, err := h.mapUseCase.Markers(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "Gagal memuat marker")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Tiles GET /api/map/tiles?style=&dark=
func (h *MapHandler) Tiles(c *gin.Context) {
	dark, _ := strconv.ParseBool(c.DefaultQuery("dark", "false"))
	c.JSON(http.StatusOK, gin.H{
		"layer":  h.mapUseCase.TileLayer(c.Query("style"), dark),
		"styles": h.mapUseCase.TileStyles(),
	})
}
