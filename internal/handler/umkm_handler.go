package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/usecase"
)

const defaultNearbyRadiusKm = 2.0

// UMKMHandler serves the business directory
type UMKMHandler struct {
	umkmUseCase  usecase.UMKMUseCase
	adminUseCase usecase.AdminUseCase
	lggr         *zap.SugaredLogger
}

func NewUMKMHandler(umkmUseCase usecase.UMKMUseCase, adminUseCase usecase.AdminUseCase, lggr *zap.SugaredLogger) *UMKMHandler {
	return &UMKMHandler{
		umkmUseCase:  umkmUseCase,
		adminUseCase: adminUseCase,
		lggr:         lggr,
	}
}

// List GET /api/umkm
// Without page/limit the body is a plain array. Backend failures degrade to an empty list.
func (h *UMKMHandler) List(c *gin.Context) {
	query, err := parseListQuery(c)
	if err != nil {
		respondError(c, err, "")
		return
	}

	result, err := h.umkmUseCase.List(c.Request.Context(), query)
	if err != nil {
		h.lggr.Errorw("failed to list umkm", "err", err, "trace_id", c.GetString("trace_id"))
		if !query.Paginated {
			c.JSON(http.StatusOK, []model.UMKM{})
			return
		}
		c.JSON(http.StatusOK, model.PaginatedUMKM{
			Data:       []model.UMKM{},
			Pagination: model.Pagination{Page: query.Page, Limit: query.Limit},
		})
		return
	}

	if !query.Paginated {
		c.JSON(http.StatusOK, result.Data)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetDetail GET /api/umkm/:id
func (h *UMKMHandler) GetDetail(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err, "")
		return
	}

	detail, err := h.umkmUseCase.GetDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Gagal mengambil data UMKM")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Nearby GET /api/umkm/nearby?lat=&lng=&radius=&limit=
func (h *UMKMHandler) Nearby(c *gin.Context) {
	origin, ok, err := parseLatLng(c, "lat", "lng")
	if err != nil {
		respondError(c, err, "")
		return
	}
	if !ok {
		badRequest(c, "Parameter lat dan lng wajib diisi")
		return
	}

	radius := defaultNearbyRadiusKm
	if s := c.Query("radius"); s != "" {
		if radius, err = strconv.ParseFloat(s, 64); err != nil || math.IsNaN(radius) || math.IsInf(radius, 0) {
			badRequest(c, "Parameter radius harus berupa angka")
			return
		}
	}
	limit, err := optionalInt(c.Query("limit"), 0)
	if err != nil {
		badRequest(c, "Parameter limit harus berupa angka")
		return
	}

	nearby, err := h.umkmUseCase.Nearby(c.Request.Context(), origin, radius, limit)
	if err != nil {
		respondError(c, err, "Gagal mencari UMKM terdekat")
		return
	}
	c.JSON(http.StatusOK, nearby)
}

// Create POST /api/umkm (admin)
func (h *UMKMHandler) Create(c *gin.Context) {
	var input model.UMKMInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Format data tidak valid",
			"details": err.Error(),
		})
		return
	}

	created, err := h.umkmUseCase.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err, "Gagal menambahkan UMKM")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "UMKM berhasil ditambahkan",
		"data":    created,
	})
}

// Update PUT /api/umkm/:id (admin or edit token for :id)
func (h *UMKMHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err, "")
		return
	}

	var input model.UMKMInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Format data tidak valid",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.umkmUseCase.Update(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err, "Gagal memperbarui UMKM")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "UMKM berhasil diperbarui",
		"data":    updated,
	})
}

type passwordRequest struct {
	Password string `json:"password"`
}

// VerifyPassword POST /api/umkm/:id/verify-password
func (h *UMKMHandler) VerifyPassword(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err, "")
		return
	}

	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		badRequest(c, "Password wajib diisi")
		return
	}

	token, err := h.adminUseCase.VerifyEditPassword(c.Request.Context(), id, req.Password)
	if err != nil {
		respondError(c, err, "Gagal memverifikasi password")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    token,
	})
}
