package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/usecase"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

// Login POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		badRequest(c, "Password wajib diisi")
		return
	}

	token, err := h.adminUseCase.Login(c.Request.Context(), req.Password)
	if err != nil {
		respondError(c, err, "Gagal login")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    token,
	})
}
