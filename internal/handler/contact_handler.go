package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/usecase"
)

type ContactHandler struct {
	contactUseCase usecase.ContactUseCase
}

func NewContactHandler(contactUseCase usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
	}
}

// Submit POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   model.ContactRequiredMessage,
			"details": err.Error(),
		})
		return
	}

	resp, err := h.contactUseCase.Submit(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Gagal menyimpan pesan. Silakan coba lagi.")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List GET /api/contact (admin)
func (h *ContactHandler) List(c *gin.Context) {
	msgs, err := h.contactUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Gagal mengambil data pesan")
		return
	}
	c.JSON(http.StatusOK, msgs)
}
