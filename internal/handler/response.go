package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
)

// respondError maps domain errors to a status code and writes the error body.
// Unknown errors become 500 with the given fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)

	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   verr.Message,
			"details": verr.Field,
		})
	case errors.Is(err, model.ErrUMKMNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "UMKM tidak ditemukan"})
	case errors.Is(err, model.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Password salah"})
	case errors.Is(err, model.ErrAdminDisabled):
		c.JSON(http.StatusForbidden, gin.H{"error": "Login admin tidak aktif"})
	case errors.Is(err, model.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Akses ditolak"})
	case errors.Is(err, model.ErrInvalidRoute):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Koordinat tidak valid", "details": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   fallback,
			"details": err.Error(),
		})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
