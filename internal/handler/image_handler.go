package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/middleware"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/usecase"
)

// multipart overhead allowed on top of the image itself
const maxFormOverhead = 1 << 20

const (
	msgImageMissing  = "ID dan file gambar harus disediakan"
	msgNotAnImage    = "File harus berupa gambar"
	msgImageTooLarge = "Ukuran file maksimal 5MB"
)

type ImageHandler struct {
	imageUseCase usecase.ImageUseCase
}

func NewImageHandler(imageUseCase usecase.ImageUseCase) *ImageHandler {
	return &ImageHandler{
		imageUseCase: imageUseCase,
	}
}

// UpdateImage POST /api/umkm/update-image (multipart: id, file)
func (h *ImageHandler) UpdateImage(c *gin.Context) {
	if c.Request.ContentLength > model.MaxImageSize+maxFormOverhead {
		badRequest(c, msgImageTooLarge)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, model.MaxImageSize+maxFormOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			badRequest(c, msgImageTooLarge)
			return
		}
		badRequest(c, msgImageMissing)
		return
	}
	idStr := strings.TrimSpace(c.PostForm("id"))
	if idStr == "" {
		badRequest(c, msgImageMissing)
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "ID tidak valid")
		return
	}

	claims, ok := middleware.Claims(c)
	if !ok || !claims.CanEdit(id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Akses ditolak"})
		return
	}

	if header.Size > model.MaxImageSize {
		badRequest(c, msgImageTooLarge)
		return
	}
	f, err := header.Open()
	if err != nil {
		badRequest(c, msgImageMissing)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, model.MaxImageSize+1))
	if err != nil {
		respondError(c, err, "Internal server error")
		return
	}

	result, err := h.imageUseCase.UploadImage(c.Request.Context(), id, header.Filename, data)
	if err != nil {
		_ = c.Error(err)
		switch {
		case errors.Is(err, model.ErrImageTooLarge):
			badRequest(c, msgImageTooLarge)
		case errors.Is(err, model.ErrNotAnImage), errors.Is(err, model.ErrEmptyImage):
			badRequest(c, msgNotAnImage)
		case errors.Is(err, model.ErrUploadFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengupload gambar: " + uploadCause(err)})
		case errors.Is(err, model.ErrSaveFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan ke database"})
		default:
			respondError(c, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Gambar berhasil diupload",
		"imageUrl": result.ImageURL,
		"data":     result.Data,
	})
}

// uploadCause returns the storage error behind ErrUploadFailed
func uploadCause(err error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := joined.Unwrap(); len(errs) > 1 {
			return errs[len(errs)-1].Error()
		}
	}
	return strings.TrimPrefix(err.Error(), model.ErrUploadFailed.Error()+": ")
}
