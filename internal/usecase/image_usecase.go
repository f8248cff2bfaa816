package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/helper"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
)

// ImageUploadResult is returned after an image is stored and linked
type ImageUploadResult struct {
	ImageURL string      `json:"imageUrl"`
	Data     *model.UMKM `json:"data"`
}

type ImageUseCase interface {
	// UploadImage stores the file and points the record's gambar_url at it
	UploadImage(ctx context.Context, id int64, filename string, data []byte) (*ImageUploadResult, error)
}

type imageUseCaseImpl struct {
	repo    repository.UMKMRepository
	storage repository.ImageStorageRepository
	catalog *UMKMCatalog
	now     func() time.Time
	lggr    *zap.SugaredLogger
}

func NewImageUseCase(repo repository.UMKMRepository, storage repository.ImageStorageRepository, catalog *UMKMCatalog, lggr *zap.SugaredLogger) ImageUseCase {
	return &imageUseCaseImpl{
		repo:    repo,
		storage: storage,
		catalog: catalog,
		now:     time.Now,
		lggr:    lggr,
	}
}

func (u *imageUseCaseImpl) UploadImage(ctx context.Context, id int64, filename string, data []byte) (*ImageUploadResult, error) {
	if len(data) == 0 {
		return nil, model.ErrEmptyImage
	}
	if len(data) > model.MaxImageSize {
		return nil, model.ErrImageTooLarge
	}
	mime, ok := helper.DetectImageMIME(data)
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrNotAnImage, mime)
	}

	path := fmt.Sprintf("%s/%d-%d.%s", model.ImagePathPrefix, id, u.now().UnixMilli(), helper.ImageExtension(filename, mime))
	if err := u.storage.Upload(ctx, path, data, mime); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrUploadFailed, err)
	}
	url := u.storage.PublicURL(path)

	if err := u.repo.UpdateImageURL(ctx, id, url); err != nil {
		if rmErr := u.storage.Remove(ctx, path); rmErr != nil {
			u.lggr.Errorw("failed to remove orphaned image", "path", path, "err", rmErr)
		}
		if errors.Is(err, model.ErrUMKMNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", model.ErrSaveFailed, err)
	}
	u.catalog.Invalidate()

	updated, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.lggr.Infow("umkm image updated", "id", id, "path", path, "size", len(data))
	return &ImageUploadResult{ImageURL: url, Data: updated}, nil
}
