package repository

import (
	"context"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
)

// UMKMRepository is the data-fetch layer for business records
type UMKMRepository interface {
	// Find lists records matching the filter, ordered by id
	Find(ctx context.Context, filter model.UMKMFilter) ([]model.UMKM, error)
	// GetByID returns model.ErrUMKMNotFound when the record does not exist
	GetByID(ctx context.Context, id int64) (*model.UMKM, error)
	Create(ctx context.Context, row *model.UMKMRow) (*model.UMKM, error)
	Update(ctx context.Context, id int64, row *model.UMKMRow) (*model.UMKM, error)
	UpdateImageURL(ctx context.Context, id int64, imageURL string) error
	// GetPasswordHash returns the stored access password, "" when none is set
	GetPasswordHash(ctx context.Context, id int64) (string, error)
}
