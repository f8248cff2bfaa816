package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/auth"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/helper"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
)

type UMKMUseCase interface {
	// List returns the filtered, sorted listing; a page of it when query.Paginated
	List(ctx context.Context, query model.UMKMListQuery) (*model.PaginatedUMKM, error)
	GetDetail(ctx context.Context, id int64) (*model.UMKMDetail, error)
	Nearby(ctx context.Context, origin model.LatLng, radiusKm float64, limit int) ([]model.NearbyUMKM, error)
	Create(ctx context.Context, input *model.UMKMInput) (*model.UMKM, error)
	Update(ctx context.Context, id int64, input *model.UMKMInput) (*model.UMKM, error)
}

type umkmUseCaseImpl struct {
	repo     repository.UMKMRepository
	catalog  *UMKMCatalog
	location *time.Location
	now      func() time.Time
	lggr     *zap.SugaredLogger
}

func NewUMKMUseCase(repo repository.UMKMRepository, catalog *UMKMCatalog, location *time.Location, lggr *zap.SugaredLogger) UMKMUseCase {
	if location == nil {
		location = time.UTC
	}
	return &umkmUseCaseImpl{
		repo:     repo,
		catalog:  catalog,
		location: location,
		now:      time.Now,
		lggr:     lggr,
	}
}

func (u *umkmUseCaseImpl) List(ctx context.Context, query model.UMKMListQuery) (*model.PaginatedUMKM, error) {
	key := query.CacheKey()
	if v, ok := u.catalog.cache.Get(key); ok {
		return v.(*model.PaginatedUMKM), nil
	}

	items, err := u.catalog.Find(ctx, model.UMKMFilter{Category: query.Category, Search: strings.TrimSpace(query.Search)})
	if err != nil {
		return nil, fmt.Errorf("failed to list umkm: %w", err)
	}

	if query.Bounds != nil {
		items = helper.FilterByBounds(items, *query.Bounds)
	}

	sorted := make([]model.UMKM, len(items))
	copy(sorted, items)
	helper.SortUMKM(sorted, query.Sort)

	var result model.PaginatedUMKM
	if query.Paginated {
		result = helper.PageOf(sorted, query.Page, query.Limit)
	} else {
		result = model.PaginatedUMKM{
			Data: sorted,
			Pagination: model.Pagination{
				Page:       1,
				Limit:      len(sorted),
				Total:      len(sorted),
				TotalPages: min(1, len(sorted)),
			},
		}
	}

	u.catalog.cache.Set(key, &result)
	return &result, nil
}

func (u *umkmUseCaseImpl) GetDetail(ctx context.Context, id int64) (*model.UMKMDetail, error) {
	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.UMKMDetail{
		UMKM:          *item,
		IsOpen:        helper.IsOpen(item.OperatingHours, u.now().In(u.location)),
		CategoryColor: helper.CategoryColor(item.Category),
		WhatsAppURL:   helper.WhatsAppURL(item.Phone),
		DirectionsURL: helper.DirectionsURL(item.ToLatLng()),
	}, nil
}

func (u *umkmUseCaseImpl) Nearby(ctx context.Context, origin model.LatLng, radiusKm float64, limit int) ([]model.NearbyUMKM, error) {
	if !origin.Valid() {
		return nil, &model.ValidationError{Field: "lat,lng", Message: "koordinat tidak valid"}
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return nil, &model.ValidationError{Field: "radius", Message: "harus lebih besar dari 0"}
	}

	items, err := u.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list umkm: %w", err)
	}
	return helper.WithinRadius(origin, items, radiusKm, limit), nil
}

func (u *umkmUseCaseImpl) Create(ctx context.Context, input *model.UMKMInput) (*model.UMKM, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	row := input.ToRow()
	if err := u.applyPassword(row, input.Password); err != nil {
		return nil, err
	}

	created, err := u.repo.Create(ctx, row)
	if err != nil {
		return nil, err
	}
	u.catalog.Invalidate()

	u.lggr.Infow("umkm created", "id", created.ID, "name", created.Name)
	return created, nil
}

func (u *umkmUseCaseImpl) Update(ctx context.Context, id int64, input *model.UMKMInput) (*model.UMKM, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	row := input.ToRow()
	if err := u.applyPassword(row, input.Password); err != nil {
		return nil, err
	}

	updated, err := u.repo.Update(ctx, id, row)
	if err != nil {
		return nil, err
	}
	u.catalog.Invalidate()

	u.lggr.Infow("umkm updated", "id", id)
	return updated, nil
}

func (u *umkmUseCaseImpl) applyPassword(row *model.UMKMRow, password string) error {
	if password == "" {
		return nil
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	row.PasswordAkses = &hash
	return nil
}
