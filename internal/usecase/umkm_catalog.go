package usecase

import (
	"context"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/cache"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
)

const allUMKMCacheKey = "umkm-all"

// UMKMCatalog reads records through the list cache. Every use case that
// aggregates the whole directory shares it, so one write invalidates all views.
type UMKMCatalog struct {
	repo  repository.UMKMRepository
	cache *cache.ListCache
}

func NewUMKMCatalog(repo repository.UMKMRepository, listCache *cache.ListCache) *UMKMCatalog {
	return &UMKMCatalog{repo: repo, cache: listCache}
}

// All returns every record ordered by id
func (c *UMKMCatalog) All(ctx context.Context) ([]model.UMKM, error) {
	return c.Find(ctx, model.UMKMFilter{})
}

// Find returns records matching the filter. The result is shared with the
// cache and must not be modified by callers.
func (c *UMKMCatalog) Find(ctx context.Context, filter model.UMKMFilter) ([]model.UMKM, error) {
	key := filterCacheKey(filter)
	if v, ok := c.cache.Get(key); ok {
		return v.([]model.UMKM), nil
	}

	items, err := c.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, items)
	return items, nil
}

// Invalidate drops every cached listing
func (c *UMKMCatalog) Invalidate() {
	c.cache.Invalidate()
}

func filterCacheKey(f model.UMKMFilter) string {
	if !f.HasCategory() && f.Search == "" {
		return allUMKMCacheKey
	}
	category := f.Category
	if !f.HasCategory() {
		category = "all"
	}
	search := f.Search
	if search == "" {
		search = "none"
	}
	return "umkm-filter-" + category + "-" + search
}
