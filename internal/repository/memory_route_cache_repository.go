package repository

import (
	"context"
	"sync"
	"time"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
)

// MemoryRouteCacheRepository is the in-process route cache used when Firestore is not configured
type MemoryRouteCacheRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryRoute
	now     func() time.Time
	swept   time.Time
}

const routeSweepInterval = time.Minute

type memoryRoute struct {
	route    model.RouteDetails
	expireAt time.Time
}

func NewMemoryRouteCacheRepository() repository.RouteCacheRepository {
	return newMemoryRouteCache(time.Now)
}

func newMemoryRouteCache(now func() time.Time) *MemoryRouteCacheRepository {
	return &MemoryRouteCacheRepository{
		entries: make(map[string]memoryRoute),
		now:     now,
		swept:   now(),
	}
}

func (r *MemoryRouteCacheRepository) Get(ctx context.Context, key string) (*model.RouteDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	entry, ok := r.entries[key]
	r.mu.RUnlock()

	if !ok {
		return nil, model.ErrRouteCacheMiss
	}
	if !r.now().Before(entry.expireAt) {
		r.mu.Lock()
		if cur, ok := r.entries[key]; ok && cur.expireAt.Equal(entry.expireAt) {
			delete(r.entries, key)
		}
		r.mu.Unlock()
		return nil, model.ErrRouteCacheMiss
	}

	route := entry.route
	route.Path = append([]model.LatLng(nil), entry.route.Path...)
	return &route, nil
}

func (r *MemoryRouteCacheRepository) Save(ctx context.Context, key string, route *model.RouteDetails, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := *route
	stored.Path = append([]model.LatLng(nil), route.Path...)

	now := r.now()
	r.mu.Lock()
	if now.Sub(r.swept) >= routeSweepInterval {
		for k, e := range r.entries {
			if !now.Before(e.expireAt) {
				delete(r.entries, k)
			}
		}
		r.swept = now
	}
	r.entries[key] = memoryRoute{route: stored, expireAt: now.Add(ttl)}
	r.mu.Unlock()
	return nil
}
