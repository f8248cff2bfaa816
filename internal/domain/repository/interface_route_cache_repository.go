package repository

import (
	"context"
	"time"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
)

// RouteCacheRepository stores computed routes with a TTL
type RouteCacheRepository interface {
	// Get returns model.ErrRouteCacheMiss for unknown or expired keys
	Get(ctx context.Context, key string) (*model.RouteDetails, error)
	Save(ctx context.Context, key string, route *model.RouteDetails, ttl time.Duration) error
}
