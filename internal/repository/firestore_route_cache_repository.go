package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
)

const routeCacheCollection = "routeCache"

// FirestoreRouteCacheRepository caches OSRM routes in Firestore. Expired
// documents are ignored on read and removed by the collection's TTL policy on expireAt.
type FirestoreRouteCacheRepository struct {
	client *firestore.Client
	now    func() time.Time
}

func NewFirestoreRouteCacheRepository(client *firestore.Client) repository.RouteCacheRepository {
	return &FirestoreRouteCacheRepository{
		client: client,
		now:    time.Now,
	}
}

func (r *FirestoreRouteCacheRepository) Get(ctx context.Context, key string) (*model.RouteDetails, error) {
	doc, err := r.client.Collection(routeCacheCollection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, model.ErrRouteCacheMiss
		}
		return nil, fmt.Errorf("failed to read cached route %s: %w", key, err)
	}

	var cached model.FirestoreRoute
	if err := doc.DataTo(&cached); err != nil {
		return nil, fmt.Errorf("failed to decode cached route %s: %w", key, err)
	}
	if !cached.ExpireAt.IsZero() && !r.now().Before(cached.ExpireAt) {
		return nil, model.ErrRouteCacheMiss
	}

	return cached.ToRouteDetails(), nil
}

func (r *FirestoreRouteCacheRepository) Save(ctx context.Context, key string, route *model.RouteDetails, ttl time.Duration) error {
	if _, err := r.client.Collection(routeCacheCollection).Doc(key).Set(ctx, route.ToFirestoreRoute(ttl)); err != nil {
		return fmt.Errorf("failed to cache route %s: %w", key, err)
	}
	return nil
}
