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

type NavigationUseCase interface {
	// Route returns a road route, or a straight line marked as fallback when routing fails
	Route(ctx context.Context, req model.RouteRequest) (*model.Route, error)
}

type navigationUseCaseImpl struct {
	provider repository.RouteProvider
	cache    repository.RouteCacheRepository
	cacheTTL time.Duration
	lggr     *zap.SugaredLogger
}

func NewNavigationUseCase(provider repository.RouteProvider, cache repository.RouteCacheRepository, cacheTTL time.Duration, lggr *zap.SugaredLogger) NavigationUseCase {
	return &navigationUseCaseImpl{
		provider: provider,
		cache:    cache,
		cacheTTL: cacheTTL,
		lggr:     lggr,
	}
}

func (u *navigationUseCaseImpl) Route(ctx context.Context, req model.RouteRequest) (*model.Route, error) {
	if !req.From.Valid() || !req.To.Valid() {
		return nil, fmt.Errorf("%w: coordinates out of range", model.ErrInvalidRoute)
	}

	key := req.CacheKey()
	cached, err := u.cache.Get(ctx, key)
	switch {
	case err == nil:
		return toRoute(cached, false, model.RouteSourceCache), nil
	case !errors.Is(err, model.ErrRouteCacheMiss):
		u.lggr.Warnw("route cache read failed", "key", key, "err", err)
	}

	details, err := u.provider.GetDrivingRoute(ctx, req.From, req.To)
	if err != nil {
		u.lggr.Warnw("routing failed, drawing straight line", "from", req.From, "to", req.To, "err", err)
		return straightLine(req.From, req.To), nil
	}

	if err := u.cache.Save(ctx, key, details, u.cacheTTL); err != nil {
		u.lggr.Warnw("route cache write failed", "key", key, "err", err)
	}
	return toRoute(details, false, model.RouteSourceOSRM), nil
}

func straightLine(from, to model.LatLng) *model.Route {
	details := &model.RouteDetails{
		Path:           []model.LatLng{from, to},
		DistanceMeters: helper.HaversineDistance(from, to) * 1000,
	}
	return toRoute(details, true, model.RouteSourceStraightLine)
}

func toRoute(d *model.RouteDetails, fallback bool, source string) *model.Route {
	coords := make([][2]float64, len(d.Path))
	for i, p := range d.Path {
		coords[i] = [2]float64{p.Lat, p.Lng}
	}
	return &model.Route{
		Coordinates:     coords,
		DistanceMeters:  d.DistanceMeters,
		DurationSeconds: d.DurationSeconds,
		Fallback:        fallback,
		Source:          source,
		Bounds:          helper.BoundOf(d.Path),
	}
}
