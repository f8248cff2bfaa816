package repository

import (
	"context"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
)

// RouteProvider asks an external routing service for a road path
type RouteProvider interface {
	GetDrivingRoute(ctx context.Context, from, to model.LatLng) (*model.RouteDetails, error)
}
