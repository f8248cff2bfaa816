package model

import (
	"fmt"
	"time"
)

// LatLng is a latitude/longitude pair
type LatLng struct {
	Lat float64 `json:"lat" firestore:"lat"`
	Lng float64 `json:"lng" firestore:"lng"`
}

// Valid reports whether the point is inside the WGS84 range
func (p LatLng) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// BoundingBox is an axis-aligned box in degrees
type BoundingBox struct {
	MinLng float64 `json:"minLng"`
	MinLat float64 `json:"minLat"`
	MaxLng float64 `json:"maxLng"`
	MaxLat float64 `json:"maxLat"`
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", b.MinLng, b.MinLat, b.MaxLng, b.MaxLat)
}

// RouteRequest asks for a path between two points
type RouteRequest struct {
	From LatLng `json:"from"`
	To   LatLng `json:"to"`
}

// CacheKey identifies the request in the route cache. Coordinates are rounded to ~1 m.
func (r RouteRequest) CacheKey() string {
	return fmt.Sprintf("%.5f_%.5f_%.5f_%.5f", r.From.Lat, r.From.Lng, r.To.Lat, r.To.Lng)
}

// RouteDetails is what a routing provider returns
type RouteDetails struct {
	Path            []LatLng
	DistanceMeters  float64
	DurationSeconds float64
}

// Route is the navigation overlay served to the map
type Route struct {
	Coordinates     [][2]float64 `json:"coordinates"` // [lat, lng] pairs
	DistanceMeters  float64      `json:"distanceMeters"`
	DurationSeconds float64      `json:"durationSeconds"`
	Fallback        bool         `json:"fallback"` // straight line, render dashed
	Source          string       `json:"source"`
	Bounds          *BoundingBox `json:"bounds"`
}

// FirestoreRoute is the cached form of a route. Firestore cannot store nested arrays.
type FirestoreRoute struct {
	Path            []LatLng  `firestore:"path"`
	DistanceMeters  float64   `firestore:"distance_meters"`
	DurationSeconds float64   `firestore:"duration_seconds"`
	CreatedAt       time.Time `firestore:"createdAt"`
	ExpireAt        time.Time `firestore:"expireAt"`
}

// ToFirestoreRoute converts provider output for caching
func (d *RouteDetails) ToFirestoreRoute(ttl time.Duration) *FirestoreRoute {
	now := time.Now()
	return &FirestoreRoute{
		Path:            d.Path,
		DistanceMeters:  d.DistanceMeters,
		DurationSeconds: d.DurationSeconds,
		CreatedAt:       now,
		ExpireAt:        now.Add(ttl),
	}
}

// ToRouteDetails converts a cached entry back
func (f *FirestoreRoute) ToRouteDetails() *RouteDetails {
	return &RouteDetails{
		Path:            f.Path,
		DistanceMeters:  f.DistanceMeters,
		DurationSeconds: f.DurationSeconds,
	}
}
