package helper

import (
	"math"
	"sort"

	"github.com/paulmach/orb"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
)

const earthRadiusKm = 6371.0

// HaversineDistance returns the great-circle distance between two points (km)
func HaversineDistance(p1, p2 model.LatLng) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// PathDistance sums the Haversine distance along a path (km)
func PathDistance(path []model.LatLng) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += HaversineDistance(path[i-1], path[i])
	}
	return total
}

// SortByDistanceFromLocation sorts records by distance from origin, nearest first
func SortByDistanceFromLocation(origin model.LatLng, targets []model.UMKM) {
	sort.SliceStable(targets, func(i, j int) bool {
		return HaversineDistance(origin, targets[i].ToLatLng()) < HaversineDistance(origin, targets[j].ToLatLng())
	})
}

// WithinRadius returns records no farther than radiusKm from origin, nearest first.
// limit <= 0 means no limit.
func WithinRadius(origin model.LatLng, items []model.UMKM, radiusKm float64, limit int) []model.NearbyUMKM {
	result := make([]model.NearbyUMKM, 0)
	for _, item := range items {
		d := HaversineDistance(origin, item.ToLatLng())
		if d <= radiusKm {
			result = append(result, model.NearbyUMKM{UMKM: item, DistanceKm: math.Round(d*1000) / 1000})
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// ToOrbPoint converts a LatLng to an orb point (lng, lat order)
func ToOrbPoint(p model.LatLng) orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// ToBound converts a BoundingBox to an orb.Bound
func ToBound(b model.BoundingBox) orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinLng, b.MinLat},
		Max: orb.Point{b.MaxLng, b.MaxLat},
	}
}

// FromBound converts an orb.Bound to a BoundingBox
func FromBound(b orb.Bound) *model.BoundingBox {
	return &model.BoundingBox{
		MinLng: b.Min.Lon(),
		MinLat: b.Min.Lat(),
		MaxLng: b.Max.Lon(),
		MaxLat: b.Max.Lat(),
	}
}

// BoundOf returns the box that fits all points, nil when there are none
func BoundOf(points []model.LatLng) *model.BoundingBox {
	if len(points) == 0 {
		return nil
	}
	mp := make(orb.MultiPoint, 0, len(points))
	for _, p := range points {
		mp = append(mp, ToOrbPoint(p))
	}
	return FromBound(mp.Bound())
}

// ValidateBoundingBox checks ordering and WGS84 ranges
func ValidateBoundingBox(b model.BoundingBox) error {
	for _, v := range []float64{b.MinLng, b.MinLat, b.MaxLng, b.MaxLat} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &model.ValidationError{Field: "bbox", Message: "koordinat harus berupa angka"}
		}
	}
	if b.MinLng >= b.MaxLng || b.MinLat >= b.MaxLat {
		return &model.ValidationError{Field: "bbox", Message: "min harus lebih kecil dari max"}
	}
	if b.MinLng < -180 || b.MaxLng > 180 || b.MinLat < -90 || b.MaxLat > 90 {
		return &model.ValidationError{Field: "bbox", Message: "koordinat di luar jangkauan"}
	}
	return nil
}

// FilterByBounds returns records inside the box
func FilterByBounds(items []model.UMKM, box model.BoundingBox) []model.UMKM {
	bound := ToBound(box)
	filtered := make([]model.UMKM, 0, len(items))
	for _, item := range items {
		if bound.Contains(ToOrbPoint(item.ToLatLng())) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
