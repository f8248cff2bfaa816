package service

import (
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/helper"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
)

// MapOverlayService selects the markers shown on the map
type MapOverlayService interface {
	Markers(items []model.UMKM, query model.MarkerQuery) model.MarkerResponse
}

type mapOverlayService struct{}

func NewMapOverlayService() MapOverlayService {
	return &mapOverlayService{}
}

// Markers applies the first matching selection in priority order:
// navigation target, selected record, selected location, category
func (s *mapOverlayService) Markers(items []model.UMKM, query model.MarkerQuery) model.MarkerResponse {
	var mode string
	var selected []model.UMKM

	switch {
	case query.NavigationTarget != nil:
		mode = model.MarkerModeNavigation
		selected = helper.FilterByLocation(items, *query.NavigationTarget)
	case query.SelectedID != 0:
		mode = model.MarkerModeSelected
		if item, ok := helper.FindByID(items, query.SelectedID); ok {
			selected = []model.UMKM{*item}
		}
	case query.SelectedLocation != nil:
		mode = model.MarkerModeLocation
		selected = helper.FilterByLocation(items, *query.SelectedLocation)
	default:
		mode = model.MarkerModeCategory
		selected = helper.FilterByCategory(items, query.Category)
	}

	markers := make([]model.Marker, 0, len(selected))
	points := make([]model.LatLng, 0, len(selected))
	for _, item := range selected {
		markers = append(markers, ToMarker(item))
		points = append(points, item.ToLatLng())
	}

	return model.MarkerResponse{
		Mode:    mode,
		Count:   len(markers),
		Markers: markers,
		Bounds:  helper.BoundOf(points),
	}
}

// ToMarker converts a record into a map pin coloured by category
func ToMarker(u model.UMKM) model.Marker {
	return model.Marker{
		ID:       u.ID,
		Name:     u.Name,
		Category: u.Category,
		Address:  u.Address,
		Phone:    u.Phone,
		Lat:      u.Lat,
		Lng:      u.Lng,
		Color:    helper.CategoryColor(u.Category),
		Image:    u.Image,
	}
}
