package usecase

import (
	"context"
	"fmt"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/service"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/infrastructure/maps"
)

type MapUseCase interface {
	Markers(ctx context.Context, query model.MarkerQuery) (*model.MarkerResponse, error)
	TileLayer(style string, dark bool) model.TileLayer
	TileStyles() []model.TileStyle
}

type mapUseCaseImpl struct {
	catalog *UMKMCatalog
	overlay service.MapOverlayService
}

func NewMapUseCase(catalog *UMKMCatalog, overlay service.MapOverlayService) MapUseCase {
	return &mapUseCaseImpl{
		catalog: catalog,
		overlay: overlay,
	}
}

func (u *mapUseCaseImpl) Markers(ctx context.Context, query model.MarkerQuery) (*model.MarkerResponse, error) {
	items, err := u.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load markers: %w", err)
	}
	resp := u.overlay.Markers(items, query)
	return &resp, nil
}

func (u *mapUseCaseImpl) TileLayer(style string, dark bool) model.TileLayer {
	return maps.ResolveTileLayer(style, dark)
}

func (u *mapUseCaseImpl) TileStyles() []model.TileStyle {
	return maps.TileStyles()
}
