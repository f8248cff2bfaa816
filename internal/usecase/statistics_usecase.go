package usecase

import (
	"context"
	"fmt"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/service"
)

type StatisticsUseCase interface {
	Dashboard(ctx context.Context) (*model.DashboardStats, error)
	Statistics(ctx context.Context) (*model.Statistics, error)
	Categories(ctx context.Context) ([]model.CategoryInfo, error)
}

type statisticsUseCaseImpl struct {
	catalog *UMKMCatalog
	stats   service.StatisticsService
}

func NewStatisticsUseCase(catalog *UMKMCatalog, stats service.StatisticsService) StatisticsUseCase {
	return &statisticsUseCaseImpl{
		catalog: catalog,
		stats:   stats,
	}
}

func (u *statisticsUseCaseImpl) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	items, err := u.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}
	stats := u.stats.Dashboard(items)
	return &stats, nil
}

func (u *statisticsUseCaseImpl) Statistics(ctx context.Context) (*model.Statistics, error) {
	items, err := u.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load statistics: %w", err)
	}
	stats := u.stats.Statistics(items)
	return &stats, nil
}

func (u *statisticsUseCaseImpl) Categories(ctx context.Context) ([]model.CategoryInfo, error) {
	items, err := u.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return u.stats.Categories(items), nil
}
