package service

import (
	"math"
	"sort"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/helper"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
)

// StatisticsService aggregates the directory for the dashboard and the statistics page
type StatisticsService interface {
	Dashboard(items []model.UMKM) model.DashboardStats
	Statistics(items []model.UMKM) model.Statistics
	Categories(items []model.UMKM) []model.CategoryInfo
}

type statisticsService struct{}

func NewStatisticsService() StatisticsService {
	return &statisticsService{}
}

type countEntry struct {
	key   string
	count int
}

// countBy counts items per key, keeping first-appearance order
func countBy(items []model.UMKM, key func(model.UMKM) string) []countEntry {
	index := make(map[string]int)
	var entries []countEntry
	for _, item := range items {
		k := key(item)
		if i, ok := index[k]; ok {
			entries[i].count++
			continue
		}
		index[k] = len(entries)
		entries = append(entries, countEntry{key: k, count: 1})
	}
	return entries
}

func byCategory(u model.UMKM) string { return u.Category }
func byDistrict(u model.UMKM) string { return u.District }

func (s *statisticsService) Dashboard(items []model.UMKM) model.DashboardStats {
	categories := countBy(items, byCategory)

	popular := model.NotAvailable
	if len(categories) > 0 {
		best := categories[0]
		// a later category wins a tie
		for _, c := range categories[1:] {
			if c.count >= best.count {
				best = c
			}
		}
		popular = best.key
	}

	return model.DashboardStats{
		TotalUMKM:       len(items),
		TotalCategories: len(categories),
		TotalDistricts:  len(countBy(items, byDistrict)),
		PopularCategory: popular,
	}
}

func (s *statisticsService) Statistics(items []model.UMKM) model.Statistics {
	total := len(items)

	categoryCounts := countBy(items, byCategory)
	categories := make([]model.CategoryStat, 0, len(categoryCounts))
	for i, c := range categoryCounts {
		color, ok := helper.LookupCategoryColor(c.key)
		if !ok {
			color = helper.FallbackColor(i)
		}
		categories = append(categories, model.CategoryStat{
			Category:   c.key,
			Count:      c.count,
			Percentage: float64(c.count) / float64(total) * 100,
			Color:      color,
		})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Count > categories[j].Count
	})

	districtCounts := countBy(items, byDistrict)
	districts := make([]model.DistrictStat, 0, len(districtCounts))
	for _, d := range districtCounts {
		districts = append(districts, model.DistrictStat{District: d.key, Count: d.count})
	}
	sort.SliceStable(districts, func(i, j int) bool {
		return districts[i].Count > districts[j].Count
	})

	top := categories
	if len(top) > model.TopCategoryCount {
		top = top[:model.TopCategoryCount]
	}

	return model.Statistics{
		TotalUMKM:       total,
		CategoriesCount: len(categories),
		DistrictsCount:  len(districts),
		Categories:      categories,
		TopCategories:   append([]model.CategoryStat(nil), top...),
		Districts:       districts,
		ImageCoverage:   ImageCoverage(items),
	}
}

// Categories returns the distinct categories in name order with their counts and marker colours
func (s *statisticsService) Categories(items []model.UMKM) []model.CategoryInfo {
	counts := make(map[string]int)
	for _, item := range items {
		counts[item.Category]++
	}

	names := helper.UniqueCategories(items)
	result := make([]model.CategoryInfo, 0, len(names))
	for _, name := range names {
		result = append(result, model.CategoryInfo{
			Name:  name,
			Count: counts[name],
			Color: helper.CategoryColor(name),
		})
	}
	return result
}

// ImageCoverage counts records with and without an image
func ImageCoverage(items []model.UMKM) model.ImageCoverage {
	withImage := 0
	for i := range items {
		if items[i].HasImage() {
			withImage++
		}
	}

	progress := 0
	if len(items) > 0 {
		progress = int(math.Round(float64(withImage) / float64(len(items)) * 100))
	}

	return model.ImageCoverage{
		Total:        len(items),
		WithImage:    withImage,
		WithoutImage: len(items) - withImage,
		Progress:     progress,
	}
}
