package helper

import (
	"sort"
	"strings"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
)

// FilterByCategory returns records of the given category. Empty or "Semua" returns all.
func FilterByCategory(items []model.UMKM, category string) []model.UMKM {
	if category == "" || category == model.CategoryAll {
		return items
	}
	filtered := make([]model.UMKM, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Search returns records whose name or address contains the query, ignoring case
func Search(items []model.UMKM, query string) []model.UMKM {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	filtered := make([]model.UMKM, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) || strings.Contains(strings.ToLower(item.Address), q) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// ApplyFilter runs category and text filters
func ApplyFilter(items []model.UMKM, filter model.UMKMFilter) []model.UMKM {
	return Search(FilterByCategory(items, filter.Category), filter.Search)
}

// SortUMKM sorts in place by name, category or id. Unknown keys sort by id.
func SortUMKM(items []model.UMKM, by string) {
	switch by {
	case model.SortByName:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
		})
	case model.SortByCategory:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Category) < strings.ToLower(items[j].Category)
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].ID < items[j].ID
		})
	}
}

// NormalizePage clamps page and limit to usable values
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = model.DefaultPage
	}
	if limit < 1 {
		limit = model.DefaultLimit
	}
	if limit > model.MaxLimit {
		limit = model.MaxLimit
	}
	return page, limit
}

// Paginate computes the page metadata and the [start, end) slice bounds for total items.
// Pages past the end yield start == end == total.
func Paginate(total, page, limit int) (model.Pagination, int, int) {
	page, limit = NormalizePage(page, limit)

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return model.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, start, end
}

// PageOf returns the requested page of items with its metadata
func PageOf(items []model.UMKM, page, limit int) model.PaginatedUMKM {
	p, start, end := Paginate(len(items), page, limit)
	data := make([]model.UMKM, end-start)
	copy(data, items[start:end])
	return model.PaginatedUMKM{Data: data, Pagination: p}
}

// FindByID returns the record with the given id
func FindByID(items []model.UMKM, id int64) (*model.UMKM, bool) {
	for i := range items {
		if items[i].ID == id {
			return &items[i], true
		}
	}
	return nil, false
}

// FilterByLocation returns records placed exactly at p
func FilterByLocation(items []model.UMKM, p model.LatLng) []model.UMKM {
	filtered := make([]model.UMKM, 0)
	for _, item := range items {
		if item.Lat == p.Lat && item.Lng == p.Lng {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// UniqueCategories returns the distinct categories, sorted
func UniqueCategories(items []model.UMKM) []string {
	return uniqueSorted(items, func(u model.UMKM) string { return u.Category })
}

// UniqueDistricts returns the distinct districts, sorted
func UniqueDistricts(items []model.UMKM) []string {
	return uniqueSorted(items, func(u model.UMKM) string { return u.District })
}

func uniqueSorted(items []model.UMKM, key func(model.UMKM) string) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)
	for _, item := range items {
		k := key(item)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}
