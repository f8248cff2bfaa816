package helper

import (
	"strings"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
)

// categoryColors maps lower-cased category names to marker colours
var categoryColors = map[string]string{
	// kuliner
	"kuliner":      "#FF6B35",
	"restoran":     "#E63946",
	"warung nasi":  "#F77F00",
	"kedai kopi":   "#8B4513",
	"kafe":         "#A0522D",
	"toko kue":     "#D4A373",
	"toko makanan": "#FF8C42",

	// fashion
	"fashion & pakaian": "#9B59B6",
	"pakaian":           "#8E44AD",
	"toko pakaian":      "#A855F7",
	"toko sepatu":       "#6C5B7B",
	"toko aksesoris":    "#B565D8",
	"toko benang":       "#D8BFD8",

	// kerajinan
	"kerajinan tangan": "#DC2626",
	"kerajinan":        "#C92A2A",

	// jasa
	"jasa":             "#0EA5E9",
	"layanan jasa":     "#06B6D4",
	"laundry":          "#38BDF8",
	"studio fotografi": "#0284C7",
	"toko percetakan":  "#0369A1",

	// elektronik
	"elektronik":      "#4F46E5",
	"toko elektronik": "#6366F1",

	// kesehatan
	"kesehatan & kecantikan": "#EC4899",
	"kesehatan":              "#F472B6",
	"kecantikan":             "#BE185D",
	"salon kecantikan":       "#F9A8D4",
	"pusat kebugaran":        "#DB2777",

	// retail
	"toko buah dan sayuran":   "#10B981",
	"toko buah dan sayur":     "#10B981",
	"toko bahan makanan":      "#14B8A6",
	"toko perlengkapan rumah": "#059669",
	"warung kelontong":        "#16A34A",
	"toko kelontong":          "#16A34A",
	"toko mebel":              "#047857",
	"toko perlengkapan bayi":  "#34D399",
	"toko bunga":              "#22C55E",
	"toko pakan hewan":        "#15803D",

	"pusat perbelanjaan": "#7C3AED",
	"toko alat pancing":  "#2563EB",
}

// LookupCategoryColor returns the colour for a category, ignoring case
func LookupCategoryColor(category string) (string, bool) {
	color, ok := categoryColors[strings.ToLower(strings.TrimSpace(category))]
	return color, ok
}

// CategoryColor returns the marker colour for a category or the default marker colour
func CategoryColor(category string) string {
	if color, ok := LookupCategoryColor(category); ok {
		return color
	}
	return model.DefaultMarkerColor
}

// FallbackColor returns the palette colour for the index-th category
func FallbackColor(index int) string {
	if index < 0 {
		index = -index
	}
	return model.FallbackColors[index%len(model.FallbackColors)]
}
