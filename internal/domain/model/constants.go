package model

// Default coordinate used when a record has no usable latitude/longitude (Tasikmalaya city centre)
const (
	FallbackLat = -7.327
	FallbackLng = 108.22
)

// CategoryAll is the category filter value that disables filtering
const CategoryAll = "Semua"

// DefaultPhone is shown when a record has no phone number
const DefaultPhone = "Tidak ada informasi"

// NotAvailable is shown when an aggregate has no value
const NotAvailable = "N/A"

// Listing defaults
const (
	DefaultPage       = 1
	DefaultLimit      = 50
	MaxLimit          = 500
	DirectoryPageSize = 9
	TopCategoryCount  = 5
)

// Sort keys accepted by the directory listing
const (
	SortByID       = "id"
	SortByName     = "name"
	SortByCategory = "category"
)

// Image upload limits and storage layout
const (
	MaxImageSize     = 5 * 1024 * 1024
	ImagePathPrefix  = "umkm"
	DefaultImageBase = "umkm-images"
)

// Contact message statuses
const (
	ContactStatusNew = "new"
)

// Route sources
const (
	RouteSourceOSRM         = "osrm"
	RouteSourceCache        = "cache"
	RouteSourceStraightLine = "straight_line"
)

// Marker selection modes, in priority order
const (
	MarkerModeNavigation = "navigation"
	MarkerModeSelected   = "selected"
	MarkerModeLocation   = "location"
	MarkerModeCategory   = "category"
)

// DefaultMarkerColor is used for categories without a colour entry
const DefaultMarkerColor = "#2563EB"

// FallbackColors are assigned by position to categories without a colour entry on the statistics page
var FallbackColors = []string{
	"#F97316", "#8B5CF6", "#EC4899", "#10B981", "#3B82F6",
	"#F59E0B", "#EF4444", "#14B8A6", "#6366F1", "#84CC16",
	"#F472B6", "#A78BFA", "#FB923C", "#FCD34D", "#818CF8",
}
