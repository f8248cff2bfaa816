package model

// CategoryStat is the share of one category
type CategoryStat struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// DistrictStat is the number of records in one kecamatan
type DistrictStat struct {
	District string `json:"district"`
	Count    int    `json:"count"`
}

// ImageCoverage summarises how many records have an image
type ImageCoverage struct {
	Total        int `json:"total"`
	WithImage    int `json:"withImage"`
	WithoutImage int `json:"withoutImage"`
	Progress     int `json:"progress"` // percent, rounded
}

// DashboardStats is shown on the home page
type DashboardStats struct {
	TotalUMKM       int    `json:"totalUMKM"`
	TotalCategories int    `json:"totalCategories"`
	TotalDistricts  int    `json:"totalDistricts"`
	PopularCategory string `json:"popularCategory"`
}

// Statistics is the statistics page payload
type Statistics struct {
	TotalUMKM       int            `json:"totalUMKM"`
	CategoriesCount int            `json:"categoriesCount"`
	DistrictsCount  int            `json:"districtsCount"`
	Categories      []CategoryStat `json:"categories"`
	TopCategories   []CategoryStat `json:"topCategories"`
	Districts       []DistrictStat `json:"districts"`
	ImageCoverage   ImageCoverage  `json:"imageCoverage"`
}
