package model

// Marker is one map pin
type Marker struct {
	ID       int64   `json:"no"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Address  string  `json:"address"`
	Phone    string  `json:"phone"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Color    string  `json:"color"`
	Image    *string `json:"gambar"`
}

// MarkerQuery selects which markers to show. The first set field wins:
// NavigationTarget, then SelectedID, then SelectedLocation, then Category.
type MarkerQuery struct {
	NavigationTarget *LatLng
	SelectedID       int64
	SelectedLocation *LatLng
	Category         string
}

// MarkerResponse is the marker layer with the box to fit the viewport to
type MarkerResponse struct {
	Mode    string       `json:"mode"`
	Count   int          `json:"count"`
	Markers []Marker     `json:"markers"`
	Bounds  *BoundingBox `json:"bounds"`
}

// TileStyle is a background tile provider
type TileStyle struct {
	Name        string `json:"name"`
	Light       string `json:"light"`
	Dark        string `json:"dark"`
	Attribution string `json:"attribution"`
	Subdomains  string `json:"subdomains,omitempty"`
}

// TileLayer is the resolved tile layer for a style and theme
type TileLayer struct {
	Style       string `json:"style"`
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
	Subdomains  string `json:"subdomains,omitempty"`
	MaxZoom     int    `json:"maxZoom"`
	Dark        bool   `json:"dark"`
}
