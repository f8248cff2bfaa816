package model

import (
	"fmt"
	"strings"
)

// UMKM is a business directory entry as served by the API
type UMKM struct {
	ID             int64   `json:"no"`             // record identifier
	Name           string  `json:"name"`           // business name
	Category       string  `json:"category"`       // business category
	District       string  `json:"district"`       // kecamatan
	Description    string  `json:"description"`    // free text, generated when empty
	Address        string  `json:"address"`        // street address
	Phone          string  `json:"phone"`          // phone or DefaultPhone
	Lat            float64 `json:"lat"`            // latitude (fallback applied)
	Lng            float64 `json:"lng"`            // longitude (fallback applied)
	OperatingHours string  `json:"operatingHours"` // e.g. "08.00 - 17.00"
	Image          *string `json:"gambar"`         // public image URL (NULLABLE)
}

// ToLatLng returns the record position
func (u *UMKM) ToLatLng() LatLng {
	return LatLng{Lat: u.Lat, Lng: u.Lng}
}

// HasImage reports whether an image URL is set
func (u *UMKM) HasImage() bool {
	return u.Image != nil && *u.Image != ""
}

// UMKMRow mirrors the umkm table
type UMKMRow struct {
	ID             int64      `json:"id,omitempty"`
	NamaPerusahaan string     `json:"nama_perusahaan"`
	Jenis          string     `json:"jenis"`
	Kecamatan      string     `json:"kecamatan"`
	Alamat         string     `json:"alamat"`
	NoTelepon      *string    `json:"no_telepon"`
	WaktuBuka      *string    `json:"waktu_buka"`
	Deskripsi      *string    `json:"deskripsi"`
	GambarURL      *string    `json:"gambar_url"`
	Latitude       Coordinate `json:"latitude"`
	Longitude      Coordinate `json:"longitude"`
	PasswordAkses  *string    `json:"password_akses,omitempty"`
}

// UMKMColumns are the public columns of the umkm table. password_akses is never selected for listings.
const UMKMColumns = "id,nama_perusahaan,jenis,kecamatan,alamat,no_telepon,waktu_buka,deskripsi,gambar_url,latitude,longitude"

// ToUMKM converts the row into the API shape, applying defaults
func (r *UMKMRow) ToUMKM() UMKM {
	u := UMKM{
		ID:             r.ID,
		Name:           r.NamaPerusahaan,
		Category:       r.Jenis,
		District:       r.Kecamatan,
		Address:        r.Alamat,
		Phone:          DefaultPhone,
		OperatingHours: deref(r.WaktuBuka),
		Description:    fmt.Sprintf("%s terbaik di %s", r.Jenis, r.Kecamatan),
		Lat:            r.Latitude.Or(FallbackLat),
		Lng:            r.Longitude.Or(FallbackLng),
	}

	if phone := strings.TrimSpace(deref(r.NoTelepon)); phone != "" {
		u.Phone = phone
	}
	if desc := strings.TrimSpace(deref(r.Deskripsi)); desc != "" {
		u.Description = desc
	}
	if img := strings.TrimSpace(deref(r.GambarURL)); img != "" {
		u.Image = &img
	}

	return u
}

// Changes returns the mutable columns for an update call
func (r *UMKMRow) Changes() map[string]any {
	changes := map[string]any{
		"nama_perusahaan": r.NamaPerusahaan,
		"jenis":           r.Jenis,
		"kecamatan":       r.Kecamatan,
		"alamat":          r.Alamat,
		"no_telepon":      r.NoTelepon,
		"waktu_buka":      r.WaktuBuka,
		"deskripsi":       r.Deskripsi,
		"latitude":        r.Latitude,
		"longitude":       r.Longitude,
	}
	if r.PasswordAkses != nil {
		changes["password_akses"] = *r.PasswordAkses
	}
	return changes
}

// UMKMInput is the create/update request body
type UMKMInput struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	District       string   `json:"district"`
	Address        string   `json:"address"`
	Phone          string   `json:"phone"`
	OperatingHours string   `json:"operatingHours"`
	Description    string   `json:"description"`
	Lat            *float64 `json:"lat"`
	Lng            *float64 `json:"lng"`
	Password       string   `json:"password"` // stored hashed, optional
}

// Validate checks required fields and coordinate ranges
func (in *UMKMInput) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"name", in.Name},
		{"category", in.Category},
		{"district", in.District},
		{"address", in.Address},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Message: "wajib diisi"}
		}
	}

	if in.Lat != nil && (*in.Lat < -90 || *in.Lat > 90) {
		return &ValidationError{Field: "lat", Message: "harus di antara -90 dan 90"}
	}
	if in.Lng != nil && (*in.Lng < -180 || *in.Lng > 180) {
		return &ValidationError{Field: "lng", Message: "harus di antara -180 dan 180"}
	}

	return nil
}

// ToRow converts the input into a table row; the password is set separately once hashed
func (in *UMKMInput) ToRow() *UMKMRow {
	row := &UMKMRow{
		NamaPerusahaan: strings.TrimSpace(in.Name),
		Jenis:          strings.TrimSpace(in.Category),
		Kecamatan:      strings.TrimSpace(in.District),
		Alamat:         strings.TrimSpace(in.Address),
		NoTelepon:      optional(in.Phone),
		WaktuBuka:      optional(in.OperatingHours),
		Deskripsi:      optional(in.Description),
	}
	if in.Lat != nil {
		row.Latitude = NewCoordinate(*in.Lat)
	}
	if in.Lng != nil {
		row.Longitude = NewCoordinate(*in.Lng)
	}
	return row
}

// UMKMFilter narrows a repository query
type UMKMFilter struct {
	Category string // exact match, empty or CategoryAll means all
	Search   string // case-insensitive substring on name or address
}

// HasCategory reports whether the filter restricts the category
func (f UMKMFilter) HasCategory() bool {
	return f.Category != "" && f.Category != CategoryAll
}

// UMKMListQuery is the parsed listing request
type UMKMListQuery struct {
	Page      int
	Limit     int
	Category  string
	Search    string
	Sort      string
	Bounds    *BoundingBox
	Paginated bool // false keeps the legacy plain-array response
}

// CacheKey identifies the query in the list cache
func (q UMKMListQuery) CacheKey() string {
	category := q.Category
	if category == "" || category == CategoryAll {
		category = "all"
	}
	search := q.Search
	if search == "" {
		search = "none"
	}
	sortKey := q.Sort
	if sortKey == "" {
		sortKey = SortByID
	}
	key := fmt.Sprintf("umkm-%d-%d-%s-%s-%s", q.Page, q.Limit, category, search, sortKey)
	if q.Bounds != nil {
		key += "-" + q.Bounds.String()
	}
	if !q.Paginated {
		key += "-plain"
	}
	return key
}

// Pagination describes a page of results
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// PaginatedUMKM is the paginated listing response
type PaginatedUMKM struct {
	Data       []UMKM     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// UMKMDetail is the detail page payload
type UMKMDetail struct {
	UMKM
	IsOpen        bool   `json:"isOpen"`
	CategoryColor string `json:"categoryColor"`
	WhatsAppURL   string `json:"whatsappUrl,omitempty"`
	DirectionsURL string `json:"directionsUrl"`
}

// NearbyUMKM is a record with its distance from a reference point
type NearbyUMKM struct {
	UMKM
	DistanceKm float64 `json:"distanceKm"`
}

// CategoryInfo is one entry of the category list
type CategoryInfo struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
