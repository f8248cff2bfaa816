package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/helper"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
)

// parseListQuery reads page, limit, category, search, sort and bbox.
// The listing is paginated only when page is present; limit alone is ignored.
func parseListQuery(c *gin.Context) (model.UMKMListQuery, error) {
	q := model.UMKMListQuery{
		Category: strings.TrimSpace(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("search")),
		Sort:     strings.TrimSpace(c.Query("sort")),
	}

	pageStr, hasPage := c.GetQuery("page")
	q.Paginated = hasPage
	if q.Paginated {
		page, err := optionalInt(pageStr, model.DefaultPage)
		if err != nil {
			return q, &model.ValidationError{Field: "page", Message: "harus berupa angka"}
		}
		limit, err := optionalInt(c.Query("limit"), model.DefaultLimit)
		if err != nil {
			return q, &model.ValidationError{Field: "limit", Message: "harus berupa angka"}
		}
		q.Page, q.Limit = helper.NormalizePage(page, limit)
	}

	if bbox := c.Query("bbox"); bbox != "" {
		box, err := parseBBox(bbox)
		if err != nil {
			return q, err
		}
		q.Bounds = box
	}

	return q, nil
}

func optionalInt(s string, def int) (int, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return strconv.Atoi(strings.TrimSpace(s))
}

// parseBBox parses "min_lng,min_lat,max_lng,max_lat"
func parseBBox(s string) (*model.BoundingBox, error) {
	coords := strings.Split(s, ",")
	if len(coords) != 4 {
		return nil, &model.ValidationError{Field: "bbox", Message: "format: min_lng,min_lat,max_lng,max_lat"}
	}

	names := []string{"min_lng", "min_lat", "max_lng", "max_lat"}
	values := make([]float64, 4)
	for i, raw := range coords {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, &model.ValidationError{Field: "bbox", Message: fmt.Sprintf("nilai %s tidak valid", names[i])}
		}
		values[i] = v
	}

	box := model.BoundingBox{MinLng: values[0], MinLat: values[1], MaxLng: values[2], MaxLat: values[3]}
	if err := helper.ValidateBoundingBox(box); err != nil {
		return nil, err
	}
	return &box, nil
}

// parseLatLng reads a coordinate pair from two query parameters.
// ok is false when both are absent.
func parseLatLng(c *gin.Context, latKey, lngKey string) (p model.LatLng, ok bool, err error) {
	latStr, lngStr := c.Query(latKey), c.Query(lngKey)
	if latStr == "" && lngStr == "" {
		return p, false, nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return p, false, &model.ValidationError{Field: latKey, Message: "harus berupa angka"}
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return p, false, &model.ValidationError{Field: lngKey, Message: "harus berupa angka"}
	}

	p = model.LatLng{Lat: lat, Lng: lng}
	if !p.Valid() {
		return p, false, &model.ValidationError{Field: latKey + "," + lngKey, Message: "koordinat di luar jangkauan"}
	}
	return p, true, nil
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &model.ValidationError{Field: "id", Message: "ID tidak valid"}
	}
	return id, nil
}
