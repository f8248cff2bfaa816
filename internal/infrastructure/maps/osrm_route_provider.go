package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
)

// DefaultOSRMBaseURL is the public OSRM demo server
const DefaultOSRMBaseURL = "https://router.project-osrm.org"

// OSRMRouteProvider asks an OSRM server for driving routes
type OSRMRouteProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewOSRMRouteProvider creates a provider for the given server
func NewOSRMRouteProvider(baseURL string) repository.RouteProvider {
	if baseURL == "" {
		baseURL = DefaultOSRMBaseURL
	}
	return &OSRMRouteProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetDrivingRoute returns the first route, with the path converted to lat/lng order
func (o *OSRMRouteProvider) GetDrivingRoute(ctx context.Context, from, to model.LatLng) (*model.RouteDetails, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.buildURL(from, to), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build OSRM request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OSRM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OSRM returned status %s", resp.Status)
	}

	var apiResp osrmRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode OSRM response: %w", err)
	}

	if apiResp.Code != "Ok" || len(apiResp.Routes) == 0 {
		return nil, fmt.Errorf("%w: code=%s %s", model.ErrRouteNotFound, apiResp.Code, apiResp.Message)
	}

	first := apiResp.Routes[0]
	if first.Geometry == nil {
		return nil, fmt.Errorf("%w: route without geometry", model.ErrRouteNotFound)
	}
	line, ok := first.Geometry.Geometry().(orb.LineString)
	if !ok || len(line) < 2 {
		return nil, fmt.Errorf("%w: unexpected geometry %s", model.ErrRouteNotFound, first.Geometry.Type)
	}

	path := make([]model.LatLng, len(line))
	for i, p := range line {
		path[i] = model.LatLng{Lat: p.Lat(), Lng: p.Lon()}
	}

	return &model.RouteDetails{
		Path:            path,
		DistanceMeters:  first.Distance,
		DurationSeconds: first.Duration,
	}, nil
}

func (o *OSRMRouteProvider) buildURL(from, to model.LatLng) string {
	params := url.Values{}
	params.Set("overview", "full")
	params.Set("geometries", "geojson")

	return fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?%s",
		o.baseURL, from.Lng, from.Lat, to.Lng, to.Lat, params.Encode())
}

// --- OSRM response ---

type osrmRouteResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message,omitempty"`
	Routes  []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Geometry *geojson.Geometry `json:"geometry"`
	Distance float64           `json:"distance"` // meters
	Duration float64           `json:"duration"` // seconds
}
