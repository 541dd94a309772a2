package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"forecast-card/models"
)

// GeoIPLocation approximates the host position from its public IP address using ip-api.com
type GeoIPLocation struct {
	baseURL    string
	httpClient *http.Client
}

// NewGeoIPLocation creates an IP geolocation provider
func NewGeoIPLocation(baseURL string, timeout time.Duration) *GeoIPLocation {
	return &GeoIPLocation{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the provider name
func (g *GeoIPLocation) Name() string {
	return "ip-api"
}

// GetCurrentPosition looks up the coordinate of the caller's public IP
func (g *GeoIPLocation) GetCurrentPosition(ctx context.Context) (models.Coordinate, error) {
	endpoint := fmt.Sprintf("%s/json/", g.baseURL)
	params := url.Values{}
	params.Add("fields", "status,message,lat,lon")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: failed to create request: %w", models.ErrLocationDenied, err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: failed to execute request: %w", models.ErrLocationDenied, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: failed to read response body: %w", models.ErrLocationDenied, err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.Coordinate{}, fmt.Errorf("%w: geoip API returned status %d", models.ErrLocationDenied, resp.StatusCode)
	}

	var response struct {
		Status  string  `json:"status"`
		Message string  `json:"message"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: failed to parse response: %w", models.ErrLocationDenied, err)
	}

	// ip-api answers 200 with status "fail" for private or reserved ranges
	if response.Status != "success" {
		return models.Coordinate{}, fmt.Errorf("%w: geoip lookup failed: %s", models.ErrLocationDenied, response.Message)
	}

	return models.Coordinate{Latitude: response.Lat, Longitude: response.Lon}, nil
}

var _ LocationProvider = (*GeoIPLocation)(nil)
