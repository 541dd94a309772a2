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

// NominatimLocation resolves a place name to a coordinate with OpenStreetMap Nominatim
type NominatimLocation struct {
	baseURL    string
	place      string
	userAgent  string
	httpClient *http.Client
}

// NewNominatimLocation creates a geocoding location provider for a place name
func NewNominatimLocation(baseURL, place, userAgent string, timeout time.Duration) *NominatimLocation {
	return &NominatimLocation{
		baseURL:   baseURL,
		place:     place,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the provider name
func (n *NominatimLocation) Name() string {
	return "Nominatim"
}

// GetCurrentPosition geocodes the configured place name
func (n *NominatimLocation) GetCurrentPosition(ctx context.Context) (models.Coordinate, error) {
	endpoint := fmt.Sprintf("%s/search", n.baseURL)
	params := url.Values{}
	params.Add("q", n.place)
	params.Add("format", "json")
	params.Add("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: failed to create request: %w", models.ErrLocationDenied, err)
	}
	// Nominatim rejects requests without an identifying User-Agent
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: failed to execute request: %w", models.ErrLocationDenied, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: failed to read response body: %w", models.ErrLocationDenied, err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.Coordinate{}, fmt.Errorf("%w: geocoding API returned status %d", models.ErrLocationDenied, resp.StatusCode)
	}

	var results []struct {
		Lat         float64 `json:"lat,string"`
		Lon         float64 `json:"lon,string"`
		DisplayName string  `json:"display_name"`
	}
	if err := json.Unmarshal(body, &results); err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: failed to parse response: %w", models.ErrLocationDenied, err)
	}

	if len(results) == 0 {
		return models.Coordinate{}, fmt.Errorf("%w: no coordinates found for %q", models.ErrLocationDenied, n.place)
	}

	coord := models.Coordinate{Latitude: results[0].Lat, Longitude: results[0].Lon}
	if err := coord.Validate(); err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: %w", models.ErrLocationDenied, err)
	}
	return coord, nil
}

var _ LocationProvider = (*NominatimLocation)(nil)
