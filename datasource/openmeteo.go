package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"forecast-card/models"
)

// OpenMeteoClient implements ForecastClient against the Open-Meteo forecast API
type OpenMeteoClient struct {
	baseURL           string
	httpClient        *http.Client
	hourlyTemperature bool
}

// NewOpenMeteoClient creates a new Open-Meteo client. When hourlyTemperature is
// set the hourly temperature series is requested as well.
func NewOpenMeteoClient(baseURL string, timeout time.Duration, hourlyTemperature bool) *OpenMeteoClient {
	return &OpenMeteoClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		hourlyTemperature: hourlyTemperature,
	}
}

// Name returns the client name
func (c *OpenMeteoClient) Name() string {
	return "Open-Meteo"
}

// FetchForecast fetches the 7-day forecast for a coordinate
func (c *OpenMeteoClient) FetchForecast(ctx context.Context, coord models.Coordinate) (models.RawForecast, error) {
	endpoint := fmt.Sprintf("%s/forecast", c.baseURL)
	params := c.queryParams(coord)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return models.RawForecast{}, fmt.Errorf("%w: failed to create request: %w", models.ErrForecastFetchFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.RawForecast{}, fmt.Errorf("%w: failed to execute request: %w", models.ErrForecastFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.RawForecast{}, fmt.Errorf("%w: failed to read response body: %w", models.ErrForecastFetchFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.RawForecast{}, fmt.Errorf("%w: API error (status %d): %s", models.ErrForecastFetchFailed, resp.StatusCode, apiErrorReason(body))
	}

	var forecast models.RawForecast
	if err := json.Unmarshal(body, &forecast); err != nil {
		return models.RawForecast{}, fmt.Errorf("%w: failed to parse response: %w", models.ErrForecastFetchFailed, err)
	}

	return forecast, nil
}

func (c *OpenMeteoClient) queryParams(coord models.Coordinate) url.Values {
	hourly := "precipitation"
	if c.hourlyTemperature {
		hourly += ",temperature_2m"
	}

	params := url.Values{}
	params.Add("latitude", strconv.FormatFloat(coord.Latitude, 'f', 4, 64))
	params.Add("longitude", strconv.FormatFloat(coord.Longitude, 'f', 4, 64))
	params.Add("current_weather", "true")
	params.Add("hourly", hourly)
	params.Add("daily", "precipitation_sum,temperature_2m_max,temperature_2m_min,weathercode")
	params.Add("timezone", "auto")
	return params
}

// apiErrorReason extracts the "reason" field Open-Meteo sends with 4xx responses
func apiErrorReason(body []byte) string {
	var apiErr struct {
		Error  bool   `json:"error"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Reason != "" {
		return apiErr.Reason
	}
	return string(body)
}

var _ ForecastClient = (*OpenMeteoClient)(nil)
