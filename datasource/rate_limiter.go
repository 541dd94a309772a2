package datasource

import (
	"context"
	"fmt"

	"forecast-card/models"

	"golang.org/x/time/rate"
)

// RateLimitedLocationProvider wraps a LocationProvider with rate limiting
type RateLimitedLocationProvider struct {
	provider LocationProvider
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedLocationProvider throttles position lookups to rps. Geocoding
// services often allow one call per second or less, so rps may be fractional.
func NewRateLimitedLocationProvider(provider LocationProvider, rps float64, burst int) *RateLimitedLocationProvider {
	return &RateLimitedLocationProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// GetCurrentPosition resolves the position, respecting rate limits
func (r *RateLimitedLocationProvider) GetCurrentPosition(ctx context.Context) (models.Coordinate, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: rate limit wait canceled: %w", models.ErrLocationDenied, err)
	}

	return r.provider.GetCurrentPosition(ctx)
}

// Name returns the provider name
func (r *RateLimitedLocationProvider) Name() string {
	return r.name
}

// RateLimitedForecastClient wraps a ForecastClient with rate limiting
type RateLimitedForecastClient struct {
	client  ForecastClient
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedForecastClient throttles forecast fetches to rps, allowing
// burst calls back to back. burst must be at least 1.
func NewRateLimitedForecastClient(client ForecastClient, rps float64, burst int) *RateLimitedForecastClient {
	return &RateLimitedForecastClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", client.Name()),
	}
}

// FetchForecast fetches forecast data, respecting rate limits
func (r *RateLimitedForecastClient) FetchForecast(ctx context.Context, coord models.Coordinate) (models.RawForecast, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.RawForecast{}, fmt.Errorf("%w: rate limit wait canceled: %w", models.ErrForecastFetchFailed, err)
	}

	return r.client.FetchForecast(ctx, coord)
}

// Name returns the client name
func (r *RateLimitedForecastClient) Name() string {
	return r.name
}

// Verify that our rate limited types implement the required interfaces
var (
	_ LocationProvider = (*RateLimitedLocationProvider)(nil)
	_ ForecastClient   = (*RateLimitedForecastClient)(nil)
)
