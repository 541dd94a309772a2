package datasource

import (
	"context"

	"forecast-card/models"
)

// LocationProvider supplies the coordinate a forecast is requested for.
// Failures wrap models.ErrLocationDenied or models.ErrLocationUnsupported.
type LocationProvider interface {
	// GetCurrentPosition resolves the coordinate once
	GetCurrentPosition(ctx context.Context) (models.Coordinate, error)

	// Name returns the provider's name
	Name() string
}

// ForecastClient fetches the raw forecast payload for a coordinate.
// Failures wrap models.ErrForecastFetchFailed.
type ForecastClient interface {
	// FetchForecast fetches the 7-day forecast for the coordinate
	FetchForecast(ctx context.Context, coord models.Coordinate) (models.RawForecast, error)

	// Name returns the client's name
	Name() string
}
