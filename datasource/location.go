package datasource

import (
	"context"
	"fmt"
	"log/slog"

	"forecast-card/models"
)

// StaticLocation returns a fixed coordinate, typically from flags or configuration
type StaticLocation struct {
	coord models.Coordinate
}

// NewStaticLocation creates a provider for a fixed coordinate
func NewStaticLocation(coord models.Coordinate) *StaticLocation {
	return &StaticLocation{coord: coord}
}

// Name returns the provider name
func (s *StaticLocation) Name() string {
	return "static"
}

// GetCurrentPosition returns the configured coordinate
func (s *StaticLocation) GetCurrentPosition(ctx context.Context) (models.Coordinate, error) {
	if err := s.coord.Validate(); err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: %w", models.ErrLocationDenied, err)
	}
	return s.coord, nil
}

// UnsupportedLocation is used when no location source is configured
type UnsupportedLocation struct{}

// Name returns the provider name
func (UnsupportedLocation) Name() string {
	return "unsupported"
}

// GetCurrentPosition always fails with models.ErrLocationUnsupported
func (UnsupportedLocation) GetCurrentPosition(ctx context.Context) (models.Coordinate, error) {
	return models.Coordinate{}, fmt.Errorf("%w: no coordinate, place or geoip configured", models.ErrLocationUnsupported)
}

// NewLocationProvider picks the location source described by the configuration
func NewLocationProvider(config *Config, logger *slog.Logger) LocationProvider {
	loc := config.Location
	switch {
	case loc.Latitude != nil && loc.Longitude != nil:
		return NewStaticLocation(models.Coordinate{Latitude: *loc.Latitude, Longitude: *loc.Longitude})
	case loc.Place != "":
		nominatim := NewNominatimLocation(config.Geocoding.NominatimURL, loc.Place,
			config.Geocoding.UserAgent, config.GeocodingTimeout())
		logger.Debug("using place name geocoding", "place", loc.Place)
		return NewRateLimitedLocationProvider(nominatim, config.Geocoding.RequestsPerSecond, 1)
	case loc.GeoIP:
		geoip := NewGeoIPLocation(config.Geocoding.GeoIPURL, config.GeocodingTimeout())
		logger.Debug("using IP geolocation")
		return NewRateLimitedLocationProvider(geoip, config.Geocoding.RequestsPerSecond, 1)
	default:
		return UnsupportedLocation{}
	}
}

var (
	_ LocationProvider = (*StaticLocation)(nil)
	_ LocationProvider = UnsupportedLocation{}
)
