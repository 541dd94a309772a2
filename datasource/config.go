package datasource

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents the application configuration
type Config struct {
	// Where the forecast is for. The first populated source wins:
	// coordinate, then place name, then IP geolocation.
	Location struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Place     string   `json:"place"`
		GeoIP     bool     `json:"geoip"`
	} `json:"location"`

	OpenMeteo struct {
		BaseURL           string  `json:"baseURL"`
		TimeoutSeconds    int     `json:"timeoutSeconds"`
		RequestsPerSecond float64 `json:"requestsPerSecond"`
		Burst             int     `json:"burst"`
	} `json:"openMeteo"`

	Geocoding struct {
		NominatimURL      string  `json:"nominatimURL"`
		GeoIPURL          string  `json:"geoipURL"`
		UserAgent         string  `json:"userAgent"`
		TimeoutSeconds    int     `json:"timeoutSeconds"`
		RequestsPerSecond float64 `json:"requestsPerSecond"`
	} `json:"geocoding"`

	Render struct {
		HourlyTemperature bool   `json:"hourlyTemperature"`
		LogPayload        bool   `json:"logPayload"`
		Locale            string `json:"locale"`
	} `json:"render"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.OpenMeteo.BaseURL = "https://api.open-meteo.com/v1"
	config.OpenMeteo.TimeoutSeconds = 10
	// Open-Meteo free tier allows 600 calls/minute
	config.OpenMeteo.RequestsPerSecond = 10
	config.OpenMeteo.Burst = 1
	config.Geocoding.NominatimURL = "https://nominatim.openstreetmap.org"
	config.Geocoding.GeoIPURL = "http://ip-api.com"
	config.Geocoding.UserAgent = "forecast-card/1.0"
	config.Geocoding.TimeoutSeconds = 10
	// Nominatim usage policy: at most 1 request per second
	config.Geocoding.RequestsPerSecond = 1
	return config
}

// LoadConfig loads configuration from a JSON file on top of DefaultConfig
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	return config, nil
}

// ApplyEnv overrides configuration values from environment variables
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("FORECAST_LATITUDE"); ok && v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("FORECAST_LATITUDE: %w", err)
		}
		c.Location.Latitude = &lat
	}
	if v, ok := lookup("FORECAST_LONGITUDE"); ok && v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("FORECAST_LONGITUDE: %w", err)
		}
		c.Location.Longitude = &lon
	}
	if v, ok := lookup("FORECAST_PLACE"); ok && v != "" {
		c.Location.Place = v
	}
	if v, ok := lookup("FORECAST_GEOIP"); ok && v != "" {
		geoip, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FORECAST_GEOIP: %w", err)
		}
		c.Location.GeoIP = geoip
	}
	if v, ok := lookup("FORECAST_LOCALE"); ok && v != "" {
		c.Render.Locale = v
	}
	if v, ok := lookup("OPEN_METEO_URL"); ok && v != "" {
		c.OpenMeteo.BaseURL = v
	}
	if v, ok := lookup("FORECAST_USER_AGENT"); ok && v != "" {
		c.Geocoding.UserAgent = v
	}
	return nil
}

// Validate checks the configuration for contradictions
func (c *Config) Validate() error {
	if (c.Location.Latitude == nil) != (c.Location.Longitude == nil) {
		return errors.New("latitude and longitude must be set together")
	}
	if c.OpenMeteo.BaseURL == "" {
		return errors.New("openMeteo.baseURL is empty")
	}
	if c.OpenMeteo.TimeoutSeconds <= 0 || c.Geocoding.TimeoutSeconds <= 0 {
		return errors.New("timeouts must be positive")
	}
	// a limiter with burst 0 rejects every request
	if c.OpenMeteo.RequestsPerSecond <= 0 || c.OpenMeteo.Burst < 1 {
		return errors.New("openMeteo.requestsPerSecond must be positive and openMeteo.burst at least 1")
	}
	if c.Geocoding.RequestsPerSecond <= 0 {
		return errors.New("geocoding.requestsPerSecond must be positive")
	}
	return nil
}

// ForecastTimeout returns the HTTP timeout for forecast requests
func (c *Config) ForecastTimeout() time.Duration {
	return time.Duration(c.OpenMeteo.TimeoutSeconds) * time.Second
}

// GeocodingTimeout returns the HTTP timeout for location lookups
func (c *Config) GeocodingTimeout() time.Duration {
	return time.Duration(c.Geocoding.TimeoutSeconds) * time.Second
}
