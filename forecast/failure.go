package forecast

import (
	"errors"

	"forecast-card/models"
)

// FailureKind is the user-facing classification of a failed run
type FailureKind int

const (
	ForecastFetchFailed FailureKind = iota
	LocationDenied
	LocationUnsupported
)

func (k FailureKind) String() string {
	switch k {
	case LocationDenied:
		return "location_denied"
	case LocationUnsupported:
		return "location_unsupported"
	default:
		return "forecast_fetch_failed"
	}
}

// Message is the text that replaces the forecast output
func (k FailureKind) Message() string {
	switch k {
	case LocationDenied:
		return "Unable to retrieve your location."
	case LocationUnsupported:
		return "Geolocation is not supported by your browser."
	default:
		return "Failed to fetch weather data. Please try again later."
	}
}

// Classify maps an error to its failure kind. Malformed payloads and anything
// unrecognised count as a failed fetch.
func Classify(err error) FailureKind {
	switch {
	case errors.Is(err, models.ErrLocationUnsupported):
		return LocationUnsupported
	case errors.Is(err, models.ErrLocationDenied):
		return LocationDenied
	default:
		return ForecastFetchFailed
	}
}

// Failure is returned by Pipeline.Run; the whole run is abandoned
type Failure struct {
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	return f.Kind.String() + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}
