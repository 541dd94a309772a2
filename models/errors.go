package models

import "errors"

var (
	// ErrLocationDenied means a location source exists but refused or failed to answer
	ErrLocationDenied = errors.New("location denied")

	// ErrLocationUnsupported means no location source is available at all
	ErrLocationUnsupported = errors.New("location unsupported")

	// ErrForecastFetchFailed covers transport errors and non-success HTTP statuses
	ErrForecastFetchFailed = errors.New("forecast fetch failed")

	// ErrMalformedPayload means the forecast payload lacks required series
	ErrMalformedPayload = errors.New("malformed forecast payload")
)
