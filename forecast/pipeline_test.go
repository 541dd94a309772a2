package forecast

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"forecast-card/metrics"
	"forecast-card/models"
)

type fakeLocation struct {
	coord models.Coordinate
	err   error
	calls int
}

func (f *fakeLocation) Name() string { return "fake" }

func (f *fakeLocation) GetCurrentPosition(ctx context.Context) (models.Coordinate, error) {
	f.calls++
	return f.coord, f.err
}

type fakeClient struct {
	raw   models.RawForecast
	err   error
	calls int
	got   models.Coordinate
}

func (f *fakeClient) Name() string { return "fake" }

func (f *fakeClient) FetchForecast(ctx context.Context, coord models.Coordinate) (models.RawForecast, error) {
	f.calls++
	f.got = coord
	return f.raw, f.err
}

func newTestPipeline(loc *fakeLocation, client *fakeClient) *Pipeline {
	return &Pipeline{
		Location: loc,
		Client:   client,
		Options:  englishOptions(),
		Metrics:  metrics.NewRecorder(),
		Now:      func() time.Time { return testToday },
		NewID:    func() string { return "plan-1" },
	}
}

func TestPipelineRun(t *testing.T) {
	coord := models.Coordinate{Latitude: 52.52, Longitude: 13.41}
	raw := sampleForecast()
	raw.Hourly.Precipitation[2] = ptr(1.5)
	raw.CurrentWeather = &models.CurrentWeather{Temperature: ptr(11.0), WindSpeed: ptr(5.5)}

	loc := &fakeLocation{coord: coord}
	client := &fakeClient{raw: raw}

	result, err := newTestPipeline(loc, client).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.got != coord {
		t.Errorf("expected fetch for %v, got %v", coord, client.got)
	}
	if result.Coordinate != coord {
		t.Errorf("expected result coordinate %v, got %v", coord, result.Coordinate)
	}
	if result.Plan.ID != "plan-1" {
		t.Errorf("expected plan id plan-1, got %s", result.Plan.ID)
	}
	if len(result.Days) != ForecastDays || len(result.Plan.Days) != ForecastDays {
		t.Fatalf("expected %d days, got %d/%d", ForecastDays, len(result.Days), len(result.Plan.Days))
	}
	if result.Plan.Current == nil || result.Plan.Current.Temperature != "11°C" {
		t.Errorf("expected current conditions, got %+v", result.Plan.Current)
	}
	if result.Plan.Days[0].Chart == nil {
		t.Errorf("expected a chart for today")
	}
}

func TestPipelineUsesForecastTimezone(t *testing.T) {
	raw := sampleForecast()
	raw.Timezone = "Asia/Tokyo"
	raw.UTCOffsetSeconds = 9 * 60 * 60

	p := newTestPipeline(&fakeLocation{}, &fakeClient{raw: raw})
	// 20:00 UTC Sunday is already Monday in Tokyo
	p.Now = func() time.Time { return time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC) }

	result, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.Days[2].Label; got != "Wednesday" {
		t.Errorf("expected Wednesday for day 2, got %s", got)
	}
}

func TestPipelineFailures(t *testing.T) {
	malformed := sampleForecast()
	malformed.Daily.WeatherCode = nil

	tests := []struct {
		name        string
		locErr      error
		fetchErr    error
		raw         models.RawForecast
		wantKind    FailureKind
		wantFetches int
	}{
		{
			name:        "location unsupported",
			locErr:      fmt.Errorf("%w: nothing configured", models.ErrLocationUnsupported),
			wantKind:    LocationUnsupported,
			wantFetches: 0,
		},
		{
			name:        "location denied",
			locErr:      fmt.Errorf("%w: lookup refused", models.ErrLocationDenied),
			wantKind:    LocationDenied,
			wantFetches: 0,
		},
		{
			name:        "fetch failed",
			fetchErr:    fmt.Errorf("%w: API error (status 503)", models.ErrForecastFetchFailed),
			wantKind:    ForecastFetchFailed,
			wantFetches: 1,
		},
		{
			name:        "malformed payload",
			raw:         malformed,
			wantKind:    ForecastFetchFailed,
			wantFetches: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := &fakeLocation{err: tt.locErr}
			client := &fakeClient{raw: tt.raw, err: tt.fetchErr}

			result, err := newTestPipeline(loc, client).Run(context.Background())
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var failure *Failure
			if !errors.As(err, &failure) {
				t.Fatalf("expected *Failure, got %T", err)
			}
			if failure.Kind != tt.wantKind {
				t.Errorf("expected kind %s, got %s", tt.wantKind, failure.Kind)
			}
			if client.calls != tt.wantFetches {
				t.Errorf("expected %d fetches, got %d", tt.wantFetches, client.calls)
			}
			if loc.calls != 1 {
				t.Errorf("expected exactly one location lookup, got %d", loc.calls)
			}
			if result.Plan.Days != nil {
				t.Errorf("expected no partial plan, got %d days", len(result.Plan.Days))
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err     error
		want    FailureKind
		message string
	}{
		{models.ErrLocationUnsupported, LocationUnsupported, "Geolocation is not supported by your browser."},
		{fmt.Errorf("wrapped: %w", models.ErrLocationDenied), LocationDenied, "Unable to retrieve your location."},
		{models.ErrForecastFetchFailed, ForecastFetchFailed, "Failed to fetch weather data. Please try again later."},
		{models.ErrMalformedPayload, ForecastFetchFailed, "Failed to fetch weather data. Please try again later."},
		{errors.New("something else"), ForecastFetchFailed, "Failed to fetch weather data. Please try again later."},
	}

	for _, tt := range tests {
		kind := Classify(tt.err)
		if kind != tt.want {
			t.Errorf("%v: expected %s, got %s", tt.err, tt.want, kind)
		}
		if kind.Message() != tt.message {
			t.Errorf("%v: expected message %q, got %q", tt.err, tt.message, kind.Message())
		}
	}
}
