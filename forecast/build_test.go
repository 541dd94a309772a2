package forecast

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"forecast-card/models"
)

// 2026-10-18 is a Sunday
var testToday = time.Date(2026, 10, 18, 13, 25, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

// sampleForecast returns a well-formed 7-day payload without any rain.
// hourly.temperature_2m equals the hour of day.
func sampleForecast() models.RawForecast {
	var raw models.RawForecast

	codes := []int{0, 61, 3, 45, 95, 200, 2}
	for i, code := range codes {
		raw.Daily.Time = append(raw.Daily.Time, fmt.Sprintf("2026-10-%02d", 18+i))
		raw.Daily.WeatherCode = append(raw.Daily.WeatherCode, ptr(code))
		raw.Daily.Temperature2mMax = append(raw.Daily.Temperature2mMax, ptr(20+float64(i)))
		raw.Daily.Temperature2mMin = append(raw.Daily.Temperature2mMin, ptr(10+float64(i)))
		raw.Daily.PrecipitationSum = append(raw.Daily.PrecipitationSum, ptr(0.0))
	}

	start := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	for h := 0; h < 7*HoursPerDay; h++ {
		raw.Hourly.Time = append(raw.Hourly.Time, start.Add(time.Duration(h)*time.Hour).Format("2006-01-02T15:04"))
		raw.Hourly.Precipitation = append(raw.Hourly.Precipitation, ptr(0.0))
		raw.Hourly.Temperature2m = append(raw.Hourly.Temperature2m, ptr(float64(h%HoursPerDay)))
	}

	return raw
}

func englishOptions() Options {
	return Options{Weekdays: NewWeekdayNamer("en")}
}

func TestBuildForecastLabels(t *testing.T) {
	days, err := BuildForecast(sampleForecast(), testToday, englishOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"Today", "Tomorrow", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if len(days) != len(expected) {
		t.Fatalf("expected %d days, got %d", len(expected), len(days))
	}
	for i, day := range days {
		if day.Label != expected[i] {
			t.Errorf("day %d: expected label %q, got %q", i, expected[i], day.Label)
		}
		if day.Index != i {
			t.Errorf("day %d: expected index %d, got %d", i, i, day.Index)
		}
	}
}

func TestBuildForecastZeroOptions(t *testing.T) {
	days, err := BuildForecast(sampleForecast(), testToday, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"Today", "Tomorrow", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	for i, day := range days {
		if day.Label != expected[i] {
			t.Errorf("day %d: expected label %q, got %q", i, expected[i], day.Label)
		}
	}
	if days[0].HourlyTemp != nil {
		t.Error("hourly temperature should be off by default")
	}
}

func TestBuildForecastIcons(t *testing.T) {
	days, err := BuildForecast(sampleForecast(), testToday, englishOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if days[0].Icon != "☀️" {
		t.Errorf("expected day 0 icon ☀️, got %s", days[0].Icon)
	}
	if days[1].Icon != "🌧️" {
		t.Errorf("expected day 1 icon 🌧️, got %s", days[1].Icon)
	}
	if days[5].Icon != UnknownIcon {
		t.Errorf("expected fallback icon for code 200, got %s", days[5].Icon)
	}
}

func TestIconTable(t *testing.T) {
	if len(weatherIcons) != 18 {
		t.Fatalf("expected 18 mapped codes, got %d", len(weatherIcons))
	}
	for code, icon := range weatherIcons {
		if got := Icon(code); got != icon {
			t.Errorf("code %d: expected %s, got %s", code, icon, got)
		}
	}
	for _, code := range []int{-1, 4, 56, 71, 200} {
		if got := Icon(code); got != UnknownIcon {
			t.Errorf("code %d: expected fallback icon, got %s", code, got)
		}
	}
}

func TestBuildForecastRainDetection(t *testing.T) {
	tests := []struct {
		name      string
		hours     map[int]*float64
		wantRain  bool
		wantValue map[int]float64
	}{
		{
			name:     "all zero",
			wantRain: false,
		},
		{
			name:      "negative reading is clamped and is not rain",
			hours:     map[int]*float64{5: ptr(-0.3)},
			wantRain:  false,
			wantValue: map[int]float64{5: 0},
		},
		{
			name:      "rain at 2:00",
			hours:     map[int]*float64{2: ptr(1.5)},
			wantRain:  true,
			wantValue: map[int]float64{2: 1.5, 3: 0},
		},
		{
			name:      "null readings count as dry",
			hours:     map[int]*float64{0: nil, 23: nil},
			wantRain:  false,
			wantValue: map[int]float64{0: 0, 23: 0},
		},
		{
			name:      "negative and positive mixed",
			hours:     map[int]*float64{1: ptr(-2.0), 7: ptr(0.1)},
			wantRain:  true,
			wantValue: map[int]float64{1: 0, 7: 0.1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := sampleForecast()
			for hour, v := range tt.hours {
				raw.Hourly.Precipitation[hour] = v
			}

			days, err := BuildForecast(raw, testToday, englishOptions())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			day := days[0]
			if day.HasRain != tt.wantRain {
				t.Errorf("expected HasRain=%t, got %t", tt.wantRain, day.HasRain)
			}
			if len(day.HourlyRain) != HoursPerDay {
				t.Fatalf("expected %d hourly values, got %d", HoursPerDay, len(day.HourlyRain))
			}
			for hour, want := range tt.wantValue {
				if got := day.HourlyRain[hour]; got != want {
					t.Errorf("hour %d: expected %v, got %v", hour, want, got)
				}
			}
			for hour, v := range day.HourlyRain {
				if v < 0 {
					t.Errorf("hour %d: negative value %v", hour, v)
				}
			}
			for _, other := range days[1:] {
				if other.HasRain {
					t.Errorf("day %d unexpectedly has rain", other.Index)
				}
			}
		})
	}
}

func TestBuildForecastSlicesPerDay(t *testing.T) {
	raw := sampleForecast()
	// hour 3 of day 4
	raw.Hourly.Precipitation[4*HoursPerDay+3] = ptr(2.25)

	days, err := BuildForecast(raw, testToday, englishOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, day := range days {
		if day.HasRain != (i == 4) {
			t.Errorf("day %d: unexpected HasRain=%t", i, day.HasRain)
		}
	}
	if got := days[4].HourlyRain[3]; got != 2.25 {
		t.Errorf("expected 2.25 at day 4 hour 3, got %v", got)
	}
}

func TestBuildForecastMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.RawForecast)
		opts   Options
	}{
		{
			name:   "missing weathercode",
			mutate: func(r *models.RawForecast) { r.Daily.WeatherCode = nil },
		},
		{
			name:   "missing precipitation",
			mutate: func(r *models.RawForecast) { r.Hourly.Precipitation = nil },
		},
		{
			name:   "short precipitation series",
			mutate: func(r *models.RawForecast) { r.Hourly.Precipitation = r.Hourly.Precipitation[:100] },
		},
		{
			name:   "missing hourly time with temperature table",
			mutate: func(r *models.RawForecast) { r.Hourly.Time = nil },
			opts:   Options{HourlyTemperature: true},
		},
		{
			name:   "missing hourly temperature with temperature table",
			mutate: func(r *models.RawForecast) { r.Hourly.Temperature2m = []*float64{} },
			opts:   Options{HourlyTemperature: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := sampleForecast()
			tt.mutate(&raw)

			days, err := BuildForecast(raw, testToday, tt.opts)
			if !errors.Is(err, models.ErrMalformedPayload) {
				t.Fatalf("expected ErrMalformedPayload, got %v", err)
			}
			if days != nil {
				t.Errorf("expected no days on failure, got %d", len(days))
			}
		})
	}
}

func TestBuildForecastHourlyTemperatureNotRequiredByDefault(t *testing.T) {
	raw := sampleForecast()
	raw.Hourly.Time = nil
	raw.Hourly.Temperature2m = nil

	days, err := BuildForecast(raw, testToday, englishOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days[0].HourlyTemp != nil {
		t.Errorf("expected no temperature table, got %d rows", len(days[0].HourlyTemp))
	}
}

func TestBuildForecastNullValues(t *testing.T) {
	raw := sampleForecast()
	raw.Daily.Temperature2mMax[2] = nil
	raw.Daily.Temperature2mMin = raw.Daily.Temperature2mMin[:3]
	raw.Daily.PrecipitationSum = nil
	raw.Daily.WeatherCode[6] = nil

	days, err := BuildForecast(raw, testToday, englishOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != ForecastDays {
		t.Fatalf("expected %d days, got %d", ForecastDays, len(days))
	}
	if days[2].MaxTemp != nil {
		t.Errorf("expected nil max temp on day 2")
	}
	if days[5].MinTemp != nil {
		t.Errorf("expected nil min temp on day 5")
	}
	if days[0].RainSum != nil {
		t.Errorf("expected nil rain sum")
	}
	if days[6].Icon != UnknownIcon {
		t.Errorf("expected fallback icon for null code, got %s", days[6].Icon)
	}
}

func TestBuildForecastCapsAtSevenDays(t *testing.T) {
	raw := sampleForecast()
	raw.Daily.WeatherCode = append(raw.Daily.WeatherCode, ptr(1))
	for h := 0; h < HoursPerDay; h++ {
		raw.Hourly.Precipitation = append(raw.Hourly.Precipitation, ptr(0.0))
	}

	days, err := BuildForecast(raw, testToday, englishOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != ForecastDays {
		t.Errorf("expected %d days, got %d", ForecastDays, len(days))
	}
}

func TestBuildForecastHourlyTemperature(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantRows  int
		wantFirst string
		wantLast  string
	}{
		{
			name:      "starts at the current hour",
			now:       testToday,
			wantRows:  24,
			wantFirst: "13:00",
			wantLast:  "12:00",
		},
		{
			name:      "exact hour",
			now:       time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
			wantRows:  24,
			wantFirst: "00:00",
			wantLast:  "23:00",
		},
		{
			name:      "falls back to index 0 when no timestamp is late enough",
			now:       time.Date(2027, 1, 1, 9, 0, 0, 0, time.UTC),
			wantRows:  24,
			wantFirst: "00:00",
			wantLast:  "23:00",
		},
		{
			name:      "stops at the end of the series",
			now:       time.Date(2026, 10, 24, 20, 10, 0, 0, time.UTC),
			wantRows:  4,
			wantFirst: "20:00",
			wantLast:  "23:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := englishOptions()
			opts.HourlyTemperature = true

			days, err := BuildForecast(sampleForecast(), tt.now, opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			rows := days[0].HourlyTemp
			if len(rows) != tt.wantRows {
				t.Fatalf("expected %d rows, got %d", tt.wantRows, len(rows))
			}
			if rows[0].TimeOfDay != tt.wantFirst {
				t.Errorf("expected first row %s, got %s", tt.wantFirst, rows[0].TimeOfDay)
			}
			if rows[len(rows)-1].TimeOfDay != tt.wantLast {
				t.Errorf("expected last row %s, got %s", tt.wantLast, rows[len(rows)-1].TimeOfDay)
			}
			for _, day := range days[1:] {
				if day.HourlyTemp != nil {
					t.Errorf("day %d should not carry a temperature table", day.Index)
				}
			}
		})
	}
}

func TestBuildForecastHourlyTemperatureMissingValue(t *testing.T) {
	raw := sampleForecast()
	raw.Hourly.Temperature2m[14] = nil
	raw.Hourly.Temperature2m = raw.Hourly.Temperature2m[:30]

	opts := englishOptions()
	opts.HourlyTemperature = true

	days, err := BuildForecast(raw, testToday, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := days[0].HourlyTemp
	if rows[0].Temperature == nil || *rows[0].Temperature != 13 {
		t.Errorf("expected 13 at 13:00, got %v", rows[0].Temperature)
	}
	if rows[1].Temperature != nil {
		t.Errorf("expected missing temperature at 14:00, got %v", *rows[1].Temperature)
	}
	if rows[20].Temperature != nil {
		t.Errorf("expected missing temperature past the end of the series")
	}
}
