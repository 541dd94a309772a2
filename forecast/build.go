package forecast

import (
	"fmt"
	"time"

	"forecast-card/models"
)

const (
	// ForecastDays is the number of cards rendered, today included
	ForecastDays = 7

	// HoursPerDay is the width of one day's slice of the hourly series
	HoursPerDay = 24

	hourlyTimeLayout = "2006-01-02T15:00"
)

// Options selects the optional extensions of the forecast card
type Options struct {
	// HourlyTemperature adds the day 0 temperature table; requires hourly.temperature_2m
	HourlyTemperature bool

	// Weekdays names days from the day after tomorrow onwards
	Weekdays WeekdayNamer
}

// BuildForecast turns a raw forecast payload into per-day view models.
// today is the local date of day 0; its wall-clock time also selects where
// the day 0 temperature table starts.
func BuildForecast(raw models.RawForecast, today time.Time, opts Options) ([]models.DayForecast, error) {
	if err := validate(raw, opts); err != nil {
		return nil, err
	}

	dayCount := len(raw.Daily.WeatherCode)
	if dayCount > ForecastDays {
		dayCount = ForecastDays
	}

	days := make([]models.DayForecast, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		hourlyRain, hasRain := rainWindow(raw.Hourly.Precipitation[i*HoursPerDay : (i+1)*HoursPerDay])

		day := models.DayForecast{
			Index:      i,
			Label:      opts.Weekdays.DayLabel(today, i),
			Icon:       iconAt(raw.Daily.WeatherCode, i),
			MaxTemp:    valueAt(raw.Daily.Temperature2mMax, i),
			MinTemp:    valueAt(raw.Daily.Temperature2mMin, i),
			RainSum:    valueAt(raw.Daily.PrecipitationSum, i),
			HourlyRain: hourlyRain,
			HasRain:    hasRain,
		}

		if i == 0 && opts.HourlyTemperature {
			day.HourlyTemp = temperatureWindow(raw.Hourly, today)
		}

		days = append(days, day)
	}

	return days, nil
}

func validate(raw models.RawForecast, opts Options) error {
	if len(raw.Daily.WeatherCode) == 0 {
		return fmt.Errorf("%w: daily.weathercode is missing", models.ErrMalformedPayload)
	}
	if len(raw.Hourly.Precipitation) == 0 {
		return fmt.Errorf("%w: hourly.precipitation is missing", models.ErrMalformedPayload)
	}
	if want := HoursPerDay * len(raw.Daily.WeatherCode); len(raw.Hourly.Precipitation) != want {
		return fmt.Errorf("%w: hourly.precipitation has %d entries, want %d",
			models.ErrMalformedPayload, len(raw.Hourly.Precipitation), want)
	}
	if opts.HourlyTemperature {
		if len(raw.Hourly.Time) == 0 {
			return fmt.Errorf("%w: hourly.time is missing", models.ErrMalformedPayload)
		}
		if len(raw.Hourly.Temperature2m) == 0 {
			return fmt.Errorf("%w: hourly.temperature_2m is missing", models.ErrMalformedPayload)
		}
	}
	return nil
}

// rainWindow clamps one day of hourly precipitation for display. Rain is
// detected on the raw values, so a negative reading never counts as rain.
func rainWindow(hours []*float64) ([]float64, bool) {
	clamped := make([]float64, len(hours))
	hasRain := false
	for i, v := range hours {
		if v == nil {
			continue
		}
		if *v > 0 {
			hasRain = true
			clamped[i] = *v
		}
	}
	return clamped, hasRain
}

// temperatureWindow pairs the 24 hours from the current local hour onwards
// with their temperature, starting at index 0 when no timestamp is late enough.
func temperatureWindow(hourly models.HourlySeries, now time.Time) []models.HourlyTemperature {
	current := now.Format(hourlyTimeLayout)

	start := 0
	for i, ts := range hourly.Time {
		// ISO-8601 local timestamps of equal layout order lexicographically
		if ts >= current {
			start = i
			break
		}
	}

	end := start + HoursPerDay
	if end > len(hourly.Time) {
		end = len(hourly.Time)
	}

	rows := make([]models.HourlyTemperature, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, models.HourlyTemperature{
			TimeOfDay:   timeOfDay(hourly.Time[i]),
			Temperature: valueAt(hourly.Temperature2m, i),
		})
	}
	return rows
}

// timeOfDay extracts HH:MM from YYYY-MM-DDTHH:MM
func timeOfDay(ts string) string {
	if len(ts) >= 16 {
		return ts[11:16]
	}
	return ts
}

func valueAt(values []*float64, i int) *float64 {
	if i < len(values) {
		return values[i]
	}
	return nil
}

func iconAt(codes []*int, i int) string {
	if i < len(codes) && codes[i] != nil {
		return Icon(*codes[i])
	}
	return UnknownIcon
}
