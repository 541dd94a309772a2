package models

// RawForecast is the Open-Meteo forecast response. Numeric members are pointers
// because the API reports gaps as null.
type RawForecast struct {
	Latitude         float64         `json:"latitude"`
	Longitude        float64         `json:"longitude"`
	Timezone         string          `json:"timezone"`
	UTCOffsetSeconds int             `json:"utc_offset_seconds"`
	CurrentWeather   *CurrentWeather `json:"current_weather,omitempty"`
	Daily            DailySeries     `json:"daily"`
	Hourly           HourlySeries    `json:"hourly"`
}

// DailySeries holds parallel arrays indexed by day, 0 being today
type DailySeries struct {
	Time             []string   `json:"time"`
	WeatherCode      []*int     `json:"weathercode"`
	Temperature2mMax []*float64 `json:"temperature_2m_max"`
	Temperature2mMin []*float64 `json:"temperature_2m_min"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
}

// HourlySeries holds parallel arrays at hourly resolution over the same span as DailySeries
type HourlySeries struct {
	Time          []string   `json:"time"`
	Precipitation []*float64 `json:"precipitation"`
	Temperature2m []*float64 `json:"temperature_2m,omitempty"`
}

// HourlyTemperature is one row of the day 0 temperature table
type HourlyTemperature struct {
	TimeOfDay   string   `json:"timeOfDay"` // HH:MM
	Temperature *float64 `json:"temperature"`
}

// DayForecast is the per-day view model derived from a RawForecast
type DayForecast struct {
	Index      int                 `json:"index"`
	Label      string              `json:"label"`
	Icon       string              `json:"icon"`
	MaxTemp    *float64            `json:"maxTemp"`
	MinTemp    *float64            `json:"minTemp"`
	RainSum    *float64            `json:"rainSum"`
	HourlyRain []float64           `json:"hourlyRain"` // clamped to >= 0
	HasRain    bool                `json:"hasRain"`
	HourlyTemp []HourlyTemperature `json:"hourlyTemp,omitempty"` // day 0 only
}
