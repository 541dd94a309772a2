package models

import (
	"fmt"
)

// Coordinate is the latitude/longitude pair a forecast is requested for
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate reports whether the coordinate lies on the globe
func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %.4f out of range [-90, 90]", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %.4f out of range [-180, 180]", c.Longitude)
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}

// CurrentWeather is the optional current_weather block of the forecast payload
type CurrentWeather struct {
	Temperature *float64 `json:"temperature"` // in Celsius
	WindSpeed   *float64 `json:"windspeed"`   // in km/h
	WeatherCode *int     `json:"weathercode"`
	Time        string   `json:"time"`
}
