package forecast

// UnknownIcon is shown for weather codes missing from the table
const UnknownIcon = "❓"

// weatherIcons maps WMO weather codes as reported by Open-Meteo to a glyph
var weatherIcons = map[int]string{
	0:  "☀️",  // clear sky
	1:  "🌤️", // mainly clear
	2:  "⛅",  // partly cloudy
	3:  "☁️",  // overcast
	45: "🌫️", // fog
	48: "🌫️", // depositing rime fog
	51: "🌦️", // light drizzle
	53: "🌦️", // moderate drizzle
	55: "🌦️", // dense drizzle
	61: "🌧️", // slight rain
	63: "🌧️", // moderate rain
	65: "🌧️", // heavy rain
	80: "🌦️", // slight showers
	81: "🌧️", // moderate showers
	82: "🌧️", // violent showers
	95: "⛈️",  // thunderstorm
	96: "⛈️",  // thunderstorm, slight hail
	99: "⛈️",  // thunderstorm, heavy hail
}

// Icon returns the glyph for a weather code
func Icon(code int) string {
	if icon, ok := weatherIcons[code]; ok {
		return icon
	}
	return UnknownIcon
}
