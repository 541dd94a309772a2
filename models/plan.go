package models

// RenderPlan is the ordered set of instructions a presentation surface applies
type RenderPlan struct {
	ID      string              `json:"id"`
	Current *CurrentInstruction `json:"current,omitempty"`
	Days    []DayInstruction    `json:"days"`
}

// CurrentInstruction renders the current conditions block
type CurrentInstruction struct {
	Temperature string `json:"temperature"`
	WindSpeed   string `json:"windSpeed"`
}

// DayInstruction renders one forecast card
type DayInstruction struct {
	Label    string            `json:"label"`
	Icon     string            `json:"icon"`
	MaxTemp  string            `json:"maxTemp"`
	MinTemp  string            `json:"minTemp"`
	Rain     string            `json:"rain"`
	RainRows []TableRow        `json:"rainRows"`
	TempRows []TableRow        `json:"tempRows,omitempty"`
	Chart    *ChartInstruction `json:"chart,omitempty"`
}

// TableRow is one line of a togglable detail table
type TableRow struct {
	Time  string `json:"time"`
	Value string `json:"value"`
}

// ChartInstruction asks the chart library to draw a line chart into ContainerID
type ChartInstruction struct {
	ContainerID string       `json:"containerId"`
	Points      []ChartPoint `json:"points"`
	Options     ChartOptions `json:"options"`
}

// ChartPoint is a single labelled value on the horizontal axis
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartOptions are the fixed display options of the hourly rain chart
type ChartOptions struct {
	Title            string  `json:"title"`
	VAxisMin         float64 `json:"vAxisMin"`
	VAxisMax         float64 `json:"vAxisMax"`
	SlantedTextAngle int     `json:"slantedTextAngle"`
}
