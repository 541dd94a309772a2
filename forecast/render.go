package forecast

import (
	"fmt"
	"strconv"

	"forecast-card/models"
)

const (
	chartTitle       = "Hourly Rain (mm)"
	chartVAxisMin    = 0
	chartVAxisMax    = 5
	chartSlantedText = 45

	missingValue = "-"
)

// Render maps day view models to render instructions. It performs no I/O.
func Render(days []models.DayForecast, current *models.CurrentWeather) models.RenderPlan {
	plan := models.RenderPlan{
		Current: renderCurrent(current),
		Days:    make([]models.DayInstruction, 0, len(days)),
	}

	for _, day := range days {
		instr := models.DayInstruction{
			Label:    day.Label,
			Icon:     day.Icon,
			MaxTemp:  formatValue(day.MaxTemp, "°C"),
			MinTemp:  formatValue(day.MinTemp, "°C"),
			Rain:     formatValue(day.RainSum, " mm"),
			RainRows: make([]models.TableRow, 0, len(day.HourlyRain)),
		}

		for hour, mm := range day.HourlyRain {
			instr.RainRows = append(instr.RainRows, models.TableRow{
				Time:  hourLabel(hour),
				Value: formatNumber(mm),
			})
		}

		for _, t := range day.HourlyTemp {
			instr.TempRows = append(instr.TempRows, models.TableRow{
				Time:  t.TimeOfDay,
				Value: formatValue(t.Temperature, "°C"),
			})
		}

		if day.HasRain {
			instr.Chart = rainChart(day)
		}

		plan.Days = append(plan.Days, instr)
	}

	return plan
}

// ChartContainerID names the element a day's chart is drawn into
func ChartContainerID(dayIndex int) string {
	return "chart-day-" + strconv.Itoa(dayIndex)
}

func rainChart(day models.DayForecast) *models.ChartInstruction {
	points := make([]models.ChartPoint, 0, len(day.HourlyRain))
	for hour, mm := range day.HourlyRain {
		points = append(points, models.ChartPoint{
			Label: hourLabel(hour),
			Value: max(0, mm),
		})
	}

	return &models.ChartInstruction{
		ContainerID: ChartContainerID(day.Index),
		Points:      points,
		Options: models.ChartOptions{
			Title:            chartTitle,
			VAxisMin:         chartVAxisMin,
			VAxisMax:         chartVAxisMax,
			SlantedTextAngle: chartSlantedText,
		},
	}
}

func renderCurrent(current *models.CurrentWeather) *models.CurrentInstruction {
	if current == nil {
		return nil
	}
	return &models.CurrentInstruction{
		Temperature: formatValue(current.Temperature, "°C"),
		WindSpeed:   formatValue(current.WindSpeed, " km/h"),
	}
}

func hourLabel(hour int) string {
	return fmt.Sprintf("%d:00", hour)
}

func formatValue(v *float64, unit string) string {
	if v == nil {
		return missingValue
	}
	return formatNumber(*v) + unit
}

// formatNumber prints the shortest representation, so 1.5 stays "1.5" and 2 stays "2"
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
