package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"forecast-card/forecast"
	"forecast-card/models"
)

//go:embed templates/card.html
var templateFS embed.FS

var cardTemplate *template.Template

func init() {
	var err error

	cardTemplate, err = template.ParseFS(templateFS, "templates/card.html")
	if err != nil {
		panic(fmt.Sprintf("failed to parse card template: %v", err))
	}
}

type pageData struct {
	Message string
	Plan    *models.RenderPlan
	Charts  []models.ChartInstruction
}

// Write renders the forecast page. Day markup is emitted before the chart
// script, and charts are only drawn once the chart loader reports ready.
func Write(w io.Writer, plan models.RenderPlan) error {
	data := pageData{Plan: &plan}
	for _, day := range plan.Days {
		if day.Chart != nil {
			data.Charts = append(data.Charts, *day.Chart)
		}
	}
	return execute(w, data)
}

// WriteFailure renders the page with the failure message as its only content
func WriteFailure(w io.Writer, kind forecast.FailureKind) error {
	return execute(w, pageData{Message: kind.Message()})
}

// execute buffers the whole page so a template error never leaves half a page behind
func execute(w io.Writer, data pageData) error {
	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute card template: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
