package forecast

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"forecast-card/datasource"
	"forecast-card/metrics"
	"forecast-card/models"

	"github.com/google/uuid"
)

// Pipeline runs one locate, fetch, build and render pass
type Pipeline struct {
	Location datasource.LocationProvider
	Client   datasource.ForecastClient
	Options  Options

	// LogPayload logs the raw forecast payload at debug level
	LogPayload bool

	Logger  *slog.Logger
	Metrics *metrics.Recorder

	// Now and NewID default to time.Now and uuid.NewString
	Now   func() time.Time
	NewID func() string
}

// Result is the outcome of a successful run
type Result struct {
	Coordinate models.Coordinate   `json:"coordinate"`
	Days       []models.DayForecast `json:"days"`
	Plan       models.RenderPlan    `json:"plan"`
}

// Run performs the pass. Any error is a *Failure and nothing of the pass
// should be displayed besides its message.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	logger := p.logger()

	coord, err := p.Location.GetCurrentPosition(ctx)
	if err != nil {
		return Result{}, p.fail(err)
	}
	logger.Info("resolved location", "provider", p.Location.Name(), "coordinate", coord.String())

	started := time.Now()
	raw, err := p.Client.FetchForecast(ctx, coord)
	p.Metrics.ObserveFetch(time.Since(started))
	if err != nil {
		return Result{}, p.fail(err)
	}

	if p.LogPayload {
		if payload, err := json.Marshal(raw); err == nil {
			logger.Debug("forecast payload", "client", p.Client.Name(), "payload", string(payload))
		}
	}

	today := p.now()
	if raw.Timezone != "" {
		today = today.In(time.FixedZone(raw.Timezone, raw.UTCOffsetSeconds))
	}

	days, err := BuildForecast(raw, today, p.Options)
	if err != nil {
		return Result{}, p.fail(err)
	}

	plan := Render(days, raw.CurrentWeather)
	plan.ID = p.newID()

	rainy := 0
	for _, day := range days {
		if day.HasRain {
			rainy++
		}
	}
	p.Metrics.RecordSuccess(rainy, today)
	logger.Info("rendered forecast", "plan", plan.ID, "days", len(days), "rainyDays", rainy)

	return Result{Coordinate: coord, Days: days, Plan: plan}, nil
}

func (p *Pipeline) fail(err error) error {
	failure := &Failure{Kind: Classify(err), Err: err}
	p.Metrics.RecordFailure(failure.Kind.String())
	p.logger().Error("forecast run failed", "kind", failure.Kind.String(), "error", err)
	return failure
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

func (p *Pipeline) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

func (p *Pipeline) newID() string {
	if p.NewID == nil {
		return uuid.NewString()
	}
	return p.NewID()
}
