package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"forecast-card/datasource"
	"forecast-card/forecast"
	"forecast-card/metrics"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forecastcard",
	Short: "Render a weekly weather forecast card",
	Long: `forecastcard resolves a location, fetches a 7-day forecast from Open-Meteo and
renders it as a self-contained HTML page with hourly rain charts.

The location comes from --lat/--lon, a --place name, or --geoip, in that order.`,
	SilenceUsage: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "config.json", "Path to configuration file")
	flags.Float64("lat", 0, "Latitude of the forecast location")
	flags.Float64("lon", 0, "Longitude of the forecast location")
	flags.String("place", "", "Place name to geocode with Nominatim")
	flags.Bool("geoip", false, "Locate this host by its public IP address")
	flags.String("locale", "", "Locale for weekday names (default: host locale)")
	flags.Bool("hourly-temperature", false, "Add today's hourly temperature table")
	flags.Bool("log-payload", false, "Log the raw forecast payload (needs --verbose)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.String("metrics-textfile", "", "Write Prometheus metrics to this file after the run")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(locateCmd)
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig layers the configuration file, .env, the environment and flags
func loadConfig(cmd *cobra.Command, logger *slog.Logger) (*datasource.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("error loading .env file", "error", err)
	}

	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	config, err := datasource.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) && !flags.Changed("config") {
		logger.Debug("no configuration file, using defaults", "path", path)
		config = datasource.DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if err := config.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if flags.Changed("lat") {
		lat, _ := flags.GetFloat64("lat")
		config.Location.Latitude = &lat
	}
	if flags.Changed("lon") {
		lon, _ := flags.GetFloat64("lon")
		config.Location.Longitude = &lon
	}
	if flags.Changed("place") {
		config.Location.Place, _ = flags.GetString("place")
	}
	if flags.Changed("geoip") {
		config.Location.GeoIP, _ = flags.GetBool("geoip")
	}
	if flags.Changed("locale") {
		config.Render.Locale, _ = flags.GetString("locale")
	}
	if flags.Changed("hourly-temperature") {
		config.Render.HourlyTemperature, _ = flags.GetBool("hourly-temperature")
	}
	if flags.Changed("log-payload") {
		config.Render.LogPayload, _ = flags.GetBool("log-payload")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func newPipeline(config *datasource.Config, logger *slog.Logger, recorder *metrics.Recorder) *forecast.Pipeline {
	client := datasource.NewOpenMeteoClient(config.OpenMeteo.BaseURL, config.ForecastTimeout(), config.Render.HourlyTemperature)

	locale := config.Render.Locale
	if locale == "" {
		locale = forecast.HostLocale(os.LookupEnv)
	}

	return &forecast.Pipeline{
		Location: datasource.NewLocationProvider(config, logger),
		Client:   datasource.NewRateLimitedForecastClient(client, config.OpenMeteo.RequestsPerSecond, config.OpenMeteo.Burst),
		Options: forecast.Options{
			HourlyTemperature: config.Render.HourlyTemperature,
			Weekdays:          forecast.NewWeekdayNamer(locale),
		},
		LogPayload: config.Render.LogPayload,
		Logger:     logger,
		Metrics:    recorder,
	}
}

// writeMetrics exports the run's metrics if --metrics-textfile is set
func writeMetrics(cmd *cobra.Command, recorder *metrics.Recorder, logger *slog.Logger) {
	path, _ := cmd.Flags().GetString("metrics-textfile")
	if path == "" {
		return
	}
	if err := recorder.WriteTextfile(path); err != nil {
		logger.Warn("failed to write metrics", "path", path, "error", err)
	}
}
