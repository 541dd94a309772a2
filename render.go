package main

import (
	"bytes"
	"errors"
	"os"

	"forecast-card/forecast"
	"forecast-card/metrics"
	"forecast-card/page"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the forecast card as an HTML page",
	Long: `Render resolves the location, fetches the forecast and writes the HTML page.
On failure the page holds only the failure message, replacing any earlier output.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("out", "o", "", "Output HTML file (default: stdout)")
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	recorder := metrics.NewRecorder()
	defer writeMetrics(cmd, recorder, logger)

	config, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	result, runErr := newPipeline(config, logger, recorder).Run(cmd.Context())
	if runErr != nil {
		var failure *forecast.Failure
		kind := forecast.ForecastFetchFailed
		if errors.As(runErr, &failure) {
			kind = failure.Kind
		}
		if err := page.WriteFailure(&buf, kind); err != nil {
			return err
		}
	} else if err := page.Write(&buf, result.Plan); err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		if _, err := buf.WriteTo(cmd.OutOrStdout()); err != nil {
			return err
		}
	} else if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return err
	}

	return runErr
}
