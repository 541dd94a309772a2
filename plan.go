package main

import (
	"encoding/json"
	"errors"

	"forecast-card/forecast"
	"forecast-card/metrics"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the render plan as JSON",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().Bool("days", false, "Include the per-day view models")
}

func runPlan(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	recorder := metrics.NewRecorder()
	defer writeMetrics(cmd, recorder, logger)

	config, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	result, err := newPipeline(config, logger, recorder).Run(cmd.Context())
	if err != nil {
		var failure *forecast.Failure
		kind := forecast.ForecastFetchFailed
		if errors.As(err, &failure) {
			kind = failure.Kind
		}
		if encErr := encoder.Encode(map[string]string{
			"error":   kind.String(),
			"message": kind.Message(),
		}); encErr != nil {
			return encErr
		}
		return err
	}

	if withDays, _ := cmd.Flags().GetBool("days"); withDays {
		return encoder.Encode(result)
	}
	return encoder.Encode(result.Plan)
}
