package main

import (
	"fmt"

	"forecast-card/datasource"
	"forecast-card/forecast"

	"github.com/spf13/cobra"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Resolve and print the forecast coordinate",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		config, err := loadConfig(cmd, logger)
		if err != nil {
			return err
		}

		provider := datasource.NewLocationProvider(config, logger)
		coord, err := provider.GetCurrentPosition(cmd.Context())
		if err != nil {
			kind := forecast.Classify(err)
			fmt.Fprintln(cmd.ErrOrStderr(), kind.Message())
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", coord, provider.Name())
		return nil
	},
}
