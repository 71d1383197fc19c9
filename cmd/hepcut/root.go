package main

import (
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "hepcut",
	Short: "Physics-object selection over event batches",
	Long: "hepcut parses physics-object identifiers and cut expressions, " +
		"evaluates them against JSON event batches, and builds cutflow " +
		"reports and tabular datasets.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(logLevel, logJSON)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit logs as JSON")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(cutflowCmd)
	rootCmd.AddCommand(datasetCmd)
}
