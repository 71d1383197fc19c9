package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/hepcut/analysis"
	"github.com/arthur-debert/hepcut/event"
	"github.com/arthur-debert/hepcut/obs"
)

var (
	cutflowConfig string
	cutflowInput  string
)

var cutflowCmd = &cobra.Command{
	Use:   "cutflow",
	Short: "Run an ordered sequence of cuts and report efficiencies",
	RunE:  runCutflow,
}

func init() {
	cutflowCmd.Flags().StringVarP(&cutflowConfig, "config", "f", "", "path to YAML analysis config (required)")
	cutflowCmd.Flags().StringVarP(&cutflowInput, "input", "i", "", "path to JSON event batch (required)")
	_ = cutflowCmd.MarkFlagRequired("config")
	_ = cutflowCmd.MarkFlagRequired("input")
}

func runCutflow(cmd *cobra.Command, args []string) error {
	cfg, err := analysis.LoadConfig(cutflowConfig)
	if err != nil {
		return err
	}

	flow, err := analysis.NewCutFlow(cfg, obs.DefaultRegistry())
	if err != nil {
		return err
	}

	batch, err := event.LoadBatch(cutflowInput)
	if err != nil {
		return err
	}
	slog.Info("batch loaded", "path", cutflowInput, "events", batch.Len())

	report, err := flow.Run(batch)
	if err != nil {
		return err
	}

	fmt.Print(report.String())
	return nil
}
