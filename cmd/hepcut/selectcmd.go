package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/hepcut/cut"
	"github.com/arthur-debert/hepcut/event"
	"github.com/arthur-debert/hepcut/obs"
)

var (
	selectInput    string
	selectCutExpr  string
	selectShowMask bool
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Evaluate a cut expression against an event batch",
	Long: "Parse a cut expression, evaluate it against a JSON event batch " +
		"and report how many events pass.",
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().StringVarP(&selectInput, "input", "i", "", "path to JSON event batch (required)")
	selectCmd.Flags().StringVarP(&selectCutExpr, "cut", "c", "", "cut expression (required)")
	selectCmd.Flags().BoolVar(&selectShowMask, "show-mask", false, "print the per-event pass mask")
	_ = selectCmd.MarkFlagRequired("input")
	_ = selectCmd.MarkFlagRequired("cut")
}

func runSelect(cmd *cobra.Command, args []string) error {
	c, err := cut.New(selectCutExpr, obs.DefaultRegistry())
	if err != nil {
		return fmt.Errorf("parsing cut: %w", err)
	}
	slog.Debug("cut parsed", "expression", c.Expression(), "observables", c.Observables())

	batch, err := event.LoadBatch(selectInput)
	if err != nil {
		return err
	}
	slog.Info("batch loaded", "path", selectInput, "events", batch.Len())

	if _, err := c.Read(batch); err != nil {
		return fmt.Errorf("evaluating cut: %w", err)
	}

	mask := c.Value()
	passed := 0
	for _, ok := range mask {
		if ok {
			passed++
		}
	}

	fmt.Printf("%d / %d events pass\n", passed, len(mask))
	if selectShowMask {
		for i, ok := range mask {
			fmt.Printf("event %d: %v\n", i, ok)
		}
	}
	return nil
}
