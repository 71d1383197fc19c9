package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/hepcut/physobj"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <identifier>",
	Short: "Parse a physics-object identifier and describe its structure",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	obj, err := physobj.Parse(args[0])
	if err != nil {
		return err
	}

	depth, err := physobj.ResultDepth(obj)
	if err != nil {
		return err
	}

	fmt.Printf("identifier: %s\n", obj.Identifier())
	fmt.Printf("kind:       %s\n", describe(obj))
	fmt.Printf("depth:      %d per event\n", depth)
	return nil
}

func describe(obj physobj.PhysicsObject) string {
	switch o := obj.(type) {
	case physobj.Single:
		return fmt.Sprintf("single (%s at index %d)", o.Field, o.Index)
	case physobj.Collective:
		if o.Stop == physobj.UnboundedStop {
			return fmt.Sprintf("collective (%s from %d, unbounded)", o.Field, o.Start)
		}
		return fmt.Sprintf("collective (%s from %d to %d)", o.Field, o.Start, o.Stop)
	case physobj.Nested:
		return fmt.Sprintf("nested (%s within %s)", describe(o.Sub), describe(o.Main))
	case physobj.Multiple:
		parts := make([]string, len(o.Items))
		for i, item := range o.Items {
			parts[i] = describe(item)
		}
		return fmt.Sprintf("multiple [%s]", strings.Join(parts, "; "))
	default:
		return "unknown"
	}
}
