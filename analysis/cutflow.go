package analysis

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/hepcut/cut"
	"github.com/arthur-debert/hepcut/event"
	"github.com/arthur-debert/hepcut/obs"
)

// CutFlow is an ordered sequence of named cuts. Each step is evaluated
// against the full batch; the surviving set is the AND of all steps so
// far, so step order only affects how the report reads, not which events
// survive.
type CutFlow struct {
	name  string
	steps []step
}

type step struct {
	name string
	cut  *cut.Cut
}

// NewCutFlow builds a cutflow from a validated config, parsing every
// expression against the registry up front.
func NewCutFlow(cfg *Config, registry *obs.Registry) (*CutFlow, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	flow := &CutFlow{name: cfg.Name, steps: make([]step, 0, len(cfg.Cuts))}
	for _, cc := range cfg.Cuts {
		c, err := cut.New(cc.Expression, registry)
		if err != nil {
			return nil, fmt.Errorf("cut %q: %w", cc.Name, err)
		}
		flow.steps = append(flow.steps, step{name: cc.Name, cut: c})
	}
	return flow, nil
}

// Run evaluates every step against the batch and accumulates the
// surviving set.
func (f *CutFlow) Run(batch *event.Batch) (*Report, error) {
	n := batch.Len()
	surviving := make([]bool, n)
	for i := range surviving {
		surviving[i] = true
	}

	report := &Report{Name: f.name, Total: n}
	previous := n

	for _, s := range f.steps {
		if _, err := s.cut.Read(batch); err != nil {
			return nil, fmt.Errorf("cut %q: %w", s.name, err)
		}
		mask := s.cut.Value()

		passed := 0
		for i := range surviving {
			surviving[i] = surviving[i] && mask[i]
			if surviving[i] {
				passed++
			}
		}

		report.Steps = append(report.Steps, StepResult{
			Name:       s.name,
			Expression: s.cut.Expression(),
			Passed:     passed,
			Efficiency: ratio(passed, previous),
			Cumulative: ratio(passed, n),
		})
		previous = passed
	}

	report.Mask = surviving
	return report, nil
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// Report summarizes one cutflow run.
type Report struct {
	Name  string
	Total int
	Steps []StepResult

	// Mask marks the events surviving every step, in event order.
	Mask []bool
}

// StepResult is the outcome of one cutflow step. Efficiency is relative
// to the previous step, Cumulative to the initial batch.
type StepResult struct {
	Name       string
	Expression string
	Passed     int
	Efficiency float64
	Cumulative float64
}

// Survivors returns the number of events passing every step.
func (r *Report) Survivors() int {
	if len(r.Steps) == 0 {
		return r.Total
	}
	return r.Steps[len(r.Steps)-1].Passed
}

// String renders the report as an aligned text table.
func (r *Report) String() string {
	var b strings.Builder
	if r.Name != "" {
		fmt.Fprintf(&b, "%s\n", r.Name)
	}
	fmt.Fprintf(&b, "%-24s %10s %12s %12s\n", "cut", "passed", "efficiency", "cumulative")
	fmt.Fprintf(&b, "%-24s %10d %12s %12s\n", "(initial)", r.Total, "-", "-")
	for _, s := range r.Steps {
		fmt.Fprintf(&b, "%-24s %10d %11.1f%% %11.1f%%\n",
			s.Name, s.Passed, 100*s.Efficiency, 100*s.Cumulative)
	}
	return b.String()
}
