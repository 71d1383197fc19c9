// Package dataset builds and packages tabular datasets of per-event
// observable values, for handing off to external training tools.
package dataset

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arthur-debert/hepcut/event"
	"github.com/arthur-debert/hepcut/obs"
)

// Tabular is a flat dataset: one row per event, one column per
// scalar-valued observable, plus an integer target label per row.
type Tabular struct {
	ID        string
	Name      string
	Columns   []string
	Samples   [][]float64
	Targets   []int
	CreatedAt time.Time

	observables []obs.Observable
}

// New creates an empty dataset whose columns are observable names
// resolvable through the registry. Every column must produce one scalar
// per event.
func New(name string, columns []string, registry *obs.Registry) (*Tabular, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("dataset needs at least one column")
	}

	observables := make([]obs.Observable, 0, len(columns))
	for _, column := range columns {
		o, err := registry.Parse(column)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", column, err)
		}
		observables = append(observables, o)
	}

	return &Tabular{
		ID:          uuid.New().String(),
		Name:        name,
		Columns:     columns,
		CreatedAt:   time.Now().UTC(),
		observables: observables,
	}, nil
}

// Read appends one row per event in the batch, labeling every row with
// target. It may be called repeatedly to stack batches, e.g. signal and
// background samples.
func (t *Tabular) Read(batch *event.Batch, target int) error {
	if t.observables == nil {
		return fmt.Errorf("dataset was loaded from an archive; its columns cannot be re-read")
	}

	n := batch.Len()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, len(t.Columns))
	}

	for col, o := range t.observables {
		arr, err := o.Read(batch)
		if err != nil {
			return fmt.Errorf("column %q: %w", t.Columns[col], err)
		}
		if arr.Depth() != 1 {
			return fmt.Errorf("column %q is not scalar per event: shape %s", t.Columns[col], arr.Shape())
		}
		for i, v := range arr.Scalars() {
			rows[i][col] = v
		}
	}

	t.Samples = append(t.Samples, rows...)
	for i := 0; i < n; i++ {
		t.Targets = append(t.Targets, target)
	}
	return nil
}

// Len returns the number of rows.
func (t *Tabular) Len() int { return len(t.Samples) }
