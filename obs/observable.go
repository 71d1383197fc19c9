// Package obs provides named observables: extractors that turn resolved
// physics objects into per-event numeric arrays. Observables are built
// through a Registry so the set of known names is an explicit table
// supplied by the caller, not process-wide state.
package obs

import (
	"fmt"
	"math"

	"github.com/arthur-debert/hepcut/event"
	"github.com/arthur-debert/hepcut/jagged"
	"github.com/arthur-debert/hepcut/physobj"
)

// Observable extracts one named quantity from every event in a batch.
type Observable interface {
	// Name is the full observable name including its physics object,
	// e.g. "Jet:3.Pt".
	Name() string

	// Read extracts the observable across the batch. The outer axis of
	// the returned array is the event axis; null object slots carry
	// NaN.
	Read(batch *event.Batch) (jagged.Array, error)
}

// Func wraps a plain function as an Observable. Useful for ad-hoc
// quantities registered under a bare name.
func Func(name string, fn func(*event.Batch) (jagged.Array, error)) Observable {
	return &funcObservable{name: name, fn: fn}
}

type funcObservable struct {
	name string
	fn   func(*event.Batch) (jagged.Array, error)
}

func (f *funcObservable) Name() string { return f.name }

func (f *funcObservable) Read(batch *event.Batch) (jagged.Array, error) {
	return f.fn(batch)
}

// objectObservable evaluates a per-object value function over a resolved
// selection. Almost every kinematic observable is one of these.
type objectObservable struct {
	name   string
	object physobj.PhysicsObject
	depth  int
	value  func(*event.Object) float64
}

// newObjectObservable parses the physics-object identifier and fixes the
// result depth once, so Read emits a stable shape for every batch.
func newObjectObservable(kind, objectID string, value func(*event.Object) float64) (Observable, error) {
	if objectID == "" {
		return nil, fmt.Errorf("observable %s requires a physics object", kind)
	}
	p, err := physobj.Parse(objectID)
	if err != nil {
		return nil, err
	}
	depth, err := physobj.ResultDepth(p)
	if err != nil {
		return nil, err
	}
	return &objectObservable{
		name:   p.Identifier() + "." + kind,
		object: p,
		depth:  depth,
		value:  value,
	}, nil
}

func (ob *objectObservable) Name() string { return ob.name }

func (ob *objectObservable) Read(batch *event.Batch) (jagged.Array, error) {
	n := len(batch.Events)

	switch ob.depth {
	case 0:
		out := make([]float64, n)
		for i := range batch.Events {
			sel, err := ob.object.Resolve(&batch.Events[i])
			if err != nil {
				return jagged.Array{}, err
			}
			out[i] = ob.objectValue(sel.Object)
		}
		return jagged.FromScalars(out), nil

	case 1:
		out := make([][]float64, n)
		for i := range batch.Events {
			sel, err := ob.object.Resolve(&batch.Events[i])
			if err != nil {
				return jagged.Array{}, err
			}
			out[i] = ob.listValues(sel)
		}
		return jagged.FromLists(out), nil

	case 2:
		out := make([][][]float64, n)
		for i := range batch.Events {
			sel, err := ob.object.Resolve(&batch.Events[i])
			if err != nil {
				return jagged.Array{}, err
			}
			out[i] = ob.gridValues(sel)
		}
		return jagged.FromNested(out), nil
	}

	return jagged.Array{}, fmt.Errorf("observable %s: unsupported selection depth %d", ob.name, ob.depth)
}

func (ob *objectObservable) objectValue(o *event.Object) float64 {
	if o == nil {
		return math.NaN()
	}
	return ob.value(o)
}

func (ob *objectObservable) listValues(sel physobj.Selection) []float64 {
	if sel.IsMultiple {
		out := make([]float64, len(sel.Components))
		for i, comp := range sel.Components {
			out[i] = ob.objectValue(comp.Object)
		}
		return out
	}
	out := make([]float64, len(sel.Objects))
	for i, o := range sel.Objects {
		out[i] = ob.objectValue(o)
	}
	return out
}

func (ob *objectObservable) gridValues(sel physobj.Selection) [][]float64 {
	if sel.IsMultiple {
		out := make([][]float64, len(sel.Components))
		for i, comp := range sel.Components {
			out[i] = ob.listValues(comp)
		}
		return out
	}
	out := make([][]float64, len(sel.PerMain))
	for i, mains := range sel.PerMain {
		row := make([]float64, len(mains))
		for j, o := range mains {
			row[j] = ob.objectValue(o)
		}
		out[i] = row
	}
	return out
}
