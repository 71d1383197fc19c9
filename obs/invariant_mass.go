package obs

import (
	"fmt"
	"math"

	"github.com/arthur-debert/hepcut/event"
	"github.com/arthur-debert/hepcut/jagged"
	"github.com/arthur-debert/hepcut/physobj"
)

// NewInvariantMass builds the invariant mass of the summed four-momenta
// of the addressed objects: a single object, or a comma list of singles
// like "Jet0,Jet1". Any missing component makes the event read NaN.
func NewInvariantMass(object string) (Observable, error) {
	p, err := physobj.Parse(object)
	if err != nil {
		return nil, err
	}

	var items []physobj.Single
	switch v := p.(type) {
	case physobj.Single:
		items = []physobj.Single{v}
	case physobj.Multiple:
		for _, item := range v.Items {
			single, ok := item.(physobj.Single)
			if !ok {
				return nil, fmt.Errorf("InvariantMass components must be single physics objects, got %q", item.Identifier())
			}
			items = append(items, single)
		}
	default:
		return nil, fmt.Errorf("InvariantMass requires single physics objects, got %q", object)
	}

	return &invariantMass{
		name:   p.Identifier() + ".InvariantMass",
		object: p,
		items:  items,
	}, nil
}

type invariantMass struct {
	name   string
	object physobj.PhysicsObject
	items  []physobj.Single
}

func (im *invariantMass) Name() string { return im.name }

func (im *invariantMass) Read(batch *event.Batch) (jagged.Array, error) {
	out := make([]float64, len(batch.Events))
	for i := range batch.Events {
		total := event.P4{}
		missing := false
		for _, item := range im.items {
			sel, err := item.Resolve(&batch.Events[i])
			if err != nil {
				return jagged.Array{}, err
			}
			if sel.Object == nil {
				missing = true
				break
			}
			total = total.Add(sel.Object.P4())
		}
		if missing {
			out[i] = math.NaN()
		} else {
			out[i] = total.Mass()
		}
	}
	return jagged.FromScalars(out), nil
}
