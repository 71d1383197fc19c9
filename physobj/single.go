package physobj

import (
	"fmt"

	"github.com/arthur-debert/hepcut/event"
)

// Single addresses exactly one object in a field, e.g. "Jet0". It
// resolves to one object-or-null per event, never a list.
type Single struct {
	Field string
	Index int
}

// Identifier returns the canonical identifier, e.g. "Jet0".
func (s Single) Identifier() string {
	return fmt.Sprintf("%s%d", s.Field, s.Index)
}

// Resolve returns the addressed object, or a null slot when the index is
// out of range in this event.
func (s Single) Resolve(ev *event.Record) (Selection, error) {
	objs, err := ev.Field(s.Field)
	if err != nil {
		return Selection{}, err
	}
	return Selection{Depth: 0, Object: objectAt(objs, s.Index)}, nil
}

func (s Single) resultDepth() (int, error) { return 0, nil }
