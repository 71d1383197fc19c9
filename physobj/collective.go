package physobj

import (
	"fmt"

	"github.com/arthur-debert/hepcut/event"
)

// UnboundedStop marks a collective selection with no declared stop: the
// run extends to however many objects the event actually holds.
const UnboundedStop = -1

// Collective addresses a run of objects, e.g. "Jet:", "Jet2:", "Jet:5"
// or "Jet2:5". With a bounded stop the resolved list always has length
// Stop-Start, right-padded with null slots; with an unbounded stop the
// list takes its natural length.
type Collective struct {
	Field string
	Start int
	Stop  int
}

// Identifier returns the canonical identifier. Default bounds are
// omitted: start 0 and an unbounded stop render as "Jet:".
func (c Collective) Identifier() string {
	switch {
	case c.Start == 0 && c.Stop == UnboundedStop:
		return c.Field + ":"
	case c.Stop == UnboundedStop:
		return fmt.Sprintf("%s%d:", c.Field, c.Start)
	case c.Start == 0:
		return fmt.Sprintf("%s:%d", c.Field, c.Stop)
	default:
		return fmt.Sprintf("%s%d:%d", c.Field, c.Start, c.Stop)
	}
}

// Resolve returns the selected run with the padding rules above.
func (c Collective) Resolve(ev *event.Record) (Selection, error) {
	objs, err := ev.Field(c.Field)
	if err != nil {
		return Selection{}, err
	}
	return Selection{Depth: 1, Objects: c.slice(objs)}, nil
}

func (c Collective) resultDepth() (int, error) { return 1, nil }

// slice applies the clamping and padding rules to one object collection.
func (c Collective) slice(objs []event.Object) []*event.Object {
	if c.Stop == UnboundedStop {
		if c.Start >= len(objs) {
			return []*event.Object{}
		}
		out := make([]*event.Object, 0, len(objs)-c.Start)
		for i := c.Start; i < len(objs); i++ {
			out = append(out, &objs[i])
		}
		return out
	}

	out := make([]*event.Object, 0, max(c.Stop-c.Start, 0))
	for i := c.Start; i < c.Stop; i++ {
		out = append(out, objectAt(objs, i))
	}
	return out
}

// nullPad returns the all-null list a missing parent contributes: the
// declared length for a bounded stop, a lone null slot otherwise.
func (c Collective) nullPad() []*event.Object {
	if c.Stop == UnboundedStop {
		return []*event.Object{nil}
	}
	return make([]*event.Object, max(c.Stop-c.Start, 0))
}
