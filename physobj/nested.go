package physobj

import (
	"fmt"

	"github.com/arthur-debert/hepcut/event"
)

// Nested addresses children of selected objects, e.g.
// "Jet0.Constituents:10". The sub selection runs once per main object; a
// null main object short-circuits to an all-null sub-result of the
// declared length without touching the child accessor.
type Nested struct {
	Main PhysicsObject // Single or Collective
	Sub  PhysicsObject // Single or Collective
}

// Identifier returns the canonical identifier, e.g. "Jet:2.Constituents:10".
func (n Nested) Identifier() string {
	return n.Main.Identifier() + "." + n.Sub.Identifier()
}

// Resolve applies the sub selection to the children of every resolved
// main object. A single main contributes no axis of its own: the result
// is the sub-result for that one object.
func (n Nested) Resolve(ev *event.Record) (Selection, error) {
	switch main := n.Main.(type) {
	case Single:
		objs, err := ev.Field(main.Field)
		if err != nil {
			return Selection{}, err
		}
		return n.resolveSub(objectAt(objs, main.Index))

	case Collective:
		objs, err := ev.Field(main.Field)
		if err != nil {
			return Selection{}, err
		}
		mains := main.slice(objs)

		switch sub := n.Sub.(type) {
		case Single:
			out := make([]*event.Object, len(mains))
			for i, m := range mains {
				if m == nil {
					continue
				}
				children, err := m.Sub(sub.Field)
				if err != nil {
					return Selection{}, err
				}
				out[i] = objectAt(children, sub.Index)
			}
			return Selection{Depth: 1, Objects: out}, nil

		case Collective:
			out := make([][]*event.Object, len(mains))
			for i, m := range mains {
				if m == nil {
					out[i] = sub.nullPad()
					continue
				}
				children, err := m.Sub(sub.Field)
				if err != nil {
					return Selection{}, err
				}
				out[i] = sub.slice(children)
			}
			return Selection{Depth: 2, PerMain: out}, nil
		}
	}

	return Selection{}, fmt.Errorf("nested identifier %q: main and sub must be single or collective", n.Identifier())
}

// resolveSub resolves the sub selection against one main object.
func (n Nested) resolveSub(main *event.Object) (Selection, error) {
	switch sub := n.Sub.(type) {
	case Single:
		if main == nil {
			return Selection{Depth: 0}, nil
		}
		children, err := main.Sub(sub.Field)
		if err != nil {
			return Selection{}, err
		}
		return Selection{Depth: 0, Object: objectAt(children, sub.Index)}, nil

	case Collective:
		if main == nil {
			return Selection{Depth: 1, Objects: sub.nullPad()}, nil
		}
		children, err := main.Sub(sub.Field)
		if err != nil {
			return Selection{}, err
		}
		return Selection{Depth: 1, Objects: sub.slice(children)}, nil
	}

	return Selection{}, fmt.Errorf("nested identifier %q: sub must be single or collective", n.Identifier())
}

func (n Nested) resultDepth() (int, error) {
	mainDepth, err := n.Main.resultDepth()
	if err != nil {
		return 0, err
	}
	subDepth, err := n.Sub.resultDepth()
	if err != nil {
		return 0, err
	}
	return mainDepth + subDepth, nil
}
