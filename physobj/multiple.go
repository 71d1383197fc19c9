package physobj

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/hepcut/event"
)

// Multiple addresses several selections at once, e.g. "Jet0,Jet1:3".
// Components resolve independently against the same event and stay as an
// ordered list; results are never flattened or merged.
type Multiple struct {
	Items []PhysicsObject
}

// Identifier returns the canonical comma-joined identifier.
func (m Multiple) Identifier() string {
	parts := make([]string, len(m.Items))
	for i, item := range m.Items {
		parts[i] = item.Identifier()
	}
	return strings.Join(parts, ",")
}

// Resolve resolves every component against the event, preserving
// component order.
func (m Multiple) Resolve(ev *event.Record) (Selection, error) {
	components := make([]Selection, len(m.Items))
	for i, item := range m.Items {
		sel, err := item.Resolve(ev)
		if err != nil {
			return Selection{}, err
		}
		components[i] = sel
	}
	return Selection{IsMultiple: true, Components: components}, nil
}

// resultDepth requires all components to resolve to the same depth; the
// component axis then adds one. Mixed depths have no ragged-array
// representation, so value extraction rejects them up front.
func (m Multiple) resultDepth() (int, error) {
	if len(m.Items) == 0 {
		return 0, fmt.Errorf("multiple identifier with no components")
	}

	first, err := m.Items[0].resultDepth()
	if err != nil {
		return 0, err
	}
	for _, item := range m.Items[1:] {
		d, err := item.resultDepth()
		if err != nil {
			return 0, err
		}
		if d != first {
			return 0, fmt.Errorf("multiple identifier %q mixes component depths", m.Identifier())
		}
	}

	depth := first + 1
	if depth > 2 {
		return 0, fmt.Errorf("multiple identifier %q nests too deeply for per-event arrays", m.Identifier())
	}
	return depth, nil
}
