// Package physobj implements the physics-object addressing grammar:
// compact textual identifiers that select detector objects from ragged
// per-event data.
//
// Four kinds of identifier exist:
//
//   - Single: one object by index, e.g. "Jet0"
//   - Collective: a bounded or open run of objects, e.g. "Jet:", "Jet1:3"
//   - Nested: children of selected objects, e.g. "Jet0.Constituents:10"
//   - Multiple: a comma list of the above, e.g. "Jet0,Jet1:3"
//
// Resolution clamps out-of-range indices to null slots instead of
// failing, so a fixed identifier yields fixed-width output across events
// with varying object multiplicities.
package physobj

import (
	"fmt"

	"github.com/arthur-debert/hepcut/event"
)

// PhysicsObject is a parsed identifier. The set of implementations is
// closed: Single, Collective, Nested and Multiple.
type PhysicsObject interface {
	// Identifier returns the canonical identifier string. Omitted
	// bounds stay omitted: a collective over all jets renders as
	// "Jet:", never "Jet0:-1".
	Identifier() string

	// Resolve applies the selection to one event. Out-of-range indices
	// become null slots; a field name absent from the event schema
	// fails with event.FieldNotFoundError.
	Resolve(ev *event.Record) (Selection, error)

	// resultDepth reports the per-event axis count of the resolved
	// selection, and seals the interface.
	resultDepth() (int, error)
}

// Selection is the result of resolving an identifier against one event.
// Null slots are nil objects.
type Selection struct {
	// Depth is the number of per-event axes: 0 for a lone object slot,
	// 1 for a flat list, 2 for a per-main list of lists. It is not
	// meaningful when IsMultiple is set.
	Depth int

	// Object holds the depth-0 result. Nil means the addressed slot is
	// out of range in this event.
	Object *event.Object

	// Objects holds the depth-1 result.
	Objects []*event.Object

	// PerMain holds the depth-2 result, one sub-list per main object.
	PerMain [][]*event.Object

	// Components holds the per-component results of a Multiple
	// selection, aligned with the identifier order.
	Components []Selection

	// IsMultiple marks the result of a Multiple identifier.
	IsMultiple bool
}

// ResultDepth reports how many per-event axes resolving p produces: 0
// for a single object, 1 for a flat list, 2 for a list of lists. It
// fails for Multiple identifiers whose components resolve to differing
// depths, or whose combined depth exceeds what ragged arrays carry.
func ResultDepth(p PhysicsObject) (int, error) {
	return p.resultDepth()
}

// ParseError indicates an identifier string matches none of the
// addressing kinds.
type ParseError struct {
	Identifier string
	Reason     string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid identifier %q: %s", e.Identifier, e.Reason)
}

// objectAt returns a pointer to the i-th object, or nil when i is out of
// range.
func objectAt(objs []event.Object, i int) *event.Object {
	if i < 0 || i >= len(objs) {
		return nil
	}
	return &objs[i]
}
