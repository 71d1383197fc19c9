// Package cut implements boolean selection expressions over event
// batches. A cut combines atomic comparisons on observables with
// and/or, reduces ragged axes with all-or-any semantics, and yields one
// boolean per event.
//
// Expressions are parsed once at construction into an explicit clause
// skeleton; evaluation walks the skeleton elementwise, so no expression
// text is ever re-interpreted against data.
package cut

import (
	"github.com/arthur-debert/hepcut/event"
	"github.com/arthur-debert/hepcut/jagged"
	"github.com/arthur-debert/hepcut/obs"
)

// Cut is a parsed boolean selection expression. A Cut holds its parsed
// structure and the value from the last evaluation; it may be re-read
// against any number of batches, each call overwriting the previous
// value. A single Cut must not be read concurrently.
type Cut struct {
	expression string
	veto       bool
	anyMode    bool

	groups  [][]*clause
	clauses map[string]*clause

	order       []string
	observables map[string]obs.Observable

	value []bool
}

// New parses a cut expression and binds every referenced observable
// through the registry. All parse and lookup failures surface here,
// before any event is read.
func New(expression string, registry *obs.Registry) (*Cut, error) {
	parsed, err := parseExpression(expression)
	if err != nil {
		return nil, err
	}

	c := &Cut{
		expression:  expression,
		veto:        parsed.veto,
		anyMode:     parsed.anyMode,
		groups:      parsed.groups,
		clauses:     parsed.clauses,
		order:       parsed.observables,
		observables: make(map[string]obs.Observable, len(parsed.observables)),
	}

	for _, name := range parsed.observables {
		o, err := registry.Parse(name)
		if err != nil {
			return nil, &ClauseParseError{Clause: name, Reason: err.Error()}
		}
		c.observables[name] = o
	}

	return c, nil
}

// Read evaluates the cut against a batch and stores one boolean per
// event, in event order. It returns the cut itself so reads chain with
// Value.
func (c *Cut) Read(batch *event.Batch) (*Cut, error) {
	arrays := make(map[string]jagged.Array, len(c.observables))
	shapes := make(map[string]string, len(c.observables))
	distinct := make(map[string]bool)

	for _, name := range c.order {
		arr, err := c.observables[name].Read(batch)
		if err != nil {
			return nil, err
		}
		arrays[name] = arr
		shapes[name] = arr.Shape()
		distinct[arr.Shape()] = true
	}
	if len(distinct) > 1 {
		return nil, &ShapeMismatchError{Shapes: shapes}
	}

	for _, cl := range c.clauses {
		cl.result = arrays[cl.observable].Test(cl.predicate())
	}

	combined, err := c.combine(shapes)
	if err != nil {
		return nil, err
	}

	var result []bool
	if c.anyMode {
		result = combined.ReduceAny()
	} else {
		result = combined.ReduceAll()
	}

	if c.veto {
		for i := range result {
			result[i] = !result[i]
		}
	}

	c.value = result
	return c, nil
}

// Evaluate is an alias for Read.
func (c *Cut) Evaluate(batch *event.Batch) (*Cut, error) {
	return c.Read(batch)
}

// combine folds clause results through the boolean skeleton: AND within
// each group, OR across groups.
func (c *Cut) combine(shapes map[string]string) (jagged.Mask, error) {
	var combined jagged.Mask
	for gi, group := range c.groups {
		groupMask := group[0].result
		for _, cl := range group[1:] {
			m, err := groupMask.And(cl.result)
			if err != nil {
				return jagged.Mask{}, &ShapeMismatchError{Shapes: shapes, Detail: err.Error()}
			}
			groupMask = m
		}

		if gi == 0 {
			combined = groupMask
			continue
		}
		m, err := combined.Or(groupMask)
		if err != nil {
			return jagged.Mask{}, &ShapeMismatchError{Shapes: shapes, Detail: err.Error()}
		}
		combined = m
	}
	return combined, nil
}

// Value returns the per-event booleans from the last Read.
func (c *Cut) Value() []bool { return c.value }

// Expression returns the original expression string.
func (c *Cut) Expression() string { return c.expression }

// Veto reports whether the expression carries the veto modifier.
func (c *Cut) Veto() bool { return c.veto }

// Any reports whether the expression carries the any modifier.
func (c *Cut) Any() bool { return c.anyMode }

// Clauses maps each atomic clause text to the observable identifier it
// references.
func (c *Cut) Clauses() map[string]string {
	out := make(map[string]string, len(c.clauses))
	for text, cl := range c.clauses {
		out[text] = cl.observable
	}
	return out
}

// Observables returns the distinct observable identifiers the
// expression references, in first-seen order.
func (c *Cut) Observables() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
