package cut

import (
	"fmt"
	"sort"
	"strings"
)

// ClauseParseError indicates a cut expression could not be decomposed
// into atomic comparison clauses. It always surfaces at construction
// time, before any event is read.
type ClauseParseError struct {
	Clause string
	Reason string
}

// Error implements the error interface.
func (e *ClauseParseError) Error() string {
	return fmt.Sprintf("invalid cut clause %q: %s", e.Clause, e.Reason)
}

// ShapeMismatchError indicates the observables referenced by one
// expression disagree on batch shape, so their boolean arrays cannot be
// combined elementwise.
type ShapeMismatchError struct {
	// Shapes maps each observable identifier to the shape it produced.
	Shapes map[string]string

	// Detail carries the structural mismatch when shape strings agree
	// but per-event lengths do not.
	Detail string
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	names := make([]string, 0, len(e.Shapes))
	for name := range e.Shapes {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Shapes[name]))
	}

	msg := "observables disagree on batch shape: " + strings.Join(parts, ", ")
	if e.Detail != "" {
		msg += "; " + e.Detail
	}
	return msg
}
