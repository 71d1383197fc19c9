// Package event holds the in-memory model for batches of simulated
// collision events: named, variable-length collections of detector
// objects per event, with nested child collections.
//
// The package owns no physics: it is the reader capability that the
// addressing and cut layers resolve identifiers against.
package event

import "fmt"

// Record is one event: a set of named object collections ("Jet",
// "Electron", ...), each of arbitrary per-event length.
type Record struct {
	Fields map[string][]Object `json:"fields"`
}

// Field returns the object collection stored under name. A missing field
// name is a schema mismatch and fails with FieldNotFoundError; it is
// never folded into an empty collection.
func (r *Record) Field(name string) ([]Object, error) {
	objs, ok := r.Fields[name]
	if !ok {
		return nil, &FieldNotFoundError{Field: name}
	}
	return objs, nil
}

// Batch is an ordered, fully materialized collection of events. All cut
// evaluation happens against one batch at a time.
type Batch struct {
	Events []Record `json:"events"`
}

// Len returns the number of events in the batch.
func (b *Batch) Len() int { return len(b.Events) }

// FieldNotFoundError indicates an identifier referenced a field name that
// the event schema does not contain.
type FieldNotFoundError struct {
	Field string
}

// Error implements the error interface.
func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %q not found in event", e.Field)
}
