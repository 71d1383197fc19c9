// Package jagged implements small ragged array types for per-event
// values. The outer axis is always the event axis; up to two inner axes
// carry object and sub-object multiplicity. Missing entries are NaN in
// numeric arrays and evaluate to false under every comparison.
package jagged

import (
	"fmt"
	"math"
	"strconv"
)

// Array is a ragged float64 array of depth 1 to 3. Depth 1 is one scalar
// per event, depth 2 one list per event, depth 3 one list of lists per
// event.
type Array struct {
	depth   int
	scalars []float64
	lists   [][]float64
	nested  [][][]float64
}

// FromScalars wraps one value per event.
func FromScalars(values []float64) Array {
	return Array{depth: 1, scalars: values}
}

// FromLists wraps one list per event.
func FromLists(values [][]float64) Array {
	return Array{depth: 2, lists: values}
}

// FromNested wraps one list of lists per event.
func FromNested(values [][][]float64) Array {
	return Array{depth: 3, nested: values}
}

// Depth returns the number of axes, counting the event axis.
func (a Array) Depth() int { return a.depth }

// Len returns the number of events.
func (a Array) Len() int {
	switch a.depth {
	case 1:
		return len(a.scalars)
	case 2:
		return len(a.lists)
	case 3:
		return len(a.nested)
	}
	return 0
}

// Scalars returns the per-event values of a depth-1 array.
func (a Array) Scalars() []float64 { return a.scalars }

// Lists returns the per-event lists of a depth-2 array.
func (a Array) Lists() [][]float64 { return a.lists }

// Nested returns the per-event grids of a depth-3 array.
func (a Array) Nested() [][][]float64 { return a.nested }

// Shape returns a comparable description of the array layout, e.g.
// "1000 * float64", "1000 * 3 * float64" or "1000 * var * float64".
// Inner axes report a fixed length only when every entry agrees.
func (a Array) Shape() string {
	switch a.depth {
	case 1:
		return fmt.Sprintf("%d * float64", len(a.scalars))
	case 2:
		lens := make([]int, len(a.lists))
		for i, l := range a.lists {
			lens[i] = len(l)
		}
		return fmt.Sprintf("%d * %s * float64", len(a.lists), axisLabel(lens))
	case 3:
		outer := make([]int, len(a.nested))
		var inner []int
		for i, grid := range a.nested {
			outer[i] = len(grid)
			for _, row := range grid {
				inner = append(inner, len(row))
			}
		}
		return fmt.Sprintf("%d * %s * %s * float64", len(a.nested), axisLabel(outer), axisLabel(inner))
	}
	return "0 * float64"
}

// axisLabel reduces a list of per-entry lengths to a fixed size or "var".
func axisLabel(lens []int) string {
	if len(lens) == 0 {
		return "0"
	}
	first := lens[0]
	for _, l := range lens[1:] {
		if l != first {
			return "var"
		}
	}
	return strconv.Itoa(first)
}

// Test applies a predicate elementwise and returns a mask with the same
// structure. NaN entries are missing values and always test false,
// whatever the predicate.
func (a Array) Test(pred func(float64) bool) Mask {
	test := func(v float64) bool {
		if math.IsNaN(v) {
			return false
		}
		return pred(v)
	}

	switch a.depth {
	case 1:
		out := make([]bool, len(a.scalars))
		for i, v := range a.scalars {
			out[i] = test(v)
		}
		return Mask{depth: 1, scalars: out}
	case 2:
		out := make([][]bool, len(a.lists))
		for i, list := range a.lists {
			row := make([]bool, len(list))
			for j, v := range list {
				row[j] = test(v)
			}
			out[i] = row
		}
		return Mask{depth: 2, lists: out}
	case 3:
		out := make([][][]bool, len(a.nested))
		for i, grid := range a.nested {
			rows := make([][]bool, len(grid))
			for j, list := range grid {
				row := make([]bool, len(list))
				for k, v := range list {
					row[k] = test(v)
				}
				rows[j] = row
			}
			out[i] = rows
		}
		return Mask{depth: 3, nested: out}
	}
	return Mask{}
}
