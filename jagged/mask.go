package jagged

import "fmt"

// Mask is a ragged boolean array with the same layout rules as Array.
type Mask struct {
	depth   int
	scalars []bool
	lists   [][]bool
	nested  [][][]bool
}

// Depth returns the number of axes, counting the event axis.
func (m Mask) Depth() int { return m.depth }

// Len returns the number of events.
func (m Mask) Len() int {
	switch m.depth {
	case 1:
		return len(m.scalars)
	case 2:
		return len(m.lists)
	case 3:
		return len(m.nested)
	}
	return 0
}

// And combines two masks elementwise. Both masks must have identical
// ragged structure.
func (m Mask) And(o Mask) (Mask, error) {
	return m.combine(o, func(a, b bool) bool { return a && b })
}

// Or combines two masks elementwise. Both masks must have identical
// ragged structure.
func (m Mask) Or(o Mask) (Mask, error) {
	return m.combine(o, func(a, b bool) bool { return a || b })
}

func (m Mask) combine(o Mask, op func(bool, bool) bool) (Mask, error) {
	if m.depth != o.depth {
		return Mask{}, fmt.Errorf("mask depth mismatch: %d vs %d", m.depth, o.depth)
	}
	if m.Len() != o.Len() {
		return Mask{}, fmt.Errorf("mask event count mismatch: %d vs %d", m.Len(), o.Len())
	}

	switch m.depth {
	case 1:
		out := make([]bool, len(m.scalars))
		for i, v := range m.scalars {
			out[i] = op(v, o.scalars[i])
		}
		return Mask{depth: 1, scalars: out}, nil
	case 2:
		out := make([][]bool, len(m.lists))
		for i, list := range m.lists {
			if len(list) != len(o.lists[i]) {
				return Mask{}, fmt.Errorf("ragged structure mismatch at event %d: %d vs %d entries", i, len(list), len(o.lists[i]))
			}
			row := make([]bool, len(list))
			for j, v := range list {
				row[j] = op(v, o.lists[i][j])
			}
			out[i] = row
		}
		return Mask{depth: 2, lists: out}, nil
	case 3:
		out := make([][][]bool, len(m.nested))
		for i, grid := range m.nested {
			if len(grid) != len(o.nested[i]) {
				return Mask{}, fmt.Errorf("ragged structure mismatch at event %d: %d vs %d entries", i, len(grid), len(o.nested[i]))
			}
			rows := make([][]bool, len(grid))
			for j, list := range grid {
				if len(list) != len(o.nested[i][j]) {
					return Mask{}, fmt.Errorf("ragged structure mismatch at event %d: %d vs %d sub-entries", i, len(list), len(o.nested[i][j]))
				}
				row := make([]bool, len(list))
				for k, v := range list {
					row[k] = op(v, o.nested[i][j][k])
				}
				rows[j] = row
			}
			out[i] = rows
		}
		return Mask{depth: 3, nested: out}, nil
	}
	return Mask{}, fmt.Errorf("unsupported mask depth %d", m.depth)
}

// ReduceAll collapses all inner axes with logical AND, yielding one
// boolean per event. An event with no inner entries reduces to true. A
// depth-1 mask is returned as a copy.
func (m Mask) ReduceAll() []bool {
	return m.reduce(true, func(acc, v bool) bool { return acc && v })
}

// ReduceAny collapses all inner axes with logical OR, yielding one
// boolean per event. An event with no inner entries reduces to false. A
// depth-1 mask is returned as a copy.
func (m Mask) ReduceAny() []bool {
	return m.reduce(false, func(acc, v bool) bool { return acc || v })
}

func (m Mask) reduce(identity bool, op func(bool, bool) bool) []bool {
	switch m.depth {
	case 1:
		out := make([]bool, len(m.scalars))
		copy(out, m.scalars)
		return out
	case 2:
		out := make([]bool, len(m.lists))
		for i, list := range m.lists {
			acc := identity
			for _, v := range list {
				acc = op(acc, v)
			}
			out[i] = acc
		}
		return out
	case 3:
		out := make([]bool, len(m.nested))
		for i, grid := range m.nested {
			acc := identity
			for _, list := range grid {
				for _, v := range list {
					acc = op(acc, v)
				}
			}
			out[i] = acc
		}
		return out
	}
	return nil
}
