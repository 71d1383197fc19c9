package event

import "math"

// P4 is a cartesian four-momentum.
type P4 struct {
	Px float64
	Py float64
	Pz float64
	E  float64
}

// Add returns the component-wise sum of two four-momenta.
func (p P4) Add(q P4) P4 {
	return P4{
		Px: p.Px + q.Px,
		Py: p.Py + q.Py,
		Pz: p.Pz + q.Pz,
		E:  p.E + q.E,
	}
}

// Mass returns the invariant mass. The result is NaN when the squared
// mass is negative, which only happens through rounding on unphysical
// inputs.
func (p P4) Mass() float64 {
	m2 := p.E*p.E - p.Px*p.Px - p.Py*p.Py - p.Pz*p.Pz
	return math.Sqrt(m2)
}
