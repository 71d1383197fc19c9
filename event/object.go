package event

import "math"

// Object is a single reconstructed detector object: a jet, a track, a
// lepton, and so on. Kinematics are stored in the (pt, eta, phi, mass)
// parametrization used by the event sources; cartesian components are
// derived on demand.
type Object struct {
	Pt       float64             `json:"pt"`
	Eta      float64             `json:"eta"`
	Phi      float64             `json:"phi"`
	Mass     float64             `json:"mass"`
	Charge   int                 `json:"charge,omitempty"`
	BTag     int                 `json:"b_tag,omitempty"`
	Tau      []float64           `json:"tau,omitempty"`
	Children map[string][]Object `json:"children,omitempty"`
}

// Px returns the x component of the momentum.
func (o *Object) Px() float64 { return o.Pt * math.Cos(o.Phi) }

// Py returns the y component of the momentum.
func (o *Object) Py() float64 { return o.Pt * math.Sin(o.Phi) }

// Pz returns the z component of the momentum.
func (o *Object) Pz() float64 { return o.Pt * math.Sinh(o.Eta) }

// P returns the magnitude of the momentum.
func (o *Object) P() float64 { return o.Pt * math.Cosh(o.Eta) }

// E returns the energy computed from the stored mass and momentum.
func (o *Object) E() float64 {
	p := o.P()
	return math.Sqrt(o.Mass*o.Mass + p*p)
}

// P4 returns the four-momentum of the object.
func (o *Object) P4() P4 {
	return P4{Px: o.Px(), Py: o.Py(), Pz: o.Pz(), E: o.E()}
}

// Sub returns the child collection stored under name, e.g. the
// constituents of a jet. A missing collection is a schema error, distinct
// from a present-but-empty collection.
func (o *Object) Sub(name string) ([]Object, error) {
	objs, ok := o.Children[name]
	if !ok {
		return nil, &FieldNotFoundError{Field: name}
	}
	return objs, nil
}
