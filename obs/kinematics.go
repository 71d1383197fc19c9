package obs

import (
	"fmt"
	"math"

	"github.com/arthur-debert/hepcut/event"
	"github.com/arthur-debert/hepcut/jagged"
	"github.com/arthur-debert/hepcut/physobj"
)

// NewPt builds the transverse momentum observable.
func NewPt(object string) (Observable, error) {
	return newObjectObservable("Pt", object, func(o *event.Object) float64 { return o.Pt })
}

// NewEta builds the pseudorapidity observable.
func NewEta(object string) (Observable, error) {
	return newObjectObservable("Eta", object, func(o *event.Object) float64 { return o.Eta })
}

// NewPhi builds the azimuthal angle observable.
func NewPhi(object string) (Observable, error) {
	return newObjectObservable("Phi", object, func(o *event.Object) float64 { return o.Phi })
}

// NewM builds the mass observable.
func NewM(object string) (Observable, error) {
	return newObjectObservable("M", object, func(o *event.Object) float64 { return o.Mass })
}

// NewPx builds the x-momentum observable.
func NewPx(object string) (Observable, error) {
	return newObjectObservable("Px", object, (*event.Object).Px)
}

// NewPy builds the y-momentum observable.
func NewPy(object string) (Observable, error) {
	return newObjectObservable("Py", object, (*event.Object).Py)
}

// NewPz builds the z-momentum observable.
func NewPz(object string) (Observable, error) {
	return newObjectObservable("Pz", object, (*event.Object).Pz)
}

// NewE builds the energy observable.
func NewE(object string) (Observable, error) {
	return newObjectObservable("E", object, (*event.Object).E)
}

// NewCharge builds the electric charge observable.
func NewCharge(object string) (Observable, error) {
	return newObjectObservable("Charge", object, func(o *event.Object) float64 { return float64(o.Charge) })
}

// NewBTag builds the b-tag flag observable.
func NewBTag(object string) (Observable, error) {
	return newObjectObservable("BTag", object, func(o *event.Object) float64 { return float64(o.BTag) })
}

// NewNSubjettiness builds the tau_n observable for a 1-based subjettiness
// index. Objects without that tau entry read as NaN.
func NewNSubjettiness(object string, n int) (Observable, error) {
	if n < 1 {
		return nil, fmt.Errorf("n-subjettiness index must be positive, got %d", n)
	}
	kind := fmt.Sprintf("Tau%d", n)
	return newObjectObservable(kind, object, func(o *event.Object) float64 {
		if n > len(o.Tau) {
			return math.NaN()
		}
		return o.Tau[n-1]
	})
}

// NewNSubjettinessRatio builds the tau_m/tau_n ratio observable. A zero
// denominator or a missing tau entry reads as NaN.
func NewNSubjettinessRatio(object string, m, n int) (Observable, error) {
	if m < 1 || n < 1 {
		return nil, fmt.Errorf("n-subjettiness indices must be positive, got %d and %d", m, n)
	}
	kind := fmt.Sprintf("Tau%d%d", m, n)
	return newObjectObservable(kind, object, func(o *event.Object) float64 {
		if m > len(o.Tau) || n > len(o.Tau) || o.Tau[n-1] == 0 {
			return math.NaN()
		}
		return o.Tau[m-1] / o.Tau[n-1]
	})
}

// NewSize builds the object multiplicity observable: the number of
// objects actually present in a collective selection, one integer-valued
// scalar per event.
func NewSize(object string) (Observable, error) {
	p, err := physobj.Parse(object)
	if err != nil {
		return nil, err
	}
	if _, ok := p.(physobj.Collective); !ok {
		return nil, fmt.Errorf("Size requires a collective physics object, got %q", object)
	}
	return &sizeObservable{name: p.Identifier() + ".Size", object: p}, nil
}

type sizeObservable struct {
	name   string
	object physobj.PhysicsObject
}

func (s *sizeObservable) Name() string { return s.name }

func (s *sizeObservable) Read(batch *event.Batch) (jagged.Array, error) {
	out := make([]float64, len(batch.Events))
	for i := range batch.Events {
		sel, err := s.object.Resolve(&batch.Events[i])
		if err != nil {
			return jagged.Array{}, err
		}
		count := 0
		for _, o := range sel.Objects {
			if o != nil {
				count++
			}
		}
		out[i] = float64(count)
	}
	return jagged.FromScalars(out), nil
}
