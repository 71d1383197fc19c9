package obs

import (
	"fmt"
	"sort"
	"strings"
)

// Builder constructs an observable for a physics-object identifier. The
// identifier is empty when the observable was registered under a bare
// name with no object prefix.
type Builder func(object string) (Observable, error)

// Registry is an explicit table of observable names. Nothing registers
// itself at import time; callers take DefaultRegistry and extend it, or
// assemble their own.
type Registry struct {
	builders map[string]Builder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// Register binds a builder to a name and any number of aliases. Later
// registrations win.
func (r *Registry) Register(name string, builder Builder, aliases ...string) {
	r.builders[name] = builder
	for _, alias := range aliases {
		r.builders[alias] = builder
	}
}

// Names returns all registered names and aliases, sorted for stable
// listings.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse builds the observable referenced by a full name like "Jet0.Pt".
// A name registered as-is takes precedence; otherwise everything before
// the last period is the physics-object identifier and the rest is the
// observable name.
func (r *Registry) Parse(name string) (Observable, error) {
	if builder, ok := r.builders[name]; ok {
		return builder("")
	}

	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return nil, fmt.Errorf("observable %q not found", name)
	}
	object, kind := name[:idx], name[idx+1:]
	builder, ok := r.builders[kind]
	if !ok {
		return nil, fmt.Errorf("observable %q not found", kind)
	}
	return builder(object)
}

// DefaultRegistry returns the built-in observable table with the aliases
// the analysis configs use.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register("Pt", NewPt, "pt", "pT", "PT", "TransverseMomentum")
	r.Register("Eta", NewEta, "eta", "PseudoRapidity")
	r.Register("Phi", NewPhi, "phi", "AzimuthalAngle")
	r.Register("M", NewM, "m", "mass", "Mass")
	r.Register("Px", NewPx, "px", "MomentumX")
	r.Register("Py", NewPy, "py", "MomentumY")
	r.Register("Pz", NewPz, "pz", "MomentumZ")
	r.Register("E", NewE, "e", "Energy")
	r.Register("Charge", NewCharge, "charge")
	r.Register("BTag", NewBTag, "b_tag")
	r.Register("Size", NewSize, "size")
	r.Register("InvariantMass", NewInvariantMass, "InvM", "invariant_mass")

	for n := 1; n <= 5; n++ {
		n := n
		r.Register(fmt.Sprintf("Tau%d", n), func(object string) (Observable, error) {
			return NewNSubjettiness(object, n)
		})
	}
	for _, mn := range [][2]int{{2, 1}, {3, 2}, {4, 3}} {
		m, n := mn[0], mn[1]
		r.Register(fmt.Sprintf("Tau%d%d", m, n), func(object string) (Observable, error) {
			return NewNSubjettinessRatio(object, m, n)
		})
	}

	return r
}
