// Package testutil provides a shared event fixture and small assertion
// helpers for tests across the repository.
package testutil

import (
	"github.com/arthur-debert/hepcut/event"
)

// DiJetBatch builds a small batch exercising the interesting shapes:
//
//	event 0: 3 jets (pt 120, 80, 40) with constituents, 1 electron (pt 25)
//	event 1: 1 jet (pt 60) with a single constituent, no electrons
//	event 2: no jets, 2 electrons (pt 10, 5)
//	event 3: 2 jets (pt 200 with 4 constituents, pt 100 with none)
//
// Every jet carries a three-entry Tau vector so subjettiness observables
// resolve, and every object exposes a Constituents child list (possibly
// empty) so nested identifiers never miss the field.
func DiJetBatch() *event.Batch {
	return &event.Batch{Events: []event.Record{
		{Fields: map[string][]event.Object{
			"Jet": {
				jet(120, 0.5, 1.2, 10, 1, constituents(95, 20, 5)),
				jet(80, -1.1, 2.8, 8, 0, constituents(50, 30)),
				jet(40, 2.3, -0.4, 6, 0, constituents(40)),
			},
			"Electron": {lepton(25, 0.2, 1.0, -1)},
		}},
		{Fields: map[string][]event.Object{
			"Jet":      {jet(60, 0.9, -2.1, 7, 1, constituents(60))},
			"Electron": {},
		}},
		{Fields: map[string][]event.Object{
			"Jet":      {},
			"Electron": {lepton(10, -0.7, 0.3, 1), lepton(5, 1.5, -1.9, -1)},
		}},
		{Fields: map[string][]event.Object{
			"Jet": {
				jet(200, 0.1, 0.0, 15, 1, constituents(120, 50, 20, 10)),
				jet(100, -0.3, 3.0, 9, 0, constituents()),
			},
			"Electron": {},
		}},
	}}
}

func jet(pt, eta, phi, mass float64, btag int, children []event.Object) event.Object {
	return event.Object{
		Pt:       pt,
		Eta:      eta,
		Phi:      phi,
		Mass:     mass,
		BTag:     btag,
		Tau:      []float64{0.5, 0.25, 0.1},
		Children: map[string][]event.Object{"Constituents": children},
	}
}

func lepton(pt, eta, phi float64, charge int) event.Object {
	return event.Object{
		Pt:       pt,
		Eta:      eta,
		Phi:      phi,
		Mass:     0.000511,
		Charge:   charge,
		Children: map[string][]event.Object{"Constituents": {}},
	}
}

func constituents(pts ...float64) []event.Object {
	out := make([]event.Object, len(pts))
	for i, pt := range pts {
		out[i] = event.Object{
			Pt:       pt,
			Eta:      0.1 * float64(i),
			Phi:      -0.2 * float64(i),
			Mass:     0.14,
			Children: map[string][]event.Object{"Constituents": {}},
		}
	}
	return out
}
