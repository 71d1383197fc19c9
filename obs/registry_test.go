package obs

import (
	"testing"

	"github.com/arthur-debert/hepcut/event"
	"github.com/arthur-debert/hepcut/jagged"
	"github.com/arthur-debert/hepcut/testutil"
)

func TestRegistryParse(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		name     string
		wantName string
	}{
		{"Jet0.Pt", "Jet0.Pt"},
		{"Jet0.pt", "Jet0.Pt"},
		{"Jet0.pT", "Jet0.Pt"},
		{"Jet0.TransverseMomentum", "Jet0.Pt"},
		{"Jet:3.Eta", "Jet:3.Eta"},
		{"Jet0.mass", "Jet0.M"},
		{"Jet0.b_tag", "Jet0.BTag"},
		{"Jet:.size", "Jet:.Size"},
		{"Jet0.Tau21", "Jet0.Tau21"},
		// The object segment is everything before the last period.
		{"Jet0.Constituents:2.Pt", "Jet0.Constituents:2.Pt"},
		{"Jet0,Jet1.InvariantMass", "Jet0,Jet1.InvariantMass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := r.Parse(tt.name)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.name, err)
			}
			if got := o.Name(); got != tt.wantName {
				t.Errorf("Name() = %q, want %q", got, tt.wantName)
			}
		})
	}
}

func TestRegistryParseErrors(t *testing.T) {
	r := DefaultRegistry()

	for _, name := range []string{"", "Unknown", "Jet0.Unknown", "Jet0.Pt.Unknown"} {
		t.Run(name, func(t *testing.T) {
			if _, err := r.Parse(name); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", name)
			}
		})
	}
}

func TestRegistryBareNamePrecedence(t *testing.T) {
	r := DefaultRegistry()

	// A name registered as-is wins over last-period splitting, so ad-hoc
	// event-level quantities can carry periods or plain names.
	called := false
	r.Register("MET.Magnitude", func(object string) (Observable, error) {
		return Func("MET.Magnitude", func(batch *event.Batch) (jagged.Array, error) {
			called = true
			return jagged.FromScalars(make([]float64, batch.Len())), nil
		}), nil
	})

	o, err := r.Parse("MET.Magnitude")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := o.Read(testutil.DiJetBatch()); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !called {
		t.Error("bare-name registration was not used")
	}
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry()
	r.Register("Pt", NewPt, "pt")
	r.Register("Eta", NewEta)

	got := r.Names()
	want := []string{"Eta", "Pt", "pt"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
