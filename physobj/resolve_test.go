package physobj

import (
	"errors"
	"testing"

	"github.com/arthur-debert/hepcut/event"
	"github.com/arthur-debert/hepcut/testutil"
)

// pts flattens a depth-1 selection to transverse momenta, with NaN-free
// bookkeeping left to the caller: nil slots come back as -1.
func pts(objs []*event.Object) []float64 {
	out := make([]float64, len(objs))
	for i, o := range objs {
		if o == nil {
			out[i] = -1
			continue
		}
		out[i] = o.Pt
	}
	return out
}

func mustResolve(t *testing.T, identifier string, ev *event.Record) Selection {
	t.Helper()
	obj, err := Parse(identifier)
	if err != nil {
		t.Fatalf("Parse(%q): %v", identifier, err)
	}
	sel, err := obj.Resolve(ev)
	if err != nil {
		t.Fatalf("Resolve(%q): %v", identifier, err)
	}
	return sel
}

func TestSingleResolve(t *testing.T) {
	batch := testutil.DiJetBatch()

	sel := mustResolve(t, "Jet0", &batch.Events[0])
	if sel.Depth != 0 || sel.Object == nil {
		t.Fatalf("got %+v, want depth-0 object", sel)
	}
	if sel.Object.Pt != 120 {
		t.Errorf("Jet0 pt = %v, want 120", sel.Object.Pt)
	}

	// Out-of-range index resolves to a null slot, not an error.
	sel = mustResolve(t, "Jet0", &batch.Events[2])
	if sel.Object != nil {
		t.Errorf("Jet0 in jetless event = %+v, want nil", sel.Object)
	}
	sel = mustResolve(t, "Jet7", &batch.Events[0])
	if sel.Object != nil {
		t.Errorf("Jet7 = %+v, want nil", sel.Object)
	}
}

func TestCollectiveResolve(t *testing.T) {
	batch := testutil.DiJetBatch()

	tests := []struct {
		name       string
		identifier string
		event      int
		wantPts    []float64
	}{
		{"open run", "Jet:", 0, []float64{120, 80, 40}},
		{"open run empty", "Jet:", 2, []float64{}},
		{"start clamps to natural end", "Jet1:", 0, []float64{80, 40}},
		{"start beyond length", "Jet5:", 0, []float64{}},
		{"bounded pads with nulls", "Jet:3", 1, []float64{60, -1, -1}},
		{"bounded all null", "Jet:2", 2, []float64{-1, -1}},
		{"bounded window", "Jet1:3", 0, []float64{80, 40}},
		{"inverted window is empty", "Jet3:1", 0, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := mustResolve(t, tt.identifier, &batch.Events[tt.event])
			if sel.Depth != 1 {
				t.Fatalf("depth = %d, want 1", sel.Depth)
			}
			testutil.AssertFloats(t, pts(sel.Objects), tt.wantPts)
		})
	}
}

func TestNestedResolve(t *testing.T) {
	batch := testutil.DiJetBatch()

	t.Run("single main collapses its axis", func(t *testing.T) {
		sel := mustResolve(t, "Jet0.Constituents:2", &batch.Events[0])
		if sel.Depth != 1 {
			t.Fatalf("depth = %d, want 1", sel.Depth)
		}
		testutil.AssertFloats(t, pts(sel.Objects), []float64{95, 20})
	})

	t.Run("null main yields declared-length nulls", func(t *testing.T) {
		sel := mustResolve(t, "Jet0.Constituents:2", &batch.Events[2])
		if sel.Depth != 1 {
			t.Fatalf("depth = %d, want 1", sel.Depth)
		}
		testutil.AssertFloats(t, pts(sel.Objects), []float64{-1, -1})
	})

	t.Run("null main with open sub yields one null", func(t *testing.T) {
		sel := mustResolve(t, "Jet0.Constituents:", &batch.Events[2])
		testutil.AssertFloats(t, pts(sel.Objects), []float64{-1})
	})

	t.Run("single main single sub", func(t *testing.T) {
		sel := mustResolve(t, "Jet0.Constituents1", &batch.Events[0])
		if sel.Depth != 0 || sel.Object == nil {
			t.Fatalf("got %+v, want depth-0 object", sel)
		}
		if sel.Object.Pt != 20 {
			t.Errorf("pt = %v, want 20", sel.Object.Pt)
		}

		sel = mustResolve(t, "Jet0.Constituents1", &batch.Events[2])
		if sel.Object != nil {
			t.Errorf("got %+v, want nil for null main", sel.Object)
		}
	})

	t.Run("collective main single sub", func(t *testing.T) {
		sel := mustResolve(t, "Jet:3.Constituents0", &batch.Events[3])
		if sel.Depth != 1 {
			t.Fatalf("depth = %d, want 1", sel.Depth)
		}
		// Jet 0 leads with pt 120; jet 1 has no constituents; jet 2 is
		// a null pad slot.
		testutil.AssertFloats(t, pts(sel.Objects), []float64{120, -1, -1})
	})

	t.Run("collective main collective sub", func(t *testing.T) {
		sel := mustResolve(t, "Jet:2.Constituents:2", &batch.Events[1])
		if sel.Depth != 2 {
			t.Fatalf("depth = %d, want 2", sel.Depth)
		}
		if len(sel.PerMain) != 2 {
			t.Fatalf("got %d sub-lists, want 2", len(sel.PerMain))
		}
		testutil.AssertFloats(t, pts(sel.PerMain[0]), []float64{60, -1})
		testutil.AssertFloats(t, pts(sel.PerMain[1]), []float64{-1, -1})
	})
}

func TestMultipleResolve(t *testing.T) {
	batch := testutil.DiJetBatch()

	sel := mustResolve(t, "Jet0,Electron0", &batch.Events[0])
	if !sel.IsMultiple {
		t.Fatal("IsMultiple = false, want true")
	}
	if len(sel.Components) != 2 {
		t.Fatalf("got %d components, want 2", len(sel.Components))
	}
	if sel.Components[0].Object.Pt != 120 {
		t.Errorf("component 0 pt = %v, want 120", sel.Components[0].Object.Pt)
	}
	if sel.Components[1].Object.Pt != 25 {
		t.Errorf("component 1 pt = %v, want 25", sel.Components[1].Object.Pt)
	}
}

func TestResolveUnknownField(t *testing.T) {
	batch := testutil.DiJetBatch()

	for _, identifier := range []string{"Muon0", "Muon:", "Muon0.Constituents:", "Jet0,Muon0"} {
		t.Run(identifier, func(t *testing.T) {
			obj, err := Parse(identifier)
			if err != nil {
				t.Fatalf("Parse(%q): %v", identifier, err)
			}
			_, err = obj.Resolve(&batch.Events[0])
			var notFound *event.FieldNotFoundError
			if !errors.As(err, &notFound) {
				t.Fatalf("got %v, want FieldNotFoundError", err)
			}
			if notFound.Field != "Muon" {
				t.Errorf("missing field = %q, want Muon", notFound.Field)
			}
		})
	}
}

func TestResultDepth(t *testing.T) {
	tests := []struct {
		identifier string
		want       int
		wantErr    bool
	}{
		{"Jet0", 0, false},
		{"Jet:", 1, false},
		{"Jet0.Constituents0", 0, false},
		{"Jet0.Constituents:", 1, false},
		{"Jet:.Constituents0", 1, false},
		{"Jet:.Constituents:", 2, false},
		{"Jet0,Electron0", 1, false},
		{"Jet:,Electron:", 2, false},
		{"Jet0,Electron:", 0, true},
		{"Jet:.Constituents:,Electron:.Constituents:", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			obj, err := Parse(tt.identifier)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.identifier, err)
			}
			depth, err := ResultDepth(obj)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResultDepth = %d, want error", depth)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResultDepth: %v", err)
			}
			if depth != tt.want {
				t.Errorf("ResultDepth = %d, want %d", depth, tt.want)
			}
		})
	}
}
