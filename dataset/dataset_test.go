package dataset

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/hepcut/obs"
	"github.com/arthur-debert/hepcut/testutil"
)

func TestTabularRead(t *testing.T) {
	ds, err := New("dijet", []string{"Jet0.Pt", "Jet:.Size"}, obs.DefaultRegistry())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if ds.ID == "" {
		t.Error("dataset has no ID")
	}

	batch := testutil.DiJetBatch()
	if err := ds.Read(batch, 1); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if ds.Len() != 4 {
		t.Fatalf("Len = %d, want 4", ds.Len())
	}

	testutil.AssertFloats(t, ds.Samples[0], []float64{120, 3})
	testutil.AssertFloats(t, ds.Samples[2], []float64{math.NaN(), 0})

	// Reading a second batch stacks rows with its own target label.
	if err := ds.Read(batch, 0); err != nil {
		t.Fatalf("second Read: %v", err)
	}
	if ds.Len() != 8 {
		t.Fatalf("Len = %d, want 8", ds.Len())
	}
	wantTargets := []int{1, 1, 1, 1, 0, 0, 0, 0}
	for i, want := range wantTargets {
		if ds.Targets[i] != want {
			t.Errorf("target %d = %d, want %d", i, ds.Targets[i], want)
		}
	}
}

func TestTabularRejectsNonScalarColumns(t *testing.T) {
	ds, err := New("bad", []string{"Jet:.Pt"}, obs.DefaultRegistry())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = ds.Read(testutil.DiJetBatch(), 0)
	if err == nil {
		t.Fatal("Read succeeded, want error for per-object column")
	}
	if !strings.Contains(err.Error(), "not scalar per event") {
		t.Errorf("error = %v", err)
	}
}

func TestNewErrors(t *testing.T) {
	registry := obs.DefaultRegistry()

	if _, err := New("empty", nil, registry); err == nil {
		t.Error("New with no columns succeeded, want error")
	}
	if _, err := New("unknown", []string{"Jet0.Sphericity"}, registry); err == nil {
		t.Error("New with an unknown column succeeded, want error")
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	ds, err := New("dijet", []string{"Jet0.Pt", "Jet:.Size"}, obs.DefaultRegistry())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := ds.Read(testutil.DiJetBatch(), 1); err != nil {
		t.Fatalf("Read: %v", err)
	}

	path := filepath.Join(t.TempDir(), "dijet.zip")
	if err := ds.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.ID != ds.ID || loaded.Name != ds.Name {
		t.Errorf("identity = %q %q, want %q %q", loaded.ID, loaded.Name, ds.ID, ds.Name)
	}
	if len(loaded.Columns) != 2 || loaded.Columns[0] != "Jet0.Pt" {
		t.Errorf("columns = %v", loaded.Columns)
	}
	if loaded.Len() != ds.Len() {
		t.Fatalf("Len = %d, want %d", loaded.Len(), ds.Len())
	}
	for i := range ds.Samples {
		testutil.AssertFloats(t, loaded.Samples[i], ds.Samples[i])
	}
	for i := range ds.Targets {
		if loaded.Targets[i] != ds.Targets[i] {
			t.Errorf("target %d = %d, want %d", i, loaded.Targets[i], ds.Targets[i])
		}
	}
	if !loaded.CreatedAt.Equal(ds.CreatedAt) {
		t.Errorf("created = %v, want %v", loaded.CreatedAt, ds.CreatedAt)
	}

	// A loaded dataset is data-only.
	if err := loaded.Read(testutil.DiJetBatch(), 0); err == nil {
		t.Error("Read on a loaded dataset succeeded, want error")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.zip")); err == nil {
		t.Error("Load on a missing archive succeeded, want error")
	}
}
