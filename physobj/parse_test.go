package physobj

import (
	"errors"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	// Canonical identifiers omit default bounds, so parsing the
	// canonical form of any identifier is a fixed point.
	tests := []struct {
		name       string
		identifier string
		canonical  string
	}{
		{"single", "Jet0", "Jet0"},
		{"single multi digit", "Jet12", "Jet12"},
		{"bare field", "Jet", "Jet:"},
		{"open collective", "Jet:", "Jet:"},
		{"start only", "Jet1:", "Jet1:"},
		{"stop only", "Jet:3", "Jet:3"},
		{"bounded", "Jet1:3", "Jet1:3"},
		{"zero start rendered bare", "Jet0:", "Jet:"},
		{"zero start with stop", "Jet0:3", "Jet:3"},
		{"nested single single", "Jet0.Constituents0", "Jet0.Constituents0"},
		{"nested single collective", "Jet0.Constituents:10", "Jet0.Constituents:10"},
		{"nested collective collective", "Jet:2.Constituents1:4", "Jet:2.Constituents1:4"},
		{"multiple", "Jet0,Jet1:3", "Jet0,Jet1:3"},
		{"multiple with nested", "Jet0.Constituents:,Electron0", "Jet0.Constituents:,Electron0"},
		{"internal spaces stripped", "Jet0 , Jet 1:3", "Jet0,Jet1:3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := Parse(tt.identifier)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.identifier, err)
			}
			if got := obj.Identifier(); got != tt.canonical {
				t.Errorf("Identifier() = %q, want %q", got, tt.canonical)
			}

			// Re-parsing the canonical form must be stable.
			again, err := Parse(tt.canonical)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.canonical, err)
			}
			if got := again.Identifier(); got != tt.canonical {
				t.Errorf("re-parsed Identifier() = %q, want %q", got, tt.canonical)
			}
		})
	}
}

func TestParseKinds(t *testing.T) {
	tests := []struct {
		identifier string
		check      func(t *testing.T, obj PhysicsObject)
	}{
		{"Jet0", func(t *testing.T, obj PhysicsObject) {
			s, ok := obj.(Single)
			if !ok {
				t.Fatalf("got %T, want Single", obj)
			}
			if s.Field != "Jet" || s.Index != 0 {
				t.Errorf("got %+v, want {Jet 0}", s)
			}
		}},
		{"Jet", func(t *testing.T, obj PhysicsObject) {
			c, ok := obj.(Collective)
			if !ok {
				t.Fatalf("got %T, want Collective", obj)
			}
			if c.Field != "Jet" || c.Start != 0 || c.Stop != UnboundedStop {
				t.Errorf("got %+v, want open run over Jet", c)
			}
		}},
		{"Jet1:3", func(t *testing.T, obj PhysicsObject) {
			c, ok := obj.(Collective)
			if !ok {
				t.Fatalf("got %T, want Collective", obj)
			}
			if c.Start != 1 || c.Stop != 3 {
				t.Errorf("got %+v, want start 1 stop 3", c)
			}
		}},
		{"Jet0.Constituents:2", func(t *testing.T, obj PhysicsObject) {
			n, ok := obj.(Nested)
			if !ok {
				t.Fatalf("got %T, want Nested", obj)
			}
			if _, ok := n.Main.(Single); !ok {
				t.Errorf("main is %T, want Single", n.Main)
			}
			if _, ok := n.Sub.(Collective); !ok {
				t.Errorf("sub is %T, want Collective", n.Sub)
			}
		}},
		{"Jet0,Electron:", func(t *testing.T, obj PhysicsObject) {
			m, ok := obj.(Multiple)
			if !ok {
				t.Fatalf("got %T, want Multiple", obj)
			}
			if len(m.Items) != 2 {
				t.Fatalf("got %d components, want 2", len(m.Items))
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			obj, err := Parse(tt.identifier)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.identifier, err)
			}
			tt.check(t, obj)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
	}{
		{"empty", ""},
		{"only spaces", "   "},
		{"leading digits", "0Jet"},
		{"negative index", "Jet-1"},
		{"two periods", "Jet0.Constituents0.Pt0"},
		{"empty multiple component", "Jet0,,Electron0"},
		{"trailing comma", "Jet0,"},
		{"empty nested sub", "Jet0."},
		{"punctuation", "Jet@3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.identifier)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.identifier)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("Parse(%q) returned %T, want *ParseError", tt.identifier, err)
			}
		})
	}
}
