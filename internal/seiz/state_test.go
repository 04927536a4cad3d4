package seiz

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/osnlab/seizsim/internal/graph"
)

func ringGraph(t *testing.T, n, k int) *graph.Graph {
	t.Helper()
	g, err := graph.RingLattice(n, k)
	if err != nil {
		t.Fatalf("ring graph: %v", err)
	}
	return g
}

func TestInitializeStatesPartitionSizes(t *testing.T) {
	g := ringGraph(t, 100, 2)
	m, err := NewBaseModel(g, validBase())
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if err := m.InitializeStates(0.05, 0.10, 42); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	c := m.Counts()
	if c.I != 5 {
		t.Errorf("expected 5 infected, got %d", c.I)
	}
	if c.Z != 10 {
		t.Errorf("expected 10 skeptic, got %d", c.Z)
	}
	if c.E != 0 {
		t.Errorf("expected 0 exposed at start, got %d", c.E)
	}
	if c.S != 85 {
		t.Errorf("expected 85 susceptible, got %d", c.S)
	}
}

func TestInitializeStatesRoundingOvershoot(t *testing.T) {
	// With 5 nodes, round(0.5*5)=3 on both sides would overshoot; the
	// skeptic share yields.
	g := pathGraph(t, 5)
	m, err := NewBaseModel(g, validBase())
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if err := m.InitializeStates(0.5, 0.5, 1); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	c := m.Counts()
	if c.I != 3 || c.Z != 2 || c.S != 0 {
		t.Errorf("expected I=3 Z=2 S=0, got %+v", c)
	}
}

func TestInitializeStatesIdempotentUnderSeed(t *testing.T) {
	g := ringGraph(t, 60, 3)
	m, err := NewBaseModel(g, validBase())
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	if err := m.InitializeStates(0.1, 0.1, 7); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	first := m.States()

	if err := m.InitializeStates(0.1, 0.1, 7); err != nil {
		t.Fatalf("re-initialize: %v", err)
	}
	second := m.States()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed produced different partitions (-first +second):\n%s", diff)
	}
}

func TestInitializeStatesFractionErrors(t *testing.T) {
	g := ringGraph(t, 20, 2)
	m, err := NewBaseModel(g, validBase())
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	cases := []struct {
		name               string
		infected, skeptic  float64
	}{
		{"sum above one", 0.6, 0.6},
		{"negative infected", -0.1, 0.2},
		{"negative skeptic", 0.2, -0.1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := m.InitializeStates(tc.infected, tc.skeptic, 1); !errors.Is(err, ErrInvalidFraction) {
				t.Fatalf("expected ErrInvalidFraction, got %v", err)
			}
		})
	}
}

func TestInitializeStatesErrorLeavesStateUntouched(t *testing.T) {
	g := ringGraph(t, 20, 2)
	m, err := NewBaseModel(g, validBase())
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if err := m.InitializeStates(0.2, 0.2, 3); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	before := m.States()

	if err := m.InitializeStates(0.6, 0.6, 3); !errors.Is(err, ErrInvalidFraction) {
		t.Fatalf("expected ErrInvalidFraction, got %v", err)
	}
	if diff := cmp.Diff(before, m.States()); diff != "" {
		t.Errorf("failed initialization mutated state:\n%s", diff)
	}
}

func TestCountsConservation(t *testing.T) {
	g := ringGraph(t, 50, 2)
	m, err := NewBaseModel(g, validBase())
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if err := m.InitializeStates(0.1, 0.1, 11); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	history, err := m.Run(30)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, rec := range history {
		if total := rec.S + rec.E + rec.I + rec.Z; total != 50 {
			t.Errorf("step %d: compartments sum to %d, want 50", rec.Step, total)
		}
	}
}
