package simulation

import (
	"testing"

	"github.com/osnlab/seizsim/internal/seiz"
)

// AssertConserved fails unless every recorded step sums to the node count.
func AssertConserved(t *testing.T, res Result) {
	t.Helper()
	total := res.Model.Graph().NumNodes()
	for _, rec := range res.History {
		if sum := rec.S + rec.E + rec.I + rec.Z; sum != total {
			t.Errorf("step %d: compartments sum to %d, want %d", rec.Step, sum, total)
		}
	}
}

// AssertAbsorbing fails if any node ever leaves the given compartment.
func AssertAbsorbing(t *testing.T, res Result, comp seiz.Compartment) {
	t.Helper()
	for i := 1; i < len(res.States); i++ {
		for node, was := range res.States[i-1] {
			if was == comp && res.States[i][node] != comp {
				t.Errorf("step %d: node %d left %v for %v",
					i, node, comp, res.States[i][node])
			}
		}
	}
}

// AssertCompartmentEmpty fails if the compartment is ever populated.
func AssertCompartmentEmpty(t *testing.T, res Result, comp seiz.Compartment) {
	t.Helper()
	for i, st := range res.States {
		for node, c := range st {
			if c == comp {
				t.Errorf("step %d: node %d unexpectedly in %v", i, node, comp)
			}
		}
	}
}

// AssertFinalCount fails unless the final step's count for the compartment
// matches want.
func AssertFinalCount(t *testing.T, res Result, comp seiz.Compartment, want int) {
	t.Helper()
	c := res.States[len(res.States)-1].Counts()
	got := map[seiz.Compartment]int{
		seiz.Susceptible: c.S,
		seiz.Exposed:     c.E,
		seiz.Infected:    c.I,
		seiz.Skeptic:     c.Z,
	}[comp]
	if got != want {
		t.Errorf("final %v count = %d, want %d", comp, got, want)
	}
}
