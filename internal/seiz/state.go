package seiz

import (
	"fmt"
	"math"

	"github.com/osnlab/seizsim/internal/graph"
)

// State maps node IDs to their current compartment. It is owned by the model
// during a run; snapshots handed out are copies.
type State map[int]Compartment

func (s State) clone() State {
	c := make(State, len(s))
	for id, comp := range s {
		c[id] = comp
	}
	return c
}

// Counts holds per-compartment totals.
type Counts struct {
	S, E, I, Z int
}

// Counts tallies the current compartment totals.
func (s State) Counts() Counts {
	var c Counts
	for _, comp := range s {
		switch comp {
		case Susceptible:
			c.S++
		case Exposed:
			c.E++
		case Infected:
			c.I++
		case Skeptic:
			c.Z++
		}
	}
	return c
}

// StepRecord is one entry of a run history: the step index and the
// compartment totals after that step (step 0 is the initial state).
// The field names are part of the serialized output contract.
type StepRecord struct {
	Step int `json:"step"`
	S    int `json:"S"`
	E    int `json:"E"`
	I    int `json:"I"`
	Z    int `json:"Z"`
}

// initialState partitions the graph's nodes uniformly at random into
// round(infectedFrac*N) Infected, round(skepticFrac*N) Skeptic drawn
// disjointly from the remainder, and Susceptible for all others. Exposed
// starts empty.
func initialState(g *graph.Graph, infectedFrac, skepticFrac float64, rng *RNG) (State, error) {
	if infectedFrac < 0 || skepticFrac < 0 {
		return nil, fmt.Errorf("fractions must be non-negative, got infected=%v skeptic=%v: %w",
			infectedFrac, skepticFrac, ErrInvalidFraction)
	}
	if infectedFrac+skepticFrac > 1 {
		return nil, fmt.Errorf("fractions sum to %v, must not exceed 1: %w",
			infectedFrac+skepticFrac, ErrInvalidFraction)
	}

	nodes := g.Nodes()
	n := len(nodes)
	numInfected := int(math.Round(infectedFrac * float64(n)))
	numSkeptic := int(math.Round(skepticFrac * float64(n)))
	// Rounding both halves up can overshoot by one; the skeptic share yields.
	if numInfected+numSkeptic > n {
		numSkeptic = n - numInfected
	}

	perm := rng.Perm(n)
	state := make(State, n)
	for i, pi := range perm {
		switch {
		case i < numInfected:
			state[nodes[pi]] = Infected
		case i < numInfected+numSkeptic:
			state[nodes[pi]] = Skeptic
		default:
			state[nodes[pi]] = Susceptible
		}
	}
	return state, nil
}
