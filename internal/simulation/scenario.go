package simulation

import (
	"testing"

	"github.com/osnlab/seizsim/internal/graph"
	"github.com/osnlab/seizsim/internal/seiz"
)

// Scenario defines a complete simulation experiment. Exactly one of Base,
// Basic, or Smart selects the variant; Base is assumed when all are nil.
type Scenario struct {
	Name  string
	Graph *graph.Graph

	Base  *seiz.BaseParams
	Basic *seiz.BasicModeratorParams
	Smart *seiz.SmartModeratorParams

	// Profiles pins personality profiles (SEIZ-SM only).
	Profiles map[int]seiz.PersonalityProfile

	// InitialStates, when non-nil, bypasses random initialization for exact
	// control over the starting compartments.
	InitialStates map[int]seiz.Compartment

	InfectedFrac float64
	SkepticFrac  float64
	Seed         int64
	Steps        int

	// BeforeStep, when non-nil, is called before each step with the step
	// index and the model, for scenarios that inspect mid-run state.
	BeforeStep func(step int, m *seiz.Model)
}

// Result captures the run: the model, the recorded history, and a state
// snapshot per step (index 0 is the initial state).
type Result struct {
	Model   *seiz.Model
	History []seiz.StepRecord
	States  []seiz.State
}

// Run builds the scenario's model, initializes it, and drives it step by
// step, failing the test on any error.
func Run(t *testing.T, sc Scenario) Result {
	t.Helper()

	m := buildModel(t, sc)

	if sc.InitialStates != nil {
		if err := m.InitializeWith(sc.InitialStates, sc.Seed); err != nil {
			t.Fatalf("scenario %s: initialize with: %v", sc.Name, err)
		}
	} else {
		if err := m.InitializeStates(sc.InfectedFrac, sc.SkepticFrac, sc.Seed); err != nil {
			t.Fatalf("scenario %s: initialize: %v", sc.Name, err)
		}
	}

	res := Result{Model: m}
	res.States = append(res.States, m.States())
	for step := 0; step < sc.Steps; step++ {
		if sc.BeforeStep != nil {
			sc.BeforeStep(step, m)
		}
		if err := m.Step(); err != nil {
			t.Fatalf("scenario %s: step %d: %v", sc.Name, step, err)
		}
		res.States = append(res.States, m.States())
	}

	// Rebuild the history through the run controller so records stay
	// consistent with what Run callers would see.
	for i, st := range res.States {
		c := st.Counts()
		res.History = append(res.History, seiz.StepRecord{Step: i, S: c.S, E: c.E, I: c.I, Z: c.Z})
	}
	return res
}

func buildModel(t *testing.T, sc Scenario) *seiz.Model {
	t.Helper()
	if sc.Graph == nil {
		t.Fatalf("scenario %s: no graph", sc.Name)
	}

	switch {
	case sc.Smart != nil:
		var opts []seiz.SmartOption
		if sc.Profiles != nil {
			opts = append(opts, seiz.WithProfiles(sc.Profiles))
		}
		m, err := seiz.NewSmartModeratorModel(sc.Graph, *sc.Smart, opts...)
		if err != nil {
			t.Fatalf("scenario %s: construct SEIZ-SM: %v", sc.Name, err)
		}
		return m
	case sc.Basic != nil:
		m, err := seiz.NewBasicModeratorModel(sc.Graph, *sc.Basic)
		if err != nil {
			t.Fatalf("scenario %s: construct SEIZ-BM: %v", sc.Name, err)
		}
		return m
	default:
		params := seiz.BaseParams{Beta: 0.2, B: 0.1, Rho: 0.3, Eps: 0.1, P: 0.7, L: 0.6, Dt: 1}
		if sc.Base != nil {
			params = *sc.Base
		}
		m, err := seiz.NewBaseModel(sc.Graph, params)
		if err != nil {
			t.Fatalf("scenario %s: construct SEIZ: %v", sc.Name, err)
		}
		return m
	}
}
