package seiz

import (
	"fmt"

	"github.com/osnlab/seizsim/internal/graph"
)

// Variant names, used as the model_type value in serialized output.
const (
	ModelTypeBase           = "SEIZ"
	ModelTypeBasicModerator = "SEIZ-BM"
	ModelTypeSmartModerator = "SEIZ-SM"
)

// Model is a SEIZ simulation over a fixed graph: the run controller, the
// state store, and the composed transition rule (base rule, then the
// variant's moderation overlay). The graph must not be mutated while the
// model holds it.
type Model struct {
	graph *graph.Graph
	nodes []int // ascending, cached; defines the draw order contract
	typ   string

	params any // the variant's parameter struct, for export
	cfg    baseConfig
	mod    moderator // nil for the base variant
	smart  *smartModerator

	rng       *RNG
	state     State
	stepIndex int
	history   []StepRecord

	// explicitProfiles pins profiles per node across re-initializations;
	// nodes without an entry get a fresh random profile each initialization.
	explicitProfiles map[int]PersonalityProfile
}

// NewBaseModel constructs the plain SEIZ variant.
func NewBaseModel(g *graph.Graph, params BaseParams) (*Model, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return newModel(g, ModelTypeBase, params, params.base(), nil), nil
}

// NewBasicModeratorModel constructs the SEIZ-BM variant. A zero Dt defaults
// to 1.0.
func NewBasicModeratorModel(g *graph.Graph, params BasicModeratorParams) (*Model, error) {
	params = params.withDefaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return newModel(g, ModelTypeBasicModerator, params, params.base(), &basicModerator{params: params}), nil
}

// SmartOption customizes a SEIZ-SM model.
type SmartOption func(*Model)

// WithProfiles pins personality profiles for the given nodes. Nodes not
// listed still receive random profiles at initialization.
func WithProfiles(profiles map[int]PersonalityProfile) SmartOption {
	return func(m *Model) {
		m.explicitProfiles = profiles
	}
}

// NewSmartModeratorModel constructs the SEIZ-SM variant. The step duration
// is fixed at 1.0.
func NewSmartModeratorModel(g *graph.Graph, params SmartModeratorParams, opts ...SmartOption) (*Model, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	sm := &smartModerator{params: params}
	m := newModel(g, ModelTypeSmartModerator, params, params.base(), sm)
	m.smart = sm
	for _, opt := range opts {
		opt(m)
	}
	for id, profile := range m.explicitProfiles {
		if err := profile.Validate(); err != nil {
			return nil, fmt.Errorf("profile for node %d: %w", id, err)
		}
	}
	return m, nil
}

func newModel(g *graph.Graph, typ string, params any, cfg baseConfig, mod moderator) *Model {
	return &Model{
		graph:  g,
		nodes:  g.Nodes(),
		typ:    typ,
		params: params,
		cfg:    cfg,
		mod:    mod,
	}
}

// InitializeStates replaces the entire state store: round(infectedFrac*N)
// nodes become Infected, round(skepticFrac*N) Skeptic (disjoint), the rest
// Susceptible. The seed drives the partition and every subsequent step draw,
// so the same seed yields an identical initial partition and an identical
// run. History and the step counter reset.
func (m *Model) InitializeStates(infectedFrac, skepticFrac float64, seed int64) error {
	rng := NewRNG(seed)
	state, err := initialState(m.graph, infectedFrac, skepticFrac, rng)
	if err != nil {
		return fmt.Errorf("initialize states: %w", err)
	}
	m.commitInit(state, rng)
	return nil
}

// InitializeWith replaces the state store with an explicit assignment,
// reseeding the run RNG. Every graph node must be assigned. Intended for
// scenario drivers and tests that need exact initial conditions.
func (m *Model) InitializeWith(states map[int]Compartment, seed int64) error {
	if len(states) != len(m.nodes) {
		return fmt.Errorf("initialize with: got %d assignments for %d nodes", len(states), len(m.nodes))
	}
	state := make(State, len(m.nodes))
	for _, node := range m.nodes {
		comp, ok := states[node]
		if !ok {
			return fmt.Errorf("initialize with: node %d has no compartment", node)
		}
		if comp > Skeptic {
			return fmt.Errorf("initialize with: node %d has unknown compartment %d", node, comp)
		}
		state[node] = comp
	}
	m.commitInit(state, NewRNG(seed))
	return nil
}

func (m *Model) commitInit(state State, rng *RNG) {
	m.state = state
	m.rng = rng
	m.stepIndex = 0
	m.history = nil
	if m.smart != nil {
		// Profiles are drawn after the partition, in ascending node order,
		// so the draw sequence stays reproducible.
		profiles := make(map[int]PersonalityProfile, len(m.nodes))
		for _, node := range m.nodes {
			if p, ok := m.explicitProfiles[node]; ok {
				profiles[node] = p
				continue
			}
			profiles[node] = randomProfile(rng)
		}
		m.smart.profiles = profiles
	}
}

// Step advances the simulation one step: the base rule over a snapshot of
// the prior state, then the variant's moderation pass over nodes that were
// Infected in that snapshot.
func (m *Model) Step() error {
	if m.state == nil {
		return fmt.Errorf("step: %w", ErrUninitializedState)
	}
	prior := m.state
	next := applyBase(m.graph, m.nodes, prior, m.cfg, m.rng)
	if m.mod != nil {
		m.mod.apply(m.nodes, prior, next, m.rng)
	}
	m.state = next
	m.stepIndex++
	return nil
}

// Run executes the given number of steps, recording a StepRecord after each.
// The first call also records the pre-step state (step 0). Run is resumable:
// a second call continues from the current state and appends to the same
// history.
func (m *Model) Run(steps int) ([]StepRecord, error) {
	if m.state == nil {
		return nil, fmt.Errorf("run: %w", ErrUninitializedState)
	}
	if steps < 0 {
		return nil, fmt.Errorf("run: steps=%d must be non-negative: %w", steps, ErrInvalidParameter)
	}
	if len(m.history) == 0 {
		m.record()
	}
	for i := 0; i < steps; i++ {
		if err := m.Step(); err != nil {
			return nil, err
		}
		m.record()
	}
	return m.History(), nil
}

func (m *Model) record() {
	c := m.state.Counts()
	m.history = append(m.history, StepRecord{Step: m.stepIndex, S: c.S, E: c.E, I: c.I, Z: c.Z})
}

// History returns a copy of the accumulated step records.
func (m *Model) History() []StepRecord {
	h := make([]StepRecord, len(m.history))
	copy(h, m.history)
	return h
}

// States returns a snapshot of the current node compartments.
func (m *Model) States() State {
	if m.state == nil {
		return nil
	}
	return m.state.clone()
}

// Counts returns the current compartment totals.
func (m *Model) Counts() Counts { return m.state.Counts() }

// Type returns the variant name ("SEIZ", "SEIZ-BM", or "SEIZ-SM").
func (m *Model) Type() string { return m.typ }

// Params returns the variant's parameter struct as passed at construction
// (with defaults applied), suitable for JSON export.
func (m *Model) Params() any { return m.params }

// Graph returns the network the model runs over.
func (m *Model) Graph() *graph.Graph { return m.graph }
