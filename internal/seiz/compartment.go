// Package seiz implements an agent-based, discrete-time SEIZ
// (Susceptible-Exposed-Infected-Skeptic) information-spread model over a
// social graph, with optional content-moderation overlays.
//
// The engine is single-threaded and fully deterministic: identical graph,
// parameters, and seed produce byte-identical histories. Every stochastic
// decision draws from one seeded RNG in a documented order: susceptible
// nodes first, then exposed nodes, then the moderation pass, with nodes
// visited in ascending ID order within each phase.
package seiz

// Compartment is the discrete state category of a node.
type Compartment uint8

const (
	Susceptible Compartment = iota
	Exposed
	Infected
	Skeptic
)

// String returns the single-letter label used in histories and exports.
func (c Compartment) String() string {
	switch c {
	case Susceptible:
		return "S"
	case Exposed:
		return "E"
	case Infected:
		return "I"
	case Skeptic:
		return "Z"
	default:
		return "?"
	}
}
