package seiz

import (
	"math"

	"github.com/osnlab/seizsim/internal/graph"
)

// baseConfig is the slice of parameters the shared transition rule needs,
// normalized across the three variants.
type baseConfig struct {
	beta, b, rho, eps, p, l, dt float64
}

// applyBase computes the tentative next state from a consistent snapshot of
// the prior step (synchronous update: no node observes another node's change
// from the same step). Nodes are visited in ascending ID order; within a node
// the draws are consumed in a fixed order, so the RNG stream position after
// the pass is a pure function of the prior snapshot.
//
// Susceptible nodes evaluate the infection contact first; when it triggers,
// the skeptic contact is not evaluated at all (infection-priority tie-break).
// Infected and Skeptic nodes are absorbing under the base rule.
func applyBase(g *graph.Graph, nodes []int, prior State, cfg baseConfig, rng *RNG) State {
	next := prior.clone()

	for _, node := range nodes {
		switch prior[node] {
		case Susceptible:
			kI, kZ := 0, 0
			for _, nb := range g.Neighbors(node) {
				switch prior[nb] {
				case Infected:
					kI++
				case Skeptic:
					kZ++
				}
			}
			if kI > 0 && rng.Float64() < contactProb(cfg.beta, cfg.dt, kI) {
				if rng.Float64() < cfg.p {
					next[node] = Infected
				} else {
					next[node] = Exposed
				}
				continue
			}
			if kZ > 0 && rng.Float64() < contactProb(cfg.b, cfg.dt, kZ) {
				if rng.Float64() < cfg.l {
					next[node] = Skeptic
				} else {
					next[node] = Exposed
				}
			}

		case Exposed:
			hasInfected := false
			for _, nb := range g.Neighbors(node) {
				if prior[nb] == Infected {
					hasInfected = true
					break
				}
			}
			prob := cfg.eps * cfg.dt
			if hasInfected {
				prob = 1 - (1-cfg.rho*cfg.dt)*(1-cfg.eps*cfg.dt)
			}
			if prob > 0 && rng.Float64() < prob {
				next[node] = Infected
			}
		}
	}
	return next
}

// contactProb is the probability that at least one of k independent
// per-neighbor trials at rate*dt triggers: 1 - (1 - rate*dt)^k.
// The per-trial probability is capped at 1 for rates with rate*dt > 1.
func contactProb(rate, dt float64, k int) float64 {
	trial := rate * dt
	if trial >= 1 {
		return 1
	}
	return 1 - math.Pow(1-trial, float64(k))
}
