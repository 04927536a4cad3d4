package seiz

// moderator applies a post-pass intervention to the tentative next state
// computed by the base rule. Implementations only ever touch nodes that were
// Infected in the prior snapshot.
type moderator interface {
	apply(nodes []int, prior, next State, rng *RNG)
}

// basicModerator is the state-blind SEIZ-BM intervention: each node that was
// Infected at the start of the step is selected with probability mu*dt, and a
// selected node is converted to Exposed with probability m.
type basicModerator struct {
	params BasicModeratorParams
}

func (bm *basicModerator) apply(nodes []int, prior, next State, rng *RNG) {
	selectProb := bm.params.Mu * bm.params.Dt
	for _, node := range nodes {
		if prior[node] != Infected {
			continue
		}
		// The success draw is only consumed when the selection draw passes.
		if rng.Float64() < selectProb && rng.Float64() < bm.params.M {
			next[node] = Exposed
		}
	}
}
