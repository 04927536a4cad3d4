package seiz

import (
	"fmt"
	"math"
)

// PersonalityProfile holds a node's dark-triad trait scores, each in [0,1].
// Profiles are assigned once at initialization and never change; higher
// scores raise the node's propensity to generate toxic content while
// Infected.
type PersonalityProfile struct {
	Narcissism       float64 `json:"narcissism"`
	Machiavellianism float64 `json:"machiavellianism"`
	Psychopathy      float64 `json:"psychopathy"`
}

// Validate checks that every trait lies in [0,1].
func (p PersonalityProfile) Validate() error {
	for _, trait := range []struct {
		name  string
		value float64
	}{
		{"narcissism", p.Narcissism},
		{"machiavellianism", p.Machiavellianism},
		{"psychopathy", p.Psychopathy},
	} {
		if trait.value < 0 || trait.value > 1 {
			return fmt.Errorf("%s=%v: trait must be in [0,1]: %w", trait.name, trait.value, ErrInvalidParameter)
		}
	}
	return nil
}

// Propensity is the node's overall toxic-content propensity: the mean of the
// three traits, in [0,1].
func (p PersonalityProfile) Propensity() float64 {
	return (p.Narcissism + p.Machiavellianism + p.Psychopathy) / 3
}

func randomProfile(rng *RNG) PersonalityProfile {
	return PersonalityProfile{
		Narcissism:       rng.Float64(),
		Machiavellianism: rng.Float64(),
		Psychopathy:      rng.Float64(),
	}
}

// smartModerator is the SEIZ-SM intervention. Every node Infected in the
// prior snapshot generates exactly n candidate messages per step; a message
// is toxic when its score reaches threshold T. A node with at least theta
// toxic messages is flagged; a flagged node is moderated to Exposed with
// probability eta and, when moderated, convinced onward to Skeptic with
// probability lambd in the same step.
type smartModerator struct {
	params   SmartModeratorParams
	profiles map[int]PersonalityProfile
}

func (sm *smartModerator) apply(nodes []int, prior, next State, rng *RNG) {
	for _, node := range nodes {
		if prior[node] != Infected {
			continue
		}
		toxic := sm.toxicMessages(rng, sm.profiles[node])
		if !sm.flags(toxic) {
			continue
		}
		if rng.Float64() < sm.params.Eta {
			next[node] = Exposed
			if rng.Float64() < sm.params.Lambd {
				next[node] = Skeptic
			}
		}
	}
}

// flags reports whether a step's toxic-message count reaches the threshold.
func (sm *smartModerator) flags(toxicCount int) bool {
	return toxicCount >= sm.params.Theta
}

// toxicMessages generates the node's per-step message batch and counts the
// toxic ones. Exactly n uniform draws are consumed regardless of outcome.
func (sm *smartModerator) toxicMessages(rng *RNG, profile PersonalityProfile) int {
	count := 0
	for i := 0; i < sm.params.N; i++ {
		if messageToxicity(rng, profile.Propensity()) >= sm.params.T {
			count++
		}
	}
	return count
}

// messageToxicity scores one generated message in [0,1]. A uniform draw is
// skewed upward by the author's propensity via u^(1/(1+propensity)), so a
// higher propensity monotonically raises the chance of clearing any
// threshold: P(score >= T) = 1 - T^(1+propensity).
func messageToxicity(rng *RNG, propensity float64) float64 {
	return math.Pow(rng.Float64(), 1/(1+propensity))
}
