// Package simulation provides a scenario harness for validating emergent
// dynamics of the SEIZ engine and its moderation overlays.
//
// Scenarios exercise the real Model, graph, and RNG, with no mocks. A Scenario
// describes the network, variant, parameters, and initial conditions; the
// Runner drives the model step by step, capturing per-step state snapshots
// for property assertions.
//
// Usage:
//
//	func TestModerationSuppresses(t *testing.T) {
//	    res := simulation.Run(t, simulation.Scenario{
//	        Name:  "bm-suppression",
//	        Graph: mustRing(t, 100, 2),
//	        Basic: &seiz.BasicModeratorParams{...},
//	        InfectedFrac: 0.1,
//	        Seed:  42,
//	        Steps: 50,
//	    })
//	    simulation.AssertConserved(t, res)
//	}
package simulation
