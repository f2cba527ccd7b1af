package mt2_test

import (
	"fmt"

	"github.com/tgmt2/mt2"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCompute
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A pair-produced heavy resonance decays to two visible jets plus two
//	invisible daughters of hypothesised mass 100. Only the sum of the two
//	invisible transverse momenta is observable.
//
// Use case:
//
//	Bounding the parent mass from transverse kinematics alone, when the
//	full invariant mass cannot be reconstructed.
func ExampleCompute() {
	ev := mt2.Event{
		MVis1: 100, PxVis1: 410, PyVis1: 20,
		MVis2: 150, PxVis2: -210, PyVis2: -300,
		PxMiss: -200, PyMiss: 280,
		MInvis1: 100, MInvis2: 100,
	}

	got := mt2.Compute(ev, mt2.DefaultOptions())
	fmt.Printf("mt2=%.3f\n", got)
	// Output:
	// mt2=412.628
}
