package mt2

import (
	"math"

	"github.com/tgmt2/mt2/ellipse"
)

// MakeEllipses returns the two per-branch transverse-mass ellipses that
// bisect.Run builds internally at trial parent mass proposedMT2, for
// external diagnostic inspection or plotting. It performs no bisection
// of its own; it exposes a single evaluation of the same conic
// construction Compute iterates over.
func MakeEllipses(proposedMT2 float64, ev Event) (ellipse.Params, ellipse.Params, error) {
	ev = ev.Clipped()
	if !ev.Finite() || math.IsNaN(proposedMT2) || math.IsInf(proposedMT2, 0) {
		return ellipse.Params{}, ellipse.Params{}, ErrNonFiniteEvent
	}

	mSq := proposedMT2 * proposedMT2
	mVis1Sq := ev.MVis1 * ev.MVis1
	mVis2Sq := ev.MVis2 * ev.MVis2
	mInvis1Sq := ev.MInvis1 * ev.MInvis1
	mInvis2Sq := ev.MInvis2 * ev.MInvis2

	e1 := ellipse.BuildBranch1(mSq, mVis1Sq, ev.PxVis1, ev.PyVis1, mInvis1Sq)
	e2 := ellipse.BuildBranch2(mSq, mVis2Sq, ev.PxVis2, ev.PyVis2, mInvis2Sq, ev.PxMiss, ev.PyMiss)

	return e1, e2, nil
}
