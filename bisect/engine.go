package bisect

import (
	"math"

	"github.com/tgmt2/mt2/conic"
	"github.com/tgmt2/mt2/ellipse"
	"github.com/tgmt2/mt2/internal/numeric"
)

// NegativeSentinel is the canonical negative sentinel this package
// returns when no MT2 can be computed. Any strictly negative return value
// means the same thing; this package always returns this specific value
// so callers (and tests) can assert equality rather than just sign.
const NegativeSentinel = -1.0

// maxBracketDoublings bounds the geometric expansion of the upper bracket
// bound: at most a factor of 2^60 (about 1.2e18) above the initial
// kinematic bound, after which Run gives up with NegativeSentinel.
const maxBracketDoublings = 60

// maxBisectionIterations is a defensive backstop on top of the precision
// and relative-floor termination conditions: with the bracket width
// bounded by bracket expansion and the termination conditions contracting
// geometrically, convergence is reached in well under this many steps;
// it exists solely so an adversarial or NaN-laundering input cannot spin
// forever.
const maxBisectionIterations = 4096

// Run executes the Tombs bisection for one event, returning MT2 >= 0 on
// success or NegativeSentinel if no solution exists (infeasible input,
// non-finite input, or bracket-expansion exhaustion).
//
// Run performs spec's §4.3 pre-processing itself (mass clipping, finite
// check) so that it is a safe, self-contained entry point for both the
// mt2 facade and the batch evaluator.
func Run(
	mVis1, pxVis1, pyVis1 float64,
	mVis2, pxVis2, pyVis2 float64,
	pxMiss, pyMiss float64,
	mInvis1, mInvis2 float64,
	opts Options,
) float64 {
	if opts.Validate() != nil {
		return NegativeSentinel
	}

	mVis1 = clipMass(mVis1)
	mVis2 = clipMass(mVis2)
	mInvis1 = clipMass(mInvis1)
	mInvis2 = clipMass(mInvis2)

	if !allFinite(mVis1, pxVis1, pyVis1, mVis2, pxVis2, pyVis2, pxMiss, pyMiss, mInvis1, mInvis2) {
		return NegativeSentinel
	}

	// Work in units of the power of two just above the largest input
	// magnitude, so that the oracle's tolerances see the same numbers
	// whatever the overall scale of the event; dividing by a power of two
	// is exact, and the result is scaled back on return.
	scale := 0.0
	for _, v := range [...]float64{mVis1, pxVis1, pyVis1, mVis2, pxVis2, pyVis2, pxMiss, pyMiss, mInvis1, mInvis2} {
		scale = math.Max(scale, math.Abs(v))
	}
	_, exp := math.Frexp(scale)
	scale = math.Ldexp(1, exp)
	mVis1, pxVis1, pyVis1 = mVis1/scale, pxVis1/scale, pyVis1/scale
	mVis2, pxVis2, pyVis2 = mVis2/scale, pxVis2/scale, pyVis2/scale
	pxMiss, pyMiss = pxMiss/scale, pyMiss/scale
	mInvis1, mInvis2 = mInvis1/scale, mInvis2/scale

	mVis1Sq := mVis1 * mVis1
	mVis2Sq := mVis2 * mVis2
	mInvis1Sq := mInvis1 * mInvis1
	mInvis2Sq := mInvis2 * mInvis2

	feasible := func(mTrial float64) bool {
		mSq := mTrial * mTrial
		e1 := ellipse.BuildBranch1(mSq, mVis1Sq, pxVis1, pyVis1, mInvis1Sq)
		e2 := ellipse.BuildBranch2(mSq, mVis2Sq, pxVis2, pyVis2, mInvis2Sq, pxMiss, pyMiss)

		return conic.Intersect(e1, e2) == conic.Feasible
	}

	mLo := math.Max(mVis1+mInvis1, mVis2+mInvis2)
	if !allFinite(mLo) {
		return NegativeSentinel
	}

	sumP := math.Hypot(pxVis1, pyVis1) + math.Hypot(pxVis2, pyVis2) + math.Hypot(pxMiss, pyMiss)
	mHi := math.Hypot(sumP, mLo)
	if mHi <= mLo {
		mHi = mLo + 1
	}
	if !allFinite(mHi) {
		return NegativeSentinel
	}

	for doublings := 0; !feasible(mHi); doublings++ {
		if doublings >= maxBracketDoublings {
			return NegativeSentinel
		}
		mHi *= 2
		if !allFinite(mHi) {
			return NegativeSentinel
		}
	}

	precision := opts.DesiredPrecisionOnMT2 / scale
	for iter := 0; iter < maxBisectionIterations; iter++ {
		width := mHi - mLo
		if width <= precision {
			break
		}
		relFloor := numeric.RelativeFloor * math.Max(math.Abs(mHi), math.Abs(mLo))
		if width <= relFloor {
			break
		}

		mMid := (mLo + mHi) * 0.5
		if mMid == mLo || mMid == mHi {
			break
		}

		if feasible(mMid) {
			mHi = mMid
		} else {
			mLo = mMid
		}
	}

	return mHi * scale
}

// clipMass replaces a negative mass (including -0.0) with +0.0, bit
// identically to the caller having passed +0.0 directly.
func clipMass(m float64) float64 {
	if m < 0 || math.Signbit(m) {
		return 0.0
	}

	return m
}

func allFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
