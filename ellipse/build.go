package ellipse

// Build constructs the conic coefficients for one decay branch.
//
// Inputs, matching the notation of spec §4.1:
//   - mSq:  trial parent squared mass
//   - mtSq: visible squared mass
//   - tx, ty: visible transverse momentum
//   - mqSq: hypothesised invisible squared mass
//   - qx, qy: invisible offset (the other branch's share of the missing
//     momentum already assigned)
//
// Arithmetic overflow at extreme input scales is allowed to propagate as
// +/-Inf; conic.Intersect treats a resulting non-finite or degenerate conic
// as infeasible, so Build never fails.
//
// Transcribed from the reference Lester::helper closed form (see
// original_source/src/mt2/diagnostics.py::_make_ellipse_params); the sign
// convention between the two branches is resolved by BuildBranch1/BuildBranch2
// below, not by this function.
func Build(mSq, mtSq, tx, ty, mqSq, qx, qy float64) Params {
	txSq := tx * tx
	tySq := ty * ty
	qxSq := qx * qx
	qySq := qy * qy

	cxx := 4.0*mtSq + 4.0*tySq
	cyy := 4.0*mtSq + 4.0*txSq
	cxy := -4.0 * tx * ty

	cx := -4.0*mtSq*qx -
		2.0*mqSq*tx +
		2.0*mSq*tx -
		2.0*mtSq*tx +
		4.0*qy*tx*ty -
		4.0*qx*tySq

	cy := -4.0*mtSq*qy -
		4.0*qy*txSq -
		2.0*mqSq*ty +
		2.0*mSq*ty -
		2.0*mtSq*ty +
		4.0*qx*tx*ty

	c := -mqSq*mqSq +
		2*mqSq*mSq -
		mSq*mSq +
		2*mqSq*mtSq +
		2*mSq*mtSq -
		mtSq*mtSq +
		4.0*mtSq*qxSq +
		4.0*mtSq*qySq +
		4.0*mqSq*qx*tx -
		4.0*mSq*qx*tx +
		4.0*mtSq*qx*tx +
		4.0*mqSq*txSq +
		4.0*qySq*txSq +
		4.0*mqSq*qy*ty -
		4.0*mSq*qy*ty +
		4.0*mtSq*qy*ty -
		8.0*qx*qy*tx*ty +
		4.0*mqSq*tySq +
		4.0*qxSq*tySq

	return Params{Cxx: cxx, Cyy: cyy, Cxy: cxy, Cx: cx, Cy: cy, C: c}
}

// BuildBranch1 constructs the ellipse for decay branch 1: visible momentum
// negated, zero invisible offset (branch 1's invisible carries the free
// variable of the pencil).
func BuildBranch1(mSq, mVis1Sq, pxVis1, pyVis1, mInvis1Sq float64) Params {
	return Build(mSq, mVis1Sq, -pxVis1, -pyVis1, mInvis1Sq, 0, 0)
}

// BuildBranch2 constructs the ellipse for decay branch 2: visible momentum
// as measured, invisible offset equal to the full missing transverse
// momentum (branch 2's invisible is "the rest of" the missing momentum,
// reframed in branch 1's invisible-momentum coordinate).
func BuildBranch2(mSq, mVis2Sq, pxVis2, pyVis2, mInvis2Sq, pxMiss, pyMiss float64) Params {
	return Build(mSq, mVis2Sq, pxVis2, pyVis2, mInvis2Sq, pxMiss, pyMiss)
}
