package conic

import (
	"math"

	"github.com/tgmt2/mt2/ellipse"
	"github.com/tgmt2/mt2/internal/numeric"
)

// Intersect decides whether the real, non-degenerate ellipses e1 and e2
// share at least one real point.
//
// Algorithm (see package doc and spec §4.2):
//  1. Form the conic pencil Q(lambda) = A(e1) + lambda*A(e2); det Q(lambda)
//     is a cubic in lambda (pencil.go).
//  2. Solve for its real roots.
//  3. For each real root, in order of decreasing "dominance" (the
//     magnitude of Q(lambda)'s largest coefficient, which keeps the next
//     step's pivot well away from zero), decompose the degenerate conic
//     Q(lambda) into two real lines via its adjugate matrix.
//  4. Substitute each line into e1; a real intersection point exists iff
//     the resulting single-variable quadratic has a real, finite root.
//
// Returns Infeasible if either input is not a non-degenerate real ellipse,
// or if no root of the pencil yields a real line meeting an ellipse.
// Returns Indeterminate if the pencil itself is degenerate (e.g. no real
// roots could be extracted at all) — callers must treat this as Infeasible.
func Intersect(e1, e2 ellipse.Params) Status {
	if !e1.IsNonDegenerateRealEllipse() || !e2.IsNonDegenerateRealEllipse() {
		return Infeasible
	}
	if !finite6(e1) || !finite6(e2) {
		return Infeasible
	}

	roots := realPencilRoots(e1, e2)
	if roots.n == 0 {
		return Indeterminate
	}

	// A root whose degenerate conic decomposes into a complex-conjugate
	// line pair (rather than two real lines) is itself evidence that the
	// two ellipses do not meet along that member of the pencil; it is not
	// a solver failure, so it does not downgrade the verdict to
	// Indeterminate. Indeterminate is reserved for realPencilRoots itself
	// finding no usable root at all (roots.n == 0, handled above).
	for i := 0; i < roots.n; i++ {
		r := roots.items[i]
		q := combine(e1, e2, r.lambda)
		line1, line2, ok := decomposeDegenerate(q)
		if !ok {
			continue
		}

		if lineMeetsConic(line1, e1) || lineMeetsConic(line2, e1) {
			return Feasible
		}
	}

	return Infeasible
}

func finite6(p ellipse.Params) bool {
	return allFinite(p.Cxx) && allFinite(p.Cyy) && allFinite(p.Cxy) &&
		allFinite(p.Cx) && allFinite(p.Cy) && allFinite(p.C)
}

func allFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// decomposeDegenerate splits a (presumed rank <= 2) degenerate conic q into
// two real lines, each represented in homogeneous form (l0, l1, l2) with
// l0*x + l1*y + l2 = 0. Returns ok=false if q has no real singular point
// (the "line pair" is a complex-conjugate pair, or the matrix carries no
// usable pivot at all).
func decomposeDegenerate(q ellipse.Params) (line1, line2 [3]float64, ok bool) {
	adj := adjugate(q)
	scale := maxAbs6(adj.Cxx, adj.Cyy, adj.C, adj.Cxy, adj.Cx, adj.Cy)
	if scale == 0 {
		return line1, line2, false
	}

	// Pick the diagonal entry of the adjugate with the largest magnitude;
	// it must be (numerically) negative for the singular point to be real.
	bestIdx, bestVal := 0, adj.Cxx
	if math.Abs(adj.Cyy) > math.Abs(bestVal) {
		bestIdx, bestVal = 1, adj.Cyy
	}
	if math.Abs(adj.C) > math.Abs(bestVal) {
		bestIdx, bestVal = 2, adj.C
	}
	if bestVal >= -numeric.MixEpsilon*scale {
		// No real singular point: the decomposition is complex.
		return line1, line2, false
	}

	t := math.Sqrt(-bestVal)
	col := adjugateColumn(adj, bestIdx)
	p := [3]float64{col[0] / t, col[1] / t, col[2] / t}

	m := conicMatrix(q)
	skew := [3][3]float64{
		{0, -p[2], p[1]},
		{p[2], 0, -p[0]},
		{-p[1], p[0], 0},
	}
	var mx [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			mx[i][j] = m[i][j] + skew[i][j]
		}
	}

	// Find the largest-magnitude entry to pivot the rank-1 factorisation
	// M_x = line1 (x) line2.
	bestR, bestC, bestAbs := 0, 0, math.Abs(mx[0][0])
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if a := math.Abs(mx[i][j]); a > bestAbs {
				bestR, bestC, bestAbs = i, j, a
			}
		}
	}
	if bestAbs <= numeric.MixEpsilon*scale {
		return line1, line2, false
	}

	line1 = [3]float64{mx[0][bestC], mx[1][bestC], mx[2][bestC]}
	line2 = [3]float64{mx[bestR][0], mx[bestR][1], mx[bestR][2]}

	return line1, line2, true
}

// adjugate computes the (symmetric) adjugate matrix of the 3x3 matrix
// representation of conic q, expressed using the same six-coefficient
// layout as ellipse.Params (it is itself a valid, if not necessarily
// elliptic, conic representation).
func adjugate(q ellipse.Params) ellipse.Params {
	a, b, c := q.Cxx, q.Cyy, q.C
	d, e, f := q.Cxy, q.Cx, q.Cy

	return ellipse.Params{
		Cxx: b*c - f*f,
		Cyy: a*c - e*e,
		C:   a*b - d*d,
		Cxy: e*f - d*c,
		Cx:  d*f - b*e,
		Cy:  d*e - a*f,
	}
}

// adjugateColumn returns column idx (0=x, 1=y, 2=w) of the symmetric
// matrix represented by adj.
func adjugateColumn(adj ellipse.Params, idx int) [3]float64 {
	switch idx {
	case 0:
		return [3]float64{adj.Cxx, adj.Cxy, adj.Cx}
	case 1:
		return [3]float64{adj.Cxy, adj.Cyy, adj.Cy}
	default:
		return [3]float64{adj.Cx, adj.Cy, adj.C}
	}
}

// conicMatrix expands q into its explicit 3x3 matrix representation.
func conicMatrix(q ellipse.Params) [3][3]float64 {
	return [3][3]float64{
		{q.Cxx, q.Cxy, q.Cx},
		{q.Cxy, q.Cyy, q.Cy},
		{q.Cx, q.Cy, q.C},
	}
}

// lineMeetsConic substitutes the line l0*x + l1*y + l2 = 0 into conic e and
// reports whether a finite real intersection point exists.
func lineMeetsConic(line [3]float64, e ellipse.Params) bool {
	l0, l1, l2 := line[0], line[1], line[2]
	scale := maxAbs6(l0, l1, l2, 0, 0, 0)
	if scale == 0 {
		return false
	}

	// A point on the line and a direction vector along it.
	var px, py, dx, dy float64
	if math.Abs(l0) >= math.Abs(l1) {
		// Solve for x given y=0: l0*x + l2 = 0.
		px, py = -l2/l0, 0
		norm := math.Hypot(l0, l1)
		dx, dy = -l1/norm, l0/norm
	} else {
		px, py = 0, -l2/l1
		norm := math.Hypot(l0, l1)
		dx, dy = -l1/norm, l0/norm
	}
	if math.IsNaN(px) || math.IsInf(px, 0) || math.IsNaN(py) || math.IsInf(py, 0) {
		return false
	}

	A := e.Cxx*dx*dx + 2*e.Cxy*dx*dy + e.Cyy*dy*dy
	B := 2 * (e.Cxx*px*dx + e.Cxy*(px*dy+py*dx) + e.Cyy*py*dy + e.Cx*dx + e.Cy*dy)
	Cc := e.Cxx*px*px + 2*e.Cxy*px*py + e.Cyy*py*py + 2*e.Cx*px + 2*e.Cy*py + e.C

	coeffScale := maxAbs6(A, B, Cc, 0, 0, 0)
	if coeffScale == 0 {
		return true // line lies entirely on the conic
	}

	if numeric.AlmostZero(A, math.Sqrt(coeffScale)) {
		if numeric.AlmostZero(B, math.Sqrt(coeffScale)) {
			return numeric.AlmostZero(Cc, math.Sqrt(coeffScale))
		}
		s := -Cc / B
		return !math.IsInf(s, 0) && !math.IsNaN(s)
	}

	disc := B*B - 4*A*Cc
	tol := numeric.MixEpsilon * coeffScale * coeffScale
	if disc < -tol {
		return false
	}
	if disc < 0 {
		disc = 0
	}
	s := (-B + math.Sqrt(disc)) / (2 * A)

	return !math.IsInf(s, 0) && !math.IsNaN(s)
}
