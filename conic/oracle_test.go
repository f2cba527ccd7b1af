package conic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tgmt2/mt2/conic"
	"github.com/tgmt2/mt2/ellipse"
)

func unitCircleAt(cx, cy, r float64) ellipse.Params {
	return ellipse.Params{
		Cxx: 1,
		Cyy: 1,
		Cxy: 0,
		Cx:  -cx,
		Cy:  -cy,
		C:   cx*cx + cy*cy - r*r,
	}
}

// TestIntersect_OverlappingCircles checks two circles whose centres are
// closer together than the sum of their radii and farther apart than the
// difference of their radii: they cross at two real points.
func TestIntersect_OverlappingCircles(t *testing.T) {
	e1 := unitCircleAt(0, 0, 1)
	e2 := unitCircleAt(1, 0, 1)

	assert.Equal(t, conic.Feasible, conic.Intersect(e1, e2))
}

// TestIntersect_DisjointCircles checks two circles far enough apart that
// they cannot possibly share a point.
func TestIntersect_DisjointCircles(t *testing.T) {
	e1 := unitCircleAt(0, 0, 1)
	e2 := unitCircleAt(3, 0, 1)

	assert.Equal(t, conic.Infeasible, conic.Intersect(e1, e2))
}

// TestIntersect_TangentCircles checks externally tangent circles (centres
// exactly radius-sum apart): a single shared point, still Feasible.
func TestIntersect_TangentCircles(t *testing.T) {
	e1 := unitCircleAt(0, 0, 1)
	e2 := unitCircleAt(2, 0, 1)

	assert.Equal(t, conic.Feasible, conic.Intersect(e1, e2))
}

// TestIntersect_ConcentricCirclesDisjoint checks two concentric circles of
// different radii: one strictly contains the other, no shared point.
func TestIntersect_ConcentricCirclesDisjoint(t *testing.T) {
	e1 := unitCircleAt(0, 0, 1)
	e2 := unitCircleAt(0, 0, 2)

	assert.Equal(t, conic.Infeasible, conic.Intersect(e1, e2))
}

// TestIntersect_DegenerateInputIsInfeasible checks that a degenerate
// "ellipse" (not a real non-degenerate ellipse) is rejected up front.
func TestIntersect_DegenerateInputIsInfeasible(t *testing.T) {
	degenerate := ellipse.Params{Cxx: 1, Cyy: -1, Cxy: 0, Cx: 0, Cy: 0, C: 0}
	e2 := unitCircleAt(0, 0, 1)

	assert.Equal(t, conic.Infeasible, conic.Intersect(degenerate, e2))
}

// TestIntersect_NonFiniteInputIsInfeasible checks that non-finite
// coefficients are rejected rather than propagated into the solver.
func TestIntersect_NonFiniteInputIsInfeasible(t *testing.T) {
	e1 := unitCircleAt(0, 0, 1)
	e2 := unitCircleAt(0, 0, 1)
	e2.Cx = math.Inf(1)

	assert.Equal(t, conic.Infeasible, conic.Intersect(e1, e2))
}
