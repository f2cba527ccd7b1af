package batch

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tgmt2/mt2"
)

// EvalGrid evaluates MT2 over every (mass1[r], mass2[c]) pair, holding
// every other field of tmpl fixed, and returns the result as a
// len(mass1) x len(mass2) dense matrix: the column-vector x row-vector
// scan used to scout the MT2 surface over two trial invisible masses.
//
// tmpl.MInvis1 and tmpl.MInvis2 are overridden per output cell; its other
// eight fields are broadcast unchanged to every cell.
func EvalGrid(mass1, mass2 []float64, tmpl mt2.Event, opts mt2.Options) (*mat.Dense, error) {
	fields := Fields{
		MVis1: ScalarField(tmpl.MVis1), PxVis1: ScalarField(tmpl.PxVis1), PyVis1: ScalarField(tmpl.PyVis1),
		MVis2: ScalarField(tmpl.MVis2), PxVis2: ScalarField(tmpl.PxVis2), PyVis2: ScalarField(tmpl.PyVis2),
		PxMiss: ScalarField(tmpl.PxMiss), PyMiss: ScalarField(tmpl.PyMiss),
		MInvis1: SliceField(mass1, Shape{len(mass1), 1}),
		MInvis2: SliceField(mass2, Shape{1, len(mass2)}),
	}

	out, shape, err := Eval(fields, opts, nil)
	if err != nil {
		return nil, err
	}

	r, c := shape[0], shape[1]

	return mat.NewDense(r, c, out), nil
}
