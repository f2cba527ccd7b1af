package batch

import "github.com/tgmt2/mt2"

// Fields bundles the ten kinematic inputs to Eval, each independently
// broadcastable, mirroring mt2.Event field for field.
type Fields struct {
	MVis1, PxVis1, PyVis1 Field
	MVis2, PxVis2, PyVis2 Field
	PxMiss, PyMiss        Field
	MInvis1, MInvis2      Field
}

// Eval computes MT2 for every element of the broadcast shape of fields.
//
// Stage 1 (Validate): compute the common broadcast Shape across all ten
// Fields; ErrShapeMismatch if none exists, or if out is non-nil and its
// length does not match the shape's element count.
// Stage 2 (Prepare): allocate out if the caller passed nil.
// Stage 3 (Execute): for every flat index, gather the ten scalars via
// each Field's broadcasting lookup and dispatch to mt2.Compute; a failed
// element gets mt2.NegativeSentinel and the batch continues.
// Stage 4 (Finalize): return out and the broadcast shape.
func Eval(fields Fields, opts mt2.Options, out []float64) ([]float64, Shape, error) {
	shapes := []Shape{
		fields.MVis1.Shape, fields.PxVis1.Shape, fields.PyVis1.Shape,
		fields.MVis2.Shape, fields.PxVis2.Shape, fields.PyVis2.Shape,
		fields.PxMiss.Shape, fields.PyMiss.Shape,
		fields.MInvis1.Shape, fields.MInvis2.Shape,
	}

	shape, err := broadcastShape(shapes...)
	if err != nil {
		return nil, nil, err
	}

	n := shape.size()
	if out == nil {
		out = make([]float64, n)
	} else if len(out) != n {
		return nil, nil, ErrShapeMismatch
	}

	for flat := 0; flat < n; flat++ {
		idx := shape.multiIndex(flat)

		ev := mt2.Event{
			MVis1:  fields.MVis1.at(idx, shape),
			PxVis1: fields.PxVis1.at(idx, shape),
			PyVis1: fields.PyVis1.at(idx, shape),

			MVis2:  fields.MVis2.at(idx, shape),
			PxVis2: fields.PxVis2.at(idx, shape),
			PyVis2: fields.PyVis2.at(idx, shape),

			PxMiss: fields.PxMiss.at(idx, shape),
			PyMiss: fields.PyMiss.at(idx, shape),

			MInvis1: fields.MInvis1.at(idx, shape),
			MInvis2: fields.MInvis2.at(idx, shape),
		}

		out[flat] = mt2.Compute(ev, opts)
	}

	return out, shape, nil
}
