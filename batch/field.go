package batch

// Field is one broadcastable kinematic input to Eval: either a scalar
// (len(Shape) == 0, one value in Data) or an N-dimensional array stored
// flat in row-major order.
type Field struct {
	Data  []float64
	Shape Shape
}

// ScalarField wraps a single float64 as a zero-rank Field.
func ScalarField(v float64) Field {
	return Field{Data: []float64{v}, Shape: nil}
}

// SliceField wraps data as a Field of the given shape. The caller is
// responsible for len(data) == shape.size().
func SliceField(data []float64, shape Shape) Field {
	return Field{Data: data, Shape: shape}
}

// at returns the value of f at the multi-index idx, which must have the
// same length as target (the broadcast shape Eval computed). Dimensions
// of f narrower than target are right-aligned; dimensions of size 1 in f
// are held fixed regardless of idx.
func (f Field) at(idx []int, target Shape) float64 {
	if len(f.Shape) == 0 {
		return f.Data[0]
	}

	offset := len(target) - len(f.Shape)
	flat := 0
	stride := 1
	for i := len(f.Shape) - 1; i >= 0; i-- {
		dim := f.Shape[i]
		pos := idx[offset+i]
		if dim == 1 {
			pos = 0
		}
		flat += pos * stride
		stride *= dim
	}

	return f.Data[flat]
}
