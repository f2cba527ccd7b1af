package batch

// Shape is the size of each dimension of a broadcastable array, in
// row-major (C) order. A nil or empty Shape denotes a scalar.
type Shape []int

// size returns the total element count of s (1 for a scalar shape).
func (s Shape) size() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// strides returns the row-major stride of each dimension of s.
func (s Shape) strides() []int {
	strides := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= s[i]
	}

	return strides
}

// multiIndex decomposes flat (a row-major flat index into s) into one
// index per dimension of s.
func (s Shape) multiIndex(flat int) []int {
	idx := make([]int, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == 0 {
			continue
		}
		idx[i] = flat % s[i]
		flat /= s[i]
	}

	return idx
}

// broadcastShape computes the common shape of shapes under NumPy-style
// broadcasting: shapes are right-aligned, a missing leading dimension is
// treated as size 1, and a size-1 dimension stretches to match any other
// size in that position. It returns ErrShapeMismatch if no common shape
// exists.
func broadcastShape(shapes ...Shape) (Shape, error) {
	rank := 0
	for _, s := range shapes {
		if len(s) > rank {
			rank = len(s)
		}
	}

	out := make(Shape, rank)
	for i := range out {
		out[i] = 1
	}

	for _, s := range shapes {
		offset := rank - len(s)
		for i, d := range s {
			pos := offset + i
			switch {
			case d == 1 || d == out[pos]:
				if d > out[pos] {
					out[pos] = d
				}
			case out[pos] == 1:
				out[pos] = d
			default:
				return nil, ErrShapeMismatch
			}
		}
	}

	return out, nil
}
