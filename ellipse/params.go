package ellipse

// Params represents the conic
//
//	c_xx*x^2 + 2*c_xy*x*y + c_yy*y^2 + 2*c_x*x + 2*c_y*y + c = 0
//
// using the matrix-representation convention described at
// https://en.wikipedia.org/wiki/Matrix_representation_of_conic_sections.
//
// A Params value is built fresh per trial mass by Build, never mutated,
// and discarded after the trial; it carries only six float64 fields, so
// it lives entirely on the stack of its caller.
type Params struct {
	Cxx, Cyy, Cxy float64
	Cx, Cy        float64
	C             float64
}

// DetA33 is the determinant of the upper-left 2x2 block of the conic's
// matrix representation.
func (p Params) DetA33() float64 {
	return p.Cxx*p.Cyy - p.Cxy*p.Cxy
}

// DetAq is the determinant of the full 3x3 symmetric matrix representation.
func (p Params) DetAq() float64 {
	return p.Cxx*(p.Cyy*p.C-p.Cy*p.Cy) -
		p.Cxy*(p.Cxy*p.C-p.Cy*p.Cx) +
		p.Cx*(p.Cxy*p.Cy-p.Cyy*p.Cx)
}

// IsNonDegenerateRealEllipse reports whether these coefficients describe a
// real, non-degenerate ellipse: det A33 > 0, det Aq != 0, and
// (c_xx + c_yy) * det Aq < 0.
func (p Params) IsNonDegenerateRealEllipse() bool {
	detA33 := p.DetA33()
	if detA33 <= 0 {
		return false
	}
	detAq := p.DetAq()
	if detAq == 0 {
		return false
	}

	return (p.Cxx+p.Cyy)*detAq < 0
}

// Centre returns the (x, y) centre of this conic section. Only meaningful
// when DetA33() != 0.
func (p Params) Centre() (float64, float64) {
	detA33 := p.DetA33()

	return (p.Cxy*p.Cy - p.Cyy*p.Cx) / detA33, (p.Cxy*p.Cx - p.Cxx*p.Cy) / detA33
}
