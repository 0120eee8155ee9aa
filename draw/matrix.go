package draw

// Matrix2D is an affine transform, using the same conventions
// as SVG and rasterx:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the transform which does nothing.
var Identity = Matrix2D{A: 1, D: 1}

// Mult returns a * b: b is applied first.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Translate returns a transform applying (x, y) translation before a.
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{A: 1, D: 1, E: x, F: y})
}

// Scale returns a transform applying a (x, y) scaling before a.
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{A: x, D: y})
}

// Transform applies the matrix to the point (x, y).
func (a Matrix2D) Transform(x, y float64) (float64, float64) {
	return a.A*x + a.C*y + a.E, a.B*x + a.D*y + a.F
}

// CanvasToDevice returns the transform mapping canvas units (origin at
// the bottom-left, y upward) to device pixels (origin at the top-left,
// y downward): a uniform scale, a y-axis flip over a canvas of the
// given height, and an offset of (dx, dy) pixels.
func CanvasToDevice(canvasHeight, scale, dx, dy float64) Matrix2D {
	return Identity.Translate(dx, dy).Scale(scale, -scale).Translate(0, -canvasHeight)
}
