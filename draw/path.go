package draw

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"
)

// This file defines the basic path structure, in device coordinates.

// Operation groups the different path commands
type Operation interface {
	// add itself on the drawer `d`
	drawTo(d Drawer)
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

// starts a new path at the given point.
func (op MoveTo) drawTo(d Drawer) {
	d.Stop(false) // implicit close if currently in path.
	d.Start(fixed.Point26_6(op))
}

func (op LineTo) drawTo(d Drawer) { d.Line(fixed.Point26_6(op)) }

func (op CubicTo) drawTo(d Drawer) { d.CubeBezier(op[0], op[1], op[2]) }

func (op Close) drawTo(d Drawer) { d.Stop(true) }

// Path describes a sequence of basic operations.
// Higher-level shapes are reduced to a Path.
type Path []Operation

// String returns a SVG like representation of a Path.
func (p Path) String() string {
	f := func(v fixed.Int26_6) float32 { return float32(v) / 64 }
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", f(op.X), f(op.Y))
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", f(op.X), f(op.Y))
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f", f(op[0].X), f(op[0].Y),
				f(op[1].X), f(op[1].Y), f(op[2].X), f(op[2].Y))
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// AddTo sends the path operations to d.
func (p Path) AddTo(d Drawer) {
	for _, op := range p {
		op.drawTo(d)
	}
	d.Stop(false)
}

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// pathBuilder accumulates operations given in canvas units,
// transforming them to device space with M.
type pathBuilder struct {
	M    Matrix2D
	path Path
}

func (b *pathBuilder) tr(x, y float64) fixed.Point26_6 { return toFixedP(b.M.Transform(x, y)) }

func (b *pathBuilder) moveTo(x, y float64) { b.path = append(b.path, MoveTo(b.tr(x, y))) }

func (b *pathBuilder) lineTo(x, y float64) { b.path = append(b.path, LineTo(b.tr(x, y))) }

func (b *pathBuilder) cubicTo(x1, y1, x2, y2, x3, y3 float64) {
	b.path = append(b.path, CubicTo{b.tr(x1, y1), b.tr(x2, y2), b.tr(x3, y3)})
}

func (b *pathBuilder) close() { b.path = append(b.path, Close{}) }
