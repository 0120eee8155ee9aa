package draw

import "math"

// This file implements the transformation from
// high level shapes to their path equivalent.

// kappa is the distance of the control points of a cubic bezier
// approximating a quarter of a unit circle.
const kappa = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// addRoundRect adds a rectangle with bottom-left corner (minX, minY)
// and rounded corners of radius r.
func (b *pathBuilder) addRoundRect(minX, minY, maxX, maxY, r float64) {
	if r <= 0 {
		b.moveTo(minX, minY)
		b.lineTo(maxX, minY)
		b.lineTo(maxX, maxY)
		b.lineTo(minX, maxY)
		b.close()
		return
	}
	k := r * kappa
	b.moveTo(minX+r, minY)
	b.lineTo(maxX-r, minY)
	b.cubicTo(maxX-r+k, minY, maxX, minY+r-k, maxX, minY+r)
	b.lineTo(maxX, maxY-r)
	b.cubicTo(maxX, maxY-r+k, maxX-r+k, maxY, maxX-r, maxY)
	b.lineTo(minX+r, maxY)
	b.cubicTo(minX+r-k, maxY, minX, maxY-r+k, minX, maxY-r)
	b.lineTo(minX, minY+r)
	b.cubicTo(minX, minY+r-k, minX+r-k, minY, minX+r, minY)
	b.close()
}

// addCircle adds a full circle, as four cubic bezier arcs.
func (b *pathBuilder) addCircle(cx, cy, r float64) {
	k := r * kappa
	b.moveTo(cx+r, cy)
	b.cubicTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	b.cubicTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	b.cubicTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	b.cubicTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	b.close()
}

// addLine adds an open segment.
func (b *pathBuilder) addLine(x0, y0, x1, y1 float64) {
	b.moveTo(x0, y0)
	b.lineTo(x1, y1)
}

// arrowHead returns the two barb ends of an open arrowhead
// pointing at (x1, y1), for a shaft coming from (x0, y0).
// length is measured along the shaft, in the same units as the points:
// the barbs are spread by half the length on each side.
func arrowHead(x0, y0, x1, y1, length float64) (lx, ly, rx, ry float64) {
	dx, dy := x1-x0, y1-y0
	n := math.Hypot(dx, dy)
	if n == 0 {
		return x1, y1, x1, y1
	}
	dx, dy = dx/n, dy/n
	bx, by := x1-dx*length, y1-dy*length // base of the head, on the shaft
	w := length / 2
	return bx - dy*w, by + dx*w, bx + dy*w, by - dx*w
}
