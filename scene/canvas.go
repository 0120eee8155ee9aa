// Package scene defines the drawable model of a composition:
// a fixed-size canvas holding an ordered list of primitives
// (rounded rectangles, circles, arrows and texts).
//
// Primitives are plain data, validated at construction.
// The paint order is the insertion order: later primitives
// are drawn over earlier ones.
// See the draw and raster packages to turn a canvas into pixels.
package scene

import (
	"image/color"
	"iter"
)

// Canvas is the coordinate space of a composition, in abstract units.
// Its origin is the bottom-left corner.
type Canvas struct {
	width, height float64
	background    color.Color
	primitives    []Primitive
}

// NewCanvas returns an empty canvas. The background color must
// be opaque enough to be painted: "none" is rejected.
func NewCanvas(width, height float64, background string) (*Canvas, error) {
	if !(width > 0 && height > 0) { // also rejects NaN
		return nil, Errorf(KindInvalidDimensions, ComponentCanvas, "size", "width and height must be positive, got %gx%g", width, height)
	}
	bg, err := ParseColor(background)
	if err != nil {
		return nil, err
	}
	if bg == nil {
		return nil, Errorf(KindInvalidStyle, ComponentCanvas, "background", "a background color is required")
	}
	return &Canvas{width: width, height: height, background: bg}, nil
}

func (c *Canvas) Width() float64  { return c.width }
func (c *Canvas) Height() float64 { return c.height }

// Background returns the background color.
func (c *Canvas) Background() color.Color { return c.background }

// Add appends p on top of the primitives already added.
// nil is ignored.
func (c *Canvas) Add(p Primitive) {
	if p == nil {
		return
	}
	c.primitives = append(c.primitives, p)
}

// Len returns the number of primitives.
func (c *Canvas) Len() int { return len(c.primitives) }

// Primitives iterates over the primitives in paint order.
// The sequence may be consumed several times.
func (c *Canvas) Primitives() iter.Seq[Primitive] {
	return func(yield func(Primitive) bool) {
		for _, p := range c.primitives {
			if !yield(p) {
				return
			}
		}
	}
}

// Contains returns true if p lies inside the canvas bounds (inclusive).
func (c *Canvas) Contains(p Point) bool {
	return p.X >= 0 && p.X <= c.width && p.Y >= 0 && p.Y <= c.height
}
