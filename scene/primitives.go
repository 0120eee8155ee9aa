package scene

import (
	"image/color"

	"golang.org/x/text/unicode/norm"
)

// Point is a position in canvas units, with the origin at the bottom-left
// corner and y growing upward.
type Point struct{ X, Y float64 }

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point { return Point{p.X + dx, p.Y + dy} }

// Style holds the paint settings of a shape.
type Style struct {
	Stroke      color.Color // nil disables stroking
	Fill        color.Color // nil disables filling
	StrokeWidth float64     // in points
	Dash        []float64   // dash pattern in points (nil or empty for a solid line)
}

// NewStyle resolves the given colors (see ParseColor).
func NewStyle(stroke, fill string, strokeWidth float64) (Style, error) {
	if !(strokeWidth >= 0) {
		return Style{}, Errorf(KindInvalidStyle, ComponentPrimitive, "stroke width", "negative value %g", strokeWidth)
	}
	s, err := ParseColor(stroke)
	if err != nil {
		return Style{}, err
	}
	f, err := ParseColor(fill)
	if err != nil {
		return Style{}, err
	}
	return Style{Stroke: s, Fill: f, StrokeWidth: strokeWidth}, nil
}

// Dashed returns a copy of s stroked with the given on/off pattern.
func (s Style) Dashed(pattern ...float64) (Style, error) {
	for _, d := range pattern {
		if !(d > 0) {
			return Style{}, Errorf(KindInvalidStyle, ComponentPrimitive, "dash", "non positive dash length %g", d)
		}
	}
	s.Dash = append([]float64(nil), pattern...)
	return s, nil
}

func (s Style) strokes() bool { return s.Stroke != nil && s.StrokeWidth > 0 }

// Primitive is one of *RoundedRect, *Circle, *Arrow or *Text.
// The set is closed: the renderer handles each of them explicitly.
type Primitive interface {
	// Anchor returns the reference point of the primitive.
	Anchor() Point

	isPrimitive()
}

// RoundedRect is a rectangle with rounded corners,
// positioned by its bottom-left corner.
type RoundedRect struct {
	X, Y          float64
	Width, Height float64
	Radius        float64 // 0 for square corners
	Style         Style
}

// NewRoundedRect validates the geometry. The radius is clamped
// to half the smallest side.
func NewRoundedRect(x, y, width, height, radius float64, style Style) (*RoundedRect, error) {
	if !(width > 0) {
		return nil, Errorf(KindInvalidGeometry, ComponentPrimitive, "width", "must be positive, got %g", width)
	}
	if !(height > 0) {
		return nil, Errorf(KindInvalidGeometry, ComponentPrimitive, "height", "must be positive, got %g", height)
	}
	if !(radius >= 0) {
		return nil, Errorf(KindInvalidGeometry, ComponentPrimitive, "corner radius", "negative value %g", radius)
	}
	if m := min(width, height) / 2; radius > m {
		radius = m
	}
	if style.Fill == nil && !style.strokes() {
		return nil, Errorf(KindInvalidStyle, ComponentPrimitive, "rounded rect", "neither filled nor stroked")
	}
	return &RoundedRect{X: x, Y: y, Width: width, Height: height, Radius: radius, Style: style}, nil
}

func (r *RoundedRect) Anchor() Point { return Point{r.X, r.Y} }

// Center returns the center of the rectangle.
func (r *RoundedRect) Center() Point { return Point{r.X + r.Width/2, r.Y + r.Height/2} }

// Circle is a disk positioned by its center.
type Circle struct {
	Center Point
	Radius float64
	Style  Style
}

func NewCircle(center Point, radius float64, style Style) (*Circle, error) {
	if !(radius > 0) {
		return nil, Errorf(KindInvalidGeometry, ComponentPrimitive, "radius", "must be positive, got %g", radius)
	}
	if style.Fill == nil && !style.strokes() {
		return nil, Errorf(KindInvalidStyle, ComponentPrimitive, "circle", "neither filled nor stroked")
	}
	return &Circle{Center: center, Radius: radius, Style: style}, nil
}

func (c *Circle) Anchor() Point { return c.Center }

// Arrow is a straight stroked line from From to To, with an
// optional open arrowhead at To.
type Arrow struct {
	From, To Point
	Head     float64 // arrowhead length in points, 0 for a plain line
	Style    Style   // only the stroke settings are used
}

func NewArrow(from, to Point, head float64, style Style) (*Arrow, error) {
	if from == to {
		return nil, Errorf(KindInvalidGeometry, ComponentPrimitive, "arrow", "start and end points coincide")
	}
	if !(head >= 0) {
		return nil, Errorf(KindInvalidGeometry, ComponentPrimitive, "arrowhead", "negative size %g", head)
	}
	if !style.strokes() {
		return nil, Errorf(KindInvalidStyle, ComponentPrimitive, "arrow", "a stroke color and width are required")
	}
	return &Arrow{From: from, To: to, Head: head, Style: style}, nil
}

func (a *Arrow) Anchor() Point { return a.From }

// HAlign is the horizontal alignment of a text relative to its anchor.
type HAlign uint8

const (
	AlignCenter HAlign = iota
	AlignLeft
	AlignRight
)

// VAlign is the vertical alignment of a text relative to its anchor.
type VAlign uint8

const (
	AlignMiddle VAlign = iota
	AlignTop
	AlignBottom
)

// Weight selects a normal or bold font.
type Weight uint8

const (
	WeightNormal Weight = iota
	WeightBold
)

// Slant selects a normal or italic font.
type Slant uint8

const (
	SlantNormal Slant = iota
	SlantItalic
)

// TextStyle describes how a Text is drawn.
type TextStyle struct {
	Size   float64 // font size in points
	Weight Weight
	Slant  Slant
	Color  color.Color
	HAlign HAlign
	VAlign VAlign
}

// Text is a single line of text. Multi-line labels are
// built as several stacked Text values.
type Text struct {
	At    Point
	Style TextStyle

	content string
}

// NewText returns a text primitive. The content is stored in
// Unicode normal form C and can't be modified afterwards.
func NewText(content string, at Point, style TextStyle) (*Text, error) {
	if !(style.Size > 0) {
		return nil, Errorf(KindInvalidGeometry, ComponentPrimitive, "font size", "must be positive, got %g", style.Size)
	}
	if style.Color == nil {
		return nil, Errorf(KindInvalidStyle, ComponentPrimitive, "text color", "missing color for %q", content)
	}
	return &Text{At: at, Style: style, content: norm.NFC.String(content)}, nil
}

// Content returns the text to draw.
func (t *Text) Content() string { return t.content }

func (t *Text) Anchor() Point { return t.At }

func (*RoundedRect) isPrimitive() {}
func (*Circle) isPrimitive()      {}
func (*Arrow) isPrimitive()       {}
func (*Text) isPrimitive()        {}
