package layout

import (
	"fmt"

	"github.com/benoitkugler/infographic/scene"
)

// Band is a horizontal slice of the canvas, dedicated to one section.
type Band struct {
	Name   string  `yaml:"name"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Section names, from top to bottom.
const (
	SectionTitle        = "title"
	SectionProblem      = "problem"
	SectionFeatures     = "features"
	SectionStats        = "stats"
	SectionWorkflow     = "workflow"
	SectionFields       = "fields"
	SectionArchitecture = "architecture"
	SectionOutput       = "output"
)

var sectionOrder = [...]string{
	SectionTitle, SectionProblem, SectionFeatures, SectionStats,
	SectionWorkflow, SectionFields, SectionArchitecture, SectionOutput,
}

// DefaultBands partitions a 24 units high canvas.
func DefaultBands() []Band {
	return []Band{
		{SectionTitle, 24, 21.2},
		{SectionProblem, 21.2, 18.6},
		{SectionFeatures, 18.6, 15.2},
		{SectionStats, 15.2, 12.4},
		{SectionWorkflow, 12.4, 8.6},
		{SectionFields, 8.6, 5.0},
		{SectionArchitecture, 5.0, 1.2},
		{SectionOutput, 1.2, 0},
	}
}

// ValidateBands checks that bands lists every section once, from top to bottom,
// without overlap, and that they all fit in a canvas of the given height.
func ValidateBands(bands []Band, height float64) error {
	fail := func(format string, args ...interface{}) error {
		return scene.Errorf(scene.KindInsufficientSpace, scene.ComponentLayout, "bands", format, args...)
	}
	if len(bands) != len(sectionOrder) {
		return fail("expected %d bands, got %d", len(sectionOrder), len(bands))
	}
	for i, b := range bands {
		if b.Name != sectionOrder[i] {
			return fail("band %d is %q, expected %q", i, b.Name, sectionOrder[i])
		}
		if b.Top <= b.Bottom {
			return fail("band %q is empty (top %g, bottom %g)", b.Name, b.Top, b.Bottom)
		}
		if i > 0 && b.Top > bands[i-1].Bottom {
			return fail("band %q overlaps band %q", b.Name, bands[i-1].Name)
		}
	}
	if top := bands[0].Top; top > height {
		return fail("band %q starts at %g, above the canvas height %g", bands[0].Name, top, height)
	}
	if last := bands[len(bands)-1]; last.Bottom < 0 {
		return fail("band %q ends below the canvas, at %g", last.Name, last.Bottom)
	}
	return nil
}

// Row places items of equal width from a left margin, separated by a fixed gutter.
type Row struct {
	Left      float64 `yaml:"left"`
	ItemWidth float64 `yaml:"item_width"`
	Gutter    float64 `yaml:"gutter"`
}

// Offset returns the left edge of the item i.
func (r Row) Offset(i int) float64 {
	return r.Left + float64(i)*(r.ItemWidth+r.Gutter)
}

// Extent returns the width occupied by n items.
func (r Row) Extent(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*r.ItemWidth + float64(n-1)*r.Gutter
}

// centered returns a row of n items centered on a canvas of the given width.
func centered(itemWidth, gutter float64, n int, canvasWidth float64) Row {
	r := Row{ItemWidth: itemWidth, Gutter: gutter}
	r.Left = (canvasWidth - r.Extent(n)) / 2
	return r
}

// Box is the nominal rectangle of a card, before padding.
// Connectors are anchored on its edges.
type Box struct {
	X, Y, W, H float64
}

func (b Box) Left() float64    { return b.X }
func (b Box) Right() float64   { return b.X + b.W }
func (b Box) Bottom() float64  { return b.Y }
func (b Box) Top() float64     { return b.Y + b.H }
func (b Box) CenterX() float64 { return b.X + b.W/2 }

func (b Box) TopCenter() scene.Point    { return scene.Point{X: b.CenterX(), Y: b.Top()} }
func (b Box) BottomCenter() scene.Point { return scene.Point{X: b.CenterX(), Y: b.Bottom()} }

// TopAt returns the point of the top edge at fraction t
// of the width, from the left.
func (b Box) TopAt(t float64) scene.Point { return scene.Point{X: b.X + t*b.W, Y: b.Top()} }

// Grow returns the box enlarged by pad on every side.
func (b Box) Grow(pad float64) Box {
	return Box{X: b.X - pad, Y: b.Y - pad, W: b.W + 2*pad, H: b.H + 2*pad}
}

func (b Box) String() string { return fmt.Sprintf("[%g,%g %gx%g]", b.X, b.Y, b.W, b.H) }

// boxBelow returns a box of the given size whose top edge is at top.
func boxBelow(x, top, w, h float64) Box { return Box{X: x, Y: top - h, W: w, H: h} }
