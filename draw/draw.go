// Package draw implements how a scene.Canvas is painted:
// each primitive is reduced to device space paths and texts,
// which are sent to a Driver doing the actual drawing.
// See the raster package for a driver producing images.
package draw

import (
	"image/color"

	"github.com/benoitkugler/infographic/scene"
	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual draw operations
// but doesn't need any scene knowledge.
// In particular, the canvas to device transform is already applied
// to the points before sending them to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line adds a line from the current point to `b`
	Line(b fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Stop closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor sets the color for the current path
	SetColor(c color.Color)

	// Draw fills or strokes the accumulated path using the current settings
	Draw()
}

type Filler interface {
	Drawer
}

type Stroker interface {
	Drawer

	// SetStrokeOptions parametrizes the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

// TextRun is a single line of text, positioned in device space.
type TextRun struct {
	Text   string
	X, Y   float64 // anchor, in pixels
	Size   float64 // font size, in pixels
	Weight scene.Weight
	Slant  scene.Slant
	Color  color.Color
	HAlign scene.HAlign
	VAlign scene.VAlign
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the beginning of every shape.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)

	// DrawText draws one line of text.
	DrawText(run TextRun) error
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota
	RoundCap
	SquareCap
)

// JoinMode type to specify how segments join.
type JoinMode uint8

const (
	Round JoinMode = iota
	Bevel
	Miter
)

type DashOptions struct {
	Dash       []float64 // values for the dash pattern (nil or an empty slice for no dashes)
	DashOffset float64   // starting offset into the dash array
}

type StrokeOptions struct {
	LineWidth  fixed.Int26_6 // width of the line
	MiterLimit fixed.Int26_6
	Cap        CapMode
	Join       JoinMode
	Dash       DashOptions
}

// Device describes the drawing target of Paint.
type Device struct {
	// Matrix maps canvas units to device pixels
	// (see CanvasToDevice).
	Matrix Matrix2D

	// PointSize is the size of a typographic point, in pixels
	// (DPI / 72). Stroke widths, dashes, arrowheads and
	// font sizes are expressed in points.
	PointSize float64
}

// Paint draws every primitive of the canvas into the driver, in paint order.
// The background is not painted: this is the responsibility of the driver.
func Paint(c *scene.Canvas, d Driver, dev Device) error {
	for p := range c.Primitives() {
		var err error
		switch p := p.(type) {
		case *scene.RoundedRect:
			b := pathBuilder{M: dev.Matrix}
			b.addRoundRect(p.X, p.Y, p.X+p.Width, p.Y+p.Height, p.Radius)
			paintPath(d, b.path, p.Style, dev)
		case *scene.Circle:
			b := pathBuilder{M: dev.Matrix}
			b.addCircle(p.Center.X, p.Center.Y, p.Radius)
			paintPath(d, b.path, p.Style, dev)
		case *scene.Arrow:
			paintArrow(d, p, dev)
		case *scene.Text:
			err = paintText(d, p, dev)
		default:
			return scene.Errorf(scene.KindUnsupportedPrimitive, scene.ComponentRenderer, "", "no drawing rule for %T", p)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func strokeOptions(st scene.Style, dev Device, dashed bool) StrokeOptions {
	opts := StrokeOptions{
		LineWidth:  fixed.Int26_6(st.StrokeWidth * dev.PointSize * 64),
		MiterLimit: fixed.I(4),
		Cap:        ButtCap,
		Join:       Round,
	}
	if dashed && len(st.Dash) > 0 {
		opts.Dash.Dash = make([]float64, len(st.Dash))
		for i, v := range st.Dash {
			opts.Dash.Dash[i] = v * dev.PointSize
		}
	}
	return opts
}

// paintPath fills then strokes the path, as required by the style.
func paintPath(d Driver, path Path, st scene.Style, dev Device) {
	willStroke := st.Stroke != nil && st.StrokeWidth > 0
	filler, stroker := d.SetupDrawers(st.Fill != nil, willStroke)
	if filler != nil {
		filler.Clear()
		path.AddTo(filler)
		filler.SetColor(st.Fill)
		filler.Draw()
	}
	if stroker != nil {
		stroker.Clear()
		stroker.SetStrokeOptions(strokeOptions(st, dev, true))
		path.AddTo(stroker)
		stroker.SetColor(st.Stroke)
		stroker.Draw()
	}
}

func paintArrow(d Driver, a *scene.Arrow, dev Device) {
	shaft := pathBuilder{M: dev.Matrix}
	shaft.addLine(a.From.X, a.From.Y, a.To.X, a.To.Y)
	_, stroker := d.SetupDrawers(false, true)
	stroker.Clear()
	stroker.SetStrokeOptions(strokeOptions(a.Style, dev, true))
	shaft.path.AddTo(stroker)
	stroker.SetColor(a.Style.Stroke)
	stroker.Draw()

	if a.Head <= 0 {
		return
	}
	// the head is computed in device space, since its size is in points
	x0, y0 := dev.Matrix.Transform(a.From.X, a.From.Y)
	x1, y1 := dev.Matrix.Transform(a.To.X, a.To.Y)
	lx, ly, rx, ry := arrowHead(x0, y0, x1, y1, a.Head*dev.PointSize)
	head := pathBuilder{M: Identity}
	head.moveTo(lx, ly)
	head.lineTo(x1, y1)
	head.lineTo(rx, ry)

	_, stroker = d.SetupDrawers(false, true)
	stroker.Clear()
	stroker.SetStrokeOptions(strokeOptions(a.Style, dev, false))
	head.path.AddTo(stroker)
	stroker.SetColor(a.Style.Stroke)
	stroker.Draw()
}

func paintText(d Driver, t *scene.Text, dev Device) error {
	x, y := dev.Matrix.Transform(t.At.X, t.At.Y)
	return d.DrawText(TextRun{
		Text:   t.Content(),
		X:      x,
		Y:      y,
		Size:   t.Style.Size * dev.PointSize,
		Weight: t.Style.Weight,
		Slant:  t.Style.Slant,
		Color:  t.Style.Color,
		HAlign: t.Style.HAlign,
		VAlign: t.Style.VAlign,
	})
}
