// Package layout computes the position of every card, label and connector
// of the infographic and emits them as scene primitives.
//
// The canvas is split in horizontal bands, one per section. Inside a band,
// items of a row are spread with Row, and connectors are computed from
// the anchors of the boxes they link, so that moving a box moves its arrows.
package layout

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/infographic/scene"
)

// Arrow head lengths, in points.
const (
	headLarge = 8
	headSmall = 6
)

// dashPattern is the on/off pattern of dashed connectors, in points.
var dashPattern = []float64{7.4, 3.2}

// Build lays out content on a new canvas.
func Build(content Content) (*scene.Canvas, error) {
	cs := content.Canvas
	c, err := scene.NewCanvas(cs.Width, cs.Height, cs.Background)
	if err != nil {
		return nil, err
	}
	bands := content.Bands
	if len(bands) == 0 {
		bands = DefaultBands()
	}
	if err = ValidateBands(bands, cs.Height); err != nil {
		return nil, err
	}
	b := &builder{canvas: c}
	for i, name := range sectionOrder {
		b.section, b.band = name, bands[i]
		switch name {
		case SectionTitle:
			err = b.title(content.Title)
		case SectionProblem:
			err = b.problem(content.Problem)
		case SectionFeatures:
			err = b.features(content.Features)
		case SectionStats:
			err = b.stats(content.Stats)
		case SectionWorkflow:
			err = b.workflow(content.Workflow)
		case SectionFields:
			err = b.fields(content.Fields)
		case SectionArchitecture:
			err = b.architecture(content.Architecture)
		case SectionOutput:
			err = b.output(content.Output)
		}
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// builder accumulates primitives on canvas, for the current section.
type builder struct {
	canvas  *scene.Canvas
	section string
	band    Band

	hub *Box // set by the architecture section, targeted by the output
}

func (b *builder) missing(format string, args ...interface{}) error {
	return scene.Errorf(scene.KindMissingContent, scene.ComponentLayout, b.section, format, args...)
}

func (b *builder) noSpace(format string, args ...interface{}) error {
	return scene.Errorf(scene.KindInsufficientSpace, scene.ComponentLayout, b.section, format, args...)
}

func (b *builder) wrap(err error) error {
	return fmt.Errorf("section %s: %w", b.section, err)
}

func (b *builder) add(p scene.Primitive) error {
	if a := p.Anchor(); !b.canvas.Contains(a) {
		return b.noSpace("anchor (%g, %g) is outside the canvas", a.X, a.Y)
	}
	b.canvas.Add(p)
	return nil
}

// checkRow verifies that every box fits horizontally in the canvas.
func (b *builder) checkRow(boxes []Box, pad float64) error {
	for i, box := range boxes {
		g := box.Grow(pad)
		if g.Left() < 0 || g.Right() > b.canvas.Width() {
			return b.noSpace("item %d spans [%g, %g], outside the canvas width %g", i+1, g.Left(), g.Right(), b.canvas.Width())
		}
	}
	return nil
}

// card draws box, grown by pad, with corners rounded by pad.
func (b *builder) card(box Box, pad float64, stroke, fill string, width float64) error {
	style, err := scene.NewStyle(stroke, fill, width)
	if err != nil {
		return b.wrap(err)
	}
	g := box.Grow(pad)
	r, err := scene.NewRoundedRect(g.X, g.Y, g.W, g.H, pad, style)
	if err != nil {
		return b.wrap(err)
	}
	return b.add(r)
}

func (b *builder) disc(center scene.Point, radius float64, color string) error {
	style, err := scene.NewStyle("", color, 0)
	if err != nil {
		return b.wrap(err)
	}
	ci, err := scene.NewCircle(center, radius, style)
	if err != nil {
		return b.wrap(err)
	}
	return b.add(ci)
}

// connector draws an arrow, dashed if required.
func (b *builder) connector(from, to scene.Point, head float64, color string, dashed bool) error {
	style, err := scene.NewStyle(color, "", 2)
	if err != nil {
		return b.wrap(err)
	}
	if dashed {
		if style, err = style.Dashed(dashPattern...); err != nil {
			return b.wrap(err)
		}
	}
	if !b.canvas.Contains(to) {
		return b.noSpace("arrow end (%g, %g) is outside the canvas", to.X, to.Y)
	}
	a, err := scene.NewArrow(from, to, head, style)
	if err != nil {
		return b.wrap(err)
	}
	return b.add(a)
}

// font is the text style of a label.
type font struct {
	size   float64
	bold   bool
	italic bool
	color  string
	align  scene.HAlign
}

func (f font) style() (scene.TextStyle, error) {
	col, err := scene.ParseColor(f.color)
	if err != nil {
		return scene.TextStyle{}, err
	}
	ts := scene.TextStyle{Size: f.size, Color: col, HAlign: f.align, VAlign: scene.AlignMiddle}
	if f.bold {
		ts.Weight = scene.WeightBold
	}
	if f.italic {
		ts.Slant = scene.SlantItalic
	}
	return ts, nil
}

func (b *builder) text(s string, at scene.Point, f font) error {
	ts, err := f.style()
	if err != nil {
		return b.wrap(err)
	}
	t, err := scene.NewText(s, at, ts)
	if err != nil {
		return b.wrap(err)
	}
	return b.add(t)
}

// lines stacks each line downward, the first one centered on y = top.
func (b *builder) lines(lines []string, x, top, lineHeight float64, f font) error {
	for i, l := range lines {
		if err := b.text(l, scene.Point{X: x, Y: top - float64(i)*lineHeight}, f); err != nil {
			return err
		}
	}
	return nil
}

// block stacks lines, vertically centered on y = middle.
func (b *builder) block(lines []string, x, middle, lineHeight float64, f font) error {
	top := middle + float64(len(lines)-1)*lineHeight/2
	return b.lines(lines, x, top, lineHeight, f)
}

// heading draws the centered title of the current section.
func (b *builder) heading(s string, offset float64) error {
	if s == "" {
		return nil
	}
	at := scene.Point{X: b.canvas.Width() / 2, Y: b.band.Top - offset}
	return b.text(s, at, font{size: 18, bold: true, color: ColorPrimary})
}

// splitLines splits a label on line breaks, ignoring a trailing one.
// An empty label has no lines.
func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func orDefault(color, def string) string {
	if color == "" {
		return def
	}
	return color
}
