// Package raster implements a raster backend to render
// scene canvases, by wrapping rasterx.
package raster

import (
	"image"
	"image/color"
	stddraw "image/draw"
	"math"

	"github.com/benoitkugler/infographic/draw"
	"github.com/benoitkugler/infographic/scene"
	"github.com/srwiley/rasterx"
)

var _ draw.Driver = (*Renderer)(nil) // assert interface conformance

// MaxPixels bounds the size of the pixel buffers Render accepts.
const MaxPixels = 1 << 28

// Options defines the output resolution.
type Options struct {
	Width, Height float64 // page size, in inches
	DPI           float64 // pixels per inch

	// Tight crops the page to the extent of the canvas,
	// instead of centering the canvas on the page.
	Tight bool
}

// DefaultOptions is a 16x20 inches page at 300 DPI.
var DefaultOptions = Options{Width: 16, Height: 20, DPI: 300}

// Renderer is a draw.Driver painting into an RGBA image.
type Renderer struct {
	img    *image.RGBA
	filler filler
	dasher dasher
	fonts  *fontCache
}

// filler and dasher adapt the rasterx painters to the draw interfaces.
type filler struct{ *rasterx.Filler }

type dasher struct{ *rasterx.Dasher }

func (f filler) SetColor(c color.Color) { f.Filler.SetColor(c) }

func (d dasher) SetColor(c color.Color) { d.Dasher.SetColor(c) }

var (
	capToFunc = [...]rasterx.CapFunc{
		draw.ButtCap:   rasterx.ButtCap,
		draw.RoundCap:  rasterx.RoundCap,
		draw.SquareCap: rasterx.SquareCap,
	}

	joinToJoin = [...]rasterx.JoinMode{
		draw.Round: rasterx.Round,
		draw.Bevel: rasterx.Bevel,
		draw.Miter: rasterx.Miter,
	}
)

func (d dasher) SetStrokeOptions(options draw.StrokeOptions) {
	d.Dasher.SetStroke(
		options.LineWidth, options.MiterLimit, capToFunc[options.Cap],
		capToFunc[options.Cap], rasterx.RoundGap,
		joinToJoin[options.Join], options.Dash.Dash, options.Dash.DashOffset,
	)
}

// NewRenderer returns a renderer drawing into img.
// The filler and the dasher share the same scanner,
// so that paths are painted one at a time, in order.
func NewRenderer(img *image.RGBA) *Renderer {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Renderer{
		img:    img,
		filler: filler{rasterx.NewFiller(w, h, scanner)},
		dasher: dasher{rasterx.NewDasher(w, h, scanner)},
		fonts:  newFontCache(),
	}
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f draw.Filler, s draw.Stroker) {
	if willFill {
		f = rd.filler
	}
	if willStroke {
		s = rd.dasher
	}
	return f, s
}

// Size returns the pixel size of the page described by opts,
// for a canvas of the given extent, and the canvas to device transform.
func (opts Options) Size(canvasWidth, canvasHeight float64) (w, h int, m draw.Matrix2D, err error) {
	if opts.DPI <= 0 || math.IsNaN(opts.DPI) {
		return 0, 0, m, scene.Errorf(scene.KindRenderTarget, scene.ComponentRenderer, "dpi", "must be positive, got %g", opts.DPI)
	}
	pw, ph := opts.Width*opts.DPI, opts.Height*opts.DPI
	if !(pw >= 1 && ph >= 1) {
		return 0, 0, m, scene.Errorf(scene.KindRenderTarget, scene.ComponentRenderer, "page size", "%gx%g inches at %g DPI is empty", opts.Width, opts.Height, opts.DPI)
	}
	scale := math.Min(pw/canvasWidth, ph/canvasHeight)
	var dx, dy float64
	if opts.Tight {
		pw, ph = canvasWidth*scale, canvasHeight*scale
	} else {
		dx, dy = (pw-canvasWidth*scale)/2, (ph-canvasHeight*scale)/2
	}
	fw, fh := math.Round(pw), math.Round(ph)
	if fw*fh > MaxPixels {
		return 0, 0, m, scene.Errorf(scene.KindRenderTarget, scene.ComponentRenderer, "page size", "%gx%g pixels exceeds the %d pixels limit", fw, fh, MaxPixels)
	}
	return int(fw), int(fh), draw.CanvasToDevice(canvasHeight, scale, dx, dy), nil
}

// Render paints the canvas into a new image, filled first with
// the canvas background.
func Render(c *scene.Canvas, opts Options) (*image.RGBA, error) {
	w, h, m, err := opts.Size(c.Width(), c.Height())
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	stddraw.Draw(img, img.Bounds(), image.NewUniform(scene.Opaque(c.Background())), image.Point{}, stddraw.Src)

	rd := NewRenderer(img)
	dev := draw.Device{Matrix: m, PointSize: opts.DPI / 72}
	if err := draw.Paint(c, rd, dev); err != nil {
		return nil, err
	}
	return img, nil
}
