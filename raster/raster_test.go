package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/benoitkugler/infographic/scene"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a 100x240 pixels page, 10 pixels per canvas unit
var smallPage = Options{Width: 1, Height: 2.4, DPI: 100}

func toPngBytes(t *testing.T, m image.Image) []byte {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, m))
	return b.Bytes()
}

func assertColor(t *testing.T, want color.Color, got color.Color) {
	t.Helper()
	w, g := scene.Opaque(want), color.RGBAModel.Convert(got).(color.RGBA)
	assert.InDelta(t, w.R, g.R, 1, "red")
	assert.InDelta(t, w.G, g.G, 1, "green")
	assert.InDelta(t, w.B, g.B, 1, "blue")
}

func newCanvas(t *testing.T, background string) *scene.Canvas {
	t.Helper()
	c, err := scene.NewCanvas(10, 24, background)
	require.NoError(t, err)
	return c
}

func fillStyle(t *testing.T, fill string) scene.Style {
	t.Helper()
	s, err := scene.NewStyle("", fill, 0)
	require.NoError(t, err)
	return s
}

func TestEmptyCanvas(t *testing.T) {
	c := newCanvas(t, "#F3F4F6")
	img, err := Render(c, smallPage)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 100, 240), img.Bounds())

	want := color.RGBA{0xf3, 0xf4, 0xf6, 0xff}
	for y := 0; y < 240; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y) != want {
				t.Fatalf("pixel (%d, %d) is %v, expected background", x, y, img.RGBAAt(x, y))
			}
		}
	}
}

func TestYAxisFlip(t *testing.T) {
	c := newCanvas(t, "white")
	// a box in the bottom-left corner of the canvas
	rect, err := scene.NewRoundedRect(0, 0, 2, 2, 0, fillStyle(t, "#0078D4"))
	require.NoError(t, err)
	c.Add(rect)

	img, err := Render(c, smallPage)
	require.NoError(t, err)
	assertColor(t, scene.MustParseColor("#0078D4"), img.At(10, 230))
	assertColor(t, color.White, img.At(10, 10))
	assertColor(t, color.White, img.At(50, 230))
}

func TestPaintOrderOcclusion(t *testing.T) {
	c := newCanvas(t, "white")
	below, err := scene.NewRoundedRect(1, 1, 4, 4, 0.2, fillStyle(t, "#EF4444"))
	require.NoError(t, err)
	above, err := scene.NewCircle(scene.Point{X: 3, Y: 3}, 1, fillStyle(t, "#10B981"))
	require.NoError(t, err)
	c.Add(below)
	c.Add(above)

	img, err := Render(c, smallPage)
	require.NoError(t, err)
	// canvas (3, 3) is pixel (30, 210)
	assertColor(t, scene.MustParseColor("#10B981"), img.At(30, 210))
	// canvas (1.5, 4.5), inside the box but outside the circle
	assertColor(t, scene.MustParseColor("#EF4444"), img.At(15, 195))
}

func TestStrokeAndText(t *testing.T) {
	c := newCanvas(t, "white")
	style, err := scene.NewStyle("#1F2937", "", 4)
	require.NoError(t, err)
	arrow, err := scene.NewArrow(scene.Point{X: 1, Y: 12}, scene.Point{X: 9, Y: 12}, 8, style)
	require.NoError(t, err)
	c.Add(arrow)
	text, err := scene.NewText("Hello", scene.Point{X: 5, Y: 20}, scene.TextStyle{Size: 20, Color: color.Black, Weight: scene.WeightBold})
	require.NoError(t, err)
	c.Add(text)

	img, err := Render(c, smallPage)
	require.NoError(t, err)
	// the shaft runs along pixel row 120
	assertColor(t, scene.MustParseColor("#1F2937"), img.At(50, 120))

	// some ink around the text anchor, pixel (50, 40)
	inked := 0
	for y := 25; y < 55; y++ {
		for x := 20; x < 80; x++ {
			if img.RGBAAt(x, y).R < 0x80 {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 20)
}

func TestRenderDeterministic(t *testing.T) {
	c := newCanvas(t, "white")
	for i := 0; i < 4; i++ {
		x := 0.5 + float64(i)*2.5
		style, err := scene.NewStyle("#0078D4", "#F3F4F6", 2)
		require.NoError(t, err)
		r, err := scene.NewRoundedRect(x, 9, 1.5, 1.2, 0.06, style)
		require.NoError(t, err)
		c.Add(r)
		txt, err := scene.NewText("Step", r.Center(), scene.TextStyle{Size: 8, Color: color.Black})
		require.NoError(t, err)
		c.Add(txt)
	}

	first, err := Render(c, smallPage)
	require.NoError(t, err)
	second, err := Render(c, smallPage)
	require.NoError(t, err)
	assert.Equal(t, first.Pix, second.Pix)

	g := goldie.New(t, goldie.WithFixtureDir(t.TempDir()), goldie.WithNameSuffix(".png"))
	require.NoError(t, g.Update(t, "steps", toPngBytes(t, first)))
	g.Assert(t, "steps", toPngBytes(t, second))
}

func TestSize(t *testing.T) {
	w, h, m, err := DefaultOptions.Size(10, 24)
	require.NoError(t, err)
	assert.Equal(t, 4800, w)
	assert.Equal(t, 6000, h)
	// the canvas is centered horizontally, with a uniform scale of 250
	x, y := m.Transform(0, 24)
	assert.InDelta(t, 1150, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
	x, y = m.Transform(10, 0)
	assert.InDelta(t, 3650, x, 1e-9)
	assert.InDelta(t, 6000, y, 1e-9)

	tight := DefaultOptions
	tight.Tight = true
	w, h, _, err = tight.Size(10, 24)
	require.NoError(t, err)
	assert.Equal(t, 2500, w)
	assert.Equal(t, 6000, h)
}

func TestRenderTargetError(t *testing.T) {
	c := newCanvas(t, "white")
	for _, opts := range []Options{
		{Width: 16, Height: 20, DPI: 0},
		{Width: 0, Height: 20, DPI: 300},
		{Width: 1000, Height: 1000, DPI: 300},
	} {
		_, err := Render(c, opts)
		assert.True(t, scene.IsKind(err, scene.KindRenderTarget), "%+v: got %v", opts, err)
	}
}
