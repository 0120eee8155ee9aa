package raster

import (
	"image"
	"math"

	"github.com/benoitkugler/infographic/draw"
	"github.com/benoitkugler/infographic/scene"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type faceKey struct {
	weight scene.Weight
	slant  scene.Slant
	size   fixed.Int26_6
}

// fontCache lazily parses the embedded Go fonts,
// and keeps one face per size and variant.
type fontCache struct {
	fonts map[[2]uint8]*opentype.Font
	faces map[faceKey]font.Face
}

func newFontCache() *fontCache {
	return &fontCache{fonts: map[[2]uint8]*opentype.Font{}, faces: map[faceKey]font.Face{}}
}

func ttf(w scene.Weight, s scene.Slant) []byte {
	switch {
	case w == scene.WeightBold && s == scene.SlantItalic:
		return gobolditalic.TTF
	case w == scene.WeightBold:
		return gobold.TTF
	case s == scene.SlantItalic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}

func (fc *fontCache) face(w scene.Weight, s scene.Slant, size float64) (font.Face, error) {
	key := faceKey{w, s, fixed.Int26_6(math.Round(size * 64))}
	if key.size < 1 {
		key.size = 1
	}
	if f, ok := fc.faces[key]; ok {
		return f, nil
	}
	variant := [2]uint8{uint8(w), uint8(s)}
	fnt, ok := fc.fonts[variant]
	if !ok {
		var err error
		fnt, err = opentype.Parse(ttf(w, s))
		if err != nil {
			return nil, err
		}
		fc.fonts[variant] = fnt
	}
	f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(key.size) / 64,
		DPI:     72, // sizes are already in pixels
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	fc.faces[key] = f
	return f, nil
}

// DrawText draws the run, aligned on its anchor.
func (rd *Renderer) DrawText(run draw.TextRun) error {
	face, err := rd.fonts.face(run.Weight, run.Slant, run.Size)
	if err != nil {
		return scene.Wrap(scene.KindRenderTarget, scene.ComponentRenderer, "font", err)
	}
	dot := alignedDot(face, run)
	d := font.Drawer{
		Dst:  rd.img,
		Src:  image.NewUniform(run.Color),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(run.Text)
	return nil
}

// alignedDot returns the baseline origin of the run.
func alignedDot(face font.Face, run draw.TextRun) fixed.Point26_6 {
	x := fixed.Int26_6(math.Round(run.X * 64))
	y := fixed.Int26_6(math.Round(run.Y * 64))

	switch run.HAlign {
	case scene.AlignCenter:
		x -= font.MeasureString(face, run.Text) / 2
	case scene.AlignRight:
		x -= font.MeasureString(face, run.Text)
	}

	m := face.Metrics()
	switch run.VAlign {
	case scene.AlignMiddle:
		y += (m.Ascent - m.Descent) / 2
	case scene.AlignTop:
		y += m.Ascent
	case scene.AlignBottom:
		y -= m.Descent
	}
	return fixed.Point26_6{X: x, Y: y}
}
