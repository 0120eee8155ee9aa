package scene

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(t *testing.T) Style {
	t.Helper()
	s, err := NewStyle("#0078D4", "white", 2)
	require.NoError(t, err)
	return s
}

func TestNewCanvas(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		background    string
		kind          Kind
	}{
		{"valid", 10, 24, "white", ""},
		{"zero width", 0, 24, "white", KindInvalidDimensions},
		{"negative height", 10, -1, "white", KindInvalidDimensions},
		{"NaN width", math.NaN(), 24, "white", KindInvalidDimensions},
		{"NaN height", 10, math.NaN(), "white", KindInvalidDimensions},
		{"unknown color", 10, 24, "not-a-color", KindInvalidStyle},
		{"transparent background", 10, 24, "none", KindInvalidStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCanvas(tt.width, tt.height, tt.background)
			if tt.kind == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.width, c.Width())
				assert.Equal(t, tt.height, c.Height())
				assert.Equal(t, 0, c.Len())
				return
			}
			require.Error(t, err)
			assert.True(t, IsKind(err, tt.kind), "got %v", err)
		})
	}
}

func TestPrimitivesPaintOrder(t *testing.T) {
	for _, n := range []int{0, 1, 7, 50} {
		c, err := NewCanvas(10, 10, "white")
		require.NoError(t, err)

		var added []Primitive
		for i := 0; i < n; i++ {
			circle, err := NewCircle(Point{float64(i % 10), 1}, 0.5, solid(t))
			require.NoError(t, err)
			c.Add(circle)
			added = append(added, circle)
		}
		c.Add(nil)

		// the sequence can be consumed twice with the same result
		for pass := 0; pass < 2; pass++ {
			var got []Primitive
			for p := range c.Primitives() {
				got = append(got, p)
			}
			require.Len(t, got, n)
			for i := range got {
				assert.Same(t, added[i], got[i])
			}
		}
	}
}

func TestPrimitivesEarlyStop(t *testing.T) {
	c, err := NewCanvas(10, 10, "white")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		circle, err := NewCircle(Point{1, 1}, 1, solid(t))
		require.NoError(t, err)
		c.Add(circle)
	}
	count := 0
	for range c.Primitives() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestInvalidGeometry(t *testing.T) {
	style := solid(t)

	_, err := NewRoundedRect(0, 0, 0, 1, 0.1, style)
	assert.True(t, IsKind(err, KindInvalidGeometry))

	_, err = NewRoundedRect(0, 0, 1, -2, 0.1, style)
	assert.True(t, IsKind(err, KindInvalidGeometry))

	_, err = NewRoundedRect(0, 0, 1, 1, -0.1, style)
	assert.True(t, IsKind(err, KindInvalidGeometry))

	_, err = NewCircle(Point{1, 1}, 0, style)
	assert.True(t, IsKind(err, KindInvalidGeometry))

	_, err = NewArrow(Point{1, 1}, Point{1, 1}, 10, style)
	assert.True(t, IsKind(err, KindInvalidGeometry))

	_, err = NewText("label", Point{1, 1}, TextStyle{Size: 0, Color: color.Black})
	assert.True(t, IsKind(err, KindInvalidGeometry))
}

func TestNaNGeometry(t *testing.T) {
	style := solid(t)
	nan := math.NaN()

	_, err := NewRoundedRect(0, 0, nan, 1, 0.1, style)
	assert.True(t, IsKind(err, KindInvalidGeometry), "got %v", err)

	_, err = NewRoundedRect(0, 0, 1, nan, 0.1, style)
	assert.True(t, IsKind(err, KindInvalidGeometry), "got %v", err)

	_, err = NewRoundedRect(0, 0, 1, 1, nan, style)
	assert.True(t, IsKind(err, KindInvalidGeometry), "got %v", err)

	_, err = NewCircle(Point{1, 1}, nan, style)
	assert.True(t, IsKind(err, KindInvalidGeometry), "got %v", err)

	_, err = NewArrow(Point{1, 1}, Point{2, 1}, nan, style)
	assert.True(t, IsKind(err, KindInvalidGeometry), "got %v", err)

	_, err = NewText("label", Point{1, 1}, TextStyle{Size: nan, Color: color.Black})
	assert.True(t, IsKind(err, KindInvalidGeometry), "got %v", err)

	_, err = NewStyle("black", "", nan)
	assert.True(t, IsKind(err, KindInvalidStyle), "got %v", err)

	_, err = style.Dashed(2, nan)
	assert.True(t, IsKind(err, KindInvalidStyle), "got %v", err)
}

func TestRoundedRectRadiusClamped(t *testing.T) {
	r, err := NewRoundedRect(1, 2, 4, 1, 3, solid(t))
	require.NoError(t, err)
	assert.Equal(t, 0.5, r.Radius)
	assert.Equal(t, Point{3, 2.5}, r.Center())
	assert.Equal(t, Point{1, 2}, r.Anchor())
}

func TestInvalidStyle(t *testing.T) {
	_, err := NewStyle("#12", "white", 1)
	assert.True(t, IsKind(err, KindInvalidStyle))

	_, err = NewStyle("red", "bluish", 1)
	assert.True(t, IsKind(err, KindInvalidStyle))

	_, err = NewStyle("red", "white", -1)
	assert.True(t, IsKind(err, KindInvalidStyle))

	_, err = solid(t).Dashed(3, 0)
	assert.True(t, IsKind(err, KindInvalidStyle))

	unpainted, err := NewStyle("none", "none", 1)
	require.NoError(t, err)
	_, err = NewCircle(Point{1, 1}, 1, unpainted)
	assert.True(t, IsKind(err, KindInvalidStyle))

	fillOnly, err := NewStyle("", "#F3F4F6", 0)
	require.NoError(t, err)
	_, err = NewArrow(Point{0, 0}, Point{1, 0}, 5, fillOnly)
	assert.True(t, IsKind(err, KindInvalidStyle))

	_, err = NewText("label", Point{1, 1}, TextStyle{Size: 10})
	assert.True(t, IsKind(err, KindInvalidStyle))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		spec string
		want color.Color
	}{
		{"#0078D4", color.NRGBA{0x00, 0x78, 0xd4, 0xff}},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#10B98180", color.NRGBA{0x10, 0xb9, 0x81, 0x80}},
		{"White", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"none", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseColor(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"#12345", "#zzzzzz", "blurple"} {
		_, err := ParseColor(bad)
		assert.True(t, IsKind(err, KindInvalidStyle), bad)
	}
}

func TestOpaque(t *testing.T) {
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, Opaque(nil))
	assert.Equal(t, color.RGBA{0x10, 0xb9, 0x81, 0xff}, Opaque(MustParseColor("#10B981")))
	// half transparent black over white
	assert.Equal(t, color.RGBA{0x7f, 0x7f, 0x7f, 0xff}, Opaque(color.NRGBA{0, 0, 0, 0x80}))
}

func TestTextContentNormalized(t *testing.T) {
	// "e" followed by a combining acute accent
	txt, err := NewText("Résumé", Point{1, 1}, TextStyle{Size: 9, Color: color.Black})
	require.NoError(t, err)
	assert.Equal(t, "Résumé", txt.Content())
}

func TestErrorMessage(t *testing.T) {
	err := Errorf(KindMissingContent, ComponentLayout, "stats", "stat %d has no label", 2)
	assert.Equal(t, "MissingContent: layout (stats): stat 2 has no label", err.Error())
}
