// Package export writes rendered images to PNG files.
package export

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/benoitkugler/infographic/scene"
	"github.com/google/uuid"
)

// Options configures the PNG output.
type Options struct {
	// DPI is stored in the pHYs chunk of the file.
	// Zero omits the chunk.
	DPI float64

	// Background is composited under the image,
	// so that the output has no transparency. nil means white.
	Background color.Color
}

// Flatten returns an opaque copy of img, composited over the background.
func Flatten(img image.Image, background color.Color) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(scene.Opaque(background)), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}

// Encode writes img as an opaque PNG to w.
func Encode(w io.Writer, img image.Image, opts Options) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Flatten(img, opts.Background)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	data := buf.Bytes()
	if opts.DPI > 0 {
		data = withPhysicalSize(data, opts.DPI)
	}
	_, err := w.Write(data)
	return err
}

// pngHeaderEnd is the offset following the signature and the IHDR chunk,
// which the encoder always writes first.
const pngHeaderEnd = 8 + 4 + 4 + 13 + 4

// withPhysicalSize inserts a pHYs chunk after the IHDR chunk.
func withPhysicalSize(data []byte, dpi float64) []byte {
	ppm := uint32(math.Round(dpi / 0.0254)) // pixels per meter

	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:], 9)
	copy(chunk[4:], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:], ppm)
	binary.BigEndian.PutUint32(chunk[12:], ppm)
	chunk[16] = 1 // unit is the meter
	binary.BigEndian.PutUint32(chunk[17:], crc32.ChecksumIEEE(chunk[4:17]))

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:pngHeaderEnd]...)
	out = append(out, chunk...)
	return append(out, data[pngHeaderEnd:]...)
}

// WritePNG encodes img to the file at path.
// The data is first written to a temporary file in the same directory,
// which is then renamed: on failure, nothing is left at path.
func WritePNG(img image.Image, path string, opts Options) error {
	if path == "" {
		return scene.Errorf(scene.KindIOWrite, scene.ComponentExporter, path, "output path cannot be empty")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return scene.Errorf(scene.KindIOWrite, scene.ComponentExporter, path, "output path is a directory")
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, opts); err != nil {
		return scene.Wrap(scene.KindIOWrite, scene.ComponentExporter, path, err)
	}

	dir, base := filepath.Split(path)
	tmp := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")
	if err := writeSynced(tmp, buf.Bytes()); err != nil {
		os.Remove(tmp)
		return scene.Wrap(scene.KindIOWrite, scene.ComponentExporter, path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return scene.Wrap(scene.KindIOWrite, scene.ComponentExporter, path, err)
	}
	return nil
}

// writeSynced creates a new file and flushes data to disk.
func writeSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
