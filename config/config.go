// Package config loads the settings of an infographic run
// from a YAML file, validated against an embedded CUE schema.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
	"golang.org/x/net/html/charset"
	"gopkg.in/yaml.v3"

	"github.com/benoitkugler/infographic/export"
	"github.com/benoitkugler/infographic/layout"
	"github.com/benoitkugler/infographic/raster"
	"github.com/benoitkugler/infographic/scene"
)

//go:embed schema.cue
var schemaSource string

// DefaultOutput is the name of the image written when
// no output is configured.
const DefaultOutput = "copilot_reporting_infographic.png"

// Page is the physical size of the output, in inches.
type Page struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Config gathers the settings of one run.
type Config struct {
	Output  string         `yaml:"output"`
	DPI     float64        `yaml:"dpi"`
	Page    Page           `yaml:"page"`
	Tight   bool           `yaml:"tight"`
	Content layout.Content `yaml:"content"`
}

// Default returns the configuration producing the reference infographic.
func Default() Config {
	return Config{
		Output:  DefaultOutput,
		DPI:     raster.DefaultOptions.DPI,
		Page:    Page{Width: raster.DefaultOptions.Width, Height: raster.DefaultOptions.Height},
		Content: layout.DefaultContent(),
	}
}

// RasterOptions returns the settings of the renderer.
func (c Config) RasterOptions() raster.Options {
	return raster.Options{Width: c.Page.Width, Height: c.Page.Height, DPI: c.DPI, Tight: c.Tight}
}

// ExportOptions returns the settings of the exporter, flattening
// on the canvas background.
func (c Config) ExportOptions() export.Options {
	bg, _ := scene.ParseColor(c.Content.Canvas.Background) // invalid colors are reported by the layout
	return export.Options{DPI: c.DPI, Background: bg}
}

func configError(subject string, err error) error {
	return scene.Wrap(scene.KindInvalidConfig, scene.ComponentConfig, subject, err)
}

// Load reads the YAML file at path. Fields absent from the file
// keep their default value and unknown fields are rejected.
// The file is UTF-8, UTF-16 with a byte order mark, or Windows-1252.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, configError(path, err)
	}
	defer f.Close()
	return Parse(path, f)
}

// Parse is like Load, reading from r. name is used in error messages.
func Parse(name string, r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, configError(name, err)
	}
	if data, err = toUTF8(data); err != nil {
		return Config{}, configError(name, err)
	}
	data = bytes.TrimPrefix(data, []byte("\uFEFF"))
	if len(bytes.TrimSpace(data)) == 0 {
		return Default(), nil
	}

	cfg := Default()
	if err = Validate(name, data); err != nil {
		return Config{}, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err = decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, configError(name, err)
	}
	return cfg, nil
}

// toUTF8 decodes the whole document to UTF-8. Without byte order mark,
// valid UTF-8 is kept as is and anything else is read as Windows-1252.
func toUTF8(data []byte) ([]byte, error) {
	enc, _, fromBOM := charset.DetermineEncoding(data, "text/plain")
	if !fromBOM {
		if utf8.Valid(data) {
			return data, nil
		}
		enc, _ = charset.Lookup("windows-1252")
	}
	return enc.NewDecoder().Bytes(data)
}

// Validate checks the YAML document data against the configuration schema.
func Validate(name string, data []byte) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return configError("schema.cue", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	file, err := cueyaml.Extract(name, data)
	if err != nil {
		return configError(name, err)
	}
	doc := ctx.BuildFile(file)
	if err = doc.Err(); err != nil {
		return configError(name, err)
	}
	if err = def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return configError(name, err)
	}
	return nil
}
