// Package layout loads declarative overlay layouts from TOML or YAML and
// registers them on a retained.UI.
//
// Coordinates are absolute for containers and container-relative for
// widgets, exactly as the retained API takes them. Colors are hex strings
// (#RGB, #RRGGBB, #RRGGBBAA). Behavior is attached by action name; see Actions.
package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a layout file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// Document is a complete layout.
type Document struct {
	Containers   []ContainerSpec   `toml:"containers" yaml:"containers"`
	Buttons      []ButtonSpec      `toml:"buttons" yaml:"buttons"`
	Sliders      []SliderSpec      `toml:"sliders" yaml:"sliders"`
	Checkboxes   []CheckboxSpec    `toml:"checkboxes" yaml:"checkboxes"`
	ColorPickers []ColorPickerSpec `toml:"color_pickers" yaml:"color_pickers"`
	InputBoxes   []InputBoxSpec    `toml:"input_boxes" yaml:"input_boxes"`
	Hotkeys      []HotkeySpec      `toml:"hotkeys" yaml:"hotkeys"`
	Elements     []ElementSpec     `toml:"elements" yaml:"elements"`
}

// RectSpec describes a rectangle. Color may be empty (transparent).
type RectSpec struct {
	X        float32 `toml:"x" yaml:"x"`
	Y        float32 `toml:"y" yaml:"y"`
	W        float32 `toml:"w" yaml:"w"`
	H        float32 `toml:"h" yaml:"h"`
	Rounding float32 `toml:"rounding,omitempty" yaml:"rounding,omitempty"`
	Color    string  `toml:"color,omitempty" yaml:"color,omitempty"`
}

type ContainerSpec struct {
	Name      string   `toml:"name" yaml:"name"`
	Bounds    RectSpec `toml:"bounds" yaml:"bounds"`
	Style     string   `toml:"style,omitempty" yaml:"style,omitempty"`
	PaddingX  float32  `toml:"padding_x,omitempty" yaml:"padding_x,omitempty"`
	PaddingY  float32  `toml:"padding_y,omitempty" yaml:"padding_y,omitempty"`
	MaxWidth  float32  `toml:"max_width,omitempty" yaml:"max_width,omitempty"`
	MaxHeight float32  `toml:"max_height,omitempty" yaml:"max_height,omitempty"`
	Visible   bool     `toml:"visible,omitempty" yaml:"visible,omitempty"`
}

type ButtonSpec struct {
	Container  string   `toml:"container" yaml:"container"`
	Name       string   `toml:"name" yaml:"name"`
	Bounds     RectSpec `toml:"bounds" yaml:"bounds"`
	Style      string   `toml:"style,omitempty" yaml:"style,omitempty"`
	OnClick    string   `toml:"on_click,omitempty" yaml:"on_click,omitempty"`
	HoverColor string   `toml:"hover_color,omitempty" yaml:"hover_color,omitempty"` // Hover repaints, idle restores
}

type SliderSpec struct {
	Container  string   `toml:"container" yaml:"container"`
	Name       string   `toml:"name" yaml:"name"`
	Track      RectSpec `toml:"track" yaml:"track"`
	Thumb      RectSpec `toml:"thumb" yaml:"thumb"`
	Min        float32  `toml:"min" yaml:"min"`
	Max        float32  `toml:"max" yaml:"max"`
	Value      float32  `toml:"value,omitempty" yaml:"value,omitempty"`
	Style      string   `toml:"style,omitempty" yaml:"style,omitempty"`
	ThumbStyle string   `toml:"thumb_style,omitempty" yaml:"thumb_style,omitempty"`
	OnChange   string   `toml:"on_change,omitempty" yaml:"on_change,omitempty"`
}

type CheckboxSpec struct {
	Container  string   `toml:"container" yaml:"container"`
	Name       string   `toml:"name" yaml:"name"`
	Bounds     RectSpec `toml:"bounds" yaml:"bounds"`
	Checked    bool     `toml:"checked,omitempty" yaml:"checked,omitempty"`
	CheckColor string   `toml:"check_color,omitempty" yaml:"check_color,omitempty"`
	OnChange   string   `toml:"on_change,omitempty" yaml:"on_change,omitempty"`
}

type ColorPickerSpec struct {
	Container string   `toml:"container" yaml:"container"`
	Name      string   `toml:"name" yaml:"name"`
	Bounds    RectSpec `toml:"bounds" yaml:"bounds"`
	Initial   string   `toml:"initial,omitempty" yaml:"initial,omitempty"`
	OnChange  string   `toml:"on_change,omitempty" yaml:"on_change,omitempty"`
}

type InputBoxSpec struct {
	Container string   `toml:"container" yaml:"container"`
	Name      string   `toml:"name" yaml:"name"`
	Bounds    RectSpec `toml:"bounds" yaml:"bounds"`
	Text      string   `toml:"text,omitempty" yaml:"text,omitempty"`
	OnChange  string   `toml:"on_change,omitempty" yaml:"on_change,omitempty"`
}

type HotkeySpec struct {
	Container   string `toml:"container,omitempty" yaml:"container,omitempty"`
	Key         string `toml:"key" yaml:"key"`
	Action      string `toml:"action" yaml:"action"`
	RateLimitMs int    `toml:"rate_limit_ms,omitempty" yaml:"rate_limit_ms,omitempty"`
}

// ElementSpec is a raw, priority-ordered batch of shapes.
type ElementSpec struct {
	Name     string      `toml:"name" yaml:"name"`
	Priority int         `toml:"priority" yaml:"priority"`
	Shapes   []ShapeSpec `toml:"shapes" yaml:"shapes"`
}

// ShapeSpec sets exactly one of its fields.
type ShapeSpec struct {
	Rect     *RectSpec     `toml:"rect,omitempty" yaml:"rect,omitempty"`
	Circle   *CircleSpec   `toml:"circle,omitempty" yaml:"circle,omitempty"`
	Triangle *TriangleSpec `toml:"triangle,omitempty" yaml:"triangle,omitempty"`
}

type CircleSpec struct {
	X        float32 `toml:"x" yaml:"x"`
	Y        float32 `toml:"y" yaml:"y"`
	Radius   float32 `toml:"radius" yaml:"radius"`
	Segments int     `toml:"segments,omitempty" yaml:"segments,omitempty"`
	Color    string  `toml:"color" yaml:"color"`
}

type TriangleSpec struct {
	Points [6]float32 `toml:"points" yaml:"points"` // x1 y1 x2 y2 x3 y3
	Color  string     `toml:"color" yaml:"color"`
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unsupported layout file %q (want .toml, .yaml or .yml)", path)
}

// Load reads and parses a layout file.
func Load(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a layout document.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown layout format %d", format)
	}
	return &doc, nil
}

// Marshal encodes a layout document.
func Marshal(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(doc)
	case FormatYAML:
		return yaml.Marshal(doc)
	}
	return nil, fmt.Errorf("unknown layout format %d", format)
}
