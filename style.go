package aureon

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Style holds the presentation defaults shared by surfaces and draw helpers.
// Values are resolved once at construction time; nothing reads them through
// globals.
type Style struct {
	// Colors
	BackgroundColor uint32 // Surface background
	HighlightColor  uint32 // Selection highlight
	ActiveColor     uint32 // Unselected but active elements
	FontColor       uint32 // Inert selections and default text
	StrokeColor     uint32 // Text and box outlines

	// Metrics
	StrokeWidth    float32 // Outline thickness for stroked text
	HighlightWidth float32 // Gap between text and its highlight box
	ToolbarWidth   float32 // Designed width of the side toolbar
	GraphicsGap    float32 // Set distance between related graphics
	WindowRounding float32 // Corner radius for surface backgrounds

	// Reference resolution that designed geometry is authored against.
	ReferenceSize Vec2
}

// DefaultStyle returns the stock Aureon theme.
func DefaultStyle() Style {
	return Style{
		BackgroundColor: RGBA(40, 40, 40, 255),
		HighlightColor:  RGBA(139, 198, 63, 255),
		ActiveColor:     RGBA(9, 174, 214, 255),
		FontColor:       RGBA(144, 146, 148, 255),
		StrokeColor:     ColorBlack,

		StrokeWidth:    2,
		HighlightWidth: 8,
		ToolbarWidth:   247,
		GraphicsGap:    32,
		WindowRounding: 48,

		ReferenceSize: Vec2{X: 3840, Y: 2160},
	}
}

// styleFile is the on-disk TOML shape of a theme. Colors are [r, g, b, a]
// arrays of 0-255 components. Absent keys keep their defaults.
type styleFile struct {
	Background [4]uint8 `toml:"background"`
	Highlight  [4]uint8 `toml:"highlight"`
	Active     [4]uint8 `toml:"active"`
	Font       [4]uint8 `toml:"font"`
	Stroke     [4]uint8 `toml:"stroke"`

	StrokeWidth    float32 `toml:"stroke_width"`
	HighlightWidth float32 `toml:"highlight_width"`
	ToolbarWidth   float32 `toml:"toolbar_width"`
	GraphicsGap    float32 `toml:"graphics_gap"`
	WindowRounding float32 `toml:"window_rounding"`

	ReferenceWidth  float32 `toml:"reference_width"`
	ReferenceHeight float32 `toml:"reference_height"`
}

// LoadStyle reads a theme file and overlays it on the default style.
func LoadStyle(path string) (Style, error) {
	var f styleFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return Style{}, fmt.Errorf("load style %s: %w", path, err)
	}
	return overlayStyle(f, md), nil
}

// StyleFromTOML parses a theme from TOML source and overlays it on the
// default style.
func StyleFromTOML(data string) (Style, error) {
	var f styleFile
	md, err := toml.Decode(data, &f)
	if err != nil {
		return Style{}, fmt.Errorf("parse style: %w", err)
	}
	return overlayStyle(f, md), nil
}

func overlayStyle(f styleFile, md toml.MetaData) Style {
	s := DefaultStyle()

	setColor := func(key string, dst *uint32, c [4]uint8) {
		if md.IsDefined(key) {
			*dst = RGBA(c[0], c[1], c[2], c[3])
		}
	}
	setFloat := func(key string, dst *float32, v float32) {
		if md.IsDefined(key) {
			*dst = v
		}
	}

	setColor("background", &s.BackgroundColor, f.Background)
	setColor("highlight", &s.HighlightColor, f.Highlight)
	setColor("active", &s.ActiveColor, f.Active)
	setColor("font", &s.FontColor, f.Font)
	setColor("stroke", &s.StrokeColor, f.Stroke)

	setFloat("stroke_width", &s.StrokeWidth, f.StrokeWidth)
	setFloat("highlight_width", &s.HighlightWidth, f.HighlightWidth)
	setFloat("toolbar_width", &s.ToolbarWidth, f.ToolbarWidth)
	setFloat("graphics_gap", &s.GraphicsGap, f.GraphicsGap)
	setFloat("window_rounding", &s.WindowRounding, f.WindowRounding)

	setFloat("reference_width", &s.ReferenceSize.X, f.ReferenceWidth)
	setFloat("reference_height", &s.ReferenceSize.Y, f.ReferenceHeight)

	return s
}
