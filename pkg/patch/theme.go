package patch

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/patchbay/pkg/source"
)

// Version is the library release, checked against a theme file's
// "requires" field.
const Version = "v0.4.0"

// PortStyle is the pair of colors a host uses to draw a port.
type PortStyle struct {
	Fill color.RGBA
	Text color.RGBA
}

// Theme carries the canvas colors for a host to draw with. It has no
// drawing logic of its own.
type Theme struct {
	Name          string
	BoxBackground color.RGBA
	BoxText       color.RGBA
	Ports         map[PortType]PortStyle
	Lines         map[PortType]color.RGBA
}

// themeFile is the on-disk YAML shape.
type themeFile struct {
	Name     string `yaml:"name"`
	Requires string `yaml:"requires,omitempty"`
	Box      struct {
		Background string `yaml:"background"`
		Text       string `yaml:"text"`
	} `yaml:"box"`
	Ports map[string]struct {
		Fill string `yaml:"fill"`
		Text string `yaml:"text"`
	} `yaml:"ports"`
	Lines map[string]string `yaml:"lines"`
}

// portTypeKeys maps theme file keys to port types.
var portTypeKeys = map[string]PortType{
	"audio":     PortTypeAudioJack,
	"midi":      PortTypeMidiJack,
	"alsa":      PortTypeMidiAlsa,
	"parameter": PortTypeParameter,
}

// LoadTheme reads a theme from the given source. Colors are named per
// the SVG 1.1 palette ("steelblue") or given as "#rrggbb" hex. A theme
// may declare the minimum library release it needs via "requires".
func LoadTheme(src source.InputSource) (*Theme, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open theme: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}

	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	if file.Requires != "" {
		if !semver.IsValid(file.Requires) {
			return nil, fmt.Errorf("theme %q: invalid requires %q", file.Name, file.Requires)
		}
		if semver.Compare(Version, file.Requires) < 0 {
			return nil, fmt.Errorf("theme %q requires patchbay %s or newer (have %s)",
				file.Name, file.Requires, Version)
		}
	}

	theme := &Theme{
		Name:  file.Name,
		Ports: make(map[PortType]PortStyle),
		Lines: make(map[PortType]color.RGBA),
	}
	if theme.BoxBackground, err = parseColor(file.Box.Background); err != nil {
		return nil, fmt.Errorf("theme %q: box background: %w", file.Name, err)
	}
	if theme.BoxText, err = parseColor(file.Box.Text); err != nil {
		return nil, fmt.Errorf("theme %q: box text: %w", file.Name, err)
	}
	for key, style := range file.Ports {
		portType, ok := portTypeKeys[key]
		if !ok {
			return nil, fmt.Errorf("theme %q: unknown port type %q", file.Name, key)
		}
		fill, err := parseColor(style.Fill)
		if err != nil {
			return nil, fmt.Errorf("theme %q: port %s fill: %w", file.Name, key, err)
		}
		text, err := parseColor(style.Text)
		if err != nil {
			return nil, fmt.Errorf("theme %q: port %s text: %w", file.Name, key, err)
		}
		theme.Ports[portType] = PortStyle{Fill: fill, Text: text}
	}
	for key, name := range file.Lines {
		portType, ok := portTypeKeys[key]
		if !ok {
			return nil, fmt.Errorf("theme %q: unknown port type %q", file.Name, key)
		}
		line, err := parseColor(name)
		if err != nil {
			return nil, fmt.Errorf("theme %q: line %s: %w", file.Name, key, err)
		}
		theme.Lines[portType] = line
	}
	return theme, nil
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		Name:          "Default Dark",
		BoxBackground: color.RGBA{R: 0x23, G: 0x23, B: 0x23, A: 0xFF},
		BoxText:       colornames.White,
		Ports: map[PortType]PortStyle{
			PortTypeAudioJack: {Fill: colornames.Steelblue, Text: colornames.White},
			PortTypeMidiJack:  {Fill: colornames.Indianred, Text: colornames.White},
			PortTypeMidiAlsa:  {Fill: colornames.Seagreen, Text: colornames.White},
			PortTypeParameter: {Fill: colornames.Goldenrod, Text: colornames.Black},
		},
		Lines: map[PortType]color.RGBA{
			PortTypeAudioJack: colornames.Steelblue,
			PortTypeMidiJack:  colornames.Indianred,
			PortTypeMidiAlsa:  colornames.Seagreen,
			PortTypeParameter: colornames.Goldenrod,
		},
	}
}

// parseColor resolves an SVG 1.1 color name or a "#rrggbb" hex
// triplet.
func parseColor(name string) (color.RGBA, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return color.RGBA{}, fmt.Errorf("missing color")
	}
	if strings.HasPrefix(name, "#") {
		hex := name[1:]
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", name)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", name)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color name %q", name)
	}
	return c, nil
}
