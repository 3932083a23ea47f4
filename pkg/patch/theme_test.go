package patch

import (
	"image/color"
	"strings"
	"testing"

	"github.com/go-drift/patchbay/pkg/source"
)

const testTheme = `
name: Ocean
box:
  background: "#102030"
  text: white
ports:
  audio:
    fill: steelblue
    text: "#ffffff"
  midi:
    fill: IndianRed
    text: white
lines:
  audio: steelblue
  midi: "#c04040"
`

func themeSource(body string) source.InputSource {
	return &source.BytesSource{Data: []byte(body)}
}

func TestLoadTheme(t *testing.T) {
	theme, err := LoadTheme(themeSource(testTheme))
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}

	if theme.Name != "Ocean" {
		t.Errorf("unexpected name %q", theme.Name)
	}
	if theme.BoxBackground != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}) {
		t.Errorf("unexpected box background %v", theme.BoxBackground)
	}

	audio, ok := theme.Ports[PortTypeAudioJack]
	if !ok {
		t.Fatal("audio port style missing")
	}
	if audio.Fill != (color.RGBA{R: 0x46, G: 0x82, B: 0xB4, A: 0xFF}) {
		t.Errorf("steelblue did not resolve, got %v", audio.Fill)
	}
	if audio.Text != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Errorf("unexpected audio text %v", audio.Text)
	}

	if line, ok := theme.Lines[PortTypeMidiJack]; !ok || line.R != 0xC0 {
		t.Errorf("unexpected midi line %v", line)
	}
}

func TestLoadTheme_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "bad yaml",
			body: "name: [unclosed",
			want: "failed to parse",
		},
		{
			name: "unknown color",
			body: "name: t\nbox:\n  background: nosuchcolor\n  text: white\n",
			want: "unknown color",
		},
		{
			name: "bad hex",
			body: "name: t\nbox:\n  background: \"#12\"\n  text: white\n",
			want: "invalid hex",
		},
		{
			name: "unknown port type",
			body: "name: t\nbox:\n  background: white\n  text: black\nports:\n  organ:\n    fill: white\n    text: white\n",
			want: "unknown port type",
		},
		{
			name: "invalid requires",
			body: "name: t\nrequires: banana\nbox:\n  background: white\n  text: black\n",
			want: "invalid requires",
		},
		{
			name: "requires too new",
			body: "name: t\nrequires: v99.0.0\nbox:\n  background: white\n  text: black\n",
			want: "or newer",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTheme(themeSource(tt.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadTheme_RequiresSatisfied(t *testing.T) {
	body := "name: t\nrequires: v0.1.0\nbox:\n  background: white\n  text: black\n"
	if _, err := LoadTheme(themeSource(body)); err != nil {
		t.Fatalf("old requires should be satisfied: %v", err)
	}
}

func TestLoadTheme_OpenFailure(t *testing.T) {
	if _, err := LoadTheme(&source.FileSource{Path: "/nonexistent/theme.yaml"}); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	if theme.Name == "" {
		t.Error("default theme should be named")
	}
	for _, portType := range []PortType{PortTypeAudioJack, PortTypeMidiJack,
		PortTypeMidiAlsa, PortTypeParameter} {
		if _, ok := theme.Ports[portType]; !ok {
			t.Errorf("no port style for %s", portType)
		}
		if _, ok := theme.Lines[portType]; !ok {
			t.Errorf("no line color for %s", portType)
		}
	}
}

func TestParseColor(t *testing.T) {
	if _, err := parseColor(""); err == nil {
		t.Error("empty color should fail")
	}
	if c, err := parseColor(" SteelBlue "); err != nil || c.B != 0xB4 {
		t.Errorf("named colors are case and space insensitive, got %v, %v", c, err)
	}
	if c, err := parseColor("#010203"); err != nil || c != (color.RGBA{1, 2, 3, 0xFF}) {
		t.Errorf("unexpected hex result %v, %v", c, err)
	}
	if _, err := parseColor("#01020z"); err == nil {
		t.Error("non-hex digits should fail")
	}
}
