// Package layout positions the dots and labels of a calendar grid on an image
// of a given size. The output Scene is a flat list of primitives with no
// reference to any renderer.
package layout

import (
	"strings"

	"tableflip.dev/dotcal/pkg/theme"
)

// Anchor says which point of a text line X refers to.
type Anchor string

const (
	AnchorLeft   Anchor = "left"
	AnchorCenter Anchor = "center"
)

// Dot is a filled circle centered on X, Y.
type Dot struct {
	X        float64     `json:"x" yaml:"x"`
	Y        float64     `json:"y" yaml:"y"`
	Diameter float64     `json:"d" yaml:"d"`
	Color    theme.Color `json:"color" yaml:"color"`
}

// Run is a span of text in one color.
type Run struct {
	Text  string      `json:"text" yaml:"text"`
	Color theme.Color `json:"color" yaml:"color"`
}

// Text is a single line. Y is the top of a line box Size pixels tall; X is
// the left edge or the center depending on Anchor. MaxWidth, when set, is the
// widest the line may be drawn.
type Text struct {
	Runs     []Run   `json:"runs" yaml:"runs"`
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Size     float64 `json:"size" yaml:"size"`
	Anchor   Anchor  `json:"anchor" yaml:"anchor"`
	MaxWidth float64 `json:"maxWidth,omitempty" yaml:"maxWidth,omitempty"`
}

// Content joins the runs.
func (t Text) Content() string {
	var b strings.Builder
	for _, r := range t.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Metrics records the derived geometry of a scene.
type Metrics struct {
	PaddingTop float64 `json:"paddingTop" yaml:"paddingTop"`
	DotSize    float64 `json:"dotSize" yaml:"dotSize"`
	Gap        float64 `json:"gap" yaml:"gap"`
	RowGap     float64 `json:"rowGap" yaml:"rowGap"`
	BlockGap   float64 `json:"blockGap,omitempty" yaml:"blockGap,omitempty"`
	Columns    int     `json:"columns" yaml:"columns"`
}

// Scene is everything a renderer needs to paint one wallpaper.
type Scene struct {
	Width      int         `json:"width" yaml:"width"`
	Height     int         `json:"height" yaml:"height"`
	Background theme.Color `json:"background" yaml:"background"`
	Dots       []Dot       `json:"dots" yaml:"dots"`
	Texts      []Text      `json:"texts" yaml:"texts"`
	Metrics    Metrics     `json:"metrics" yaml:"metrics"`
}

// Label returns the content of the last text line, the status label.
func (s Scene) Label() string {
	if len(s.Texts) == 0 {
		return ""
	}
	return s.Texts[len(s.Texts)-1].Content()
}
