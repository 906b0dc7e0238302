// Package theme resolves the wallpaper palette from a base theme name and
// optional hex color overrides.
package theme

import (
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/dotcal/pkg/grid"
)

// Name selects a built-in palette.
type Name string

const (
	Dark  Name = "dark"
	Light Name = "light"
)

// Names lists the built-in palettes.
func Names() []Name { return []Name{Dark, Light} }

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Color is a 24-bit RGB color. It implements image/color.Color.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color; Color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex renders c as "#RRGGBB".
func (c Color) Hex() string {
	return strings.ToUpper(c.colorful().Hex())
}

func (c Color) String() string { return c.Hex() }

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// IsDark reports whether c reads as a dark background: the channel sum is
// below half of 765.
func (c Color) IsDark() bool {
	return int(c.R)+int(c.G)+int(c.B) < 384
}

// ParseHex parses a strict "#RRGGBB" color.
func ParseHex(s string) (Color, bool) {
	if !hexColor.MatchString(s) {
		return Color{}, false
	}
	cf, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return Color{}, false
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b}, true
}

func mustHex(s string) Color {
	c, ok := ParseHex(s)
	if !ok {
		panic("theme: bad palette color " + s)
	}
	return c
}

// Theme is a resolved palette.
type Theme struct {
	Name       Name  `json:"name" yaml:"name"`
	Background Color `json:"background" yaml:"background"`
	Past       Color `json:"past" yaml:"past"`
	Current    Color `json:"current" yaml:"current"`
	Future     Color `json:"future" yaml:"future"`
	Text       Color `json:"text" yaml:"text"`
	Highlight  Color `json:"highlight" yaml:"highlight"`
}

// Dot returns the color for a dot in state s.
func (t Theme) Dot(s grid.DotState) Color {
	switch s {
	case grid.Past:
		return t.Past
	case grid.Current:
		return t.Current
	default:
		return t.Future
	}
}

var (
	futureOnDark  = mustHex("#606060")
	futureOnLight = mustHex("#D1D5DB")
)

// Base returns the built-in palette for name. Anything but "light" is dark.
func Base(name Name) Theme {
	if Name(strings.ToLower(string(name))) == Light {
		return Theme{
			Name:       Light,
			Background: mustHex("#F5F5F7"),
			Past:       mustHex("#1A1A1A"),
			Current:    mustHex("#F97316"),
			Future:     futureOnLight,
			Text:       mustHex("#6B7280"),
			Highlight:  mustHex("#F97316"),
		}
	}
	return Theme{
		Name:       Dark,
		Background: mustHex("#1A1A1A"),
		Past:       mustHex("#FFFFFF"),
		Current:    mustHex("#F56B3F"),
		Future:     mustHex("#404040"),
		Text:       mustHex("#888888"),
		Highlight:  mustHex("#F56B3F"),
	}
}

// Resolve applies overrides on top of the base palette. Overrides that are not
// valid "#RRGGBB" strings are ignored. A background override without a dot
// override picks a future-dot color that contrasts with the new background.
func Resolve(name Name, accent, background, dot string) Theme {
	t := Base(name)

	if c, ok := ParseHex(accent); ok {
		t.Current = c
		t.Highlight = c
	}
	dotColor, dotOK := ParseHex(dot)
	if c, ok := ParseHex(background); ok {
		t.Background = c
		if !dotOK {
			if c.IsDark() {
				t.Future = futureOnDark
			} else {
				t.Future = futureOnLight
			}
		}
	}
	if dotOK {
		t.Future = dotColor
	}
	return t
}
