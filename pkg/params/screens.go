package params

import (
	"regexp"
	"strings"
)

// Screen is a phone resolution preset.
type Screen struct {
	Name     string `json:"name" yaml:"name"`
	Width    int    `json:"width" yaml:"width"`
	Height   int    `json:"height" yaml:"height"`
	Category string `json:"category" yaml:"category"`
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug is a command line friendly form of the name, "iphone-16-pro".
func (s Screen) Slug() string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s.Name), "-"), "-")
}

var screens = []Screen{
	{Name: "iPhone 13 mini", Width: 1080, Height: 2340, Category: "Apple"},
	{Name: "iPhone 13 / 14 / 14 Pro", Width: 1170, Height: 2532, Category: "Apple"},
	{Name: "iPhone 13 Pro Max / 14 Plus", Width: 1284, Height: 2778, Category: "Apple"},
	{Name: "iPhone 15 / 15 Pro / 16", Width: 1179, Height: 2556, Category: "Apple"},
	{Name: "iPhone 15 Plus / 15 Pro Max / 16 Plus", Width: 1290, Height: 2796, Category: "Apple"},
	{Name: "iPhone 16 Pro", Width: 1206, Height: 2622, Category: "Apple"},
	{Name: "iPhone 16 Pro Max", Width: 1320, Height: 2868, Category: "Apple"},
	{Name: "Samsung Galaxy S24", Width: 1080, Height: 2340, Category: "Samsung"},
	{Name: "Samsung Galaxy S24+ / Ultra", Width: 1440, Height: 3120, Category: "Samsung"},
	{Name: "Google Pixel 9", Width: 1080, Height: 2424, Category: "Google"},
	{Name: "Google Pixel 9 Pro", Width: 1280, Height: 2856, Category: "Google"},
}

// Screens returns the presets, grouped by maker.
func Screens() []Screen {
	out := make([]Screen, len(screens))
	copy(out, screens)
	return out
}

// DefaultScreen is the preset used when nothing else is chosen.
func DefaultScreen() Screen {
	return screens[3]
}

// FindScreen looks a preset up by name or slug, ignoring case.
func FindScreen(name string) (Screen, bool) {
	name = strings.TrimSpace(name)
	for _, s := range screens {
		if strings.EqualFold(s.Name, name) || s.Slug() == strings.ToLower(name) {
			return s, true
		}
	}
	return Screen{}, false
}
