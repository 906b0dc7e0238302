// Package wallpaper runs the whole pipeline for one request: grid, stats,
// palette and scene.
package wallpaper

import (
	"io"
	"time"

	"tableflip.dev/dotcal/pkg/date"
	"tableflip.dev/dotcal/pkg/grid"
	"tableflip.dev/dotcal/pkg/layout"
	"tableflip.dev/dotcal/pkg/params"
	"tableflip.dev/dotcal/pkg/render"
	"tableflip.dev/dotcal/pkg/theme"
)

// Clock returns the current time. Runners take one so tests can pin "today".
type Clock func() time.Time

// Wallpaper is a composed request, ready to be rendered or described.
type Wallpaper struct {
	Request params.Request
	Today   date.Date
	Grid    grid.Grid
	Stats   grid.Stats
	Theme   theme.Theme
	Scene   layout.Scene
}

// Compose builds the wallpaper for r as of now.
func Compose(r params.Request, now time.Time) Wallpaper {
	today := r.Today(now)
	g, s := grid.Build(r.GridParams(), today)
	th := r.ResolveTheme()

	opts := layout.Options{
		Width:  r.Width,
		Height: r.Height,
		Theme:  th,
		Scale:  r.Scale,
	}
	switch r.View {
	case grid.Goal:
		opts.Title = r.GoalTitle
	case grid.Life:
		opts.Lifespan = r.Lifespan
	}

	return Wallpaper{
		Request: r,
		Today:   today,
		Grid:    g,
		Stats:   s,
		Theme:   th,
		Scene:   layout.Layout(g, s, opts),
	}
}

// PNG renders the scene to w.
func (w Wallpaper) PNG(out io.Writer) error {
	return render.PNG(out, w.Scene)
}

// Summary is the serializable description of a wallpaper without geometry.
type Summary struct {
	View  grid.View   `json:"view" yaml:"view"`
	Today date.Date   `json:"today" yaml:"today"`
	Stats grid.Stats  `json:"stats" yaml:"stats"`
	Tally grid.Tally  `json:"cells" yaml:"cells"`
	Label string      `json:"label" yaml:"label"`
	Theme theme.Theme `json:"theme" yaml:"theme"`
}

// Summary describes w.
func (w Wallpaper) Summary() Summary {
	return Summary{
		View:  w.Grid.View,
		Today: w.Today,
		Stats: w.Stats,
		Tally: w.Grid.Tally(),
		Label: w.Scene.Label(),
		Theme: w.Theme,
	}
}

// Describe summarizes r as of now without laying it out, so r needs no size.
func Describe(r params.Request, now time.Time) Summary {
	today := r.Today(now)
	g, s := grid.Build(r.GridParams(), today)
	return Summary{
		View:  g.View,
		Today: today,
		Stats: s,
		Tally: g.Tally(),
		Label: layout.Label(g, s, r.Lifespan),
		Theme: r.ResolveTheme(),
	}
}
