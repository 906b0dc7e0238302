// Package mcp exposes dotcal calendars over the Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/dotcal/pkg/grid"
	"tableflip.dev/dotcal/pkg/layout"
	"tableflip.dev/dotcal/pkg/params"
	"tableflip.dev/dotcal/pkg/theme"
	"tableflip.dev/dotcal/pkg/wallpaper"
)

// Service answers calendar questions for the MCP tools and resources.
type Service struct {
	// Defaults returns the request values used for anything a call leaves
	// out. It is called on every request so reloaded config is picked up.
	Defaults func() params.Request
	Clock    wallpaper.Clock
	BaseURL  string
}

// ErrUnknownScreen is returned when a screen preset cannot be found.
var ErrUnknownScreen = errors.New("unknown screen preset")

// CalendarArgs are the tool arguments shared by every calendar tool. They
// mirror the wallpaper query parameters; Screen names a preset that fills in
// width and height.
type CalendarArgs struct {
	View      string  `json:"view"`
	Screen    string  `json:"screen"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Theme     string  `json:"theme"`
	WeekStart string  `json:"weekStart"`
	Birthday  string  `json:"birthday"`
	Lifespan  int     `json:"lifespan"`
	GoalStart string  `json:"goalStart"`
	GoalEnd   string  `json:"goalEnd"`
	GoalTitle string  `json:"goalTitle"`
	Scale     float64 `json:"scale"`
	Accent    string  `json:"accent"`
	Bg        string  `json:"bg"`
	Dot       string  `json:"dot"`
	Tz        string  `json:"tz"`
}

// Query converts the arguments into wallpaper query parameters.
func (a CalendarArgs) Query() (url.Values, error) {
	q := url.Values{}
	set := func(key, v string) {
		if v = strings.TrimSpace(v); v != "" {
			q.Set(key, v)
		}
	}
	if a.Screen != "" {
		s, ok := params.FindScreen(a.Screen)
		if !ok {
			return nil, ErrUnknownScreen
		}
		q.Set("width", strconv.Itoa(s.Width))
		q.Set("height", strconv.Itoa(s.Height))
	}
	if a.Width > 0 {
		q.Set("width", strconv.Itoa(a.Width))
	}
	if a.Height > 0 {
		q.Set("height", strconv.Itoa(a.Height))
	}
	if a.Lifespan > 0 {
		q.Set("lifespan", strconv.Itoa(a.Lifespan))
	}
	if a.Scale != 0 {
		q.Set("scale", strconv.FormatFloat(a.Scale, 'f', -1, 64))
	}
	set("view", a.View)
	set("theme", a.Theme)
	set("weekStart", a.WeekStart)
	set("birthday", a.Birthday)
	set("goalStart", a.GoalStart)
	set("goalEnd", a.GoalEnd)
	set("goalTitle", a.GoalTitle)
	set("accent", a.Accent)
	set("bg", a.Bg)
	set("dot", a.Dot)
	set("tz", a.Tz)
	return q, nil
}

// NewService builds a service with fixed defaults.
func NewService(defaults params.Request, base string) *Service {
	return &Service{
		Defaults: func() params.Request { return defaults },
		BaseURL:  base,
	}
}

func (s *Service) defaults() params.Request {
	if s.Defaults == nil {
		return params.Default()
	}
	return s.Defaults()
}

func (s *Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}

// request resolves args against the defaults. Screen size is only required
// when needDims is set.
func (s *Service) request(args CalendarArgs, needDims bool) (params.Request, error) {
	q, err := args.Query()
	if err != nil {
		return params.Request{}, err
	}
	if needDims {
		return params.FromQuery(q, s.defaults())
	}
	return params.Overlay(q, s.defaults())
}

// Stats describes the progress of a calendar today.
func (s *Service) Stats(ctx context.Context, args CalendarArgs) (wallpaper.Summary, error) {
	r, err := s.request(args, false)
	if err != nil {
		return wallpaper.Summary{}, err
	}
	return wallpaper.Describe(r, s.now()), nil
}

// Scene lays a calendar out for a screen.
func (s *Service) Scene(ctx context.Context, args CalendarArgs) (layout.Scene, error) {
	r, err := s.request(args, true)
	if err != nil {
		return layout.Scene{}, err
	}
	return wallpaper.Compose(r, s.now()).Scene, nil
}

// URL returns the wallpaper link for args. Without a size the default
// screen is used.
func (s *Service) URL(ctx context.Context, args CalendarArgs) (string, error) {
	r, err := s.request(args, false)
	if err != nil {
		return "", err
	}
	if r.Width <= 0 || r.Height <= 0 {
		d := params.DefaultScreen()
		r.Width, r.Height = d.Width, d.Height
	}
	base := s.BaseURL
	if base == "" {
		base = "http://127.0.0.1:8080"
	}
	return r.URL(base), nil
}

// Screens lists the resolution presets, optionally for one maker.
func (s *Service) Screens(category string) []params.Screen {
	all := params.Screens()
	if category == "" {
		return all
	}
	out := make([]params.Screen, 0, len(all))
	for _, sc := range all {
		if strings.EqualFold(sc.Category, category) {
			out = append(out, sc)
		}
	}
	return out
}

// Themes returns the built-in palettes.
func (s *Service) Themes() []theme.Theme {
	names := theme.Names()
	out := make([]theme.Theme, 0, len(names))
	for _, n := range names {
		out = append(out, theme.Base(n))
	}
	return out
}

// ViewSummary names a view and what it shows.
type ViewSummary struct {
	Name        grid.View `json:"name"`
	Description string    `json:"description"`
}

// Views lists the calendar views.
func (s *Service) Views() []ViewSummary {
	views := grid.Views()
	out := make([]ViewSummary, 0, len(views))
	for _, v := range views {
		out = append(out, ViewSummary{Name: v, Description: v.Description()})
	}
	return out
}
