// Package params turns wallpaper query parameters into a validated Request
// and back.
package params

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zones resolve on hosts without a zoneinfo database

	"tableflip.dev/dotcal/pkg/date"
	"tableflip.dev/dotcal/pkg/grid"
	"tableflip.dev/dotcal/pkg/layout"
	"tableflip.dev/dotcal/pkg/theme"
)

// DimensionsMessage is the client-facing text for ErrDimensions.
const DimensionsMessage = "Missing required parameters: width and height"

// ErrDimensions is returned when width or height is missing, malformed or not
// positive.
var ErrDimensions = errors.New("params: missing required parameters: width and height")

const (
	// MaxDimension bounds width and height.
	MaxDimension = 8192
	MaxLifespan  = 150
	// MaxGoalDays bounds the number of days a goal may span, start and end
	// included.
	MaxGoalDays  = 36525
	DefaultTitle = "Goal"
)

// Error reports a query parameter that could not be used.
type Error struct {
	Param string
	Value string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("params: invalid %s %q: %v", e.Param, e.Value, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Request is a complete, validated wallpaper request.
type Request struct {
	View      grid.View      `json:"view" yaml:"view"`
	Width     int            `json:"width" yaml:"width"`
	Height    int            `json:"height" yaml:"height"`
	Theme     theme.Name     `json:"theme" yaml:"theme"`
	WeekStart date.WeekStart `json:"weekStart" yaml:"weekStart"`
	Birthday  date.Date      `json:"birthday" yaml:"birthday"`
	Lifespan  int            `json:"lifespan" yaml:"lifespan"`
	GoalStart date.Date      `json:"goalStart" yaml:"goalStart"`
	GoalEnd   date.Date      `json:"goalEnd" yaml:"goalEnd"`
	GoalTitle string         `json:"goalTitle" yaml:"goalTitle"`
	Scale     float64        `json:"scale" yaml:"scale"`
	// Color overrides are kept only when they are valid "#RRGGBB" values.
	Accent     string `json:"accent,omitempty" yaml:"accent,omitempty"`
	Background string `json:"bg,omitempty" yaml:"bg,omitempty"`
	Dot        string `json:"dot,omitempty" yaml:"dot,omitempty"`
	// Timezone is an IANA zone name used to decide what "today" is.
	Timezone string `json:"tz,omitempty" yaml:"tz,omitempty"`
}

// Default returns the built-in defaults. Width and height have none.
func Default() Request {
	return Request{
		View:      grid.Days,
		Theme:     theme.Dark,
		WeekStart: date.Monday,
		Birthday:  date.New(1990, time.January, 15),
		Lifespan:  grid.DefaultLifespan,
		GoalStart: date.New(2026, time.January, 1),
		GoalEnd:   date.New(2026, time.December, 31),
		GoalTitle: DefaultTitle,
		Scale:     1,
	}
}

// FromQuery overlays the parameters in q on def and validates the result.
// Width and height must end up positive.
func FromQuery(q url.Values, def Request) (Request, error) {
	r, err := Overlay(q, def)
	if err != nil {
		return Request{}, err
	}
	if r.Width <= 0 || r.Height <= 0 {
		return Request{}, ErrDimensions
	}
	return r, nil
}

// Overlay applies the parameters present in q on top of def. Unknown views
// and themes fall back to days and dark. Invalid color overrides are dropped.
// Malformed dates, numbers and zones are errors.
func Overlay(q url.Values, def Request) (Request, error) {
	r := def

	var err error
	if r.Width, err = dimension(q, "width", def.Width); err != nil {
		return Request{}, err
	}
	if r.Height, err = dimension(q, "height", def.Height); err != nil {
		return Request{}, err
	}

	if v := q.Get("view"); v != "" {
		if r.View, err = grid.ParseView(v); err != nil {
			r.View = grid.Days
		}
	}
	if v := q.Get("theme"); v != "" {
		r.Theme = theme.Base(theme.Name(v)).Name
	}
	if v := q.Get("weekStart"); v != "" {
		if r.WeekStart, err = date.ParseWeekStart(v); err != nil {
			r.WeekStart = date.Monday
		}
	}

	if v := q.Get("birthday"); v != "" {
		if r.Birthday, err = date.Parse(v); err != nil {
			return Request{}, &Error{Param: "birthday", Value: v, Err: err}
		}
	}
	if v := q.Get("lifespan"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > MaxLifespan {
			return Request{}, &Error{Param: "lifespan", Value: v, Err: fmt.Errorf("want a whole number of years from 1 to %d", MaxLifespan)}
		}
		r.Lifespan = n
	}
	if v := q.Get("goalStart"); v != "" {
		if r.GoalStart, err = date.Parse(v); err != nil {
			return Request{}, &Error{Param: "goalStart", Value: v, Err: err}
		}
	}
	if v := q.Get("goalEnd"); v != "" {
		if r.GoalEnd, err = goalEnd(v, r.GoalStart); err != nil {
			return Request{}, &Error{Param: "goalEnd", Value: v, Err: err}
		}
	}
	if r.View == grid.Goal && !r.GoalStart.IsZero() && !r.GoalEnd.IsZero() {
		if n := date.DaysBetween(r.GoalStart, r.GoalEnd) + 1; n > MaxGoalDays {
			return Request{}, &Error{Param: "goalEnd", Value: r.GoalEnd.String(), Err: fmt.Errorf("goal spans %d days, more than %d", n, MaxGoalDays)}
		}
	}
	if v := strings.TrimSpace(q.Get("goalTitle")); v != "" {
		r.GoalTitle = v
	}
	if r.GoalTitle == "" {
		r.GoalTitle = DefaultTitle
	}

	if v := q.Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Request{}, &Error{Param: "scale", Value: v, Err: err}
		}
		r.Scale = f
	}
	r.Scale = layout.ClampScale(r.Scale)

	r.Accent = override(q, "accent", def.Accent)
	r.Background = override(q, "bg", def.Background)
	r.Dot = override(q, "dot", def.Dot)

	if v := q.Get("tz"); v != "" {
		if _, err := time.LoadLocation(v); err != nil {
			return Request{}, &Error{Param: "tz", Value: v, Err: err}
		}
		r.Timezone = v
	}
	return r, nil
}

func dimension(q url.Values, key string, def int) (int, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return 0, ErrDimensions
	}
	if n > MaxDimension {
		return 0, &Error{Param: key, Value: v, Err: fmt.Errorf("larger than %d", MaxDimension)}
	}
	return n, nil
}

// goalEnd accepts a date or an offset such as "+12w" from start.
func goalEnd(v string, start date.Date) (date.Date, error) {
	if date.IsOffset(v) {
		off, err := date.ParseOffset(v)
		if err != nil {
			return date.Date{}, err
		}
		return start.Add(off), nil
	}
	return date.Parse(v)
}

func override(q url.Values, key, def string) string {
	v, ok := q[key]
	if !ok {
		v = []string{def}
	}
	if len(v) == 0 {
		return ""
	}
	if _, valid := theme.ParseHex(v[0]); !valid {
		return ""
	}
	return strings.ToUpper(v[0])
}

// Location returns the zone named by Timezone, or fallback when it is unset.
func (r Request) Location(fallback *time.Location) *time.Location {
	if r.Timezone != "" {
		if loc, err := time.LoadLocation(r.Timezone); err == nil {
			return loc
		}
	}
	if fallback == nil {
		return time.Local
	}
	return fallback
}

// Today is the calendar date of now in the request's zone.
func (r Request) Today(now time.Time) date.Date {
	return date.Today(now, r.Location(now.Location()))
}

// GridParams returns the grid inputs of r.
func (r Request) GridParams() grid.Params {
	return grid.Params{
		View:      r.View,
		WeekStart: r.WeekStart,
		Birthday:  r.Birthday,
		Lifespan:  r.Lifespan,
		GoalStart: r.GoalStart,
		GoalEnd:   r.GoalEnd,
	}
}

// ResolveTheme returns the palette with r's overrides applied.
func (r Request) ResolveTheme() theme.Theme {
	return theme.Resolve(r.Theme, r.Accent, r.Background, r.Dot)
}

// Query returns the canonical parameters for r: only those that affect the
// chosen view, and optional ones only when they differ from the defaults.
func (r Request) Query() url.Values {
	q := url.Values{}
	q.Set("view", string(r.View))
	q.Set("theme", string(r.Theme))
	q.Set("width", strconv.Itoa(r.Width))
	q.Set("height", strconv.Itoa(r.Height))

	switch r.View {
	case grid.Months, grid.Quarters:
		q.Set("weekStart", r.WeekStart.String())
	case grid.Life:
		q.Set("birthday", r.Birthday.String())
		if r.Lifespan > 0 && r.Lifespan != grid.DefaultLifespan {
			q.Set("lifespan", strconv.Itoa(r.Lifespan))
		}
	case grid.Goal:
		q.Set("goalStart", r.GoalStart.String())
		q.Set("goalEnd", r.GoalEnd.String())
		if r.GoalTitle != "" {
			q.Set("goalTitle", r.GoalTitle)
		}
	}
	if r.View == grid.Months && r.Scale != 1 {
		q.Set("scale", strconv.FormatFloat(r.Scale, 'f', -1, 64))
	}
	for key, v := range map[string]string{"accent": r.Accent, "bg": r.Background, "dot": r.Dot, "tz": r.Timezone} {
		if v != "" {
			q.Set(key, v)
		}
	}
	return q
}

// URL joins base, the wallpaper route and the canonical query.
func (r Request) URL(base string) string {
	return strings.TrimRight(base, "/") + "/api/og?" + r.Query().Encode()
}
