package options

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tableflip.dev/dotcal/pkg/params"
)

// RequestOptions are the wallpaper parameters as flags. Only flags that were
// set override the configured defaults.
type RequestOptions struct {
	View      string
	Screen    string
	Width     int
	Height    int
	Theme     string
	WeekStart string
	Birthday  string
	Lifespan  int
	GoalStart string
	GoalEnd   string
	GoalTitle string
	Scale     float64
	Accent    string
	Bg        string
	Dot       string
	Tz        string

	flags *pflag.FlagSet
}

// flagKeys maps flag names to query parameter names where they differ.
var flagKeys = map[string]string{
	"week-start": "weekStart",
	"goal-start": "goalStart",
	"goal-end":   "goalEnd",
	"goal-title": "goalTitle",
}

func AddRequestArgs(cmd *cobra.Command, o *RequestOptions) {
	f := cmd.Flags()
	o.flags = f
	f.StringVar(&o.View, "view", "", "Calendar view: days, months, quarters, life or goal.")
	f.StringVar(&o.Screen, "screen", "", `Screen preset by name or slug, e.g. "iphone-16-pro". See "dotcal screens".`)
	f.IntVar(&o.Width, "width", 0, "Image width in pixels.")
	f.IntVar(&o.Height, "height", 0, "Image height in pixels.")
	f.StringVar(&o.Theme, "theme", "", "Palette: dark or light.")
	f.StringVar(&o.WeekStart, "week-start", "", "First day of the week: monday or sunday.")
	f.StringVar(&o.Birthday, "birthday", "", `Birth date for the life view, example: --birthday="1990-01-15".`)
	f.IntVar(&o.Lifespan, "lifespan", 0, "Expected lifespan in years for the life view.")
	f.StringVar(&o.GoalStart, "goal-start", "", "Goal start date, YYYY-MM-DD.")
	f.StringVar(&o.GoalEnd, "goal-end", "", `Goal end date, YYYY-MM-DD or an offset from the start like "+12w".`)
	f.StringVar(&o.GoalTitle, "goal-title", "", "Title shown above the goal grid.")
	f.Float64Var(&o.Scale, "scale", 0, "Dot scale for the months view, 0.8 to 2.")
	f.StringVar(&o.Accent, "accent", "", "Accent color override, #RRGGBB.")
	f.StringVar(&o.Bg, "bg", "", "Background color override, #RRGGBB.")
	f.StringVar(&o.Dot, "dot", "", "Future dot color override, #RRGGBB.")
	f.StringVar(&o.Tz, "tz", "", `Time zone that decides what today is, e.g. "Europe/Berlin".`)
}

// Query returns the flags that were set as wallpaper query parameters.
func (o *RequestOptions) Query() (url.Values, error) {
	q := url.Values{}
	if o.Screen != "" {
		s, ok := params.FindScreen(o.Screen)
		if !ok {
			return nil, fmt.Errorf("unknown screen %q", o.Screen)
		}
		q.Set("width", strconv.Itoa(s.Width))
		q.Set("height", strconv.Itoa(s.Height))
	}
	if o.flags == nil {
		return q, nil
	}

	values := map[string]string{
		"view":       o.View,
		"width":      strconv.Itoa(o.Width),
		"height":     strconv.Itoa(o.Height),
		"theme":      o.Theme,
		"week-start": o.WeekStart,
		"birthday":   o.Birthday,
		"lifespan":   strconv.Itoa(o.Lifespan),
		"goal-start": o.GoalStart,
		"goal-end":   o.GoalEnd,
		"goal-title": o.GoalTitle,
		"scale":      strconv.FormatFloat(o.Scale, 'f', -1, 64),
		"accent":     o.Accent,
		"bg":         o.Bg,
		"dot":        o.Dot,
		"tz":         o.Tz,
	}
	for name, v := range values {
		if !o.flags.Changed(name) {
			continue
		}
		key := name
		if k, ok := flagKeys[name]; ok {
			key = k
		}
		q.Set(key, v)
	}
	return q, nil
}

// Request overlays the flags on def.
func (o *RequestOptions) Request(def params.Request) (params.Request, error) {
	q, err := o.Query()
	if err != nil {
		return params.Request{}, err
	}
	return params.Overlay(q, def)
}
