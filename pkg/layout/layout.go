package layout

import (
	"fmt"
	"math"

	"tableflip.dev/dotcal/pkg/grid"
	"tableflip.dev/dotcal/pkg/theme"
)

const (
	// MinScale and MaxScale bound the Months dot scale factor.
	MinScale = 0.8
	MaxScale = 2.0

	// labelMargin is the space between a grid and its status label.
	labelMargin = 40
	labelSize   = 36
	// glyphAdvance estimates the width of a glyph as a fraction of its size.
	glyphAdvance = 0.6
)

// Options carries the image size and the presentation inputs of a layout.
type Options struct {
	Width  int
	Height int
	Theme  theme.Theme
	// Scale grows or shrinks Months dots. Zero means 1.
	Scale float64
	// Title heads the Goal view.
	Title string
	// Lifespan is used by the Life label. Zero derives it from the stats.
	Lifespan int
}

// ClampScale limits s to [MinScale, MaxScale]. Non-positive values mean 1.
func ClampScale(s float64) float64 {
	if s <= 0 || math.IsNaN(s) {
		return 1
	}
	return math.Min(MaxScale, math.Max(MinScale, s))
}

// Layout positions g on an image of o.Width × o.Height. The result depends
// only on its arguments.
func Layout(g grid.Grid, s grid.Stats, o Options) Scene {
	sc := Scene{
		Width:      o.Width,
		Height:     o.Height,
		Background: o.Theme.Background,
	}
	if len(g.Blocks) == 0 {
		sc.Texts = append(sc.Texts, statusLabel(s, o.Theme, float64(o.Width)/2, float64(o.Height)/2, labelSize))
		return sc
	}
	switch g.View {
	case grid.Life:
		layoutLife(&sc, g, s, o)
	case grid.Months:
		layoutMonths(&sc, g, s, o)
	case grid.Quarters:
		layoutQuarters(&sc, g, s, o)
	case grid.Goal:
		layoutGoal(&sc, g, s, o)
	default:
		layoutDays(&sc, g, s, o)
	}
	return sc
}

// span is the extent of n dots of size dot separated by gap.
func span(n int, dot, gap float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*dot + float64(n-1)*gap
}

// centered returns the top of content of height h placed below pad and
// centered in the space left over. It never rises above pad.
func centered(pad, h, height float64) float64 {
	return pad + math.Max(0, (height-pad-h)/2)
}

// textWidth estimates the drawn width of s at size.
func textWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * glyphAdvance
}

// Label returns the text of the status label Layout draws for g, without
// computing any geometry.
func Label(g grid.Grid, s grid.Stats, lifespan int) string {
	if g.View == grid.Life && len(g.Blocks) > 0 {
		return lifeLabel(s, lifespan)
	}
	return fmt.Sprintf("%dd left · %s%%", s.Left, s.PercentString())
}

// lifeLabel is "<pct>% to <lifespan>". A non-positive lifespan is derived
// from the total weeks.
func lifeLabel(s grid.Stats, lifespan int) string {
	if lifespan <= 0 {
		lifespan = s.Total / grid.WeeksPerYear
	}
	return fmt.Sprintf("%s%% to %d", s.PercentString(), lifespan)
}

// statusLabel is "<left>d left · <pct>%" with the count highlighted.
func statusLabel(s grid.Stats, th theme.Theme, x, y, size float64) Text {
	return Text{
		Runs: []Run{
			{Text: fmt.Sprintf("%dd left", s.Left), Color: th.Highlight},
			{Text: " · " + s.PercentString() + "%", Color: th.Text},
		},
		X:      x,
		Y:      y,
		Size:   size,
		Anchor: AnchorCenter,
	}
}

// flatCells places a matrix as a plain grid whose top-left dot corner is at
// left, top. Absent cells are skipped.
func flatCells(m grid.Matrix, th theme.Theme, left, top, dot, gap float64) []Dot {
	dots := make([]Dot, 0, m.Rows*m.Cols)
	m.Each(func(r, c int, cell grid.Cell) {
		if !cell.Present {
			return
		}
		dots = append(dots, Dot{
			X:        left + float64(c)*(dot+gap) + dot/2,
			Y:        top + float64(r)*(dot+gap) + dot/2,
			Diameter: dot,
			Color:    th.Dot(cell.State),
		})
	})
	return dots
}

// flatGeometry sizes a flat grid of cols columns filling frac of width. The
// dot takes fill of each cell but never shrinks below minDot.
func flatGeometry(width float64, cols int, frac, fill, minDot float64) (dot, gap float64) {
	if cols < 1 {
		cols = 1
	}
	cell := width * frac / float64(cols)
	dot = math.Max(minDot, cell*fill)
	gap = math.Max(0, cell-dot)
	return dot, gap
}
