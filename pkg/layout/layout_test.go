package layout

import (
	"reflect"
	"strings"
	"testing"

	"tableflip.dev/dotcal/pkg/date"
	"tableflip.dev/dotcal/pkg/grid"
	"tableflip.dev/dotcal/pkg/theme"
)

const (
	phoneW = 1179
	phoneH = 2556
)

func options() Options {
	return Options{Width: phoneW, Height: phoneH, Theme: theme.Base(theme.Dark), Scale: 1}
}

func allViews(today date.Date) map[grid.View]grid.Params {
	return map[grid.View]grid.Params{
		grid.Days:     {View: grid.Days},
		grid.Months:   {View: grid.Months, WeekStart: date.Monday},
		grid.Quarters: {View: grid.Quarters, WeekStart: date.Sunday},
		grid.Life:     {View: grid.Life, Birthday: date.MustParse("1990-01-15"), Lifespan: 90},
		grid.Goal:     {View: grid.Goal, GoalStart: date.MustParse("2026-01-01"), GoalEnd: date.MustParse("2026-12-31")},
	}
}

func TestDotCountMatchesDatedCells(t *testing.T) {
	today := date.MustParse("2026-04-10")
	for view, p := range allViews(today) {
		g, s := grid.Build(p, today)
		sc := Layout(g, s, options())
		if got, want := len(sc.Dots), g.Tally().Dates(); got != want {
			t.Fatalf("%s: expected %d dots, got %d", view, want, got)
		}
		current := 0
		for _, d := range sc.Dots {
			if d.Diameter <= 0 {
				t.Fatalf("%s: dot with non-positive diameter %+v", view, d)
			}
			if d.X < 0 || d.X > phoneW || d.Y < 0 || d.Y > phoneH {
				t.Fatalf("%s: dot outside the image %+v", view, d)
			}
			if d.Color == sc.Background {
				t.Fatalf("%s: dot drawn in the background color", view)
			}
			if d.Color == theme.Base(theme.Dark).Current {
				current++
			}
		}
		if current != 1 {
			t.Fatalf("%s: expected one current dot, got %d", view, current)
		}
	}
}

func TestLayoutIsDeterministic(t *testing.T) {
	today := date.MustParse("2026-07-04")
	for view, p := range allViews(today) {
		g, s := grid.Build(p, today)
		o := options()
		o.Title = "Ship it"
		a := Layout(g, s, o)
		b := Layout(g, s, o)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("%s: layout not deterministic", view)
		}
	}
}

func TestDaysLabel(t *testing.T) {
	today := date.MustParse("2026-04-10")
	g, s := grid.BuildDays(today)
	sc := Layout(g, s, options())

	if got, want := sc.Label(), "265d left · 27.1%"; got != want {
		t.Fatalf("expected label %q, got %q", want, got)
	}
	label := sc.Texts[len(sc.Texts)-1]
	if label.Runs[0].Text != "265d left" || label.Runs[0].Color != theme.Base(theme.Dark).Highlight {
		t.Fatalf("expected highlighted day count, got %+v", label.Runs[0])
	}
	if label.Anchor != AnchorCenter || label.X != phoneW/2.0 {
		t.Fatalf("expected centered label, got %+v", label)
	}
	if sc.Metrics.Columns != grid.FlatColumns {
		t.Fatalf("expected %d columns, got %d", grid.FlatColumns, sc.Metrics.Columns)
	}
	if sc.Metrics.PaddingTop < 0.155*phoneH-1 {
		t.Fatalf("content rose above the top padding: %v", sc.Metrics.PaddingTop)
	}
}

func TestLifeReflowsAndLabels(t *testing.T) {
	today := date.MustParse("2026-01-15")
	g, s := grid.BuildLife(today, date.MustParse("1990-01-15"), 90)
	sc := Layout(g, s, options())

	// floor(1179*0.84/18) = 55
	if sc.Metrics.Columns != 55 {
		t.Fatalf("expected 55 columns, got %d", sc.Metrics.Columns)
	}
	if got, want := sc.Label(), "40.1% to 90"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if sc.Metrics.DotSize < 2 {
		t.Fatalf("dot smaller than the floor: %v", sc.Metrics.DotSize)
	}
}

func TestMonthsScaleKeepsPaddingTop(t *testing.T) {
	today := date.MustParse("2026-10-19")
	g, s := grid.BuildMonths(today, date.Monday)

	small := options()
	small.Scale = 1
	large := options()
	large.Scale = 2

	a := Layout(g, s, small)
	b := Layout(g, s, large)

	if a.Metrics.PaddingTop != b.Metrics.PaddingTop {
		t.Fatalf("expected identical padding top, got %v and %v", a.Metrics.PaddingTop, b.Metrics.PaddingTop)
	}
	if !(b.Metrics.DotSize > a.Metrics.DotSize) {
		t.Fatalf("expected larger dots at scale 2, got %v and %v", a.Metrics.DotSize, b.Metrics.DotSize)
	}
	if !(b.Metrics.BlockGap > a.Metrics.BlockGap) {
		t.Fatalf("expected larger month gaps at scale 2, got %v and %v", a.Metrics.BlockGap, b.Metrics.BlockGap)
	}
	if a.Metrics.DotSize != 17 || a.Metrics.BlockGap != 47 {
		t.Fatalf("unexpected scale 1 geometry %+v", a.Metrics)
	}
}

func TestMonthsClampsScale(t *testing.T) {
	today := date.MustParse("2026-10-19")
	g, s := grid.BuildMonths(today, date.Monday)
	o := options()
	o.Scale = 5
	wild := Layout(g, s, o)
	o.Scale = MaxScale
	capped := Layout(g, s, o)
	if !reflect.DeepEqual(wild, capped) {
		t.Fatalf("expected scale 5 to clamp to %v", MaxScale)
	}
}

func TestMonthsLabelsAndTransposition(t *testing.T) {
	today := date.MustParse("2026-01-01")
	g, s := grid.BuildMonths(today, date.Monday)
	sc := Layout(g, s, options())

	var names []string
	for _, tx := range sc.Texts[:len(sc.Texts)-1] {
		names = append(names, tx.Content())
	}
	if got := strings.Join(names, " "); got != "Jan Feb Mar Apr May Jun Jul Aug Sep Oct Nov Dec" {
		t.Fatalf("unexpected month labels %q", got)
	}

	// January 2026 starts on a Thursday, the fourth column of the first week
	// row when weeks start on Monday.
	first := sc.Dots[0]
	second := sc.Dots[1]
	if first.Y != second.Y || second.X <= first.X {
		t.Fatalf("expected weekdays to run across, got %+v then %+v", first, second)
	}
	col := (first.X - sc.Texts[0].X - sc.Metrics.DotSize/2) / (sc.Metrics.DotSize + sc.Metrics.Gap)
	if int(col+0.5) != 3 {
		t.Fatalf("expected Jan 1 in column 3, got %v", col)
	}
}

func TestQuartersLabelsLeftOfGrid(t *testing.T) {
	today := date.MustParse("2026-05-05")
	g, s := grid.BuildQuarters(today, date.Monday)
	sc := Layout(g, s, options())

	if len(sc.Texts) != 5 {
		t.Fatalf("expected four quarter labels and a summary, got %d texts", len(sc.Texts))
	}
	for i, tx := range sc.Texts[:4] {
		if tx.Anchor != AnchorLeft || tx.Size != quarterLabelSize {
			t.Fatalf("unexpected quarter label %+v", tx)
		}
		if tx.Content() != []string{"Q1", "Q2", "Q3", "Q4"}[i] {
			t.Fatalf("unexpected quarter label %q", tx.Content())
		}
	}
	if sc.Metrics.DotSize > 25 {
		t.Fatalf("quarter dots exceed the cap: %v", sc.Metrics.DotSize)
	}
}

func TestGoalTitleSize(t *testing.T) {
	tests := []struct {
		title string
		width int
		want  float64
	}{
		{"Goal", 1179, 36},
		{strings.Repeat("x", 100), 1179, 16},
		{strings.Repeat("x", 50), 1179, 28},
		{"", 1179, 36},
	}
	for _, tt := range tests {
		if got := TitleSize(tt.title, tt.width); got != tt.want {
			t.Fatalf("TitleSize(%d chars, %d): expected %v, got %v", len(tt.title), tt.width, tt.want, got)
		}
	}
}

func TestGoalSingleCell(t *testing.T) {
	today := date.MustParse("2026-03-01")
	g, s := grid.BuildGoal(today, date.MustParse("2026-06-01"), date.MustParse("2026-05-01"))
	o := options()
	o.Title = "Launch"
	sc := Layout(g, s, o)

	if len(sc.Dots) != 1 {
		t.Fatalf("expected a single dot, got %d", len(sc.Dots))
	}
	if sc.Texts[0].Content() != "Launch" || sc.Texts[0].MaxWidth == 0 {
		t.Fatalf("expected a bounded title, got %+v", sc.Texts[0])
	}
	if sc.Dots[0].Y <= sc.Texts[0].Y+sc.Texts[0].Size {
		t.Fatalf("expected the grid below the title")
	}
}

func TestClampScale(t *testing.T) {
	tests := map[float64]float64{0: 1, -3: 1, 0.5: MinScale, 1.4: 1.4, 9: MaxScale}
	for in, want := range tests {
		if got := ClampScale(in); got != want {
			t.Fatalf("ClampScale(%v): expected %v, got %v", in, want, got)
		}
	}
}

func TestLabelMatchesScene(t *testing.T) {
	today := date.MustParse("2026-04-10")
	for view, p := range allViews(today) {
		g, s := grid.Build(p, today)
		o := options()
		if view == grid.Life {
			o.Lifespan = p.Lifespan
		}
		if got, want := Label(g, s, o.Lifespan), Layout(g, s, o).Label(); got != want {
			t.Fatalf("%s: expected %q, got %q", view, want, got)
		}
	}
}
