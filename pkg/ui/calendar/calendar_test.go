package calendar

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/dotcal/pkg/date"
	"tableflip.dev/dotcal/pkg/grid"
	"tableflip.dev/dotcal/pkg/theme"
)

func TestRenderDaysPlain(t *testing.T) {
	today := date.MustParse("2026-01-03")
	g, _ := grid.BuildDays(today)
	out := Render(g, Plain())

	lines := strings.Split(out, "\n")
	if len(lines) != 25 {
		t.Fatalf("expected 25 rows, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "● ● ◉ ○") {
		t.Fatalf("unexpected first row %q", lines[0])
	}
	// 365 = 24*15 + 5
	if got := strings.Count(lines[24], FutureGlyph); got != 5 {
		t.Fatalf("expected a short last row of 5, got %d", got)
	}
	if strings.Count(out, CurrentGlyph) != 1 {
		t.Fatalf("expected exactly one current glyph")
	}
}

func TestRenderMonthsSideBySide(t *testing.T) {
	today := date.MustParse("2026-01-01")
	g, _ := grid.BuildMonths(today, date.Monday)
	out := Render(g, Plain())

	first := strings.Split(out, "\n")[0]
	for _, name := range []string{"Jan", "Feb", "Mar"} {
		if !strings.Contains(first, name) {
			t.Fatalf("expected %s in the first header line %q", name, first)
		}
	}
	if strings.Contains(first, "Apr") {
		t.Fatalf("expected three months per row, got %q", first)
	}
	// Jan 1 2026 is a Thursday: three blanks then the current dot.
	week := strings.Split(out, "\n")[1]
	if !strings.HasPrefix(week, "      "+CurrentGlyph) {
		t.Fatalf("unexpected first week %q", week)
	}
	if got := strings.Count(out, PastGlyph) + strings.Count(out, CurrentGlyph) + strings.Count(out, FutureGlyph); got != 365 {
		t.Fatalf("expected 365 dots, got %d", got)
	}
}

func TestRenderQuartersTwoPerRow(t *testing.T) {
	g, _ := grid.BuildQuarters(date.MustParse("2026-05-05"), date.Sunday)
	first := strings.Split(Render(g, Plain()), "\n")[0]
	if !strings.Contains(first, "Q1") || !strings.Contains(first, "Q2") || strings.Contains(first, "Q3") {
		t.Fatalf("unexpected header %q", first)
	}
}

func TestStyledKeepsLayout(t *testing.T) {
	g, _ := grid.BuildGoal(date.MustParse("2026-01-05"), date.MustParse("2026-01-01"), date.MustParse("2026-01-20"))
	plain := Render(g, Plain())
	styled := Render(g, Styled(theme.Base(theme.Dark)))
	pl := strings.Split(plain, "\n")
	sl := strings.Split(styled, "\n")
	if len(pl) != len(sl) {
		t.Fatalf("expected the same number of lines")
	}
	for i := range pl {
		if ansi.PrintableRuneWidth(pl[i]) != ansi.PrintableRuneWidth(sl[i]) {
			t.Fatalf("line %d changed width: %q vs %q", i, pl[i], sl[i])
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	if Render(grid.Grid{}, Plain()) != "" {
		t.Fatalf("expected nothing for an empty grid")
	}
}
