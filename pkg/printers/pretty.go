package printers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dotcal/pkg/grid"
	"tableflip.dev/dotcal/pkg/params"
	"tableflip.dev/dotcal/pkg/theme"
	"tableflip.dev/dotcal/pkg/ui/calendar"
	"tableflip.dev/dotcal/pkg/wallpaper"
)

// PrettyPrint writes human readable tables. Color follows fatih/color, which
// turns itself off when stdout is not a terminal or NO_COLOR is set.
type PrettyPrint struct {
	Out io.Writer
	// Color enables true color swatches and dots.
	Color bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = fmt.Fprintln(pp.out(), t.Sprint(title))
}

// Summary prints the progress numbers of a wallpaper.
func (pp *PrettyPrint) Summary(s wallpaper.Summary) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	hi := color.New(color.FgHiYellow)

	pp.Title(fmt.Sprintf("%s · %s", s.View, s.View.Description()))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Today"), s.Today.String())
	tbl.AddRow(bold.Sprint("Elapsed"), fmt.Sprintf("%d %s", s.Stats.Elapsed, s.Stats.Unit))
	tbl.AddRow(bold.Sprint("Left"), hi.Sprintf("%d %s", s.Stats.Left, s.Stats.Unit))
	tbl.AddRow(bold.Sprint("Total"), fmt.Sprintf("%d %s", s.Stats.Total, s.Stats.Unit))
	tbl.AddRow(bold.Sprint("Progress"), s.Stats.PercentString()+"%")
	tbl.AddRow(bold.Sprint("Label"), s.Label)
	tbl.AddRow(bold.Sprint("Cells"), faint.Sprintf("%d past, %d current, %d future, %d blank",
		s.Tally.Past, s.Tally.Current, s.Tally.Future, s.Tally.Absent))
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Screens prints the resolution presets.
func (pp *PrettyPrint) Screens(screens []params.Screen) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Slug"), bold.Sprint("Size"), bold.Sprint("Device"))
	for _, s := range screens {
		tbl.AddRow(s.Slug(), fmt.Sprintf("%dx%d", s.Width, s.Height), s.Name+faint.Sprint(" ("+s.Category+")"))
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Palette prints the legend of a resolved theme: one row per role with its
// glyph, a swatch and its hex value.
func (pp *PrettyPrint) Palette(th theme.Theme) {
	bold := color.New(color.Bold)

	rows := []struct {
		role    string
		glyph   string
		c       theme.Color
		meaning string
	}{
		{"past", calendar.PastGlyph, th.Past, "Elapsed time"},
		{"current", calendar.CurrentGlyph, th.Current, "Today"},
		{"future", calendar.FutureGlyph, th.Future, "Time left"},
		{"background", " ", th.Background, "Wallpaper background"},
		{"text", "a", th.Text, "Labels"},
		{"highlight", "1", th.Highlight, "Days left count"},
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("   Dot"), bold.Sprint("Role"), bold.Sprint("Color"), bold.Sprint("Meaning"))
	for _, r := range rows {
		tbl.AddRow(pp.swatch(r.glyph, r.c), r.role, r.c.Hex(), r.meaning)
	}
	tbl.RightAlign(0)

	pp.Title(string(th.Name) + " theme")
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func (pp *PrettyPrint) swatch(glyph string, c theme.Color) string {
	if !pp.Color {
		return glyph
	}
	return lipgloss.NewStyle().Foreground(c).Render("██") + " " + glyph
}

// Preview prints the grid as terminal glyphs.
func (pp *PrettyPrint) Preview(g grid.Grid, th theme.Theme) {
	opts := calendar.Plain()
	if pp.Color {
		opts = calendar.Styled(th)
	}
	_, _ = fmt.Fprintln(pp.out(), calendar.Render(g, opts))
}

// Count prints n followed by a noun.
func (pp *PrettyPrint) Count(n int, noun string) {
	c := color.New(color.Faint)
	if n != 1 {
		noun += "s"
	}
	_, _ = fmt.Fprintln(pp.out(), c.Sprint(strconv.Itoa(n)+" "+noun))
}
