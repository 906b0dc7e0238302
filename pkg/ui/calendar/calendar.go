// Package calendar draws a dot grid as terminal text, one glyph per cell.
package calendar

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/dotcal/pkg/grid"
	"tableflip.dev/dotcal/pkg/theme"
)

// Glyphs for each dot state; absent cells are blank.
const (
	PastGlyph    = "●"
	CurrentGlyph = "◉"
	FutureGlyph  = "○"
	AbsentGlyph  = " "
)

// Options controls the styling of the rendered grid.
type Options struct {
	HeaderStyle  lipgloss.Style
	PastStyle    lipgloss.Style
	CurrentStyle lipgloss.Style
	FutureStyle  lipgloss.Style
	ShowHeader   bool
	// PerRow is how many named blocks share a line. Zero picks 3 for
	// months and 2 for quarters.
	PerRow int
}

// Plain returns options without any color.
func Plain() Options {
	return Options{ShowHeader: true}
}

// Styled colors the glyphs with a palette.
func Styled(th theme.Theme) Options {
	return Options{
		HeaderStyle:  lipgloss.NewStyle().Foreground(th.Text).Bold(true),
		PastStyle:    lipgloss.NewStyle().Foreground(th.Past),
		CurrentStyle: lipgloss.NewStyle().Foreground(th.Current).Bold(true),
		FutureStyle:  lipgloss.NewStyle().Foreground(th.Future),
		ShowHeader:   true,
	}
}

// Render produces a multi-line string for g. Flat views print their rows as
// they are; Months and Quarters print each block with weekdays across and
// weeks down, blocks side by side.
func Render(g grid.Grid, opts Options) string {
	if len(g.Blocks) == 0 {
		return ""
	}
	switch g.View {
	case grid.Months, grid.Quarters:
		return renderBlocks(g, opts)
	default:
		return renderFlat(g.Blocks[0].Cells, opts)
	}
}

func renderFlat(m grid.Matrix, opts Options) string {
	lines := make([]string, 0, m.Rows)
	for r := 0; r < m.Rows; r++ {
		cells := make([]string, 0, m.Cols)
		for c := 0; c < m.Cols; c++ {
			cells = append(cells, renderCell(m.At(r, c), opts))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	return strings.Join(lines, "\n")
}

func renderBlocks(g grid.Grid, opts Options) string {
	perRow := opts.PerRow
	if perRow <= 0 {
		perRow = 3
		if g.View == grid.Quarters {
			perRow = 2
		}
	}

	var rows []string
	for i := 0; i < len(g.Blocks); i += perRow {
		end := i + perRow
		if end > len(g.Blocks) {
			end = len(g.Blocks)
		}
		var parts []string
		for j, b := range g.Blocks[i:end] {
			if j > 0 {
				parts = append(parts, "   ")
			}
			parts = append(parts, renderBlock(b, opts))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return strings.Join(rows, "\n\n")
}

// renderBlock lays a weekday-major block out transposed.
func renderBlock(b grid.Block, opts Options) string {
	m := b.Cells
	width := 2*m.Rows - 1

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(pad(b.Name, width)))
	}
	for week := 0; week < m.Cols; week++ {
		cells := make([]string, 0, m.Rows)
		for wd := 0; wd < m.Rows; wd++ {
			cells = append(cells, renderCell(m.At(wd, week), opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func renderCell(c grid.Cell, opts Options) string {
	if !c.Present {
		return AbsentGlyph
	}
	switch c.State {
	case grid.Past:
		return opts.PastStyle.Render(PastGlyph)
	case grid.Current:
		return opts.CurrentStyle.Render(CurrentGlyph)
	default:
		return opts.FutureStyle.Render(FutureGlyph)
	}
}

// pad right-fills s with spaces to width printable cells.
func pad(s string, width int) string {
	if w := ansi.PrintableRuneWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
