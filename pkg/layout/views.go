package layout

import (
	"math"

	"tableflip.dev/dotcal/pkg/grid"
)

func layoutDays(sc *Scene, g grid.Grid, s grid.Stats, o Options) {
	W, H := float64(o.Width), float64(o.Height)
	m := g.Blocks[0].Cells
	dot, gap := flatGeometry(W, m.Cols, 0.79, 0.6, 4)
	gridW, gridH := span(m.Cols, dot, gap), span(m.Rows, dot, gap)

	pad := math.Round(H * 0.155)
	top := centered(pad, gridH+labelMargin+labelSize, H)
	left := (W - gridW) / 2

	sc.Dots = flatCells(m, o.Theme, left, top, dot, gap)
	sc.Texts = append(sc.Texts, statusLabel(s, o.Theme, W/2, top+gridH+labelMargin, labelSize))
	sc.Metrics = Metrics{PaddingTop: top, DotSize: dot, Gap: gap, RowGap: gap, Columns: m.Cols}
}

const lifeCellTarget = 18

// layoutLife reflows the weeks row-major into as many columns as fit an
// 18px cell across 84% of the width.
func layoutLife(sc *Scene, g grid.Grid, s grid.Stats, o Options) {
	W, H := float64(o.Width), float64(o.Height)
	cells := g.Blocks[0].Cells.Present()

	gridW := W * 0.84
	cols := int(math.Floor(gridW / lifeCellTarget))
	if cols < 1 {
		cols = 1
	}
	dot, gap := flatGeometry(W, cols, 0.84, 0.617, 2)
	rows := (len(cells) + cols - 1) / cols
	gridH := span(rows, dot, gap)

	const size = 28
	pad := math.Round(H * 0.275)
	top := centered(pad, gridH+labelMargin+size, H)
	left := (W - span(cols, dot, gap)) / 2

	sc.Dots = make([]Dot, 0, len(cells))
	for i, cell := range cells {
		r, c := i/cols, i%cols
		sc.Dots = append(sc.Dots, Dot{
			X:        left + float64(c)*(dot+gap) + dot/2,
			Y:        top + float64(r)*(dot+gap) + dot/2,
			Diameter: dot,
			Color:    o.Theme.Dot(cell.State),
		})
	}

	sc.Texts = append(sc.Texts, Text{
		Runs:   []Run{{Text: lifeLabel(s, o.Lifespan), Color: o.Theme.Text}},
		X:      W / 2,
		Y:      top + gridH + labelMargin,
		Size:   size,
		Anchor: AnchorCenter,
	})
	sc.Metrics = Metrics{PaddingTop: top, DotSize: dot, Gap: gap, RowGap: gap, Columns: cols}
}

const (
	monthsPerRow     = 3
	monthLabelSize   = 30
	monthLabelHeight = 40
	monthsSummaryGap = 82
)

type monthGeometry struct {
	dot, colGap, rowGap, pitch, blockGap float64
}

func monthsGeometry(width, scale float64) monthGeometry {
	mw := width * 0.85 / monthsPerRow
	dot := math.Max(4, math.Min(mw*0.7/7, 17*scale))
	rowGap := dot * 0.88
	return monthGeometry{
		dot:      dot,
		colGap:   math.Max(3, dot*0.88),
		rowGap:   rowGap,
		pitch:    math.Round(8 * (dot + rowGap)),
		blockGap: math.Round(47 * scale),
	}
}

// layoutMonths arranges twelve month blocks in four rows of three. Each block
// shows weekdays across and weeks down. The top padding is computed from the
// unscaled geometry so changing the scale grows the grid downward without
// moving its first row.
func layoutMonths(sc *Scene, g grid.Grid, s grid.Stats, o Options) {
	W, H := float64(o.Width), float64(o.Height)
	geo := monthsGeometry(W, ClampScale(o.Scale))
	base := monthsGeometry(W, 1)

	rows := (len(g.Blocks) + monthsPerRow - 1) / monthsPerRow
	lastWeeks := 0
	for _, b := range g.Blocks[(rows-1)*monthsPerRow:] {
		if b.Cells.Cols > lastWeeks {
			lastWeeks = b.Cells.Cols
		}
	}

	basePad := H * 0.117
	baseContent := float64(rows-1)*base.pitch + monthLabelHeight +
		float64(lastWeeks)*(base.dot+base.rowGap) + monthsSummaryGap + labelSize
	top := math.Round(basePad + math.Max(0, (H-basePad-baseContent)/2))

	blockW := span(grid.WeekRows, geo.dot, geo.colGap)
	y := top
	for r := 0; r < rows; r++ {
		lo := r * monthsPerRow
		hi := lo + monthsPerRow
		if hi > len(g.Blocks) {
			hi = len(g.Blocks)
		}
		n := hi - lo
		rowW := float64(n)*blockW + float64(n-1)*geo.blockGap
		x := (W - rowW) / 2

		weeks := 0
		for i, b := range g.Blocks[lo:hi] {
			left := x + float64(i)*(blockW+geo.blockGap)
			sc.Texts = append(sc.Texts, Text{
				Runs:   []Run{{Text: b.Name, Color: o.Theme.Text}},
				X:      left,
				Y:      y,
				Size:   monthLabelSize,
				Anchor: AnchorLeft,
			})
			sc.Dots = append(sc.Dots, transposed(b.Cells, o, left, y+monthLabelHeight, geo.dot, geo.colGap, geo.rowGap)...)
			if b.Cells.Cols > weeks {
				weeks = b.Cells.Cols
			}
		}

		if r < rows-1 {
			y += geo.pitch
		} else {
			y += monthLabelHeight + float64(weeks)*(geo.dot+geo.rowGap)
		}
	}

	sc.Texts = append(sc.Texts, statusLabel(s, o.Theme, W/2, y+monthsSummaryGap, labelSize))
	sc.Metrics = Metrics{
		PaddingTop: top,
		DotSize:    geo.dot,
		Gap:        geo.colGap,
		RowGap:     geo.rowGap,
		BlockGap:   geo.blockGap,
		Columns:    grid.WeekRows,
	}
}

// transposed places a weekday-major block with weekdays as columns and weeks
// as rows.
func transposed(m grid.Matrix, o Options, left, top, dot, colGap, rowGap float64) []Dot {
	dots := make([]Dot, 0, m.Rows*m.Cols)
	for week := 0; week < m.Cols; week++ {
		for wd := 0; wd < m.Rows; wd++ {
			cell := m.At(wd, week)
			if !cell.Present {
				continue
			}
			dots = append(dots, Dot{
				X:        left + float64(wd)*(dot+colGap) + dot/2,
				Y:        top + float64(week)*(dot+rowGap) + dot/2,
				Diameter: dot,
				Color:    o.Theme.Dot(cell.State),
			})
		}
	}
	return dots
}

const (
	quartersPerRow     = 2
	quarterLabelSize   = 32
	quarterLabelMargin = 12
	quartersSummaryGap = 50
)

// layoutQuarters arranges four quarter blocks two by two, each labelled on
// its left. Blocks are transposed like Months: weekdays across, weeks down.
func layoutQuarters(sc *Scene, g grid.Grid, s grid.Stats, o Options) {
	W, H := float64(o.Width), float64(o.Height)
	qw := W * 0.85 / quartersPerRow
	dot := math.Max(4, math.Min(qw*0.7/7, 25))
	gap := math.Max(2, dot*0.88)
	colGap := math.Round(dot * 3.2)
	rowGap := math.Round(dot * 1.6)

	blockW := func(b grid.Block) float64 {
		return textWidth(b.Name, quarterLabelSize) + quarterLabelMargin + span(b.Cells.Rows, dot, gap)
	}
	blockH := func(b grid.Block) float64 {
		return span(b.Cells.Cols, dot, gap)
	}

	rows := (len(g.Blocks) + quartersPerRow - 1) / quartersPerRow
	heights := make([]float64, rows)
	content := 0.0
	for r := range heights {
		for _, b := range g.Blocks[r*quartersPerRow : min(len(g.Blocks), (r+1)*quartersPerRow)] {
			heights[r] = math.Max(heights[r], blockH(b))
		}
		content += heights[r]
	}
	content += float64(rows-1)*rowGap + quartersSummaryGap + labelSize

	pad := math.Round(H * 0.138)
	top := centered(pad, content, H)

	y := top
	for r := 0; r < rows; r++ {
		row := g.Blocks[r*quartersPerRow : min(len(g.Blocks), (r+1)*quartersPerRow)]
		rowW := float64(len(row)-1) * colGap
		for _, b := range row {
			rowW += blockW(b)
		}
		x := (W - rowW) / 2
		for _, b := range row {
			sc.Texts = append(sc.Texts, Text{
				Runs:   []Run{{Text: b.Name, Color: o.Theme.Text}},
				X:      x,
				Y:      y + (dot-quarterLabelSize)/2,
				Size:   quarterLabelSize,
				Anchor: AnchorLeft,
			})
			gridLeft := x + textWidth(b.Name, quarterLabelSize) + quarterLabelMargin
			sc.Dots = append(sc.Dots, transposed(b.Cells, o, gridLeft, y, dot, gap, gap)...)
			x += blockW(b) + colGap
		}
		y += heights[r]
		if r < rows-1 {
			y += rowGap
		}
	}

	sc.Texts = append(sc.Texts, statusLabel(s, o.Theme, W/2, y+quartersSummaryGap, labelSize))
	sc.Metrics = Metrics{
		PaddingTop: top,
		DotSize:    dot,
		Gap:        gap,
		RowGap:     gap,
		BlockGap:   colGap,
		Columns:    grid.WeekRows,
	}
}

// TitleSize picks the Goal title font size for a title on an image width wide.
func TitleSize(title string, width int) float64 {
	n := len([]rune(title))
	if n == 0 {
		return 36
	}
	return math.Min(36, math.Max(16, math.Floor(float64(width)/float64(n)*1.2)))
}

const titleMargin = 40

func layoutGoal(sc *Scene, g grid.Grid, s grid.Stats, o Options) {
	W, H := float64(o.Width), float64(o.Height)
	m := g.Blocks[0].Cells
	dot, gap := flatGeometry(W, m.Cols, 0.79, 0.6, 4)
	gridW, gridH := span(m.Cols, dot, gap), span(m.Rows, dot, gap)

	titleSize := TitleSize(o.Title, o.Width)
	head := 0.0
	if o.Title != "" {
		head = titleSize + titleMargin
	}

	pad := math.Round(H * 0.235)
	top := centered(pad, head+gridH+labelMargin+labelSize, H)
	left := (W - gridW) / 2

	if o.Title != "" {
		sc.Texts = append(sc.Texts, Text{
			Runs:     []Run{{Text: o.Title, Color: o.Theme.Text}},
			X:        W / 2,
			Y:        top,
			Size:     titleSize,
			Anchor:   AnchorCenter,
			MaxWidth: W * 0.85,
		})
	}
	gridTop := top + head
	sc.Dots = flatCells(m, o.Theme, left, gridTop, dot, gap)
	sc.Texts = append(sc.Texts, statusLabel(s, o.Theme, W/2, gridTop+gridH+labelMargin, labelSize))
	sc.Metrics = Metrics{PaddingTop: top, DotSize: dot, Gap: gap, RowGap: gap, Columns: m.Cols}
}
