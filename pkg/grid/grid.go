package grid

import (
	"fmt"
	"time"

	"tableflip.dev/dotcal/pkg/date"
)

const (
	// FlatColumns is the row width of the Days and Goal grids.
	FlatColumns = 15
	// WeeksPerYear is the Life grid row width. A year is treated as exactly
	// 52 weeks, so long lifespans drift from the true calendar week count.
	WeeksPerYear = 52
	// DefaultLifespan is the Life grid length in years.
	DefaultLifespan = 90
	// WeekRows is the number of weekday rows in Months and Quarters blocks.
	WeekRows = 7
)

// Params carries every view-specific input. Fields a view does not use are
// ignored.
type Params struct {
	View      View
	WeekStart date.WeekStart
	Birthday  date.Date
	Lifespan  int
	GoalStart date.Date
	GoalEnd   date.Date
}

// Build dispatches to the builder for p.View. Unknown views build Days.
func Build(p Params, today date.Date) (Grid, Stats) {
	switch p.View {
	case Life:
		return BuildLife(today, p.Birthday, p.Lifespan)
	case Months:
		return BuildMonths(today, p.WeekStart)
	case Quarters:
		return BuildQuarters(today, p.WeekStart)
	case Goal:
		return BuildGoal(today, p.GoalStart, p.GoalEnd)
	default:
		return BuildDays(today)
	}
}

func classify(d, today date.Date) DotState {
	switch {
	case d.Before(today):
		return Past
	case d.Equal(today):
		return Current
	default:
		return Future
	}
}

// flat lays out total cells row-major in rows of cols; trailing cells of the
// last row stay absent.
func flat(total, cols int, state func(i int) DotState) Matrix {
	rows := (total + cols - 1) / cols
	m := NewMatrix(rows, cols)
	for i := 0; i < total; i++ {
		m.set(i/cols, i%cols, state(i))
	}
	return m
}

func yearStats(today date.Date) Stats {
	total := date.DaysInYear(today.Year())
	elapsed := date.DaysBetween(today.StartOfYear(), today)
	return Stats{
		Unit:    UnitDays,
		Elapsed: elapsed,
		Left:    date.DaysBetween(today, today.EndOfYear()),
		Total:   total,
		Percent: percent(elapsed, total),
	}
}

// BuildDays returns one dot per day of today's year.
func BuildDays(today date.Date) (Grid, Stats) {
	start := today.StartOfYear()
	total := date.DaysInYear(today.Year())
	m := flat(total, FlatColumns, func(i int) DotState {
		return classify(start.AddDays(i), today)
	})
	return Grid{View: Days, Blocks: []Block{{Cells: m}}}, yearStats(today)
}

// BuildLife returns one dot per week of a lifespan of the given years. A zero
// birthday counts as no weeks lived.
func BuildLife(today, birthday date.Date, lifespan int) (Grid, Stats) {
	if lifespan <= 0 {
		lifespan = DefaultLifespan
	}
	total := lifespan * WeeksPerYear

	lived := 0
	if !birthday.IsZero() {
		if days := date.DaysBetween(birthday, today); days > 0 {
			lived = days / 7
		}
	}

	m := NewMatrix(lifespan, WeeksPerYear)
	for i := 0; i < total; i++ {
		var s DotState
		switch {
		case i < lived:
			s = Past
		case i == lived:
			s = Current
		default:
			s = Future
		}
		m.set(i/WeeksPerYear, i%WeeksPerYear, s)
	}

	elapsed := clamp(lived, 0, total)
	return Grid{View: Life, Blocks: []Block{{Cells: m}}}, Stats{
		Unit:    UnitWeeks,
		Elapsed: elapsed,
		Left:    total - elapsed,
		Total:   total,
		Percent: percent(lived, total),
	}
}

// weekBlock lays the days start..end out weekday-major: row is the weekday
// position, column the week counted from the week containing start.
func weekBlock(name string, start, end date.Date, ws date.WeekStart, today date.Date) Block {
	first := start.StartOfWeek(ws)
	cols := (date.DaysBetween(first, end) + 1 + 6) / 7
	m := NewMatrix(WeekRows, cols)
	for d := start; !d.After(end); d = d.AddDays(1) {
		col := date.DaysBetween(first, d) / 7
		row := ws.Row(d.Weekday())
		m.set(row, col, classify(d, today))
	}
	return Block{Name: name, Cells: m}
}

// BuildMonths returns twelve week blocks, one per month of today's year.
func BuildMonths(today date.Date, ws date.WeekStart) (Grid, Stats) {
	blocks := make([]Block, 0, 12)
	for m := time.January; m <= time.December; m++ {
		start := date.New(today.Year(), m, 1)
		blocks = append(blocks, weekBlock(m.String()[:3], start, start.EndOfMonth(), ws, today))
	}
	return Grid{View: Months, Blocks: blocks}, yearStats(today)
}

// BuildQuarters returns four week blocks spanning three months each.
func BuildQuarters(today date.Date, ws date.WeekStart) (Grid, Stats) {
	blocks := make([]Block, 0, 4)
	for q := 0; q < 4; q++ {
		start := date.New(today.Year(), time.Month(q*3+1), 1)
		blocks = append(blocks, weekBlock(fmt.Sprintf("Q%d", q+1), start, start.EndOfQuarter(), ws, today))
	}
	return Grid{View: Quarters, Blocks: blocks}, yearStats(today)
}

// BuildGoal returns one dot per day from start to end inclusive. A reversed
// or empty range still yields a single dot. Zero dates are replaced by today.
func BuildGoal(today, start, end date.Date) (Grid, Stats) {
	if start.IsZero() {
		start = today
	}
	if end.IsZero() {
		end = today
	}
	total := date.DaysBetween(start, end) + 1
	if total < 1 {
		total = 1
	}

	m := flat(total, FlatColumns, func(i int) DotState {
		return classify(start.AddDays(i), today)
	})

	elapsed := clamp(date.DaysBetween(start, today), 0, total)
	left := date.DaysBetween(date.Max(today, start), end)
	if left < 0 {
		left = 0
	}
	return Grid{View: Goal, Blocks: []Block{{Cells: m}}}, Stats{
		Unit:    UnitDays,
		Elapsed: elapsed,
		Left:    left,
		Total:   total,
		Percent: percent(elapsed, total),
	}
}
