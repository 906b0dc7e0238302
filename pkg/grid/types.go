// Package grid turns calendar parameters and a "today" into grids of dots,
// each tagged past, current or future, plus progress statistics.
//
// Every builder is a pure function of its arguments. Nothing here reads the
// clock; callers pass today in.
package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// View selects one of the calendar presentations.
type View string

const (
	Days     View = "days"
	Life     View = "life"
	Months   View = "months"
	Quarters View = "quarters"
	Goal     View = "goal"
)

// Views lists every view in display order.
func Views() []View {
	return []View{Days, Months, Quarters, Life, Goal}
}

// ParseView accepts a view name, case-insensitive.
func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Views() {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("grid: unknown view %q", s)
}

// Description is the one-line summary shown in pickers and help.
func (v View) Description() string {
	switch v {
	case Days:
		return "All days of the year"
	case Months:
		return "All days of the year grouped by months"
	case Quarters:
		return "All days of the year grouped by quarters"
	case Life:
		return "Weeks of your life"
	case Goal:
		return "Days until a goal deadline"
	}
	return ""
}

// DotState classifies a cell relative to today.
type DotState int

const (
	Past DotState = iota
	Current
	Future
)

func (s DotState) String() string {
	switch s {
	case Past:
		return "past"
	case Current:
		return "current"
	case Future:
		return "future"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s DotState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Cell is one position of a matrix. Absent cells (Present == false) hold no
// date and render as empty space.
type Cell struct {
	State   DotState
	Present bool
}

// Matrix is a rows × cols container of cells, stored row-major.
type Matrix struct {
	Rows  int
	Cols  int
	cells []Cell
}

// NewMatrix returns a matrix with every cell absent.
func NewMatrix(rows, cols int) Matrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return Matrix{Rows: rows, Cols: cols, cells: make([]Cell, rows*cols)}
}

// At returns the cell at row r, column c. Out of range positions are absent.
func (m Matrix) At(r, c int) Cell {
	if r < 0 || r >= m.Rows || c < 0 || c >= m.Cols {
		return Cell{}
	}
	return m.cells[r*m.Cols+c]
}

func (m Matrix) set(r, c int, s DotState) {
	m.cells[r*m.Cols+c] = Cell{State: s, Present: true}
}

// Each calls fn for every cell, present or not, in row-major order.
func (m Matrix) Each(fn func(r, c int, cell Cell)) {
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			fn(r, c, m.cells[r*m.Cols+c])
		}
	}
}

// Present returns the present cells in row-major order.
func (m Matrix) Present() []Cell {
	out := make([]Cell, 0, len(m.cells))
	for _, c := range m.cells {
		if c.Present {
			out = append(out, c)
		}
	}
	return out
}

// Block is a named sub-grid. Flat views have a single unnamed block.
type Block struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Cells Matrix `json:"-" yaml:"-"`
}

// Grid is the dot layout for one view.
type Grid struct {
	View   View
	Blocks []Block
}

// Tally counts cells by state.
type Tally struct {
	Past    int `json:"past" yaml:"past"`
	Current int `json:"current" yaml:"current"`
	Future  int `json:"future" yaml:"future"`
	Absent  int `json:"absent" yaml:"absent"`
}

// Dates is the number of cells that stand for a real date.
func (t Tally) Dates() int { return t.Past + t.Current + t.Future }

// Tally counts every cell of every block.
func (g Grid) Tally() Tally {
	var t Tally
	for _, b := range g.Blocks {
		b.Cells.Each(func(_, _ int, cell Cell) {
			switch {
			case !cell.Present:
				t.Absent++
			case cell.State == Past:
				t.Past++
			case cell.State == Current:
				t.Current++
			default:
				t.Future++
			}
		})
	}
	return t
}

// Unit names what a single dot stands for.
type Unit string

const (
	UnitDays  Unit = "days"
	UnitWeeks Unit = "weeks"
)

// Stats summarizes progress through a grid's date range.
type Stats struct {
	Unit    Unit    `json:"unit" yaml:"unit"`
	Elapsed int     `json:"elapsed" yaml:"elapsed"`
	Left    int     `json:"left" yaml:"left"`
	Total   int     `json:"total" yaml:"total"`
	Percent float64 `json:"percentElapsed" yaml:"percentElapsed"`
}

// PercentString formats Percent the way labels show it: one decimal at most,
// no trailing ".0".
func (s Stats) PercentString() string {
	return strconv.FormatFloat(s.Percent, 'f', -1, 64)
}

// percent returns elapsed/total as a percentage rounded to one decimal and
// clamped to [0, 100].
func percent(elapsed, total int) float64 {
	if total <= 0 {
		return 0
	}
	elapsed = clamp(elapsed, 0, total)
	p := math.Round(float64(elapsed)/float64(total)*1000) / 10
	return math.Min(100, math.Max(0, p))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
