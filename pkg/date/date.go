// Package date provides a calendar date value with no time-of-day component.
//
// All arithmetic is done on whole days so that wall-clock skew never moves a
// value across a day boundary.
package date

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutISO  = "2006-01-02"
	secondsDay = 24 * 60 * 60

	// MinYear is the earliest year Parse accepts. Year 1 would collide with
	// the zero Date.
	MinYear = 1900
)

// Date is a calendar day. The zero value is not a valid date; see IsZero.
type Date struct {
	t time.Time // always midnight UTC
}

// New returns the date for year, month and day, normalizing overflow the way
// time.Date does (for example April 31 becomes May 1).
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime returns the calendar date t falls on in its own location.
func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return New(y, m, d)
}

// Today returns the date of now as seen in loc. A nil loc means UTC.
func Today(now time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return FromTime(now.In(loc))
}

// Parse reads a YYYY-MM-DD date.
func Parse(s string) (Date, error) {
	t, err := time.Parse(layoutISO, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("date: invalid date %q: %w", s, err)
	}
	if t.Year() < MinYear {
		return Date{}, fmt.Errorf("date: %q is before %d", s, MinYear)
	}
	return FromTime(t), nil
}

// MustParse is Parse for constants and tests.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero reports whether d is the zero (invalid) date.
func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// YearDay returns the 1-based day of the year.
func (d Date) YearDay() int { return d.t.YearDay() }

// Time returns midnight UTC of d.
func (d Date) Time() time.Time { return d.t }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(layoutISO)
}

// AddDays returns d moved by n days.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// AddDate returns d moved by the given years, months and days.
func (d Date) AddDate(years, months, days int) Date {
	return Date{t: d.t.AddDate(years, months, days)}
}

// Sub returns the number of whole days from o to d.
func (d Date) Sub(o Date) int {
	return int(d.unixDays() - o.unixDays())
}

// DaysBetween returns the number of whole days from a to b.
func DaysBetween(a, b Date) int { return b.Sub(a) }

func (d Date) unixDays() int64 {
	return d.t.Unix() / secondsDay
}

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// Min returns the earlier of a and b.
func Min(a, b Date) Date {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the later of a and b.
func Max(a, b Date) Date {
	if b.After(a) {
		return b
	}
	return a
}

// Clamp limits d to [lo, hi]. When hi is before lo, lo wins.
func Clamp(d, lo, hi Date) Date {
	return Max(lo, Min(d, hi))
}

func (d Date) StartOfYear() Date { return New(d.Year(), time.January, 1) }
func (d Date) EndOfYear() Date   { return New(d.Year(), time.December, 31) }

func (d Date) StartOfMonth() Date { return New(d.Year(), d.Month(), 1) }
func (d Date) EndOfMonth() Date {
	return New(d.Year(), d.Month(), DaysInMonth(d.Year(), d.Month()))
}

// Quarter returns 1..4.
func (d Date) Quarter() int { return (int(d.Month())-1)/3 + 1 }

func (d Date) StartOfQuarter() Date {
	first := time.Month((d.Quarter()-1)*3 + 1)
	return New(d.Year(), first, 1)
}

func (d Date) EndOfQuarter() Date {
	last := time.Month(d.Quarter() * 3)
	return New(d.Year(), last, DaysInMonth(d.Year(), last))
}

// StartOfWeek returns the first day of the week containing d, which may fall
// in the previous month or year.
func (d Date) StartOfWeek(ws WeekStart) Date {
	return d.AddDays(-ws.Row(d.Weekday()))
}

// IsLeapYear reports whether year has 366 days.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text is the zero date.
func (d *Date) UnmarshalText(b []byte) error {
	if len(strings.TrimSpace(string(b))) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
