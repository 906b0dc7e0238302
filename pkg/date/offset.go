package date

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// maxOffsetValue bounds each number in an offset so the sum stays far from
// integer overflow.
const maxOffsetValue = 1000000

var (
	offsetPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	offsetUnits   = map[string]Offset{
		"d":      {Days: 1},
		"day":    {Days: 1},
		"days":   {Days: 1},
		"w":      {Days: 7},
		"wk":     {Days: 7},
		"wks":    {Days: 7},
		"week":   {Days: 7},
		"weeks":  {Days: 7},
		"m":      {Months: 1},
		"mo":     {Months: 1},
		"month":  {Months: 1},
		"months": {Months: 1},
		"y":      {Years: 1},
		"yr":     {Years: 1},
		"year":   {Years: 1},
		"years":  {Years: 1},
	}
)

// Offset is a calendar distance. Months and years are applied with
// time.AddDate semantics, so they follow month lengths.
type Offset struct {
	Years  int
	Months int
	Days   int
}

// IsZero reports whether o moves nothing.
func (o Offset) IsZero() bool { return o.Years == 0 && o.Months == 0 && o.Days == 0 }

// Add returns d moved by o.
func (d Date) Add(o Offset) Date {
	return d.AddDate(o.Years, o.Months, o.Days)
}

// IsOffset reports whether s looks like a relative offset ("+12w") rather
// than an absolute date.
func IsOffset(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "+")
}

// ParseOffset parses a compact offset such as "+100d", "12w" or "1y6m".
// A leading "+" is optional.
func ParseOffset(input string) (Offset, error) {
	remaining := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(input), "+"))
	if remaining == "" {
		return Offset{}, fmt.Errorf("date: empty offset")
	}

	var total Offset
	for len(remaining) > 0 {
		matches := offsetPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return Offset{}, fmt.Errorf("date: invalid offset segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return Offset{}, fmt.Errorf("date: invalid offset value %q: %w", matches[1], err)
		}
		if value > maxOffsetValue {
			return Offset{}, fmt.Errorf("date: offset value %q is larger than %d", matches[1], maxOffsetValue)
		}
		unit, ok := offsetUnits[matches[2]]
		if !ok {
			return Offset{}, fmt.Errorf("date: unsupported offset unit %q", matches[2])
		}
		total.Years += unit.Years * value
		total.Months += unit.Months * value
		total.Days += unit.Days * value

		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}

	if total.IsZero() {
		return Offset{}, fmt.Errorf("date: offset must be greater than zero")
	}
	return total, nil
}

// String renders o using y/m/d tokens, for example "+1y6m".
func (o Offset) String() string {
	var b strings.Builder
	b.WriteString("+")
	if o.Years != 0 {
		fmt.Fprintf(&b, "%dy", o.Years)
	}
	if o.Months != 0 {
		fmt.Fprintf(&b, "%dm", o.Months)
	}
	if o.Days != 0 || o.IsZero() {
		fmt.Fprintf(&b, "%dd", o.Days)
	}
	return b.String()
}
