package date

import (
	"fmt"
	"strings"
	"time"
)

// WeekStart selects the first day of a week.
type WeekStart string

const (
	Monday WeekStart = "monday"
	Sunday WeekStart = "sunday"
)

// ParseWeekStart accepts "monday"/"sunday" (and mon/sun), case-insensitive.
func ParseWeekStart(s string) (WeekStart, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monday", "mon":
		return Monday, nil
	case "sunday", "sun":
		return Sunday, nil
	}
	return "", fmt.Errorf("date: unknown week start %q (expected monday or sunday)", s)
}

// Row maps a weekday onto its 0-based position within a week. With a Monday
// start Sunday is row 6; with a Sunday start the weekday number is the row.
func (ws WeekStart) Row(wd time.Weekday) int {
	if ws == Sunday {
		return int(wd)
	}
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}

func (ws WeekStart) String() string {
	if ws == Sunday {
		return string(Sunday)
	}
	return string(Monday)
}
