package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// LeagueTimezone is the zone the NHL uses for schedule dates.
const LeagueTimezone = "America/New_York"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// LeagueLocation returns the league's schedule timezone, falling back to UTC
// when the zone database is unavailable.
func LeagueLocation() *time.Location {
	if loc, err := time.LoadLocation(LeagueTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// LeagueDate returns the schedule date for the given instant, as the league
// counts days. A late game in Pacific time still belongs to the Eastern date.
func LeagueDate(now time.Time) string {
	return FormatDate(now.In(LeagueLocation()))
}

// LocalTime renders a UTC instant as local wall-clock time with a zone
// abbreviation, e.g. "7:30 PM EST". Zero times render empty.
func LocalTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	local := t.Local()
	abbrev, offset := local.Zone()
	if abbrev == "" {
		abbrev = fmt.Sprintf("UTC%+03d:%02d", offset/3600, abs(offset%3600)/60)
	}
	return fmt.Sprintf("%s %s", local.Format("3:04 PM"), abbrev)
}

// DayLabel names a date relative to today: Today, Yesterday, Tomorrow, or
// the weekday name.
func DayLabel(date, today string) string {
	d, err := ParseDate(date)
	if err != nil {
		return date
	}
	t, err := ParseDate(today)
	if err != nil {
		return d.Format("Monday")
	}
	switch int(d.Sub(t).Hours() / 24) {
	case 0:
		return "Today"
	case -1:
		return "Yesterday"
	case 1:
		return "Tomorrow"
	default:
		return d.Format("Monday")
	}
}

// ShiftDate moves a YYYY-MM-DD date by the given number of days.
func ShiftDate(date string, days int) string {
	d, err := ParseDate(date)
	if err != nil {
		return date
	}
	return FormatDate(d.AddDate(0, 0, days))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
