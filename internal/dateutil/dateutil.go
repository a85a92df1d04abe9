package dateutil

import "time"

// Layout is the textual date form used by the booking site's date picker.
const Layout = "02/01/2006"

func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

// MonthYear converts "14/12/2025" into the calendar widget's month header
// ("December 2025") and the day number without a leading zero.
func MonthYear(s string) (string, int, error) {
	t, err := Parse(s)
	if err != nil {
		return "", 0, err
	}
	return t.Format("January 2006"), t.Day(), nil
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
