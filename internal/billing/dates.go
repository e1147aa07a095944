package billing

import "time"

const day = 24 * time.Hour

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// ClampedDate builds a date for the given day of month. Months outside 1-12
// roll over into neighbouring years, and a day past the end of the month is
// clamped to the month's last day (day 31 in February yields Feb 28/29).
func ClampedDate(year int, month time.Month, dayOfMonth, hour, min, sec, nsec int, loc *time.Location) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	year, month = first.Year(), first.Month()

	if last := DaysInMonth(year, month, loc); dayOfMonth > last {
		dayOfMonth = last
	}
	if dayOfMonth < 1 {
		dayOfMonth = 1
	}

	return time.Date(year, month, dayOfMonth, hour, min, sec, nsec, loc)
}

// AddMonths shifts t by the given number of calendar months keeping the time
// of day. The day of month is clamped like ClampedDate.
func AddMonths(t time.Time, months int) time.Time {
	return ClampedDate(t.Year(), t.Month()+time.Month(months), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last millisecond of t's day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// MonthsBetween counts calendar months from earlier to later ignoring days.
func MonthsBetween(later, earlier time.Time) int {
	return (later.Year()-earlier.Year())*12 + int(later.Month()) - int(earlier.Month())
}

// DaysUntil returns ceil((target - now) / 24h). Past targets give zero or a
// negative count.
func DaysUntil(now, target time.Time) int {
	diff := target.Sub(now)
	days := int(diff / day)
	if diff%day > 0 {
		days++
	}
	return days
}

// SameMonth reports whether a and b fall in the same calendar month and year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
