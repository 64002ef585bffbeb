package finder

import "time"

// SearchWindow returns the lookup bounds: now, and the same wall-clock time
// months later, both in loc. A day that does not exist in the target month
// is clamped to the month's last day, so Aug 31 plus six months is Feb 28.
func SearchWindow(now time.Time, loc *time.Location, months int) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	left := now.In(loc)
	return left, addMonths(left, months)
}

func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hour, minute, sec, t.Nanosecond(), t.Location())
}
