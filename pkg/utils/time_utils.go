package utils

import "time"

func NowUnixSeconds() int64 { return time.Now().Unix() }

// AddCalendarMonths advances t by the given number of calendar months,
// clamping the day-of-month to the last day of the target month instead of
// letting it overflow into the next one (Jan 31 +1 -> Feb 28/29, not Mar 2/3).
// Year boundaries roll over normally.
func AddCalendarMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()

	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); d > last {
		d = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
