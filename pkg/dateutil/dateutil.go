package dateutil

import "time"

const DayLayout = "2006-01-02"

// DayKey formats t as a calendar-day key. Two times on the same local day
// produce the same key.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// UntilEndOfDay returns the duration from t to the last millisecond of its
// calendar day.
func UntilEndOfDay(t time.Time) time.Duration {
	endOfDay := time.Date(
		t.Year(), t.Month(), t.Day(), 23, 59, 59,
		int(999*time.Millisecond), t.Location(),
	)

	return endOfDay.Sub(t)
}
