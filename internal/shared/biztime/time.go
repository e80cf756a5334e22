// Package biztime centralizes time handling. All storage and transport use
// UTC; display formatting happens at the edges.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatThread renders a timestamp the way the tracking page shows
// conversation entries, e.g. "Jan 02, 2006 15:04".
func FormatThread(t time.Time) string {
	return t.Format("Jan 02, 2006 15:04")
}

// FormatShort renders a timestamp for the staff message panel,
// e.g. "Jan 02, 15:04".
func FormatShort(t time.Time) string {
	return t.Format("Jan 02, 15:04")
}

// FormatDate renders a date only, e.g. "Jan 02, 2006".
func FormatDate(t time.Time) string {
	return t.Format("Jan 02, 2006")
}
