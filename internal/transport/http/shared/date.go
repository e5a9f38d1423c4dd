package shared

import (
	"fmt"
	"time"
)

// ParseDate accepts a plain YYYY-MM-DD value in local civil time.
// Holiday and shift dates must never be shifted by a UTC conversion.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, time.Local)
}

// ParseMonth accepts YYYY-MM and returns the first day of that month.
func ParseMonth(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: want YYYY-MM", value)
	}
	return parsed, nil
}

// FormatMinutes renders a minute count as H:MM for report lines.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
