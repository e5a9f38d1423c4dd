package holiday

import (
	"errors"
	"time"
)

const (
	KindFixed   = "FIXED"
	KindMovable = "MOVABLE"
)

const dateLayout = "2006-01-02"

var ErrHolidayNotFound = errors.New("holiday not found")

// Holiday is one non-working day. Date is a plain YYYY-MM-DD string in
// local civil time; it must never pass through a UTC conversion, a
// one-day drift would reclassify the whole day.
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// Calendar answers holiday lookups by calendar date.
type Calendar struct {
	dates map[string]struct{}
}

func NewCalendar(holidays []Holiday) Calendar {
	dates := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		dates[h.Date] = struct{}{}
	}
	return Calendar{dates: dates}
}

func (c Calendar) Contains(date string) bool {
	_, ok := c.dates[date]
	return ok
}

// HolidayOrSunday reports whether the date counts as a non-working day
// for surcharge purposes. Sundays always do, listed or not.
func (c Calendar) HolidayOrSunday(date time.Time) bool {
	if date.Weekday() == time.Sunday {
		return true
	}
	return c.Contains(date.Format(dateLayout))
}
