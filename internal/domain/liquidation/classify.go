package liquidation

import "time"

// MinuteEvent is one worked minute, tagged for classification. At marks
// the start of the minute.
type MinuteEvent struct {
	At              time.Time
	Night           bool
	HolidayOrSunday bool
}

func isNightHour(hour int) bool {
	return hour >= nightStartHour || hour < dayStartHour
}

// ShiftMinutes expands one entry→exit interval into per-minute events
// over a half-open interval: the exit instant itself is not worked. When
// the exit time-of-day is earlier than the entry, the exit is advanced
// one calendar day. The event count equals the duration in whole
// minutes; there is no sub-minute accounting.
func ShiftMinutes(day DayRecord, shift Shift) ([]MinuteEvent, error) {
	entry, err := parseClock(shift.Entry)
	if err != nil {
		return nil, err
	}
	exit, err := parseClock(shift.Exit)
	if err != nil {
		return nil, err
	}
	if exit < entry {
		exit += 24 * 60
	}

	date := day.Date
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, entry, 0, 0, date.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), 0, exit, 0, 0, date.Location())
	holidayOrSunday := day.HolidayOrSunday()

	events := make([]MinuteEvent, 0, exit-entry)
	for at := start; at.Before(end); at = at.Add(time.Minute) {
		events = append(events, MinuteEvent{
			At:              at,
			Night:           isNightHour(at.Hour()),
			HolidayOrSunday: holidayOrSunday,
		})
	}
	return events, nil
}

// dayMinutes expands both shifts of a day in order. An error on either
// shift discards the whole day.
func dayMinutes(day DayRecord) ([]MinuteEvent, error) {
	var events []MinuteEvent
	for _, shift := range []Shift{day.Shift1, day.Shift2} {
		if shift.Empty() {
			continue
		}
		shiftEvents, err := ShiftMinutes(day, shift)
		if err != nil {
			return nil, err
		}
		events = append(events, shiftEvents...)
	}
	return events, nil
}
