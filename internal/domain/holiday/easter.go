package holiday

import "time"

// Easter returns Easter Sunday for the given year using the
// Meeus/Jones/Butcher Gregorian algorithm.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}

// shiftToMonday applies the Emiliani rule: a holiday that does not fall
// on a Monday moves to the following Monday.
func shiftToMonday(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 1 {
		return date
	}
	return date.AddDate(0, 0, (8-weekday)%7)
}
