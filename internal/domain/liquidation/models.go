package liquidation

import "time"

// Shift is one clock-in/clock-out pair, both HH:mm strings as entered.
// An exit earlier than the entry means the shift runs past midnight.
type Shift struct {
	Entry string `json:"entry"`
	Exit  string `json:"exit"`
}

func (s Shift) Empty() bool {
	return s.Entry == "" && s.Exit == ""
}

// DayRecord is one calendar day of the month being settled.
type DayRecord struct {
	Date    time.Time `json:"date"`
	Shift1  Shift     `json:"shift1"`
	Shift2  Shift     `json:"shift2"`
	Holiday bool      `json:"holiday"`
}

// HolidayOrSunday reports whether the day is paid at holiday rates.
// Sundays count even when the holiday calendar does not list them.
func (d DayRecord) HolidayOrSunday() bool {
	return d.Holiday || d.Date.Weekday() == time.Sunday
}

// MonthlyContext scopes one settlement run.
type MonthlyContext struct {
	MonthlySalary float64 `json:"monthlySalary"`
}

func (c MonthlyContext) HourlyRate() float64 {
	return c.MonthlySalary / StandardMonthlyHours
}

func (c MonthlyContext) MinuteRate() float64 {
	return c.HourlyRate() / 60
}

func (c MonthlyContext) OvertimeCap() float64 {
	return c.MonthlySalary * OvertimeCapFactor
}

// Breakdown is the per-category output: worked minutes and money.
type Breakdown struct {
	Minutes int     `json:"minutes"`
	Amount  float64 `json:"amount"`
}

// CapNotice records the minute at which accrued overtime money crossed
// the 50%-of-salary cap, and by how much that minute overshot it.
type CapNotice struct {
	Date   string  `json:"date"`
	Time   string  `json:"time"`
	Excess float64 `json:"excess"`
}

// Result is the full settlement for one month.
type Result struct {
	TotalMinutesWorked int `json:"totalMinutesWorked"`
	NormalMinutes      int `json:"normalMinutes"`

	NightSurchargeWeekday Breakdown `json:"nightSurchargeWeekday"`
	DaySurchargeHoliday   Breakdown `json:"daySurchargeHoliday"`
	NightSurchargeHoliday Breakdown `json:"nightSurchargeHoliday"`
	OvertimeDayWeekday    Breakdown `json:"overtimeDayWeekday"`
	OvertimeNightWeekday  Breakdown `json:"overtimeNightWeekday"`
	OvertimeDayHoliday    Breakdown `json:"overtimeDayHoliday"`
	OvertimeNightHoliday  Breakdown `json:"overtimeNightHoliday"`

	TotalSurcharge    float64    `json:"totalSurcharge"`
	TotalOvertime     float64    `json:"totalOvertime"`
	TotalPayable      float64    `json:"totalPayable"`
	CompensatoryHours int        `json:"compensatoryHours"`
	CapReachedAt      *CapNotice `json:"capReachedAt,omitempty"`

	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
}

// CategoryBreakdown returns the breakdown for one category, for callers
// that iterate the table instead of naming fields.
func (r Result) CategoryBreakdown(c Category) Breakdown {
	switch c {
	case NightSurchargeWeekday:
		return r.NightSurchargeWeekday
	case DaySurchargeHoliday:
		return r.DaySurchargeHoliday
	case NightSurchargeHoliday:
		return r.NightSurchargeHoliday
	case OvertimeDayWeekday:
		return r.OvertimeDayWeekday
	case OvertimeNightWeekday:
		return r.OvertimeNightWeekday
	case OvertimeDayHoliday:
		return r.OvertimeDayHoliday
	case OvertimeNightHoliday:
		return r.OvertimeNightHoliday
	default:
		return Breakdown{Minutes: r.NormalMinutes}
	}
}
