package liquidation

// Standard monthly working time and derived rates. The 190-hour divisor
// is the legal constant for this shift regime, not a configuration knob.
const (
	StandardMonthlyHours   = 190
	StandardMonthlyMinutes = StandardMonthlyHours * 60

	// Overtime pay is capped at half the monthly salary; minutes worked
	// beyond the cap convert to compensatory time off.
	OvertimeCapFactor = 0.5

	dayStartHour   = 6
	nightStartHour = 18
)

// Category tags one worked minute. Surcharge categories apply within the
// first 190 monthly hours, overtime categories beyond them. CategoryNone
// marks ordinary weekday daytime minutes inside the base 190 hours,
// which earn no premium.
type Category int

const (
	CategoryNone Category = iota
	NightSurchargeWeekday
	DaySurchargeHoliday
	NightSurchargeHoliday
	OvertimeDayWeekday
	OvertimeNightWeekday
	OvertimeDayHoliday
	OvertimeNightHoliday

	categoryCount
)

// Rate returns the percentage multiplier applied to the per-minute wage.
// Surcharge rates are the premium only; the base minute is already paid
// inside the monthly salary.
func (c Category) Rate() float64 {
	switch c {
	case NightSurchargeWeekday:
		return 0.35
	case DaySurchargeHoliday:
		return 2.00
	case NightSurchargeHoliday:
		return 2.35
	case OvertimeDayWeekday:
		return 1.25
	case OvertimeNightWeekday:
		return 1.75
	case OvertimeDayHoliday:
		return 2.25
	case OvertimeNightHoliday:
		return 2.75
	default:
		return 0
	}
}

func (c Category) String() string {
	switch c {
	case NightSurchargeWeekday:
		return "nightSurchargeWeekday"
	case DaySurchargeHoliday:
		return "daySurchargeHoliday"
	case NightSurchargeHoliday:
		return "nightSurchargeHoliday"
	case OvertimeDayWeekday:
		return "overtimeDayWeekday"
	case OvertimeNightWeekday:
		return "overtimeNightWeekday"
	case OvertimeDayHoliday:
		return "overtimeDayHoliday"
	case OvertimeNightHoliday:
		return "overtimeNightHoliday"
	default:
		return "none"
	}
}

// Classify maps one minute to exactly one category. The three booleans
// cover all eight cases; no minute can land in two buckets.
func Classify(holidayOrSunday, night, overtime bool) Category {
	switch {
	case overtime && holidayOrSunday && night:
		return OvertimeNightHoliday
	case overtime && holidayOrSunday:
		return OvertimeDayHoliday
	case overtime && night:
		return OvertimeNightWeekday
	case overtime:
		return OvertimeDayWeekday
	case holidayOrSunday && night:
		return NightSurchargeHoliday
	case holidayOrSunday:
		return DaySurchargeHoliday
	case night:
		return NightSurchargeWeekday
	default:
		return CategoryNone
	}
}
