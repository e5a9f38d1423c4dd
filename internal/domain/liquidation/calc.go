package liquidation

import "sort"

// accumulator is the running state of one settlement fold. Category
// depends on the global minute count, so the fold is strictly
// sequential: date ascending, shift 1 before shift 2.
type accumulator struct {
	minuteRate float64
	cap        float64

	totalMinutes int
	minutes      [categoryCount]int
	amounts      [categoryCount]float64

	overtimeAccrued     float64
	capNotice           *CapNotice
	compensatoryMinutes int
}

func (a *accumulator) consume(ev MinuteEvent) {
	a.totalMinutes++
	overtime := a.totalMinutes > StandardMonthlyMinutes

	cat := Classify(ev.HolidayOrSunday, ev.Night, overtime)
	if cat == CategoryNone {
		return
	}
	a.minutes[cat]++
	if !overtime {
		return
	}

	// Overtime money accrues per minute so the cap crossing can be
	// pinned to an exact date and time. Once the cap is reached the
	// minute still counts, but its value converts to compensatory time.
	if a.overtimeAccrued >= a.cap {
		a.compensatoryMinutes++
		return
	}
	value := a.minuteRate * cat.Rate()
	a.overtimeAccrued += value
	a.amounts[cat] += value
	if a.overtimeAccrued >= a.cap && a.capNotice == nil {
		a.capNotice = &CapNotice{
			Date:   ev.At.Format("2006-01-02"),
			Time:   ev.At.Format("15:04"),
			Excess: a.overtimeAccrued - a.cap,
		}
	}
}

// Calculate settles one month. It refuses to accumulate anything while
// any day still has a validation error; warnings (overnight shifts) are
// carried through. Calculate is a pure function of its inputs: the same
// days and context always produce the same result.
func Calculate(days []DayRecord, mc MonthlyContext) Result {
	validation := ValidateMonth(days)
	if !validation.Valid() {
		return Result{Errors: validation.Errors, Warnings: validation.Warnings}
	}

	ordered := make([]DayRecord, len(days))
	copy(ordered, days)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	acc := accumulator{minuteRate: mc.MinuteRate(), cap: mc.OvertimeCap()}
	for _, day := range ordered {
		events, err := dayMinutes(day)
		if err != nil {
			// Malformed times should have been caught by validation; a
			// day that still fails is excluded rather than crashing.
			continue
		}
		for _, ev := range events {
			acc.consume(ev)
		}
	}

	return acc.result(mc, validation.Warnings)
}

func (a *accumulator) result(mc MonthlyContext, warnings []Issue) Result {
	minuteRate := mc.MinuteRate()

	// Surcharge money is minutes × rate, computed once at the end like
	// the per-category report lines; only overtime needs the per-minute
	// accrual above for the cap.
	surcharge := func(cat Category) Breakdown {
		return Breakdown{
			Minutes: a.minutes[cat],
			Amount:  minuteRate * float64(a.minutes[cat]) * cat.Rate(),
		}
	}
	overtime := func(cat Category) Breakdown {
		return Breakdown{Minutes: a.minutes[cat], Amount: a.amounts[cat]}
	}

	res := Result{
		TotalMinutesWorked:    a.totalMinutes,
		NightSurchargeWeekday: surcharge(NightSurchargeWeekday),
		DaySurchargeHoliday:   surcharge(DaySurchargeHoliday),
		NightSurchargeHoliday: surcharge(NightSurchargeHoliday),
		OvertimeDayWeekday:    overtime(OvertimeDayWeekday),
		OvertimeNightWeekday:  overtime(OvertimeNightWeekday),
		OvertimeDayHoliday:    overtime(OvertimeDayHoliday),
		OvertimeNightHoliday:  overtime(OvertimeNightHoliday),
		CapReachedAt:          a.capNotice,
		Warnings:              warnings,
	}

	baseMinutes := a.totalMinutes
	if baseMinutes > StandardMonthlyMinutes {
		baseMinutes = StandardMonthlyMinutes
	}
	// Normal hours are the remainder of the base 190h after the
	// surcharge buckets, not an independently tracked counter.
	res.NormalMinutes = baseMinutes -
		a.minutes[NightSurchargeWeekday] -
		a.minutes[DaySurchargeHoliday] -
		a.minutes[NightSurchargeHoliday]

	res.TotalSurcharge = res.NightSurchargeWeekday.Amount +
		res.DaySurchargeHoliday.Amount +
		res.NightSurchargeHoliday.Amount

	res.TotalOvertime = a.overtimeAccrued
	if capAmount := mc.OvertimeCap(); res.TotalOvertime > capAmount {
		res.TotalOvertime = capAmount
	}
	res.TotalPayable = res.TotalSurcharge + res.TotalOvertime
	res.CompensatoryHours = a.compensatoryMinutes / 60

	return res
}
