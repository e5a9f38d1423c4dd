package liquidation

import (
	"testing"
)

func TestClassifyCoversAllCombinations(t *testing.T) {
	cases := []struct {
		holiday, night, overtime bool
		want                     Category
	}{
		{false, false, false, CategoryNone},
		{false, true, false, NightSurchargeWeekday},
		{true, false, false, DaySurchargeHoliday},
		{true, true, false, NightSurchargeHoliday},
		{false, false, true, OvertimeDayWeekday},
		{false, true, true, OvertimeNightWeekday},
		{true, false, true, OvertimeDayHoliday},
		{true, true, true, OvertimeNightHoliday},
	}
	for _, tc := range cases {
		got := Classify(tc.holiday, tc.night, tc.overtime)
		if got != tc.want {
			t.Errorf("Classify(%v, %v, %v) = %v, want %v", tc.holiday, tc.night, tc.overtime, got, tc.want)
		}
	}
}

func TestCategoryRates(t *testing.T) {
	rates := map[Category]float64{
		NightSurchargeWeekday: 0.35,
		DaySurchargeHoliday:   2.00,
		NightSurchargeHoliday: 2.35,
		OvertimeDayWeekday:    1.25,
		OvertimeNightWeekday:  1.75,
		OvertimeDayHoliday:    2.25,
		OvertimeNightHoliday:  2.75,
		CategoryNone:          0,
	}
	for cat, want := range rates {
		if got := cat.Rate(); got != want {
			t.Errorf("%s rate = %v, want %v", cat, got, want)
		}
	}
}

func TestShiftMinutesHalfOpenInterval(t *testing.T) {
	d := day(t, "2025-03-03")
	events, err := ShiftMinutes(d, Shift{Entry: "08:00", Exit: "09:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 60 {
		t.Fatalf("expected 60 minutes, got %d", len(events))
	}
	if got := events[0].At.Format("15:04"); got != "08:00" {
		t.Fatalf("first minute at %s, want 08:00", got)
	}
	if got := events[59].At.Format("15:04"); got != "08:59" {
		t.Fatalf("last minute at %s, want 08:59", got)
	}
}

func TestShiftMinutesNightBoundaries(t *testing.T) {
	d := day(t, "2025-03-03")

	evening, err := ShiftMinutes(d, Shift{Entry: "17:59", Exit: "18:01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if evening[0].Night {
		t.Error("17:59 must count as day")
	}
	if !evening[1].Night {
		t.Error("18:00 must count as night")
	}

	morning, err := ShiftMinutes(d, Shift{Entry: "05:59", Exit: "06:01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !morning[0].Night {
		t.Error("05:59 must count as night")
	}
	if morning[1].Night {
		t.Error("06:00 must count as day")
	}
}

func TestShiftMinutesMidnightWrap(t *testing.T) {
	d := day(t, "2025-03-03")
	events, err := ShiftMinutes(d, Shift{Entry: "20:00", Exit: "02:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 360 {
		t.Fatalf("expected 360 minutes, got %d", len(events))
	}
	last := events[len(events)-1]
	if got := last.At.Format("2006-01-02 15:04"); got != "2025-03-04 01:59" {
		t.Fatalf("last minute at %s, want 2025-03-04 01:59", got)
	}
	for i, ev := range events {
		if !ev.Night {
			t.Fatalf("minute %d (%s) must be night", i, ev.At.Format("15:04"))
		}
	}
}

func TestShiftMinutesSundayFlag(t *testing.T) {
	d := day(t, "2025-03-02") // a Sunday
	events, err := ShiftMinutes(d, Shift{Entry: "08:00", Exit: "09:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !events[0].HolidayOrSunday {
		t.Fatal("Sunday minutes must carry the holiday flag even when unlisted")
	}
}

func TestShiftMinutesRejectsMalformedTime(t *testing.T) {
	d := day(t, "2025-03-03")
	if _, err := ShiftMinutes(d, Shift{Entry: "8:00", Exit: "09:00"}); err == nil {
		t.Fatal("expected error for a single-digit hour")
	}
}
