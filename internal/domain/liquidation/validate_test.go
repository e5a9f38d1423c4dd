package liquidation

import (
	"strings"
	"testing"
	"time"
)

func day(t *testing.T, date string) DayRecord {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	return DayRecord{Date: parsed}
}

func findIssue(issues []Issue, code string) *Issue {
	for i := range issues {
		if issues[i].Code == code {
			return &issues[i]
		}
	}
	return nil
}

func TestValidateDayCompleteShift(t *testing.T) {
	d := day(t, "2025-03-03")
	d.Shift1 = Shift{Entry: "08:00", Exit: "16:00"}

	result := ValidateDay(d)
	if !result.Valid() {
		t.Fatalf("expected valid day, got errors %+v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %+v", result.Warnings)
	}
}

func TestValidateDayMissingExit(t *testing.T) {
	d := day(t, "2025-03-03")
	d.Shift1 = Shift{Entry: "08:00"}

	result := ValidateDay(d)
	if result.Valid() {
		t.Fatal("expected an error for a missing exit")
	}
	issue := findIssue(result.Errors, CodeMissingExit)
	if issue == nil {
		t.Fatalf("expected %s, got %+v", CodeMissingExit, result.Errors)
	}
	if len(issue.Fields) != 1 || issue.Fields[0] != "exit1" {
		t.Fatalf("expected field exit1, got %v", issue.Fields)
	}
}

func TestValidateDayMissingEntry(t *testing.T) {
	d := day(t, "2025-03-03")
	d.Shift2 = Shift{Exit: "16:00"}

	result := ValidateDay(d)
	issue := findIssue(result.Errors, CodeMissingEntry)
	if issue == nil {
		t.Fatalf("expected %s, got %+v", CodeMissingEntry, result.Errors)
	}
	if issue.Fields[0] != "entry2" {
		t.Fatalf("expected field entry2, got %v", issue.Fields)
	}
}

func TestValidateDayInvalidTime(t *testing.T) {
	cases := []string{"8:00", "24:00", "12:60", "ab:cd", "12.30", "12:3"}
	for _, bad := range cases {
		d := day(t, "2025-03-03")
		d.Shift1 = Shift{Entry: bad, Exit: "16:00"}
		result := ValidateDay(d)
		if findIssue(result.Errors, CodeInvalidTime) == nil {
			t.Errorf("entry %q: expected %s, got %+v", bad, CodeInvalidTime, result.Errors)
		}
	}
}

func TestValidateDayZeroDuration(t *testing.T) {
	d := day(t, "2025-03-03")
	d.Shift1 = Shift{Entry: "08:00", Exit: "08:00"}

	result := ValidateDay(d)
	if findIssue(result.Errors, CodeZeroDuration) == nil {
		t.Fatalf("expected %s, got %+v", CodeZeroDuration, result.Errors)
	}
}

func TestValidateDayOvernightIsWarningOnly(t *testing.T) {
	d := day(t, "2025-03-03")
	d.Shift1 = Shift{Entry: "20:00", Exit: "02:00"}

	result := ValidateDay(d)
	if !result.Valid() {
		t.Fatalf("overnight shift must not block, got errors %+v", result.Errors)
	}
	if findIssue(result.Warnings, CodeDifferentDay) == nil {
		t.Fatalf("expected %s warning, got %+v", CodeDifferentDay, result.Warnings)
	}
}

func TestValidateDayOverlap(t *testing.T) {
	d := day(t, "2025-03-03")
	d.Shift1 = Shift{Entry: "08:00", Exit: "14:00"}
	d.Shift2 = Shift{Entry: "12:00", Exit: "18:00"}

	result := ValidateDay(d)
	issue := findIssue(result.Errors, CodeOverlap)
	if issue == nil {
		t.Fatalf("expected %s, got %+v", CodeOverlap, result.Errors)
	}
	if len(issue.Fields) != 4 {
		t.Fatalf("overlap must flag all four fields, got %v", issue.Fields)
	}
}

func TestValidateDayOverlapWithOvernightFirstShift(t *testing.T) {
	// 22:00-04:00 runs into the next morning; a second overnight shift
	// starting at 23:00 collides with its wrapped tail.
	d := day(t, "2025-03-03")
	d.Shift1 = Shift{Entry: "22:00", Exit: "04:00"}
	d.Shift2 = Shift{Entry: "23:00", Exit: "01:00"}

	result := ValidateDay(d)
	if findIssue(result.Errors, CodeOverlap) == nil {
		t.Fatalf("expected %s, got %+v", CodeOverlap, result.Errors)
	}
}

func TestValidateDayEarlyMorningSecondShiftDoesNotOverlap(t *testing.T) {
	// 02:00-06:00 is the same calendar day's morning, before the first
	// shift begins; the wrapped tail of 22:00-04:00 belongs to the next
	// day and must not collide with it.
	d := day(t, "2025-03-03")
	d.Shift1 = Shift{Entry: "22:00", Exit: "04:00"}
	d.Shift2 = Shift{Entry: "02:00", Exit: "06:00"}

	result := ValidateDay(d)
	if !result.Valid() {
		t.Fatalf("expected no overlap, got %+v", result.Errors)
	}
}

func TestValidateDayBackToBackShiftsAllowed(t *testing.T) {
	d := day(t, "2025-03-03")
	d.Shift1 = Shift{Entry: "06:00", Exit: "14:00"}
	d.Shift2 = Shift{Entry: "14:00", Exit: "22:00"}

	result := ValidateDay(d)
	if !result.Valid() {
		t.Fatalf("back-to-back shifts must be allowed, got %+v", result.Errors)
	}
}

func TestValidateDayEmptyDayIsValid(t *testing.T) {
	result := ValidateDay(day(t, "2025-03-03"))
	if !result.Valid() || len(result.Warnings) != 0 {
		t.Fatalf("empty day must be valid, got %+v / %+v", result.Errors, result.Warnings)
	}
}

func TestValidateMonthCollectsAllDays(t *testing.T) {
	d1 := day(t, "2025-03-03")
	d1.Shift1 = Shift{Entry: "08:00"}
	d2 := day(t, "2025-03-04")
	d2.Shift1 = Shift{Entry: "08:00", Exit: "08:00"}
	d3 := day(t, "2025-03-05")
	d3.Shift1 = Shift{Entry: "20:00", Exit: "02:00"}

	result := ValidateMonth([]DayRecord{d1, d2, d3})
	if result.Valid() {
		t.Fatal("expected errors")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d: %+v", len(result.Errors), result.Errors)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %+v", result.Warnings)
	}

	summary := result.Summary()
	if !strings.Contains(summary, "2025-03-03") || !strings.Contains(summary, "2025-03-04") {
		t.Fatalf("summary must name every offending date, got %q", summary)
	}
	if strings.Contains(summary, "2025-03-05") {
		t.Fatalf("summary must not include warning-only days, got %q", summary)
	}
}
