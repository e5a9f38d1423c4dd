package liquidation

import (
	"fmt"
	"strconv"
	"strings"
)

// Issue codes. Everything except CodeDifferentDay blocks calculation.
const (
	CodeMissingEntry = "missing_entry"
	CodeMissingExit  = "missing_exit"
	CodeInvalidTime  = "invalid_time"
	CodeZeroDuration = "zero_duration"
	CodeOverlap      = "overlap"
	CodeDifferentDay = "different_day"
)

// Issue is one structured validation finding, tagged to the day and the
// offending time fields (entry1, exit1, entry2, exit2).
type Issue struct {
	Date    string   `json:"date"`
	Code    string   `json:"code"`
	Fields  []string `json:"fields"`
	Message string   `json:"message"`
}

type ValidationResult struct {
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
}

func (v ValidationResult) Valid() bool {
	return len(v.Errors) == 0
}

// Summary lists every offending date with its reasons, one day per line.
func (v ValidationResult) Summary() string {
	if v.Valid() {
		return ""
	}
	byDate := map[string][]string{}
	var order []string
	for _, issue := range v.Errors {
		if _, seen := byDate[issue.Date]; !seen {
			order = append(order, issue.Date)
		}
		byDate[issue.Date] = append(byDate[issue.Date], issue.Message)
	}
	var lines []string
	for _, date := range order {
		lines = append(lines, fmt.Sprintf("%s: %s", date, strings.Join(byDate[date], "; ")))
	}
	return strings.Join(lines, "\n")
}

// parseClock parses a strict HH:mm value into minutes since midnight.
func parseClock(value string) (int, error) {
	hh, mm, ok := strings.Cut(value, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	return hour*60 + minute, nil
}

// ValidateDay checks one day's shift pairs for structural consistency.
// All applicable findings are reported, not just the first. The input is
// never mutated.
func ValidateDay(day DayRecord) ValidationResult {
	date := day.Date.Format("2006-01-02")
	var result ValidationResult

	type parsedShift struct {
		entry, exit int
		complete    bool
	}
	parsed := [2]parsedShift{}

	shifts := [2]Shift{day.Shift1, day.Shift2}
	for i, shift := range shifts {
		if shift.Empty() {
			continue
		}
		entryField := "entry" + strconv.Itoa(i+1)
		exitField := "exit" + strconv.Itoa(i+1)
		shiftLabel := fmt.Sprintf("shift %d", i+1)

		if shift.Entry == "" {
			result.Errors = append(result.Errors, Issue{
				Date: date, Code: CodeMissingEntry, Fields: []string{entryField},
				Message: fmt.Sprintf("missing entry time for %s", shiftLabel),
			})
		}
		if shift.Exit == "" {
			result.Errors = append(result.Errors, Issue{
				Date: date, Code: CodeMissingExit, Fields: []string{exitField},
				Message: fmt.Sprintf("missing exit time for %s", shiftLabel),
			})
		}
		if shift.Entry == "" || shift.Exit == "" {
			continue
		}

		entry, entryErr := parseClock(shift.Entry)
		if entryErr != nil {
			result.Errors = append(result.Errors, Issue{
				Date: date, Code: CodeInvalidTime, Fields: []string{entryField},
				Message: fmt.Sprintf("entry time %q of %s is not HH:mm", shift.Entry, shiftLabel),
			})
		}
		exit, exitErr := parseClock(shift.Exit)
		if exitErr != nil {
			result.Errors = append(result.Errors, Issue{
				Date: date, Code: CodeInvalidTime, Fields: []string{exitField},
				Message: fmt.Sprintf("exit time %q of %s is not HH:mm", shift.Exit, shiftLabel),
			})
		}
		if entryErr != nil || exitErr != nil {
			continue
		}

		if entry == exit {
			result.Errors = append(result.Errors, Issue{
				Date: date, Code: CodeZeroDuration, Fields: []string{entryField, exitField},
				Message: fmt.Sprintf("%s has identical entry and exit times", shiftLabel),
			})
			continue
		}
		if exit < entry {
			// Overnight shift: the exit belongs to the next calendar day.
			// Legitimate, so warn and wrap rather than block.
			result.Warnings = append(result.Warnings, Issue{
				Date: date, Code: CodeDifferentDay, Fields: []string{entryField, exitField},
				Message: fmt.Sprintf("%s ends on the following day", shiftLabel),
			})
		}
		parsed[i] = parsedShift{entry: entry, exit: exit, complete: true}
	}

	if parsed[0].complete && parsed[1].complete {
		end1 := wrappedExit(parsed[0].entry, parsed[0].exit)
		end2 := wrappedExit(parsed[1].entry, parsed[1].exit)
		backToBack := day.Shift1.Exit == day.Shift2.Entry
		if !backToBack && parsed[0].entry < end2 && parsed[1].entry < end1 {
			result.Errors = append(result.Errors, Issue{
				Date: date, Code: CodeOverlap,
				Fields:  []string{"entry1", "exit1", "entry2", "exit2"},
				Message: "shifts 1 and 2 overlap",
			})
		}
	}

	return result
}

func wrappedExit(entry, exit int) int {
	if exit < entry {
		return exit + 24*60
	}
	return exit
}

// ValidateMonth aggregates per-day findings across the month. Any error
// on any day refuses the whole month's calculation.
func ValidateMonth(days []DayRecord) ValidationResult {
	var result ValidationResult
	for _, day := range days {
		dayResult := ValidateDay(day)
		result.Errors = append(result.Errors, dayResult.Errors...)
		result.Warnings = append(result.Warnings, dayResult.Warnings...)
	}
	return result
}
