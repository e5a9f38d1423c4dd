package shared

import (
	"testing"
	"time"
)

func TestParseDateLocalTime(t *testing.T) {
	parsed, err := ParseDate("2025-03-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Location() != time.Local {
		t.Fatal("dates must stay in local time")
	}
	if parsed.Weekday() != time.Sunday {
		t.Fatalf("2025-03-02 parsed to %s, want Sunday", parsed.Weekday())
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "2025-3-2", "02-03-2025", "2025-13-01", "tomorrow"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) accepted garbage", bad)
		}
	}
}

func TestParseMonth(t *testing.T) {
	parsed, err := ParseMonth("2025-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Year() != 2025 || parsed.Month() != time.March || parsed.Day() != 1 {
		t.Fatalf("ParseMonth = %s, want 2025-03-01", parsed.Format("2006-01-02"))
	}

	if _, err := ParseMonth("03-2025"); err == nil {
		t.Fatal("expected error for a reversed month value")
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := map[int]string{
		0:     "0:00",
		59:    "0:59",
		60:    "1:00",
		125:   "2:05",
		11400: "190:00",
	}
	for minutes, want := range cases {
		if got := FormatMinutes(minutes); got != want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", minutes, got, want)
		}
	}
}
