package holiday

import (
	"testing"
	"time"
)

func datesOf(holidays []Holiday) map[string]string {
	out := map[string]string{}
	for _, h := range holidays {
		out[h.Name+"/"+h.Date] = h.Kind
	}
	return out
}

func mustContain(t *testing.T, holidays []Holiday, name, date string) {
	t.Helper()
	for _, h := range holidays {
		if h.Name == name && h.Date == date {
			return
		}
	}
	t.Errorf("calendar missing %s on %s, got %v", name, date, datesOf(holidays))
}

func TestGenerate2025(t *testing.T) {
	holidays := Generate(2025)

	if len(holidays) != 18 {
		t.Fatalf("expected 18 holidays, got %d", len(holidays))
	}

	mustContain(t, holidays, "Año Nuevo", "2025-01-01")
	mustContain(t, holidays, "Reyes Magos", "2025-01-06") // already a Monday
	mustContain(t, holidays, "San José", "2025-03-24")    // Wednesday, shifted
	mustContain(t, holidays, "Jueves Santo", "2025-04-17")
	mustContain(t, holidays, "Viernes Santo", "2025-04-18")
	mustContain(t, holidays, "Ascensión del Señor", "2025-06-02")
	mustContain(t, holidays, "Corpus Christi", "2025-06-23")
	mustContain(t, holidays, "Sagrado Corazón de Jesús", "2025-06-30")
	mustContain(t, holidays, "Navidad", "2025-12-25")
}

func TestGenerate2024GoodFriday(t *testing.T) {
	holidays := Generate(2024)
	mustContain(t, holidays, "Viernes Santo", "2024-03-29")
	mustContain(t, holidays, "Jueves Santo", "2024-03-28")
	mustContain(t, holidays, "Reyes Magos", "2024-01-08") // Jan 6 is a Saturday
}

func TestGenerateRangeSortedAndDeduplicated(t *testing.T) {
	holidays := GenerateRange(2024, 2026)

	seen := map[string]bool{}
	for i, h := range holidays {
		if i > 0 && holidays[i-1].Date > h.Date {
			t.Fatalf("calendar not sorted at %d: %s after %s", i, h.Date, holidays[i-1].Date)
		}
		if seen[h.Date] {
			t.Fatalf("duplicate date %s", h.Date)
		}
		seen[h.Date] = true
	}
	if !seen["2024-01-01"] || !seen["2026-12-25"] {
		t.Fatal("range must span every requested year")
	}
}

func TestCalendarHolidayOrSunday(t *testing.T) {
	calendar := NewCalendar(Generate(2025))

	sunday := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.Local)
	if !calendar.HolidayOrSunday(sunday) {
		t.Fatal("Sundays must always count as non-working days")
	}

	christmas := time.Date(2025, time.December, 25, 0, 0, 0, 0, time.Local)
	if !calendar.HolidayOrSunday(christmas) {
		t.Fatal("listed holidays must count")
	}

	ordinary := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.Local)
	if calendar.HolidayOrSunday(ordinary) {
		t.Fatal("an ordinary Monday must not count")
	}
}
