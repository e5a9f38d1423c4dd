package holiday

import (
	"sort"
	"time"
)

type fixedFeast struct {
	name  string
	month time.Month
	day   int
}

type easterFeast struct {
	name     string
	offset   int
	emiliani bool
}

// Fixed holidays observed on their own date.
var fixedFeasts = []fixedFeast{
	{"Año Nuevo", time.January, 1},
	{"Día del Trabajo", time.May, 1},
	{"Independencia de Colombia", time.July, 20},
	{"Batalla de Boyacá", time.August, 7},
	{"Inmaculada Concepción", time.December, 8},
	{"Navidad", time.December, 25},
}

// Holidays moved to the following Monday by the Emiliani law.
var emilianiFeasts = []fixedFeast{
	{"Reyes Magos", time.January, 6},
	{"San José", time.March, 19},
	{"San Pedro y San Pablo", time.June, 29},
	{"Asunción de la Virgen", time.August, 15},
	{"Día de la Raza", time.October, 12},
	{"Todos los Santos", time.November, 1},
	{"Independencia de Cartagena", time.November, 11},
}

// Movable feasts anchored to Easter Sunday.
var easterFeasts = []easterFeast{
	{"Jueves Santo", -3, false},
	{"Viernes Santo", -2, false},
	{"Ascensión del Señor", 43, true},
	{"Corpus Christi", 64, true},
	{"Sagrado Corazón de Jesús", 71, true},
}

// Generate returns the Colombian holiday calendar for one year.
func Generate(year int) []Holiday {
	var out []Holiday

	for _, feast := range fixedFeasts {
		date := time.Date(year, feast.month, feast.day, 0, 0, 0, 0, time.Local)
		out = append(out, Holiday{Date: date.Format(dateLayout), Name: feast.name, Kind: KindFixed})
	}

	for _, feast := range emilianiFeasts {
		date := shiftToMonday(time.Date(year, feast.month, feast.day, 0, 0, 0, 0, time.Local))
		out = append(out, Holiday{Date: date.Format(dateLayout), Name: feast.name, Kind: KindMovable})
	}

	easter := Easter(year)
	for _, feast := range easterFeasts {
		date := easter.AddDate(0, 0, feast.offset)
		if feast.emiliani {
			date = shiftToMonday(date)
		}
		out = append(out, Holiday{Date: date.Format(dateLayout), Name: feast.name, Kind: KindMovable})
	}

	return out
}

// GenerateRange builds the calendar for a span of years, dropping
// duplicate dates (an Emiliani shift can land on a fixed holiday).
func GenerateRange(fromYear, toYear int) []Holiday {
	seen := map[string]struct{}{}
	var out []Holiday
	for year := fromYear; year <= toYear; year++ {
		for _, h := range Generate(year) {
			if _, dup := seen[h.Date]; dup {
				continue
			}
			seen[h.Date] = struct{}{}
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
