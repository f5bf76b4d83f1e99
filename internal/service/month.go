package service

var monthOrdinals = map[string]int{
	"January":   1,
	"February":  2,
	"March":     3,
	"April":     4,
	"May":       5,
	"June":      6,
	"July":      7,
	"August":    8,
	"September": 9,
	"October":   10,
	"November":  11,
	"December":  12,
}

// MonthOrdinal maps an English month name to 1..12. Names are matched
// exactly; anything else yields 0 and false. A zero month matches no sale
// date, so callers can use it as-is.
func MonthOrdinal(name string) (int, bool) {
	m, ok := monthOrdinals[name]
	return m, ok
}
