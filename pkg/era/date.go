package era

// Date is a Gregorian calendar date without a time component. Dates are
// plain values: ordering is lexicographic on (year, month, day).
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
	Day   int `json:"day"`   // 1-31
}

// maxDateKey stands in for an open-ended range: the Reiwa era and the
// current ministry period have no end date yet.
const maxDateKey = 99991231

// MaxDate is the largest representable date, used for open-ended ranges.
var MaxDate = Date{Year: 9999, Month: 12, Day: 31}

// NewDate builds a Date from Gregorian parts.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// NewWarekiDate builds a Date from a Wareki year and Gregorian month/day.
func NewWarekiDate(e Era, year, month, day int) Date {
	return Date{Year: Wareki{Era: e, Year: year}.ADYear(), Month: month, Day: day}
}

// key collapses the date into the YYYYMMDD integer the boundary tables
// are written in.
func (d Date) key() int {
	return d.Year*10000 + d.Month*100 + d.Day
}

// Compare orders two dates: -1 if d is earlier, 0 if equal, 1 if later.
func (d Date) Compare(other Date) int {
	switch {
	case d.key() < other.key():
		return -1
	case d.key() > other.key():
		return 1
	default:
		return 0
	}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.key() < other.key()
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.key() > other.key()
}
