// Package era models the modern Japanese era (gengo) calendar used in
// statutory identifiers: the five eras from Meiji onward, conversion
// between Gregorian dates and era-relative (Wareki) years, and parsing
// of Wareki year expressions found in law titles.
package era

// Era identifies one of the five modern Japanese eras. The current legal
// system begins with Meiji, so earlier eras are out of scope.
type Era int

const (
	Meiji Era = iota + 1
	Taisho
	Showa
	Heisei
	Reiwa
)

// Inclusive era boundaries as YYYYMMDD integers, taken verbatim from the
// law-ID naming convention. The Heisei end value 19890431 is not a real
// calendar day: the convention uses it as an end-of-April sentinel, and
// ID compatibility requires keeping the integer exactly as published.
var eraBounds = map[Era]struct{ start, end int }{
	Meiji:  {18681023, 19120728},
	Taisho: {19120729, 19261224},
	Showa:  {19261225, 19890107},
	Heisei: {19890108, 20190431},
	Reiwa:  {20190501, maxDateKey},
}

// Gregorian year immediately before each era's first year. Wareki years
// are 1-indexed, so AD year = base year + Wareki year.
var eraBaseYears = map[Era]int{
	Meiji:  1867,
	Taisho: 1911,
	Showa:  1925,
	Heisei: 1988,
	Reiwa:  2018,
}

var eraNames = map[Era]string{
	Meiji:  "明治",
	Taisho: "大正",
	Showa:  "昭和",
	Heisei: "平成",
	Reiwa:  "令和",
}

// ordered for iteration; map ranges are not deterministic.
var eras = []Era{Meiji, Taisho, Showa, Heisei, Reiwa}

// String returns the canonical kanji era name.
func (e Era) String() string {
	return eraNames[e]
}

// FromText resolves a canonical kanji era name ("昭和", "令和", ...).
// Romanized spellings are not recognized.
func FromText(text string) (Era, bool) {
	for _, e := range eras {
		if eraNames[e] == text {
			return e, true
		}
	}
	return 0, false
}

// Number returns the era's numeric code (Meiji=1 .. Reiwa=5), used as
// the first character of a law ID.
func (e Era) Number() int {
	return int(e)
}

// FromNumber resolves a numeric era code.
func FromNumber(n int) (Era, bool) {
	if n < int(Meiji) || n > int(Reiwa) {
		return 0, false
	}
	return Era(n), true
}

// BaseYear returns the Gregorian year preceding the era's first year.
func (e Era) BaseYear() int {
	return eraBaseYears[e]
}

// Contains reports whether the date falls within the era's inclusive
// boundary range.
func (e Era) Contains(d Date) bool {
	b := eraBounds[e]
	return b.start <= d.key() && d.key() <= b.end
}

// ForDate returns the unique era containing the date. Era ranges are
// contiguous and non-overlapping, so exactly one era matches any date
// from 1868-10-23 onward; earlier dates report false.
func ForDate(d Date) (Era, bool) {
	for _, e := range eras {
		if e.Contains(d) {
			return e, true
		}
	}
	return 0, false
}
