package era

import (
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/text/width"

	"github.com/coolbeans/lawid/pkg/kansuji"
)

// Wareki is an era-relative year, e.g. 平成5年 or 令和元年. Years are
// 1-indexed; year 1 is written 元年.
//
// Construction does not re-validate that the year falls inside the era;
// callers building Wareki values directly are responsible for that.
type Wareki struct {
	Era  Era `json:"era"`
	Year int `json:"year"`
}

// NewWareki builds a Wareki from an era and a 1-indexed year.
func NewWareki(e Era, year int) Wareki {
	return Wareki{Era: e, Year: year}
}

// FromDate converts a Gregorian date to its Wareki year. Dates before
// the Meiji boundary (1868-10-23) have no era and report false.
func FromDate(d Date) (Wareki, bool) {
	e, ok := ForDate(d)
	if !ok {
		return Wareki{}, false
	}
	return Wareki{Era: e, Year: d.Year - e.BaseYear()}, true
}

// ADYear returns the Gregorian year the Wareki year falls in.
func (w Wareki) ADYear() int {
	return w.Era.BaseYear() + w.Year
}

// String renders the canonical text form, with year 1 written 元年.
func (w Wareki) String() string {
	if w.Year == 1 {
		return w.Era.String() + "元年"
	}
	return fmt.Sprintf("%s%d年", w.Era, w.Year)
}

// warekiPattern matches era-name + year expression + 年. The year is
// exactly one of: the literal 元, a kanji numeral run, an ASCII digit
// run, or a full-width digit run. Only one alternative can capture, so
// mixed-numeral text never half-parses.
var warekiPattern = regexp.MustCompile(
	`(?P<era>明治|大正|昭和|平成|令和)((?P<gan>元)|(?P<kansuji>[一二三四五六七八九十百]+)|(?P<num>[0-9]+)|(?P<zen>[０-９]+))年`)

var (
	warekiEraIdx     = warekiPattern.SubexpIndex("era")
	warekiGanIdx     = warekiPattern.SubexpIndex("gan")
	warekiKansujiIdx = warekiPattern.SubexpIndex("kansuji")
	warekiNumIdx     = warekiPattern.SubexpIndex("num")
	warekiZenIdx     = warekiPattern.SubexpIndex("zen")
)

// ParseWareki extracts the first Wareki year expression from text.
// Recognized forms: 大正元年, 昭和十五年, 昭和15年, 昭和１５年.
// Returns false when no expression matches or the numeral cannot be
// converted.
func ParseWareki(text string) (Wareki, bool) {
	m := warekiPattern.FindStringSubmatch(text)
	if m == nil {
		return Wareki{}, false
	}
	e, ok := FromText(m[warekiEraIdx])
	if !ok {
		return Wareki{}, false
	}
	switch {
	case m[warekiGanIdx] != "":
		return Wareki{Era: e, Year: 1}, true
	case m[warekiKansujiIdx] != "":
		n, ok := kansuji.ToInt(m[warekiKansujiIdx])
		if !ok {
			return Wareki{}, false
		}
		return Wareki{Era: e, Year: int(n)}, true
	case m[warekiNumIdx] != "":
		year, err := strconv.Atoi(m[warekiNumIdx])
		if err != nil {
			return Wareki{}, false
		}
		return Wareki{Era: e, Year: year}, true
	case m[warekiZenIdx] != "":
		year, err := strconv.Atoi(width.Narrow.String(m[warekiZenIdx]))
		if err != nil {
			return Wareki{}, false
		}
		return Wareki{Era: e, Year: year}, true
	}
	return Wareki{}, false
}
