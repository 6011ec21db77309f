// Package kansuji converts kanji numeral strings to integers. It is the
// narrow collaborator the calendar parser uses for year expressions like
// 十五 or 二百三; it knows nothing about eras or law IDs.
package kansuji

var digits = map[rune]uint64{
	'一': 1, '二': 2, '三': 3, '四': 4, '五': 5,
	'六': 6, '七': 7, '八': 8, '九': 9,
}

var smallUnits = map[rune]uint64{
	'十': 10, '百': 100, '千': 1000,
}

var bigUnits = map[rune]uint64{
	'万': 10_000, '億': 100_000_000, '兆': 1_000_000_000_000,
}

// ToInt converts a positional kanji numeral (一, 十五, 二百三, 三千万, ...)
// to its integer value. Returns false for the empty string, any rune
// outside the numeral set, or a malformed sequence such as a doubled
// digit (一一) or a bare myriad unit (万).
func ToInt(text string) (uint64, bool) {
	if text == "" {
		return 0, false
	}
	var total, section, digit uint64
	for _, r := range text {
		switch {
		case digits[r] != 0:
			if digit != 0 {
				return 0, false
			}
			digit = digits[r]
		case smallUnits[r] != 0:
			if digit == 0 {
				digit = 1
			}
			section += digit * smallUnits[r]
			digit = 0
		case bigUnits[r] != 0:
			section += digit
			digit = 0
			if section == 0 {
				return 0, false
			}
			total += section * bigUnits[r]
			section = 0
		default:
			return 0, false
		}
	}
	return total + section + digit, true
}
