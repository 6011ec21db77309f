// Package ministry models the historical taxonomy of Japanese issuing
// bodies (ministries, agencies, commissions) used in ministerial-order
// law IDs. Bodies are scoped to one of six non-overlapping time periods
// (M1-M6) because ministries were renamed and reorganized over time;
// each body owns a bit position in a 28-bit mask so that jointly issued
// orders can name several bodies in a single ID field.
package ministry

import (
	"fmt"
	"strings"

	"github.com/coolbeans/lawid/pkg/era"
)

// Period identifies one of the six date-scoped issuing-body tables.
type Period int

const (
	M1 Period = iota + 1
	M2
	M3
	M4
	M5
	M6
)

// Body is one issuing body within a period. Bit is the 1-indexed slot
// in the period's 28-bit mask; positions are unique within a period but
// reused across periods for unrelated offices, so a Body is only
// meaningful together with its period.
type Body struct {
	Period Period `json:"period"`
	Bit    int    `json:"bit"`
}

// nameRule ties a body to its free-text matching rule. A name matches
// when it contains substr; when qualifier is set it must also be
// present, which distinguishes historically parallel series such as
// 陸軍省令（甲） and 陸軍省令（乙）.
type nameRule struct {
	body      Body
	label     string
	substr    string
	qualifier string
}

type periodInfo struct {
	tag   string
	start era.Date
	end   era.Date
	rules []nameRule // one rule per member, in enumeration order
}

var periods = map[Period]*periodInfo{
	M1: m1Table,
	M2: m2Table,
	M3: m3Table,
	M4: m4Table,
	M5: m5Table,
	M6: m6Table,
}

var periodOrder = []Period{M1, M2, M3, M4, M5, M6}

// Tag returns the two-character period tag ("M1".."M6") used in IDs.
func (p Period) Tag() string {
	return periods[p].tag
}

// PeriodFromTag resolves a two-character period tag.
func PeriodFromTag(tag string) (Period, bool) {
	for _, p := range periodOrder {
		if periods[p].tag == tag {
			return p, true
		}
	}
	return 0, false
}

// Start returns the first date the period covers.
func (p Period) Start() era.Date {
	return periods[p].start
}

// End returns the last date the period covers. M6 is still in force,
// so its end is the maximum representable date.
func (p Period) End() era.Date {
	return periods[p].end
}

// Applicable reports whether the date falls inside the period's range.
func (p Period) Applicable(d era.Date) bool {
	return !d.Before(p.Start()) && !d.After(p.End())
}

// ApplicableWareki reports whether the Wareki year's Gregorian year
// falls inside the period's range. Year granularity only: titles carry
// a year but not always a month or day.
func (p Period) ApplicableWareki(w era.Wareki) bool {
	return p.Start().Year <= w.ADYear() && w.ADYear() <= p.End().Year
}

// PeriodForWareki returns the first period whose range accepts the
// Wareki year.
func PeriodForWareki(w era.Wareki) (Period, bool) {
	for _, p := range periodOrder {
		if p.ApplicableWareki(w) {
			return p, true
		}
	}
	return 0, false
}

// Bodies returns the period's members in enumeration order.
func (p Period) Bodies() []Body {
	rules := periods[p].rules
	bodies := make([]Body, len(rules))
	for i, r := range rules {
		bodies[i] = r.body
	}
	return bodies
}

// FromBit returns the period's member at the given 1-indexed bit
// position. Positions with no member (gaps in the table) report false.
func (p Period) FromBit(bit int) (Body, bool) {
	for _, r := range periods[p].rules {
		if r.body.Bit == bit {
			return r.body, true
		}
	}
	return Body{}, false
}

// FromName returns every member of the period whose matching rule
// accepts the free-text name, in enumeration order. Jointly issued
// orders (厚生労働省・農林水産省令) match several members.
func (p Period) FromName(name string) []Body {
	var bodies []Body
	for _, r := range periods[p].rules {
		if containsRule(name, r) {
			bodies = append(bodies, r.body)
		}
	}
	return bodies
}

// Name returns the body's ordinance name (閣令, 厚生労働省令, ...), or
// the empty string for a body not in its period's table.
func (b Body) Name() string {
	info, ok := periods[b.Period]
	if !ok {
		return ""
	}
	for _, r := range info.rules {
		if r.body == b {
			return r.label
		}
	}
	return ""
}

func containsRule(name string, r nameRule) bool {
	if !strings.Contains(name, r.substr) {
		return false
	}
	return r.qualifier == "" || strings.Contains(name, r.qualifier)
}

// EncodeMask packs a body set into the 7-digit uppercase hex form of
// its 28-bit mask. Order does not affect the mask.
func EncodeMask(bodies []Body) string {
	var n uint32
	for _, b := range bodies {
		n |= 1 << (b.Bit - 1)
	}
	return fmt.Sprintf("%07X", n)
}

// DecodeMask expands a 28-character binary mask into the period's
// bodies. The scan runs left to right: character index i maps to bit
// position 28-i, so the most significant character is bit 28 and the
// resulting list is in descending bit order. A '1' at a position with
// no member, or any character outside {0,1}, is an error.
func (p Period) DecodeMask(mask string) ([]Body, error) {
	var bodies []Body
	for i, c := range mask {
		switch c {
		case '1':
			bit := 28 - i
			b, ok := p.FromBit(bit)
			if !ok {
				return nil, fmt.Errorf("period %s: no issuing body at bit position %d", p.Tag(), bit)
			}
			bodies = append(bodies, b)
		case '0':
		default:
			return nil, fmt.Errorf("period %s: unexpected mask character %q", p.Tag(), c)
		}
	}
	return bodies, nil
}
