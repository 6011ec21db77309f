package ministry

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/coolbeans/lawid/pkg/era"
)

// Ministry is the issuing-body set of a ministerial order: one period
// and an ordered list of that period's bodies. Mixing bodies from
// different periods is illegal; use New to construct validated values.
type Ministry struct {
	Period Period `json:"period"`
	Bodies []Body `json:"bodies"`
}

// New builds a Ministry after checking every body belongs to the
// period.
func New(p Period, bodies ...Body) (Ministry, error) {
	for _, b := range bodies {
		if b.Period != p {
			return Ministry{}, fmt.Errorf("body %s belongs to period %s, not %s", b.Name(), b.Period.Tag(), p.Tag())
		}
	}
	return Ministry{Period: p, Bodies: bodies}, nil
}

// IDString renders the 9-character ministry field of a law ID: the
// two-character period tag followed by the 7-digit hex body mask.
func (m Ministry) IDString() string {
	return m.Period.Tag() + EncodeMask(m.Bodies)
}

// FromIDString parses a 9-character ministry field. The mask must be
// uppercase hex; anything else re-encodes differently and is rejected
// so that parse and format stay exact inverses.
func FromIDString(s string) (Ministry, error) {
	if len(s) != 9 {
		return Ministry{}, fmt.Errorf("ministry field %q: want 9 characters, got %d", s, len(s))
	}
	p, ok := PeriodFromTag(s[:2])
	if !ok {
		return Ministry{}, fmt.Errorf("ministry field %q: unknown period tag %q", s, s[:2])
	}
	for _, c := range s[2:] {
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return Ministry{}, fmt.Errorf("ministry field %q: mask is not uppercase hex", s)
		}
	}
	n, err := strconv.ParseUint(s[2:], 16, 32)
	if err != nil {
		return Ministry{}, fmt.Errorf("ministry field %q: %w", s, err)
	}
	bodies, err := p.DecodeMask(fmt.Sprintf("%028b", n))
	if err != nil {
		return Ministry{}, err
	}
	return Ministry{Period: p, Bodies: bodies}, nil
}

// titlePattern locates the Wareki year and the trailing issuing-body
// name inside a promulgation line such as
// 平成十一年総理府・大蔵省令第四十五号. The month and day groups are
// optional; the body name is whatever precedes the final 令/規則.
var titlePattern = regexp.MustCompile(
	`(?P<wareki>(明治|大正|昭和|平成|令和)[一二三四五六七八九十百0-9０-９]+)年` +
		`([一二三四五六七八九十百0-9０-９]+月)?` +
		`([一二三四五六七八九十百0-9０-９]+日)?` +
		`(?P<ministry>.+)(令|規則)`)

var titleMinistryIdx = titlePattern.SubexpIndex("ministry")

// FromName derives a Ministry from free text: the Wareki year picks the
// governing period, then that period's name rules collect the issuing
// bodies. Jointly issued orders yield multiple bodies, in the period
// table's enumeration order rather than their order in the text.
func FromName(name string) (Ministry, error) {
	m := titlePattern.FindStringSubmatch(name)
	if m == nil {
		return Ministry{}, fmt.Errorf("no era year and issuing body in %q", name)
	}
	w, ok := era.ParseWareki(name)
	if !ok {
		return Ministry{}, fmt.Errorf("cannot parse era year in %q", name)
	}
	p, ok := PeriodForWareki(w)
	if !ok {
		return Ministry{}, fmt.Errorf("no ministry period covers %s", w)
	}
	return Ministry{Period: p, Bodies: p.FromName(m[titleMinistryIdx])}, nil
}
