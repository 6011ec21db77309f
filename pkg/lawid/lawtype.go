// Package lawid encodes and decodes Japanese law IDs: the fixed-width
// identifiers the e-Gov law database assigns to statutes, orders and
// rules. An ID is an era digit, a two-digit Wareki year, and a
// twelve-character instrument code whose sub-format depends on the
// instrument category.
package lawid

import (
	"fmt"
	"strings"

	"github.com/coolbeans/lawid/pkg/institution"
	"github.com/coolbeans/lawid/pkg/ministry"
)

// LawType is the instrument-category part of a law ID. Each category
// has its own fixed-width sub-format; IDString renders it and
// ParseLawType is the inverse.
type LawType interface {
	IDString() string
	lawType()
}

// LegislativeOrigin records which organ introduced an act.
type LegislativeOrigin int

const (
	OriginCabinet                LegislativeOrigin = iota // 閣法
	OriginHouseOfRepresentatives                          // 衆法
	OriginHouseOfCouncillors                              // 参法
)

// LegalForce classifies pre-constitution instruments by the force they
// carry today: that of a law or that of a cabinet order.
type LegalForce int

const (
	ForceCabinetOrder LegalForce = iota
	ForceLaw
)

// Constitution is the constitution itself; its instrument code is the
// literal string CONSTITUTION.
type Constitution struct{}

// Act is a statute passed by the Diet. 法律
type Act struct {
	Origin LegislativeOrigin `json:"origin"`
	Num    int               `json:"num"`
}

// CabinetOrder 政令
type CabinetOrder struct {
	Force LegalForce `json:"force"`
	Num   int        `json:"num"`
}

// ImperialOrder 勅令
type ImperialOrder struct {
	Force LegalForce `json:"force"`
	Num   int        `json:"num"`
}

// DajokanFukoku is a proclamation of the Dajokan, the pre-cabinet grand
// council of state. 太政官布告
type DajokanFukoku struct {
	Force LegalForce `json:"force"`
	Num   int        `json:"num"`
}

// DajokanTasshi 太政官達
type DajokanTasshi struct {
	Force LegalForce `json:"force"`
	Num   int        `json:"num"`
}

// DajokanHutatsu 太政官布達
type DajokanHutatsu struct {
	Force LegalForce `json:"force"`
	Num   int        `json:"num"`
}

// MinistryOrder is an order issued by one or more ministries. 府省令
type MinistryOrder struct {
	Ministry ministry.Ministry `json:"ministry"`
	Num      int               `json:"num"`
}

// PersonnelRule is a rule of the National Personnel Authority. 人事院規則
type PersonnelRule struct {
	Kind            int `json:"kind"`             // rule classification
	KindSerial      int `json:"kind_serial"`      // serial within the classification
	AmendmentSerial int `json:"amendment_serial"` // serial of the amending rule
}

// Regulation is a regulation of a standalone institution. 機関の規則
type Regulation struct {
	Institution institution.Institution `json:"institution"`
	Num         int                     `json:"num"`
}

// PrimeMinisterDecision is an administrative rule set by prime-minister
// decision, identified by its decision date. 内閣総理大臣決定
type PrimeMinisterDecision struct {
	Month int `json:"month"`
	Day   int `json:"day"`
	Num   int `json:"num"` // serial within the decision day
}

func (Constitution) lawType()          {}
func (Act) lawType()                   {}
func (CabinetOrder) lawType()          {}
func (ImperialOrder) lawType()         {}
func (DajokanFukoku) lawType()         {}
func (DajokanTasshi) lawType()         {}
func (DajokanHutatsu) lawType()        {}
func (MinistryOrder) lawType()         {}
func (PersonnelRule) lawType()         {}
func (Regulation) lawType()            {}
func (PrimeMinisterDecision) lawType() {}

// Every instrument code is exactly twelve characters; leading zeros are
// significant.
const (
	constitutionCode = "CONSTITUTION"
	lawTypeWidth     = 12
)

func (Constitution) IDString() string {
	return constitutionCode
}

func (a Act) IDString() string {
	switch a.Origin {
	case OriginHouseOfRepresentatives:
		return fmt.Sprintf("AC1000000%03d", a.Num)
	case OriginHouseOfCouncillors:
		return fmt.Sprintf("AC0100000%03d", a.Num)
	default:
		return fmt.Sprintf("AC0000000%03d", a.Num)
	}
}

// forceCode renders the tag + force flag + serial shape shared by the
// five pre-war order categories.
func forceCode(tag string, force LegalForce, num int) string {
	if force == ForceLaw {
		return fmt.Sprintf("%s1000000%03d", tag, num)
	}
	return fmt.Sprintf("%s0000000%03d", tag, num)
}

func (o CabinetOrder) IDString() string   { return forceCode("CO", o.Force, o.Num) }
func (o ImperialOrder) IDString() string  { return forceCode("IO", o.Force, o.Num) }
func (o DajokanFukoku) IDString() string  { return forceCode("DF", o.Force, o.Num) }
func (o DajokanTasshi) IDString() string  { return forceCode("DT", o.Force, o.Num) }
func (o DajokanHutatsu) IDString() string { return forceCode("DH", o.Force, o.Num) }

func (o MinistryOrder) IDString() string {
	return fmt.Sprintf("%s%03d", o.Ministry.IDString(), o.Num)
}

func (r PersonnelRule) IDString() string {
	return fmt.Sprintf("RJNJ%02d%03d%03d", r.Kind, r.KindSerial, r.AmendmentSerial)
}

func (r Regulation) IDString() string {
	return fmt.Sprintf("R%08d%03d", r.Institution.Code(), r.Num)
}

func (d PrimeMinisterDecision) IDString() string {
	return fmt.Sprintf("RPMD%02d%02d%04d", d.Month, d.Day, d.Num)
}

// ParseLawType decodes a twelve-character instrument code. The tag is
// identified most-specific first: CONSTITUTION would otherwise be
// swallowed by CO, and RJNJ/RPMD by the bare R. Any unrecognized
// prefix, wrong width, non-numeric payload, or flag outside the
// documented set is an error.
func ParseLawType(s string) (LawType, error) {
	if s == constitutionCode {
		return Constitution{}, nil
	}
	if len(s) != lawTypeWidth {
		return nil, fmt.Errorf("instrument code %q: want %d characters, got %d", s, lawTypeWidth, len(s))
	}
	switch {
	case strings.HasPrefix(s, "RJNJ"):
		kind, err := parseSerial(s[4:6])
		if err != nil {
			return nil, fmt.Errorf("instrument code %q: %w", s, err)
		}
		kindSerial, err := parseSerial(s[6:9])
		if err != nil {
			return nil, fmt.Errorf("instrument code %q: %w", s, err)
		}
		amendmentSerial, err := parseSerial(s[9:12])
		if err != nil {
			return nil, fmt.Errorf("instrument code %q: %w", s, err)
		}
		return PersonnelRule{Kind: kind, KindSerial: kindSerial, AmendmentSerial: amendmentSerial}, nil

	case strings.HasPrefix(s, "RPMD"):
		month, err := parseSerial(s[4:6])
		if err != nil {
			return nil, fmt.Errorf("instrument code %q: %w", s, err)
		}
		day, err := parseSerial(s[6:8])
		if err != nil {
			return nil, fmt.Errorf("instrument code %q: %w", s, err)
		}
		num, err := parseSerial(s[8:12])
		if err != nil {
			return nil, fmt.Errorf("instrument code %q: %w", s, err)
		}
		return PrimeMinisterDecision{Month: month, Day: day, Num: num}, nil

	case strings.HasPrefix(s, "AC"):
		flag, num, err := parseFlagAndSerial(s)
		if err != nil {
			return nil, err
		}
		var origin LegislativeOrigin
		switch flag {
		case 0:
			origin = OriginCabinet
		case 1000000:
			origin = OriginHouseOfRepresentatives
		case 100000:
			origin = OriginHouseOfCouncillors
		default:
			return nil, fmt.Errorf("instrument code %q: unknown origin flag %d", s, flag)
		}
		return Act{Origin: origin, Num: num}, nil

	case strings.HasPrefix(s, "CO"), strings.HasPrefix(s, "IO"),
		strings.HasPrefix(s, "DF"), strings.HasPrefix(s, "DT"), strings.HasPrefix(s, "DH"):
		flag, num, err := parseFlagAndSerial(s)
		if err != nil {
			return nil, err
		}
		var force LegalForce
		switch flag {
		case 0:
			force = ForceCabinetOrder
		case 1000000:
			force = ForceLaw
		default:
			return nil, fmt.Errorf("instrument code %q: unknown force flag %d", s, flag)
		}
		switch s[:2] {
		case "CO":
			return CabinetOrder{Force: force, Num: num}, nil
		case "IO":
			return ImperialOrder{Force: force, Num: num}, nil
		case "DF":
			return DajokanFukoku{Force: force, Num: num}, nil
		case "DT":
			return DajokanTasshi{Force: force, Num: num}, nil
		default:
			return DajokanHutatsu{Force: force, Num: num}, nil
		}

	case s[0] == 'M':
		min, err := ministry.FromIDString(s[:9])
		if err != nil {
			return nil, err
		}
		num, err := parseSerial(s[9:12])
		if err != nil {
			return nil, fmt.Errorf("instrument code %q: %w", s, err)
		}
		return MinistryOrder{Ministry: min, Num: num}, nil

	case s[0] == 'R':
		code, err := parseSerial(s[1:9])
		if err != nil {
			return nil, fmt.Errorf("instrument code %q: %w", s, err)
		}
		inst, ok := institution.FromCode(code)
		if !ok {
			return nil, fmt.Errorf("instrument code %q: unknown institution code %d", s, code)
		}
		num, err := parseSerial(s[9:12])
		if err != nil {
			return nil, fmt.Errorf("instrument code %q: %w", s, err)
		}
		return Regulation{Institution: inst, Num: num}, nil

	default:
		return nil, fmt.Errorf("instrument code %q: unknown tag", s)
	}
}

// parseFlagAndSerial splits the tag + 7-digit flag + 3-digit serial
// shape used by acts and the pre-war order categories.
func parseFlagAndSerial(s string) (flag, num int, err error) {
	flag, err = parseSerial(s[2:9])
	if err != nil {
		return 0, 0, fmt.Errorf("instrument code %q: %w", s, err)
	}
	num, err = parseSerial(s[9:12])
	if err != nil {
		return 0, 0, fmt.Errorf("instrument code %q: %w", s, err)
	}
	return flag, num, nil
}

// parseSerial reads a fixed-width unsigned decimal field. Unlike
// strconv.Atoi it rejects signs and whitespace: ID fields are digit
// runs or nothing.
func parseSerial(s string) (int, error) {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-numeric field %q", s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
