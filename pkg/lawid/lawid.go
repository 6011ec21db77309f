package lawid

import (
	"fmt"

	"github.com/coolbeans/lawid/pkg/era"
)

// LawID identifies one legal instrument: its Wareki year of
// promulgation and its instrument category with serial fields. Two
// LawID values are equal exactly when their canonical ID strings are
// byte-identical.
type LawID struct {
	Wareki era.Wareki `json:"wareki"`
	Type   LawType    `json:"type"`
}

// idWidth is the full canonical ID length: era digit + 2-digit year +
// 12-character instrument code.
const idWidth = 15

// IDString renders the canonical ID, e.g. 325M50001000004.
func (id LawID) IDString() string {
	return fmt.Sprintf("%d%02d%s", id.Wareki.Era.Number(), id.Wareki.Year, id.Type.IDString())
}

// Parse decodes a canonical law ID. For every accepted string the
// decoded value re-encodes to the identical bytes, and for every
// constructible LawID the round trip returns an equal value.
func Parse(s string) (LawID, error) {
	if len(s) != idWidth {
		return LawID{}, fmt.Errorf("law ID %q: want %d characters, got %d", s, idWidth, len(s))
	}
	eraNum, err := parseSerial(s[0:1])
	if err != nil {
		return LawID{}, fmt.Errorf("law ID %q: %w", s, err)
	}
	e, ok := era.FromNumber(eraNum)
	if !ok {
		return LawID{}, fmt.Errorf("law ID %q: unknown era number %d", s, eraNum)
	}
	year, err := parseSerial(s[1:3])
	if err != nil {
		return LawID{}, fmt.Errorf("law ID %q: %w", s, err)
	}
	lawType, err := ParseLawType(s[3:])
	if err != nil {
		return LawID{}, err
	}
	return LawID{Wareki: era.NewWareki(e, year), Type: lawType}, nil
}
