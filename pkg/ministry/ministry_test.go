package ministry

import (
	"reflect"
	"testing"
)

func TestMinistryIDStringRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		field  string
		period Period
		bodies []Body
	}{
		{"m5_posts", "M50001000", M5, []Body{M5PostsAndTelecommunications}},
		{"m6_economy", "M60000400", M6, []Body{M6EconomyTradeIndustry}},
		{"m6_joint", "M60001024", M6, []Body{M6Environment, M6ForeignAffairs, M6ReconstructionAgency}},
		{"m6_finance", "M60000040", M6, []Body{M6Finance}},
		{"m1_cabinet", "M10000001", M1, []Body{M1Cabinet}},
		{"m6_empty_mask", "M60000000", M6, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := FromIDString(tc.field)
			if err != nil {
				t.Fatalf("FromIDString(%q) failed: %v", tc.field, err)
			}
			if m.Period != tc.period || !reflect.DeepEqual(m.Bodies, tc.bodies) {
				t.Errorf("FromIDString(%q) = %+v, want period %s bodies %v",
					tc.field, m, tc.period.Tag(), tc.bodies)
			}
			if got := m.IDString(); got != tc.field {
				t.Errorf("re-encode = %q, want %q", got, tc.field)
			}
		})
	}
}

func TestFromIDStringRejects(t *testing.T) {
	cases := []struct {
		name  string
		field string
	}{
		{"too_short", "M5000100"},
		{"too_long", "M500010000"},
		{"unknown_period", "M70001000"},
		{"no_period_prefix", "X50001000"},
		{"lowercase_hex", "M500010a0"},
		{"non_hex_mask", "M50001Z00"},
		{"unowned_bit", "M60008000"}, // bit 16 is a reserved gap in M6
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if m, err := FromIDString(tc.field); err == nil {
				t.Errorf("FromIDString(%q) = %+v, want error", tc.field, m)
			}
		})
	}
}

func TestNewRejectsMixedPeriods(t *testing.T) {
	if _, err := New(M5, M5PostsAndTelecommunications, M6Environment); err == nil {
		t.Error("bodies from two periods should not build a Ministry")
	}
	m, err := New(M6, M6Environment, M6Defense)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if m.IDString() != "M60003000" {
		t.Errorf("IDString = %q, want M60003000", m.IDString())
	}
}

func TestMinistryFromName(t *testing.T) {
	cases := []struct {
		name   string
		title  string
		period Period
		bodies []Body
	}{
		{"m6_economy", "令和五年経済産業省令第六十号", M6, []Body{M6EconomyTradeIndustry}},
		{"m5_finance", "昭和二十五年大蔵省令第四号", M5, []Body{M5Finance}},
		{"m6_joint", "令和三年厚生労働省・農林水産省令第一号", M6,
			[]Body{M6HealthLaborWelfare, M6AgricultureForestryFisheries}},
		{"m1_interior", "明治三十二年内務省令第十五号", M1, []Body{M1Interior}},
		{"m6_commission_rule", "令和二年カジノ管理委員会規則第五号", M6,
			[]Body{M6CasinoManagementCommission}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := FromName(tc.title)
			if err != nil {
				t.Fatalf("FromName(%q) failed: %v", tc.title, err)
			}
			if m.Period != tc.period || !reflect.DeepEqual(m.Bodies, tc.bodies) {
				t.Errorf("FromName(%q) = %+v, want period %s bodies %v",
					tc.title, m, tc.period.Tag(), tc.bodies)
			}
		})
	}
}

func TestMinistryFromNameErrors(t *testing.T) {
	cases := []struct {
		name  string
		title string
	}{
		{"no_wareki", "経済産業省令第六十号"},
		{"no_body_suffix", "令和五年第六十号"},
		{"plain_text", "これは法令名ではない"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if m, err := FromName(tc.title); err == nil {
				t.Errorf("FromName(%q) = %+v, want error", tc.title, m)
			}
		})
	}
}
