package era

import "testing"

func TestParseWareki(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Wareki
	}{
		{"gan_year", "大正元年", Wareki{Taisho, 1}},
		{"kansuji_single", "大正五年", Wareki{Taisho, 5}},
		{"ascii_single", "大正5年", Wareki{Taisho, 5}},
		{"fullwidth_single", "大正５年", Wareki{Taisho, 5}},
		{"kansuji_teens", "昭和十五年", Wareki{Showa, 15}},
		{"ascii_teens", "昭和15年", Wareki{Showa, 15}},
		{"fullwidth_teens", "昭和１５年", Wareki{Showa, 15}},
		{"reiwa_gan", "令和元年", Wareki{Reiwa, 1}},
		{"embedded_in_title", "平成十一年総理府令第三号", Wareki{Heisei, 11}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseWareki(tc.text)
			if !ok {
				t.Fatalf("ParseWareki(%q): no match", tc.text)
			}
			if got != tc.want {
				t.Errorf("ParseWareki(%q) = %+v, want %+v", tc.text, got, tc.want)
			}
		})
	}
}

func TestParseWarekiRejects(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no_year_marker", "昭和十五"},
		{"no_era", "十五年"},
		{"romanized_era", "Showa15年"},
		{"plain_text", "法律第八十九号"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w, ok := ParseWareki(tc.text); ok {
				t.Errorf("ParseWareki(%q) = %+v, want no match", tc.text, w)
			}
		})
	}
}

func TestFromDate(t *testing.T) {
	w, ok := FromDate(NewDate(1923, 6, 20))
	if !ok {
		t.Fatal("FromDate(1923-06-20): no era")
	}
	if w != NewWareki(Taisho, 12) {
		t.Errorf("FromDate(1923-06-20) = %+v, want Taisho 12", w)
	}
	if w.ADYear() != 1923 {
		t.Errorf("ADYear = %d, want 1923", w.ADYear())
	}
}

func TestFromDateFirstYears(t *testing.T) {
	cases := []struct {
		name string
		date Date
		want Wareki
	}{
		{"showa_64", NewDate(1989, 1, 7), Wareki{Showa, 64}},
		{"heisei_1", NewDate(1989, 1, 8), Wareki{Heisei, 1}},
		{"heisei_31", NewDate(2019, 4, 30), Wareki{Heisei, 31}},
		{"reiwa_1", NewDate(2019, 5, 1), Wareki{Reiwa, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FromDate(tc.date)
			if !ok {
				t.Fatalf("FromDate(%v): no era", tc.date)
			}
			if got != tc.want {
				t.Errorf("FromDate(%v) = %+v, want %+v", tc.date, got, tc.want)
			}
		})
	}
}

func TestWarekiString(t *testing.T) {
	if got := NewWareki(Reiwa, 1).String(); got != "令和元年" {
		t.Errorf("Reiwa 1 = %q, want 令和元年", got)
	}
	if got := NewWareki(Showa, 15).String(); got != "昭和15年" {
		t.Errorf("Showa 15 = %q, want 昭和15年", got)
	}
}

func TestNewWarekiDate(t *testing.T) {
	d := NewWarekiDate(Taisho, 12, 6, 20)
	if d != NewDate(1923, 6, 20) {
		t.Errorf("NewWarekiDate(Taisho, 12, 6, 20) = %+v, want 1923-06-20", d)
	}
}
