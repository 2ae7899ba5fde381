package similarity

import "testing"

func TestIndel_Ratio(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"shall enter into force", "shall enter into force", 100},
		{"shall enter in to force", "shall enter into force", 98},
		{"abcd", "wxyz", 0},
		{"", "shall apply", 0},
		{"shall apply", "", 0},
		{"kitten", "sitting", 62},
		{"this is a test", "this is a test!", 97},
		{"shall be construed", "shall be constructed", 95},
		// 12.5 rounds to even.
		{"a", "abcdefghijklmno", 12},
		// Runes, not bytes.
		{"Straße", "Strasse", 77},
	}
	for _, tc := range cases {
		if got := (Indel{}).Ratio(tc.a, tc.b); got != tc.want {
			t.Errorf("Ratio(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestIndel_InsertionInsidePhrase(t *testing.T) {
	phrase := "shall be binding in its entirety and directly applicable in all member states"
	sent := "shall be binding in its entirety and directly applicable in all of the relevant member states"
	if got := (Indel{}).Ratio(sent, phrase); got != 91 {
		t.Errorf("expected 91, got %d", got)
	}
}

func TestIndel_Symmetric(t *testing.T) {
	s := Indel{}
	a, b := "shall be construed", "shall be constructed"
	if s.Ratio(a, b) != s.Ratio(b, a) {
		t.Errorf("expected symmetric scores, got %d and %d", s.Ratio(a, b), s.Ratio(b, a))
	}
}
