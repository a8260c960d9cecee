package locale

import "testing"

func TestLookupKnownCodes(t *testing.T) {
	cases := []struct {
		code      string
		city      string
		state     string
		stateCode string
	}{
		{"11", "São Paulo", "São Paulo", "SP"},
		{"21", "Rio de Janeiro", "Rio de Janeiro", "RJ"},
		{"31", "Belo Horizonte", "Minas Gerais", "MG"},
		{"61", "Brasília", "Distrito Federal", "DF"},
		{"85", "Fortaleza", "Ceará", "CE"},
	}

	for _, tc := range cases {
		loc, ok := Lookup(tc.code)
		if !ok {
			t.Fatalf("Lookup(%q) not found", tc.code)
		}
		if loc.City != tc.city || loc.State != tc.state || loc.StateCode != tc.stateCode {
			t.Errorf("Lookup(%q) = %+v, want {%s %s %s}", tc.code, loc, tc.city, tc.state, tc.stateCode)
		}
	}
}

func TestLookupUnknownCodes(t *testing.T) {
	for _, code := range []string{"", "1", "00", "20", "23", "25", "26", "30", "36", "39", "40", "50", "52", "56", "60", "70", "72", "76", "78", "80", "90", "100"} {
		if _, ok := Lookup(code); ok {
			t.Errorf("Lookup(%q) found, want miss", code)
		}
	}
}

// Every entry must carry a non-empty city and a two-letter state code.
func TestTableWellFormed(t *testing.T) {
	codes := AreaCodes()
	if len(codes) != 67 {
		t.Fatalf("expected 67 area codes, got %d", len(codes))
	}

	for _, code := range codes {
		loc, ok := Lookup(code)
		if !ok {
			t.Fatalf("AreaCodes returned unknown code %q", code)
		}
		if loc.City == "" || loc.State == "" {
			t.Errorf("code %q has empty city or state", code)
		}
		if len([]rune(loc.StateCode)) != 2 {
			t.Errorf("code %q has state code %q, want 2 letters", code, loc.StateCode)
		}
	}
}
