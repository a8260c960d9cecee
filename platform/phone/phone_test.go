package phone

import "testing"

func TestFormatBRProgressive(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "(1"},
		{"11", "(11"},
		{"119", "(11) 9"},
		{"119888", "(11) 9888"},
		{"1198888777", "(11) 9888-8777"},
		{"11988887777", "(11) 98888-7777"},
		{"11 98888 7777", "(11) 98888-7777"},
		{"(11) 98888-7777", "(11) 98888-7777"},
		{"119888877779999", "(11) 98888-7777"},
	}

	for _, tc := range cases {
		if got := FormatBR(tc.in); got != tc.want {
			t.Errorf("FormatBR(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatBRIdempotent(t *testing.T) {
	inputs := []string{"11988887777", "2133334444", "11", "119"}
	for _, in := range inputs {
		once := FormatBR(in)
		if twice := FormatBR(once); twice != once {
			t.Errorf("FormatBR not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestIsValidBR(t *testing.T) {
	valid := []string{"(11) 98888-7777", "(21) 3333-4444"}
	for _, v := range valid {
		if !IsValidBR(v) {
			t.Errorf("IsValidBR(%q) = false, want true", v)
		}
	}

	invalid := []string{"", "(11) 9888-877", "11988887777", "(1) 98888-7777", "(11) 988888-7777"}
	for _, v := range invalid {
		if IsValidBR(v) {
			t.Errorf("IsValidBR(%q) = true, want false", v)
		}
	}
}

func TestExtractAreaCode(t *testing.T) {
	if got := ExtractAreaCode("(11) 98888-7777"); got != "11" {
		t.Fatalf("expected area code 11, got %q", got)
	}
	if got := ExtractAreaCode("9"); got != "" {
		t.Fatalf("expected empty area code, got %q", got)
	}
}

func TestNormalizeE164(t *testing.T) {
	if got := NormalizeE164("(11) 98888-7777"); got != "+5511988887777" {
		t.Fatalf("expected +5511988887777, got %q", got)
	}
	// Unparseable input comes back trimmed.
	if got := NormalizeE164("  not-a-phone  "); got != "not-a-phone" {
		t.Fatalf("expected trimmed input, got %q", got)
	}
}
