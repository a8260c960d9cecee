// Package phone provides Brazilian phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "BR"

// maxDigits is the length of a full Brazilian mobile number with area code.
const maxDigits = 11

var completeMask = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)

// Digits strips everything but digits from the input, capped at the
// maximum national number length.
func Digits(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if b.Len() == maxDigits {
			break
		}
	}
	return b.String()
}

// FormatBR applies the national display mask progressively as digits are
// typed: "(AA) NNNN-NNNN" for landlines, "(AA) NNNNN-NNNN" for mobiles.
// Formatting an already formatted value returns it unchanged.
func FormatBR(raw string) string {
	d := Digits(raw)
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 2:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case len(d) <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// IsValidBR reports whether the formatted string matches the complete mask
// (10 or 11 digits including the area code).
func IsValidBR(formatted string) bool {
	return completeMask.MatchString(formatted)
}

// ExtractAreaCode returns the two-digit area code of the input, or "" when
// fewer than two digits are present.
func ExtractAreaCode(raw string) string {
	d := Digits(raw)
	if len(d) < 2 {
		return ""
	}
	return d[:2]
}

// NormalizeE164 formats a phone number to E.164. If parsing fails, it returns the trimmed input.
func NormalizeE164(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}
