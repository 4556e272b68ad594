// Package jobnumber normalizes and validates TSM job numbers: exactly four
// ASCII digits after stripping every non-digit character.
package jobnumber

import "strings"

// Length is the required number of digits in a normalized job number.
const Length = 4

// Normalize strips all non-digit characters from the input.
func Normalize(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate normalizes the input and reports whether exactly four digits
// remain. The message is safe to render to the caller.
func Validate(input string) (normalized string, valid bool, message string) {
	normalized = Normalize(input)
	if len(normalized) != Length {
		return normalized, false, "Job number must be exactly 4 digits"
	}
	return normalized, true, ""
}
