// Package phone renders phone numbers in a canonical display form for
// outbound notification emails.
package phone

import "strings"

// Format maps US numbers to "+1 (AAA) BBB-CCCC". An 11-digit number with a
// leading 1 is treated as a US number with the country code stripped.
// Anything else is returned unchanged; formatting is best-effort and never
// rejects input.
func Format(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 11 && digits[0] == '1':
		return "+1 (" + digits[1:4] + ") " + digits[4:7] + "-" + digits[7:]
	case len(digits) == 10:
		return "+1 (" + digits[0:3] + ") " + digits[3:6] + "-" + digits[6:]
	default:
		return raw
	}
}
