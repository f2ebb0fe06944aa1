package domain

import "regexp"

// MinPasswordLen applies at registration only; login accepts whatever
// the account was created with.
const MinPasswordLen = 6

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidEmail reports whether s has a plain local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// FormatCPF strips every non-digit character from a CPF as typed, e.g.
// "123.456.789-01" -> "12345678901". The stripped form is what goes on
// the wire and nothing else is ever transmitted.
func FormatCPF(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// ValidCPF reports whether the stripped CPF has exactly 11 digits. This
// is a format check only; verification digits are not computed.
func ValidCPF(s string) bool {
	return len(FormatCPF(s)) == 11
}
