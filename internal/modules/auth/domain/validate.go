package domain

import (
	"regexp"

	"fitcoach/internal/platform/password"
)

// emailPattern is deliberately RFC-light: the local part starts and ends
// alphanumeric, domain labels are alphanumeric with interior hyphens,
// and the TLD is at least two letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._%+-]*[a-zA-Z0-9]@[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)

var codePattern = regexp.MustCompile(`^\d{6}$`)

// ValidEmail reports whether s is an acceptable account email.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidCode reports whether s is a six-digit verification code.
func ValidCode(s string) bool {
	return codePattern.MatchString(s)
}

func isUsernameSymbol(c byte) bool {
	return c == '.' || c == '_' || c == '-'
}

// ValidUsername enforces 5-20 lowercase letters, digits, and `._-`, with
// no leading or trailing symbol and no two symbols in a row.
func ValidUsername(s string) bool {
	if len(s) < 5 || len(s) > 20 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case isUsernameSymbol(c):
			if i == 0 || i == len(s)-1 {
				return false
			}
			if isUsernameSymbol(s[i-1]) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// ValidPassword reports whether s satisfies the shared password rule.
func ValidPassword(s string) bool {
	return password.Valid(s)
}

// ValidRepeatPassword requires the repeat to independently satisfy the
// pattern and to equal the first password.
func ValidRepeatPassword(pw, repeat string) bool {
	return password.Valid(repeat) && pw == repeat
}
