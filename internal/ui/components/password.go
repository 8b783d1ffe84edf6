package components

import (
	"strings"

	"fitcoach/internal/platform/password"
	"fitcoach/internal/ui/theme"
)

// PasswordHints renders the per-rule strength breakdown for the typed
// password, one mark per rule. Empty input renders nothing so the line
// only appears once the user starts typing.
func PasswordHints(typed string) string {
	if typed == "" {
		return ""
	}
	s := password.Check(typed)
	marks := []string{
		mark(s.Length, "8+ chars"),
		mark(s.Upper, "A-Z"),
		mark(s.Lower, "a-z"),
		mark(s.Digit, "0-9"),
		mark(s.Symbol, "symbol"),
	}
	line := strings.Join(marks, "  ")
	if !s.AllowedOnly {
		line += "  " + theme.Bad.Render("✗ disallowed character")
	}
	return line
}

func mark(ok bool, label string) string {
	if ok {
		return theme.Good.Render("✓ " + label)
	}
	return theme.Muted.Render("✗ " + label)
}
