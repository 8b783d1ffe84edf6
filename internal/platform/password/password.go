// Package password holds the account password rule. It is shared by the
// signup, reset, and account-settings flows, which live in different
// modules.
package password

// symbols is the fixed set of allowed special characters.
const symbols = "@$!%*?&#^()_+=-[]{};:,.<>"

func isSymbol(r rune) bool {
	for _, s := range symbols {
		if r == s {
			return true
		}
	}
	return false
}

// Strength is the per-rule breakdown shown next to the password field
// while the user types.
type Strength struct {
	Length      bool // 8-128 characters
	Lower       bool
	Upper       bool
	Digit       bool
	Symbol      bool
	AllowedOnly bool // no characters outside letters, digits, and the symbol set
}

// Valid reports whether every rule is satisfied.
func (s Strength) Valid() bool {
	return s.Length && s.Lower && s.Upper && s.Digit && s.Symbol && s.AllowedOnly
}

// Check computes the strength breakdown for s.
func Check(s string) Strength {
	strength := Strength{
		Length:      len(s) >= 8 && len(s) <= 128,
		AllowedOnly: true,
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			strength.Lower = true
		case r >= 'A' && r <= 'Z':
			strength.Upper = true
		case r >= '0' && r <= '9':
			strength.Digit = true
		case isSymbol(r):
			strength.Symbol = true
		default:
			strength.AllowedOnly = false
		}
	}
	return strength
}

// Valid reports whether s satisfies all password rules.
func Valid(s string) bool {
	return Check(s).Valid()
}
