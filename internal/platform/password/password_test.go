package password_test

import (
	"testing"

	"fitcoach/internal/platform/password"
)

func TestValid(t *testing.T) {
	t.Parallel()
	cases := []struct {
		password string
		want     bool
	}{
		{"Abcdef1!", true},
		{"abcdefg1!", false}, // no uppercase
		{"Abcdefgh!", false}, // no digit
		{"ABCDEFG1!", false}, // no lowercase
		{"Abcdefg1", false},  // no symbol
		{"Ab1!x", false},     // too short
		{"Abcdef1 !", false}, // space outside the allowed set
	}
	for _, tc := range cases {
		if got := password.Valid(tc.password); got != tc.want {
			t.Errorf("Valid(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestCheckBreakdown(t *testing.T) {
	t.Parallel()
	got := password.Check("abcdefg1!")
	if got.Upper {
		t.Fatalf("expected missing uppercase in breakdown, got %+v", got)
	}
	if !got.Lower || !got.Digit || !got.Symbol || !got.Length || !got.AllowedOnly {
		t.Fatalf("unexpected breakdown %+v", got)
	}
	if got.Valid() {
		t.Fatalf("breakdown with missing rule must not be valid")
	}
}
