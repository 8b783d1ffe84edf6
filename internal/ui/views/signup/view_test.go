package signup

import (
	"context"
	"strings"
	"testing"

	authdto "fitcoach/internal/modules/auth/dto"
)

type stubSignup struct {
	out authdto.SignupOutput
	err error
}

func (s stubSignup) Signup(_ context.Context, _, _, _, _ string) (authdto.SignupOutput, error) {
	return s.out, s.err
}

func TestPasswordRuleBreakdownFollowsTyping(t *testing.T) {
	t.Parallel()
	m := New(stubSignup{})

	if strings.Contains(m.View(), "8+ chars") {
		t.Fatalf("rule breakdown must stay hidden before typing starts")
	}

	m.fields.Inputs[fieldPassword].SetValue("abcdefg1!")
	view := m.View()
	if !strings.Contains(view, "✗ A-Z") {
		t.Fatalf("view must flag the missing uppercase rule")
	}
	if !strings.Contains(view, "✓ 0-9") {
		t.Fatalf("view must confirm the satisfied digit rule")
	}
}
