package checkemail

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	authdto "fitcoach/internal/modules/auth/dto"
	"fitcoach/internal/ui/components"
)

type stubRecover struct {
	out authdto.CheckEmailOutput
	err error
}

func (s stubRecover) CheckEmail(_ context.Context, _, _ string) (authdto.CheckEmailOutput, error) {
	return s.out, s.err
}

// drain executes cmd (and any batch it expands to) and returns every
// produced message. Delayed ticks are waited out.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, sub := range batch {
			msgs = append(msgs, drain(sub)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func gotoPaths(msgs []tea.Msg) []string {
	var paths []string
	for _, msg := range msgs {
		if nav, ok := msg.(components.GotoMsg); ok {
			paths = append(paths, nav.Path)
		}
	}
	return paths
}

func TestActiveAccountRoutesToResetWithTypedEmail(t *testing.T) {
	t.Parallel()
	m := New(stubRecover{})
	m.email.SetValue("  user@example.com ")

	m, cmd := m.Update(resultMsg{out: authdto.CheckEmailOutput{Status: authdto.StatusActive}})
	paths := gotoPaths(drain(cmd))
	if len(paths) != 1 {
		t.Fatalf("goto paths = %v, want exactly one", paths)
	}
	if paths[0] != "/changePassword?email=user%40example.com" {
		t.Fatalf("path = %q", paths[0])
	}
}

func TestPendingAccountRoutesToVerification(t *testing.T) {
	t.Parallel()
	m := New(stubRecover{})
	m.email.SetValue("user@example.com")

	m, cmd := m.Update(resultMsg{out: authdto.CheckEmailOutput{
		Status:         authdto.StatusPending,
		EncryptedEmail: "enc123",
	}})
	paths := gotoPaths(drain(cmd))
	if len(paths) != 1 || paths[0] != "/checkCode?e=enc123" {
		t.Fatalf("goto paths = %v", paths)
	}
}

func TestInactiveAccountBouncesToLogin(t *testing.T) {
	t.Parallel()
	m := New(stubRecover{})
	m.email.SetValue("user@example.com")

	m, cmd := m.Update(resultMsg{out: authdto.CheckEmailOutput{Status: authdto.StatusInactive}})
	if m.status.Phase() != components.Failure {
		t.Fatalf("phase = %v, want Failure", m.status.Phase())
	}
	paths := gotoPaths(drain(cmd))
	if len(paths) != 1 || paths[0] != "/login" {
		t.Fatalf("goto paths = %v, want the delayed login redirect", paths)
	}
}
