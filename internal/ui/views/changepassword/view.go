package changepassword

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitcoach/internal/ui/components"
	"fitcoach/internal/ui/theme"
)

type ResetPort interface {
	ChangePassword(ctx context.Context, email, password, repeat string) error
}

type changedMsg struct{ err error }

const (
	fieldPassword = iota
	fieldRepeat
)

type Model struct {
	port     ResetPort
	fields   components.FieldGroup
	status   components.SubmitStatus
	email    string
	prepared bool
	width    int
	height   int
}

func New(port ResetPort) Model {
	return Model{
		port: port,
		fields: components.NewFieldGroup(
			components.NewSecretField("new password"),
			components.NewSecretField("repeat new password"),
		),
		status: components.NewSubmitStatus(),
	}
}

// Begin installs the account email carried over from the lookup screen.
// Arriving without one bounces to login.
func (m *Model) Begin(email string) tea.Cmd {
	m.email = strings.TrimSpace(email)
	m.prepared = m.email != ""
	m.fields.Inputs[fieldPassword].SetValue("")
	m.fields.Inputs[fieldRepeat].SetValue("")
	if !m.prepared {
		return components.Goto("/login")
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case changedMsg:
		if msg.err != nil {
			cmds = append(cmds, m.status.Fail(components.ErrorText(msg.err)))
			return m, tea.Batch(cmds...)
		}
		cmds = append(cmds, m.status.Succeed("Password changed, sign in with the new one"))
		cmds = append(cmds, components.Goto("/login"))
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if !m.prepared {
			return m, nil
		}
		if msg.String() == "enter" {
			if m.status.Busy() {
				return m, nil
			}
			cmds = append(cmds, m.status.Start(), m.submitCmd())
			return m, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	m.status, cmd = m.status.Update(msg)
	cmds = append(cmds, cmd)
	m.fields, cmd = m.fields.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var card string
	card += theme.Title.Render("Set a new password") + "\n\n"
	if !m.prepared {
		card += theme.Muted.Render("Redirecting…")
	} else {
		card += theme.Muted.Render("Account: ") + theme.Hot.Render(m.email) + "\n\n"
		card += m.fields.View([]string{"New password", "Repeat"})
		if hints := components.PasswordHints(m.fields.RawValue(fieldPassword)); hints != "" {
			card += hints + "\n"
		}
		card += "\n" + m.status.View() + "\n\n"
		card += theme.Muted.Render("enter: change password")
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		theme.CardActive.Render(card))
}

func (m Model) submitCmd() tea.Cmd {
	email := m.email
	password := m.fields.RawValue(fieldPassword)
	repeat := m.fields.RawValue(fieldRepeat)
	return func() tea.Msg {
		return changedMsg{err: m.port.ChangePassword(context.Background(), email, password, repeat)}
	}
}
