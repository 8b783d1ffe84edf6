package login

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "fitcoach/internal/modules/auth/dto"
	"fitcoach/internal/ui/components"
	"fitcoach/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type LoginPort interface {
	Login(ctx context.Context, email, password string) (authdto.LoginOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type resultMsg struct {
	out authdto.LoginOutput
	err error
}

// GoogleStartMsg asks the app model to run the Google loopback flow.
type GoogleStartMsg struct{}

const (
	fieldEmail = iota
	fieldPassword
)

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   LoginPort
	fields components.FieldGroup
	status components.SubmitStatus
	width  int
	height int
}

func New(port LoginPort) Model {
	return Model{
		port: port,
		fields: components.NewFieldGroup(
			components.NewField("you@example.com"),
			components.NewSecretField("password"),
		),
		status: components.NewSubmitStatus(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case resultMsg:
		if msg.err != nil {
			cmds = append(cmds, m.status.Fail(components.ErrorText(msg.err)))
			return m, tea.Batch(cmds...)
		}
		cmds = append(cmds, m.status.Succeed("Signed in"))
		cmds = append(cmds, components.SessionDirty())
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.status.Busy() {
				return m, nil
			}
			cmds = append(cmds, m.status.Start(), m.submitCmd())
			return m, tea.Batch(cmds...)
		case "ctrl+g":
			return m, func() tea.Msg { return GoogleStartMsg{} }
		case "ctrl+s":
			return m, components.Goto("/signIn")
		case "ctrl+r":
			return m, components.Goto("/checkEmail")
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
	card += theme.Title.Render("Sign in to FitCoach") + "\n\n"
	card += m.fields.View([]string{"Email", "Password"})
	card += "\n" + m.status.View() + "\n\n"
	card += theme.Muted.Render("enter: sign in  ctrl+g: google  ctrl+s: create account  ctrl+r: forgot password")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		theme.CardActive.Render(card))
}

func (m Model) submitCmd() tea.Cmd {
	email := m.fields.Value(fieldEmail)
	password := m.fields.RawValue(fieldPassword)
	return func() tea.Msg {
		out, err := m.port.Login(context.Background(), email, password)
		return resultMsg{out: out, err: err}
	}
}
