package signup

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "fitcoach/internal/modules/auth/dto"
	"fitcoach/internal/ui/components"
	"fitcoach/internal/ui/theme"
)

type SignupPort interface {
	Signup(ctx context.Context, email, username, password, repeat string) (authdto.SignupOutput, error)
}

type resultMsg struct {
	out authdto.SignupOutput
	err error
}

const (
	fieldEmail = iota
	fieldUsername
	fieldPassword
	fieldRepeat
)

type Model struct {
	port   SignupPort
	fields components.FieldGroup
	status components.SubmitStatus
	width  int
	height int
}

func New(port SignupPort) Model {
	return Model{
		port: port,
		fields: components.NewFieldGroup(
			components.NewField("you@example.com"),
			components.NewField("username"),
			components.NewSecretField("password"),
			components.NewSecretField("repeat password"),
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
		cmds = append(cmds, m.status.Succeed("Check your inbox for a verification code"))
		// The verification screen takes over with the encrypted email
		// reference, exactly as the emailed link would.
		cmds = append(cmds, components.Goto("/checkCode?e="+msg.out.EncryptedEmail))
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.status.Busy() {
				return m, nil
			}
			cmds = append(cmds, m.status.Start(), m.submitCmd())
			return m, tea.Batch(cmds...)
		case "ctrl+l":
			return m, components.Goto("/login")
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
	card += theme.Title.Render("Create your account") + "\n\n"
	card += m.fields.View([]string{"Email", "Username", "Password", "Repeat password"})
	if hints := components.PasswordHints(m.fields.RawValue(fieldPassword)); hints != "" {
		card += hints + "\n"
	}
	card += "\n" + m.status.View() + "\n\n"
	card += theme.Muted.Render("enter: sign up  ctrl+l: back to login")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		theme.CardActive.Render(card))
}

func (m Model) submitCmd() tea.Cmd {
	email := m.fields.Value(fieldEmail)
	username := m.fields.Value(fieldUsername)
	password := m.fields.RawValue(fieldPassword)
	repeat := m.fields.RawValue(fieldRepeat)
	return func() tea.Msg {
		out, err := m.port.Signup(context.Background(), email, username, password, repeat)
		return resultMsg{out: out, err: err}
	}
}
