package checkemail

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "fitcoach/internal/modules/auth/dto"
	"fitcoach/internal/ui/components"
	"fitcoach/internal/ui/theme"
)

type RecoverPort interface {
	CheckEmail(ctx context.Context, email, flowType string) (authdto.CheckEmailOutput, error)
}

type resultMsg struct {
	out authdto.CheckEmailOutput
	err error
}

// Model is the "forgot password" entry screen: it looks the account up
// and routes to the reset or verification flow depending on status.
type Model struct {
	port   RecoverPort
	email  textinput.Model
	status components.SubmitStatus
	width  int
	height int
}

func New(port RecoverPort) Model {
	email := components.NewField("you@example.com")
	email.Focus()
	return Model{
		port:   port,
		email:  email,
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
		switch msg.out.Status {
		case authdto.StatusPending:
			// Account exists but was never verified: finish that first.
			cmds = append(cmds, components.Goto("/checkCode?e="+msg.out.EncryptedEmail))
		case authdto.StatusInactive:
			cmds = append(cmds, m.status.Fail("This account is inactive"))
			cmds = append(cmds, components.GotoAfter(2*time.Second, "/login"))
		default:
			// The reset screen takes the plain typed address; the
			// encrypted reference only exists on the pending branch.
			email := strings.TrimSpace(m.email.Value())
			cmds = append(cmds, components.Goto("/changePassword?email="+url.QueryEscape(email)))
		}
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
	m.email, cmd = m.email.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var card string
	card += theme.Title.Render("Recover your password") + "\n\n"
	card += theme.Label.Render("Email") + "\n" + m.email.View() + "\n"
	card += "\n" + m.status.View() + "\n\n"
	card += theme.Muted.Render("enter: continue  ctrl+l: back to login")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		theme.CardActive.Render(card))
}

func (m Model) submitCmd() tea.Cmd {
	email := m.email.Value()
	return func() tea.Msg {
		out, err := m.port.CheckEmail(context.Background(), email, "password")
		return resultMsg{out: out, err: err}
	}
}
