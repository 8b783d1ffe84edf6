package checkcode

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "fitcoach/internal/modules/auth/dto"
	"fitcoach/internal/ui/components"
	"fitcoach/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type VerifyPort interface {
	PrepareCodeScreen(ctx context.Context, encryptedEmail, encryptedCode string) (authdto.CodeScreenOutput, error)
	CheckCode(ctx context.Context, email, code string) (authdto.CheckCodeOutput, error)
	ResendEmail(ctx context.Context, email string) (authdto.SendEmailOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type preparedMsg struct {
	out authdto.CodeScreenOutput
	err error
}

type verifiedMsg struct {
	out authdto.CheckCodeOutput
	err error
}

type resentMsg struct {
	out authdto.SendEmailOutput
	err error
}

type cooldownTickMsg struct{}

const resendCooldown = 5

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     VerifyPort
	code     textinput.Model
	status   components.SubmitStatus
	email    string
	prepared bool
	cooldown int
	width    int
	height   int
}

func New(port VerifyPort) Model {
	code := components.NewField("6-digit code")
	code.CharLimit = 6
	code.Focus()
	return Model{
		port:   port,
		code:   code,
		status: components.NewSubmitStatus(),
	}
}

// Begin resolves the e/c link parameters. The screen stays in a loading
// state until preparedMsg lands; a failed prepare bounces to login.
func (m *Model) Begin(encryptedEmail, encryptedCode string) tea.Cmd {
	m.prepared = false
	m.email = ""
	m.code.SetValue("")
	return func() tea.Msg {
		out, err := m.port.PrepareCodeScreen(context.Background(), encryptedEmail, encryptedCode)
		return preparedMsg{out: out, err: err}
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case preparedMsg:
		if msg.err != nil {
			return m, components.Goto("/login")
		}
		m.prepared = true
		m.email = msg.out.Email
		if msg.out.Code != "" {
			m.code.SetValue(msg.out.Code)
		}

	case verifiedMsg:
		if msg.err != nil {
			cmds = append(cmds, m.status.Fail(components.ErrorText(msg.err)))
			return m, tea.Batch(cmds...)
		}
		cmds = append(cmds, m.status.Succeed("Account verified, you can sign in now"))
		cmds = append(cmds, components.Goto("/login"))
		return m, tea.Batch(cmds...)

	case resentMsg:
		if msg.err != nil {
			cmds = append(cmds, m.status.Fail(components.ErrorText(msg.err)))
		} else {
			cmds = append(cmds, m.status.Succeed("Code sent again"))
		}
		return m, tea.Batch(cmds...)

	case cooldownTickMsg:
		if m.cooldown > 0 {
			m.cooldown--
			if m.cooldown > 0 {
				cmds = append(cmds, cooldownTick())
			}
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if !m.prepared {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			if m.status.Busy() {
				return m, nil
			}
			cmds = append(cmds, m.status.Start(), m.verifyCmd())
			return m, tea.Batch(cmds...)
		case "ctrl+r":
			if m.cooldown > 0 || m.status.Busy() {
				return m, nil
			}
			m.cooldown = resendCooldown
			cmds = append(cmds, m.resendCmd(), cooldownTick())
			return m, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	m.status, cmd = m.status.Update(msg)
	cmds = append(cmds, cmd)
	m.code, cmd = m.code.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var card string
	card += theme.Title.Render("Verify your email") + "\n\n"
	if !m.prepared {
		card += theme.Muted.Render("Checking your link…")
	} else {
		card += theme.Muted.Render("We sent a code to ") + theme.Hot.Render(m.email) + "\n\n"
		card += m.code.View() + "\n"
		card += "\n" + m.status.View() + "\n\n"
		resend := "ctrl+r: resend code"
		if m.cooldown > 0 {
			resend = "resend available in " + time.Duration(m.cooldown*int(time.Second)).String()
		}
		card += theme.Muted.Render("enter: verify  " + resend)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		theme.CardActive.Render(card))
}

func (m Model) verifyCmd() tea.Cmd {
	email, code := m.email, m.code.Value()
	return func() tea.Msg {
		out, err := m.port.CheckCode(context.Background(), email, code)
		return verifiedMsg{out: out, err: err}
	}
}

func (m Model) resendCmd() tea.Cmd {
	email := m.email
	return func() tea.Msg {
		out, err := m.port.ResendEmail(context.Background(), email)
		return resentMsg{out: out, err: err}
	}
}

func cooldownTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return cooldownTickMsg{}
	})
}
