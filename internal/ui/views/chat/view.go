package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	chatdomain "fitcoach/internal/modules/chat/domain"
	chatdto "fitcoach/internal/modules/chat/dto"
	apperrors "fitcoach/internal/platform/errors"
	"fitcoach/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type TrainerPort interface {
	History(ctx context.Context) (chatdto.HistoryOutput, error)
	Send(ctx context.Context, message string) (chatdto.ExchangeOutput, error)
	SendAnalysis(ctx context.Context) (chatdto.ExchangeOutput, error)
}

// SpeechPort captures one spoken phrase. Nil when voice input is not
// configured.
type SpeechPort interface {
	Transcribe(ctx context.Context) (string, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type historyMsg struct {
	out chatdto.HistoryOutput
	err error
}

type replyMsg struct {
	out chatdto.ExchangeOutput
	err error
}

// analysis sends synthesize their own prompt, so the user line is only
// known once the reply lands.
type analysisMsg struct {
	out chatdto.ExchangeOutput
	err error
}

type speechMsg struct {
	text string
	err  error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      TrainerPort
	speech    SpeechPort
	view      viewport.Model
	input     textinput.Model
	spin      spinner.Model
	log       chatdomain.Transcript
	loading   bool
	sending   bool
	recording bool
	note      string
	width     int
	height    int
}

func New(port TrainerPort, speech SpeechPort) Model {
	input := textinput.New()
	input.Placeholder = "Ask your trainer anything…"
	input.CharLimit = 500
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		speech:  speech,
		view:    viewport.New(0, 0),
		input:   input,
		spin:    sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadHistoryCmd(), m.spin.Tick)
}

// Begin refetches the server transcript, as on every screen entry.
func (m *Model) Begin() tea.Cmd {
	m.loading = true
	m.note = ""
	return tea.Batch(m.loadHistoryCmd(), m.spin.Tick)
}

// Analyze triggers the stored-stats analysis request.
func (m Model) Analyze() (Model, tea.Cmd) {
	if m.sending || m.loading {
		return m, nil
	}
	m.sending = true
	m.note = ""
	return m, tea.Batch(m.analysisCmd(), m.spin.Tick)
}

// Voice starts one capture on the configured transcriber and fills the
// input with the result.
func (m Model) Voice() (Model, tea.Cmd) {
	if m.speech == nil {
		m.note = "Voice input is not configured"
		return m, nil
	}
	if m.recording || m.sending || m.loading {
		return m, nil
	}
	m.recording = true
	m.note = ""
	return m, tea.Batch(m.listenCmd(), m.spin.Tick)
}

// ClearLocal wipes the visible transcript only; the server keeps its
// copy.
func (m Model) ClearLocal() Model {
	m.log.Clear()
	m.note = ""
	m.refresh()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = m.width - 4
		m.view.Height = m.height - 5
		m.view.SetContent(m.renderTranscript())

	case historyMsg:
		m.loading = false
		if msg.err != nil {
			m.note = apperrors.UserMessage(msg.err)
		} else {
			history := make([]chatdomain.Message, 0, len(msg.out.Messages))
			for _, message := range msg.out.Messages {
				history = append(history, chatdomain.Message{Content: message.Content, IsUser: message.IsUser})
			}
			m.log.Hydrate(history)
		}
		m.refresh()

	case replyMsg, analysisMsg:
		m.sending = false
		out, err := exchangeOf(msg)
		if err != nil {
			if errors.Is(err, apperrors.ErrBusy) {
				m.note = "Hold on, the trainer is still answering"
			} else if errors.Is(err, apperrors.ErrProfileIncomplete) {
				m.note = "Complete your profile stats before asking for an analysis"
			} else if !errors.Is(err, apperrors.ErrInvalidInput) {
				m.note = apperrors.UserMessage(err)
			}
			m.refresh()
			return m, nil
		}
		if _, wasAnalysis := msg.(analysisMsg); wasAnalysis {
			// The synthesized prompt appears as the user's own line.
			m.log.Append(out.Prompt, true)
		}
		m.log.Append(out.Reply, false)
		m.note = ""
		m.refresh()

	case speechMsg:
		m.recording = false
		if msg.err != nil {
			m.note = "Voice input failed, try typing instead"
			return m, nil
		}
		m.note = ""
		m.input.SetValue(msg.text)
		m.input.CursorEnd()
		return m, nil

	case spinner.TickMsg:
		if m.loading || m.sending || m.recording {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.sending {
				return m, nil
			}
			m.log.Append(text, true)
			m.input.SetValue("")
			m.sending = true
			m.note = ""
			m.refresh()
			cmds = append(cmds, m.sendCmd(text), m.spin.Tick)
			return m, tea.Batch(cmds...)
		case "ctrl+a":
			return m.Analyze()
		case "ctrl+o":
			return m.Voice()
		case "ctrl+l":
			return m.ClearLocal(), nil
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	cmds = append(cmds, cmd)
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spin.View()+" Loading your conversation…")
	}

	transcript := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Width(m.width - 2).
		Height(m.height - 4).
		Render(m.view.View())

	prompt := "> " + m.input.View()
	switch {
	case m.sending:
		prompt = m.spin.View() + " waiting for the trainer…"
	case m.recording:
		prompt = m.spin.View() + " listening…"
	}

	footer := m.note
	if footer == "" {
		footer = theme.Muted.Render("enter: send  ctrl+a: my analysis  ctrl+o: voice  ctrl+l: clear view")
	} else {
		footer = theme.Bad.Render(footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left, transcript, prompt, footer)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) refresh() {
	m.view.SetContent(m.renderTranscript())
	m.view.GotoBottom()
}

func (m Model) renderTranscript() string {
	if m.log.Len() == 0 {
		return theme.Muted.Render("No messages yet. Say hola to your trainer! 💪")
	}
	var sb strings.Builder
	for _, message := range m.log.Messages() {
		if message.IsUser {
			sb.WriteString(theme.UserMsg.Render("You") + "\n")
		} else {
			sb.WriteString(theme.Hot.Render("Trainer") + "\n")
		}
		sb.WriteString(theme.BotMsg.Render(message.Content) + "\n\n")
	}
	return sb.String()
}

func (m Model) loadHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.History(context.Background())
		return historyMsg{out: out, err: err}
	}
}

func (m Model) sendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Send(context.Background(), text)
		return replyMsg{out: out, err: err}
	}
}

func (m Model) listenCmd() tea.Cmd {
	return func() tea.Msg {
		text, err := m.speech.Transcribe(context.Background())
		return speechMsg{text: text, err: err}
	}
}

func (m Model) analysisCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.SendAnalysis(context.Background())
		return analysisMsg{out: out, err: err}
	}
}

func exchangeOf(msg tea.Msg) (chatdto.ExchangeOutput, error) {
	switch msg := msg.(type) {
	case replyMsg:
		return msg.out, msg.err
	case analysisMsg:
		return msg.out, msg.err
	}
	return chatdto.ExchangeOutput{}, nil
}
