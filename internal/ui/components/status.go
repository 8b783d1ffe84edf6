package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitcoach/internal/ui/theme"
)

// Submit phase of a form. A success or error phase reverts to idle on
// its own after revertAfter.
type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Failure
)

const revertAfter = 2 * time.Second

// RevertMsg asks a SubmitStatus to fall back to idle. Seq guards against
// a stale tick reverting a newer phase.
type RevertMsg struct{ Seq int }

// SubmitStatus is the shared submit-state machine for every form screen:
// idle → loading → success|failure → idle.
type SubmitStatus struct {
	phase   Phase
	message string
	seq     int
	spin    spinner.Model
}

func NewSubmitStatus() SubmitStatus {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return SubmitStatus{spin: sp}
}

func (s SubmitStatus) Phase() Phase { return s.phase }

// Busy reports whether a submit is currently in flight.
func (s SubmitStatus) Busy() bool { return s.phase == Loading }

// Start enters the loading phase and returns the spinner tick.
func (s *SubmitStatus) Start() tea.Cmd {
	s.phase = Loading
	s.message = ""
	s.seq++
	return s.spin.Tick
}

// Succeed shows msg and schedules the revert to idle.
func (s *SubmitStatus) Succeed(msg string) tea.Cmd {
	s.phase = Success
	s.message = msg
	s.seq++
	return s.revertCmd()
}

// Fail shows msg and schedules the revert to idle.
func (s *SubmitStatus) Fail(msg string) tea.Cmd {
	s.phase = Failure
	s.message = msg
	s.seq++
	return s.revertCmd()
}

func (s *SubmitStatus) revertCmd() tea.Cmd {
	seq := s.seq
	return tea.Tick(revertAfter, func(time.Time) tea.Msg {
		return RevertMsg{Seq: seq}
	})
}

func (s SubmitStatus) Update(msg tea.Msg) (SubmitStatus, tea.Cmd) {
	switch msg := msg.(type) {
	case RevertMsg:
		if msg.Seq == s.seq && (s.phase == Success || s.phase == Failure) {
			s.phase = Idle
			s.message = ""
		}
	case spinner.TickMsg:
		if s.phase == Loading {
			var cmd tea.Cmd
			s.spin, cmd = s.spin.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

func (s SubmitStatus) View() string {
	switch s.phase {
	case Loading:
		return s.spin.View() + theme.Muted.Render(" working…")
	case Success:
		return theme.Good.Render("✓ " + s.message)
	case Failure:
		return theme.Bad.Render("✗ " + s.message)
	}
	return ""
}
