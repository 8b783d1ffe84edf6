package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"fitcoach/internal/ui/theme"
)

// NewField builds a text input styled for a form screen.
func NewField(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	ti.PromptStyle = theme.Label
	ti.TextStyle = theme.BotMsg
	return ti
}

// NewSecretField builds a password input.
func NewSecretField(placeholder string) textinput.Model {
	ti := NewField(placeholder)
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	return ti
}

// FieldGroup cycles focus across an ordered set of inputs with tab and
// shift+tab and fans every other message out to all of them.
type FieldGroup struct {
	Inputs  []textinput.Model
	focused int
}

func NewFieldGroup(inputs ...textinput.Model) FieldGroup {
	g := FieldGroup{Inputs: inputs}
	if len(g.Inputs) > 0 {
		g.Inputs[0].Focus()
	}
	return g
}

func (g FieldGroup) Focused() int { return g.focused }

func (g FieldGroup) Update(msg tea.Msg) (FieldGroup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return g.shift(1), nil
		case "shift+tab", "up":
			return g.shift(-1), nil
		}
	}
	cmds := make([]tea.Cmd, len(g.Inputs))
	for i := range g.Inputs {
		g.Inputs[i], cmds[i] = g.Inputs[i].Update(msg)
	}
	return g, tea.Batch(cmds...)
}

func (g FieldGroup) shift(dir int) FieldGroup {
	if len(g.Inputs) == 0 {
		return g
	}
	g.Inputs[g.focused].Blur()
	g.focused = (g.focused + dir + len(g.Inputs)) % len(g.Inputs)
	g.Inputs[g.focused].Focus()
	return g
}

// Value returns the trimmed content of input i.
func (g FieldGroup) Value(i int) string {
	return strings.TrimSpace(g.Inputs[i].Value())
}

// RawValue returns the content of input i without trimming, for fields
// where whitespace is significant.
func (g FieldGroup) RawValue(i int) string {
	return g.Inputs[i].Value()
}

// View renders the labelled inputs one per line.
func (g FieldGroup) View(labels []string) string {
	var sb strings.Builder
	for i, in := range g.Inputs {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		sb.WriteString(theme.Label.Render(label) + "\n" + in.View() + "\n")
	}
	return sb.String()
}
