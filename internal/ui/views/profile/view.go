package profile

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitcoach/internal/ui/components"
	"fitcoach/internal/ui/theme"
)

type CompletePort interface {
	SaveInitial(ctx context.Context, weight, height, age int, gender string) error
}

type savedMsg struct{ err error }

var genders = []string{"male", "female", "other"}

const (
	fieldWeight = iota
	fieldHeight
	fieldAge
)

// Model is the one-time profile completion form that gates the rest of
// the app.
type Model struct {
	port   CompletePort
	fields components.FieldGroup
	status components.SubmitStatus
	gender int
	width  int
	height int
}

func New(port CompletePort) Model {
	return Model{
		port: port,
		fields: components.NewFieldGroup(
			components.NewField("weight in kg"),
			components.NewField("height in cm"),
			components.NewField("age in years"),
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

	case savedMsg:
		if msg.err != nil {
			cmds = append(cmds, m.status.Fail(components.ErrorText(msg.err)))
			return m, tea.Batch(cmds...)
		}
		cmds = append(cmds, m.status.Succeed("Profile saved"))
		// The gate re-routes to the trainer once the session is
		// re-probed.
		cmds = append(cmds, components.SessionDirty())
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.status.Busy() {
				return m, nil
			}
			return m, m.submit()
		case "left", "right":
			dir := 1
			if msg.String() == "left" {
				dir = -1
			}
			m.gender = (m.gender + dir + len(genders)) % len(genders)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.status, cmd = m.status.Update(msg)
	cmds = append(cmds, cmd)
	m.fields, cmd = m.fields.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) submit() tea.Cmd {
	weight, wErr := strconv.Atoi(m.fields.Value(fieldWeight))
	height, hErr := strconv.Atoi(m.fields.Value(fieldHeight))
	age, aErr := strconv.Atoi(m.fields.Value(fieldAge))
	if wErr != nil || hErr != nil || aErr != nil {
		return m.status.Fail("Weight, height and age must be whole numbers")
	}
	gender := genders[m.gender]
	start := m.status.Start()
	save := func() tea.Msg {
		return savedMsg{err: m.port.SaveInitial(context.Background(), weight, height, age, gender)}
	}
	return tea.Batch(start, save)
}

func (m Model) View() string {
	var card string
	card += theme.Title.Render("Tell us about yourself") + "\n"
	card += theme.Muted.Render("This unlocks your personalized AI trainer") + "\n\n"
	card += m.fields.View([]string{"Weight (kg)", "Height (cm)", "Age"})
	card += "\n" + theme.Label.Render("Gender") + "  "
	for i, g := range genders {
		if i == m.gender {
			card += theme.Hot.Render("[" + g + "]")
		} else {
			card += theme.Muted.Render(" " + g + " ")
		}
	}
	card += "\n\n" + m.status.View() + "\n\n"
	card += theme.Muted.Render("enter: save  ←/→: gender")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		theme.CardActive.Render(card))
}
