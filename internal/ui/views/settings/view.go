package settings

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	profiledto "fitcoach/internal/modules/profile/dto"
	"fitcoach/internal/ui/components"
	"fitcoach/internal/ui/theme"
)

type AccountPort interface {
	Account(ctx context.Context) (profiledto.AccountOutput, error)
	SaveAccount(ctx context.Context, input profiledto.AccountInput) error
}

type loadedMsg struct {
	out profiledto.AccountOutput
	err error
}

type savedMsg struct{ err error }

var genders = []string{"male", "female", "other"}

const (
	fieldUsername = iota
	fieldWeight
	fieldHeight
	fieldAge
	fieldPassword
)

// Model is the account settings screen: username and stats are always
// editable, the password only changes when a new one is typed.
type Model struct {
	port   AccountPort
	fields components.FieldGroup
	status components.SubmitStatus
	email  string
	gender int
	loaded bool
	width  int
	height int
}

func New(port AccountPort) Model {
	return Model{
		port: port,
		fields: components.NewFieldGroup(
			components.NewField("username"),
			components.NewField("weight in kg"),
			components.NewField("height in cm"),
			components.NewField("age in years"),
			components.NewSecretField("new password (optional)"),
		),
		status: components.NewSubmitStatus(),
	}
}

// Begin reloads the account snapshot from the backend.
func (m *Model) Begin() tea.Cmd {
	m.loaded = false
	return func() tea.Msg {
		out, err := m.port.Account(context.Background())
		return loadedMsg{out: out, err: err}
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case loadedMsg:
		if msg.err != nil {
			cmds = append(cmds, m.status.Fail(components.ErrorText(msg.err)))
			return m, tea.Batch(cmds...)
		}
		m.loaded = true
		m.email = msg.out.Email
		m.fields.Inputs[fieldUsername].SetValue(msg.out.Username)
		m.fields.Inputs[fieldWeight].SetValue(strconv.Itoa(msg.out.Weight))
		m.fields.Inputs[fieldHeight].SetValue(strconv.Itoa(msg.out.Height))
		m.fields.Inputs[fieldAge].SetValue(strconv.Itoa(msg.out.Age))
		m.fields.Inputs[fieldPassword].SetValue("")
		m.gender = 0
		for i, g := range genders {
			if g == msg.out.Gender {
				m.gender = i
			}
		}

	case savedMsg:
		if msg.err != nil {
			cmds = append(cmds, m.status.Fail(components.ErrorText(msg.err)))
			return m, tea.Batch(cmds...)
		}
		// Never leave the typed password sitting in the form.
		m.fields.Inputs[fieldPassword].SetValue("")
		cmds = append(cmds, m.status.Succeed("Settings saved"))
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if !m.loaded {
			return m, nil
		}
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
	input := profiledto.AccountInput{
		Username: m.fields.Value(fieldUsername),
		Password: m.fields.RawValue(fieldPassword),
		Weight:   weight,
		Height:   height,
		Age:      age,
		Gender:   genders[m.gender],
	}
	start := m.status.Start()
	save := func() tea.Msg {
		return savedMsg{err: m.port.SaveAccount(context.Background(), input)}
	}
	return tea.Batch(start, save)
}

func (m Model) View() string {
	var card string
	card += theme.Title.Render("Account settings") + "\n\n"
	if !m.loaded {
		card += theme.Muted.Render("Loading your account…")
	} else {
		card += theme.Muted.Render("Email: ") + theme.Hot.Render(m.email) + "\n\n"
		card += m.fields.View([]string{"Username", "Weight (kg)", "Height (cm)", "Age", "New password"})
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
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		theme.CardActive.Render(card))
}
