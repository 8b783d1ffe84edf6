package app

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "fitcoach/internal/modules/auth/dto"
	gate "fitcoach/internal/modules/session/domain"
	sessiondto "fitcoach/internal/modules/session/dto"
	"fitcoach/internal/ui/components"
	"fitcoach/internal/ui/theme"
	changepasswordview "fitcoach/internal/ui/views/changepassword"
	chatview "fitcoach/internal/ui/views/chat"
	checkcodeview "fitcoach/internal/ui/views/checkcode"
	checkemailview "fitcoach/internal/ui/views/checkemail"
	loginview "fitcoach/internal/ui/views/login"
	profileview "fitcoach/internal/ui/views/profile"
	settingsview "fitcoach/internal/ui/views/settings"
	signupview "fitcoach/internal/ui/views/signup"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type sessionPort interface {
	Whoami(ctx context.Context) sessiondto.SessionOutput
	Signout(ctx context.Context) error
}

type authPort interface {
	loginview.LoginPort
	signupview.SignupPort
	checkcodeview.VerifyPort
	checkemailview.RecoverPort
	changepasswordview.ResetPort
	CompleteGoogleRedirect(ctx context.Context, result authdto.GoogleRedirectResult) error
}

type profilePort interface {
	profileview.CompletePort
	settingsview.AccountPort
}

// googlePort is the loopback callback server for the OAuth flow. It may
// be nil when the flow is not configured.
type googlePort interface {
	RedirectURL() string
	WaitForRedirect(ctx context.Context) (authdto.GoogleRedirectResult, error)
}

// ─── async messages ───────────────────────────────────────────────────────────

type sessionResolvedMsg struct{ out sessiondto.SessionOutput }

type signedOutMsg struct{ err error }

type googleDoneMsg struct {
	result authdto.GoogleRedirectResult
	err    error
}

const googleWait = 2 * time.Minute

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the session state and the
// route gate: every navigation goes through gate.Resolve, so a protected
// screen can never appear without a live, profile-complete session.
type Model struct {
	baseURL string

	session sessionPort
	auth    authPort
	google  googlePort

	// sub-views, one per renderable screen
	loginView    loginview.Model
	signupView   signupview.Model
	codeView     checkcodeview.Model
	recoverView  checkemailview.Model
	resetView    changepasswordview.Model
	completeView profileview.Model
	coachView    chatview.Model
	settingsView settingsview.Model

	// routing state
	state    sessiondto.SessionOutput
	resolved bool
	path     string
	screen   gate.Screen
	loading  bool

	// global UI state
	palette components.Palette
	spin    spinner.Model
	status  string
	width   int
	height  int
}

func NewModel(baseURL string, session sessionPort, auth authPort, profile profilePort, coach chatview.TrainerPort, speech chatview.SpeechPort, google googlePort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		baseURL:      baseURL,
		session:      session,
		auth:         auth,
		google:       google,
		loginView:    loginview.New(auth),
		signupView:   signupview.New(auth),
		codeView:     checkcodeview.New(auth),
		recoverView:  checkemailview.New(auth),
		resetView:    changepasswordview.New(auth),
		completeView: profileview.New(profile),
		coachView:    chatview.New(coach, speech),
		settingsView: settingsview.New(profile),
		path:         gate.PathRoot,
		loading:      true,
		palette:      components.NewPalette(),
		spin:         sp,
		status:       "connecting…",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.probeCmd(), m.spin.Tick)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(minInt(m.width-4, 80))
		m.propagateSize()
		return m, nil

	case sessionResolvedMsg:
		m.resolved = true
		m.state = msg.out
		m.status = "ready"
		return m.navigate(m.path)

	case signedOutMsg:
		if msg.err != nil {
			m.status = "sign out: " + msg.err.Error()
		} else {
			m.status = "signed out"
		}
		m.resolved = false
		m.path = gate.PathRoot
		return m, tea.Batch(m.probeCmd(), m.spin.Tick)

	case components.SessionDirtyMsg:
		m.resolved = false
		m.path = gate.PathRoot
		return m, tea.Batch(m.probeCmd(), m.spin.Tick)

	case components.GotoMsg:
		return m.navigate(msg.Path)

	case loginview.GoogleStartMsg:
		return m.startGoogle()

	case googleDoneMsg:
		if msg.err != nil {
			m.status = "google sign-in: " + msg.err.Error()
			return m, nil
		}
		return m, m.completeGoogleCmd(msg.result)

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case spinner.TickMsg:
		if m.loading || !m.resolved {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+p":
			return m, m.palette.Open()
		}
	}

	// Propagate to the active screen's view.
	if !m.loading {
		var cmd tea.Cmd
		switch m.screen {
		case gate.ScreenLogin:
			m.loginView, cmd = m.loginView.Update(msg)
		case gate.ScreenSignIn:
			m.signupView, cmd = m.signupView.Update(msg)
		case gate.ScreenCheckCode:
			m.codeView, cmd = m.codeView.Update(msg)
		case gate.ScreenCheckEmail:
			m.recoverView, cmd = m.recoverView.Update(msg)
		case gate.ScreenChangePassword:
			m.resetView, cmd = m.resetView.Update(msg)
		case gate.ScreenProfile:
			m.completeView, cmd = m.completeView.Update(msg)
		case gate.ScreenChat:
			m.coachView, cmd = m.coachView.Update(msg)
		case gate.ScreenSettings:
			m.settingsView, cmd = m.settingsView.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// ─── navigation ───────────────────────────────────────────────────────────────

// navigate runs the route gate to a terminal decision and mounts the
// resulting screen.
func (m Model) navigate(requested string) (tea.Model, tea.Cmd) {
	path := requested
	for {
		switch decision := gate.Resolve(m.currentSession(), path); decision.Kind {
		case gate.Redirect:
			path = decision.Path
			continue
		case gate.ShowLoading:
			m.path = path
			m.loading = true
			m.screen = ""
			return m, m.spin.Tick
		case gate.Render:
			m.path = path
			m.loading = false
			m.screen = decision.Screen
			return m, m.mount(decision.Screen, queryOf(requested))
		}
	}
}

// mount runs a screen's entry sequence.
func (m *Model) mount(screen gate.Screen, query url.Values) tea.Cmd {
	switch screen {
	case gate.ScreenCheckCode:
		return m.codeView.Begin(query.Get("e"), query.Get("c"))
	case gate.ScreenChangePassword:
		return m.resetView.Begin(query.Get("email"))
	case gate.ScreenChat:
		return m.coachView.Begin()
	case gate.ScreenSettings:
		return m.settingsView.Begin()
	}
	return nil
}

func (m Model) currentSession() gate.Session {
	var s gate.Session
	if !m.resolved {
		return s
	}
	if m.state.Authenticated {
		s.MarkSignedIn(m.state.ProfileComplete)
	} else {
		s.MarkLoggedOut()
	}
	return s
}

func queryOf(path string) url.Values {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		if q, err := url.ParseQuery(path[i+1:]); err == nil {
			return q
		}
	}
	return url.Values{}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	navBar := m.renderNavBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(navBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.loading:
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.spin.View()+" Checking your session…")
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, navBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.screen {
	case gate.ScreenLogin:
		return m.loginView.View()
	case gate.ScreenSignIn:
		return m.signupView.View()
	case gate.ScreenCheckCode:
		return m.codeView.View()
	case gate.ScreenCheckEmail:
		return m.recoverView.View()
	case gate.ScreenChangePassword:
		return m.resetView.View()
	case gate.ScreenProfile:
		return m.completeView.View()
	case gate.ScreenChat:
		return m.coachView.View()
	case gate.ScreenSettings:
		return m.settingsView.View()
	}
	return ""
}

// navItems lists the reachable destinations for the current session.
func (m Model) navItems() []string {
	if m.resolved && m.state.Authenticated && m.state.ProfileComplete {
		return []string{"AI Trainer", "Settings"}
	}
	if m.resolved && m.state.Authenticated {
		return []string{"Complete your profile"}
	}
	return []string{"Login", "Sign Up", "Recover"}
}

func (m Model) renderNavBar() string {
	parts := m.navItems()
	for i, label := range parts {
		if m.isActiveNav(label) {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := theme.Title.Render("FitCoach") + "  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) isActiveNav(label string) bool {
	switch m.screen {
	case gate.ScreenChat:
		return label == "AI Trainer"
	case gate.ScreenSettings:
		return label == "Settings"
	case gate.ScreenProfile:
		return label == "Complete your profile"
	case gate.ScreenLogin:
		return label == "Login"
	case gate.ScreenSignIn:
		return label == "Sign Up"
	case gate.ScreenCheckEmail, gate.ScreenChangePassword:
		return label == "Recover"
	}
	return false
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("ctrl+p: commands  ctrl+c: quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	switch strings.TrimSpace(input) {
	case "":
		return m, nil
	case "go:login":
		return m.navigate(gate.PathLogin)
	case "go:signup":
		return m.navigate(gate.PathSignIn)
	case "go:recover":
		return m.navigate(gate.PathCheckEmail)
	case "go:coach":
		return m.navigate(gate.PathAI)
	case "go:settings":
		return m.navigate(gate.PathUserProfile)
	case "auth:logout":
		m.status = "signing out…"
		return m, m.signoutCmd()
	case "auth:google":
		return m.startGoogle()
	case "chat:analysis":
		if m.screen != gate.ScreenChat {
			m.status = "open the AI Trainer first (go:coach)"
			return m, nil
		}
		var cmd tea.Cmd
		m.coachView, cmd = m.coachView.Analyze()
		return m, cmd
	case "chat:voice":
		if m.screen != gate.ScreenChat {
			m.status = "open the AI Trainer first (go:coach)"
			return m, nil
		}
		var cmd tea.Cmd
		m.coachView, cmd = m.coachView.Voice()
		return m, cmd
	case "chat:clear":
		if m.screen == gate.ScreenChat {
			m.coachView = m.coachView.ClearLocal()
		}
		return m, nil
	default:
		m.status = "unknown command: " + input
	}
	return m, nil
}

// ─── google loopback flow ─────────────────────────────────────────────────────

func (m Model) startGoogle() (tea.Model, tea.Cmd) {
	if m.google == nil {
		m.status = "google sign-in is not configured"
		return m, nil
	}
	authURL := m.baseURL + "/api/auth/google?redirect_uri=" + url.QueryEscape(m.google.RedirectURL())
	m.status = "open in your browser: " + authURL
	return m, m.waitGoogleCmd()
}

func (m Model) waitGoogleCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), googleWait)
		defer cancel()
		result, err := m.google.WaitForRedirect(ctx)
		return googleDoneMsg{result: result, err: err}
	}
}

func (m Model) completeGoogleCmd(result authdto.GoogleRedirectResult) tea.Cmd {
	return func() tea.Msg {
		if err := m.auth.CompleteGoogleRedirect(context.Background(), result); err != nil {
			return googleDoneMsg{err: err}
		}
		return components.SessionDirtyMsg{}
	}
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.loginView, _ = m.loginView.Update(sz)
	m.signupView, _ = m.signupView.Update(sz)
	m.codeView, _ = m.codeView.Update(sz)
	m.recoverView, _ = m.recoverView.Update(sz)
	m.resetView, _ = m.resetView.Update(sz)
	m.completeView, _ = m.completeView.Update(sz)
	m.coachView, _ = m.coachView.Update(sz)
	m.settingsView, _ = m.settingsView.Update(sz)
}

func (m Model) probeCmd() tea.Cmd {
	return func() tea.Msg {
		return sessionResolvedMsg{out: m.session.Whoami(context.Background())}
	}
}

func (m Model) signoutCmd() tea.Cmd {
	return func() tea.Msg {
		return signedOutMsg{err: m.session.Signout(context.Background())}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
