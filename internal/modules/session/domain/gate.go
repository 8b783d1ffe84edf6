package domain

import "strings"

// Client route paths. The query string is never part of routing.
const (
	PathRoot           = "/"
	PathLogin          = "/login"
	PathSignIn         = "/signIn"
	PathCheckCode      = "/checkCode"
	PathCheckEmail     = "/checkEmail"
	PathChangePassword = "/changePassword"
	PathProfile        = "/profile"
	PathAI             = "/ai"
	PathUserProfile    = "/user-profile"
)

// Screen identifies a renderable target.
type Screen string

const (
	ScreenLogin          Screen = "login"
	ScreenSignIn         Screen = "signIn"
	ScreenCheckCode      Screen = "checkCode"
	ScreenCheckEmail     Screen = "checkEmail"
	ScreenChangePassword Screen = "changePassword"
	ScreenProfile        Screen = "profile"
	ScreenChat           Screen = "chat"
	ScreenSettings       Screen = "settings"
)

// DecisionKind enumerates route gate outcomes.
type DecisionKind int

const (
	ShowLoading DecisionKind = iota
	Render
	Redirect
)

// Decision is the single outcome of evaluating the gate.
type Decision struct {
	Kind   DecisionKind
	Screen Screen // set when Kind == Render
	Path   string // set when Kind == Redirect
}

func renderTo(s Screen) Decision   { return Decision{Kind: Render, Screen: s} }
func redirectTo(p string) Decision { return Decision{Kind: Redirect, Path: p} }

// publicScreens render regardless of session state, including while the
// probe is still pending. They carry the registration and recovery flows.
var publicScreens = map[string]Screen{
	PathSignIn:         ScreenSignIn,
	PathCheckCode:      ScreenCheckCode,
	PathCheckEmail:     ScreenCheckEmail,
	PathChangePassword: ScreenChangePassword,
}

// Resolve maps (session, requested path) to exactly one gate decision.
// It is pure and idempotent: re-evaluating the same inputs yields the
// same decision. A protected screen is never rendered while the session
// is unresolved.
func Resolve(s Session, requested string) Decision {
	path := requested
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	if screen, ok := publicScreens[path]; ok {
		return renderTo(screen)
	}
	if !s.Resolved() {
		return Decision{Kind: ShowLoading}
	}
	if !s.SignedIn() {
		if path == PathLogin {
			return renderTo(ScreenLogin)
		}
		return redirectTo(PathLogin)
	}

	if !s.ProfileComplete {
		if path == PathProfile {
			return renderTo(ScreenProfile)
		}
		return redirectTo(PathProfile)
	}

	switch path {
	case PathProfile, PathLogin, PathRoot:
		// Profile already filled: re-entry is blocked and the root
		// resolves to the authenticated landing.
		return redirectTo(PathAI)
	case PathAI:
		return renderTo(ScreenChat)
	case PathUserProfile:
		return renderTo(ScreenSettings)
	default:
		return redirectTo(PathAI)
	}
}
