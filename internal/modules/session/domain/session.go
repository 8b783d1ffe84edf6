package domain

// AuthState is the client's belief about authentication. It starts
// unknown and is resolved once per probe.
type AuthState int

const (
	AuthUnknown AuthState = iota
	AuthSignedOut
	AuthSignedIn
)

// Session is the pair of asynchronous booleans driving routing. It is
// owned by the app shell; all mutation happens through the explicit
// methods below, on the UI goroutine.
type Session struct {
	Auth            AuthState
	ProfileComplete bool
}

// Resolved reports whether the probe has completed.
func (s Session) Resolved() bool {
	return s.Auth != AuthUnknown
}

// SignedIn reports whether the user is authenticated.
func (s Session) SignedIn() bool {
	return s.Auth == AuthSignedIn
}

// MarkSignedIn records a successful authentication probe or login.
func (s *Session) MarkSignedIn(profileComplete bool) {
	s.Auth = AuthSignedIn
	s.ProfileComplete = profileComplete
}

// MarkLoggedOut drops the session to the unauthenticated state.
func (s *Session) MarkLoggedOut() {
	s.Auth = AuthSignedOut
	s.ProfileComplete = false
}

// MarkProfileComplete flips the completion flag after the initial
// profile save.
func (s *Session) MarkProfileComplete() {
	s.ProfileComplete = true
}
