package out

import "context"

// AuthProbe asks the backend who the current cookie belongs to.
type AuthProbe interface {
	// Whoami returns nil when the session cookie is live.
	Whoami(ctx context.Context) error
	// ProfileComplete reports whether the initial profile was saved.
	ProfileComplete(ctx context.Context) (bool, error)
	Signout(ctx context.Context) error
}

// StateStore persists the legacy bearer token and cached display fields
// between runs.
type StateStore interface {
	SaveLegacyToken(ctx context.Context, token string) error
	LegacyToken(ctx context.Context) (string, error)
	SaveDisplay(ctx context.Context, username, email string) error
	Display(ctx context.Context) (username, email string, err error)
	ClearIdentity(ctx context.Context) error
}
