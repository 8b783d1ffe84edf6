package service

import (
	"context"
	"log/slog"

	"fitcoach/internal/modules/session/domain"
	sessionout "fitcoach/internal/modules/session/port/out"
)

// SessionService runs the fail-closed session probe: a network error or
// a not-ok reply is indistinguishable from being unauthenticated.
type SessionService struct {
	probe sessionout.AuthProbe
}

func NewSessionService(probe sessionout.AuthProbe) *SessionService {
	return &SessionService{probe: probe}
}

// Probe resolves the two session booleans with two sequential requests.
// The profile request is only issued once authentication is confirmed.
func (s *SessionService) Probe(ctx context.Context) domain.Session {
	var session domain.Session
	if err := s.probe.Whoami(ctx); err != nil {
		slog.Info("session probe: unauthenticated", "error", err)
		session.MarkLoggedOut()
		return session
	}
	complete, err := s.probe.ProfileComplete(ctx)
	if err != nil {
		complete = false
	}
	session.MarkSignedIn(complete)
	return session
}

func (s *SessionService) Signout(ctx context.Context) error {
	return s.probe.Signout(ctx)
}
