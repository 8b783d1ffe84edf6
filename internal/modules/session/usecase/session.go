package usecase

import (
	"context"
	"log/slog"

	"fitcoach/internal/modules/session/dto"
	sessionin "fitcoach/internal/modules/session/port/in"
	sessionout "fitcoach/internal/modules/session/port/out"
	"fitcoach/internal/modules/session/service"
)

type Interactor struct {
	svc   *service.SessionService
	store sessionout.StateStore
}

func NewInteractor(svc *service.SessionService, store sessionout.StateStore) sessionin.Usecase {
	return &Interactor{svc: svc, store: store}
}

func (i *Interactor) Resolve(ctx context.Context) dto.SessionOutput {
	session := i.svc.Probe(ctx)
	return dto.SessionOutput{
		Authenticated:   session.SignedIn(),
		ProfileComplete: session.ProfileComplete,
	}
}

// Signout revokes the server session first, then clears the local cache.
// The local clear happens even when the server call fails so the client
// never believes it is signed in longer than the user asked for.
func (i *Interactor) Signout(ctx context.Context) error {
	err := i.svc.Signout(ctx)
	if i.store != nil {
		if clearErr := i.store.ClearIdentity(ctx); clearErr != nil {
			slog.Warn("clear cached identity", "error", clearErr)
		}
	}
	return err
}

func (i *Interactor) CacheIdentity(ctx context.Context, input dto.IdentityInput) error {
	if i.store == nil {
		return nil
	}
	if input.LegacyToken != "" {
		if err := i.store.SaveLegacyToken(ctx, input.LegacyToken); err != nil {
			return err
		}
	}
	return i.store.SaveDisplay(ctx, input.Username, input.Email)
}

func (i *Interactor) CachedIdentity(ctx context.Context) (dto.IdentityOutput, error) {
	if i.store == nil {
		return dto.IdentityOutput{}, nil
	}
	username, email, err := i.store.Display(ctx)
	if err != nil {
		return dto.IdentityOutput{}, err
	}
	return dto.IdentityOutput{Username: username, Email: email}, nil
}
