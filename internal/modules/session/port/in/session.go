package in

import (
	"context"

	"fitcoach/internal/modules/session/dto"
)

type Usecase interface {
	// Resolve probes the backend and returns the session pair. It never
	// fails: any error resolves to the unauthenticated state.
	Resolve(ctx context.Context) dto.SessionOutput

	// Signout revokes the server session and clears locally cached
	// identity state.
	Signout(ctx context.Context) error

	CacheIdentity(ctx context.Context, input dto.IdentityInput) error
	CachedIdentity(ctx context.Context) (dto.IdentityOutput, error)
}
