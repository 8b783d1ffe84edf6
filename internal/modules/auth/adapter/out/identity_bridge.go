package out

import (
	"context"

	sessiondto "fitcoach/internal/modules/session/dto"
	sessionin "fitcoach/internal/modules/session/port/in"
)

// IdentityBridge stores tokens and display fields through the session
// module's input port.
type IdentityBridge struct {
	session sessionin.Usecase
}

func NewIdentityBridge(session sessionin.Usecase) *IdentityBridge {
	return &IdentityBridge{session: session}
}

func (b *IdentityBridge) CacheIdentity(ctx context.Context, username, email, legacyToken string) error {
	return b.session.CacheIdentity(ctx, sessiondto.IdentityInput{
		Username:    username,
		Email:       email,
		LegacyToken: legacyToken,
	})
}
