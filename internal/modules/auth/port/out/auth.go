package out

import (
	"context"

	"fitcoach/internal/modules/auth/dto"
)

// AuthAPI is the backend auth surface. Implementations translate not-ok
// replies into apperrors.ServerError with the server's message.
type AuthAPI interface {
	Signup(ctx context.Context, email, username, password string) (dto.SignupOutput, error)
	Login(ctx context.Context, email, password string) (dto.LoginOutput, error)
	CheckEmail(ctx context.Context, email, flowType string) (dto.CheckEmailOutput, error)
	CheckCode(ctx context.Context, email, code string) (dto.CheckCodeOutput, error)
	SendEmail(ctx context.Context, email string) (dto.SendEmailOutput, error)
	DecryptData(ctx context.Context, encrypted string) (string, error)
	CheckStatus(ctx context.Context, email string) (string, error)
	ChangePassword(ctx context.Context, email, password string) error
	GoogleLogin(ctx context.Context, credential string, rememberMe bool) (dto.GoogleLoginOutput, error)
}

// IdentityCache stores the legacy bearer token and display fields after
// an OAuth redirect. It is implemented by the session module.
type IdentityCache interface {
	CacheIdentity(ctx context.Context, username, email, legacyToken string) error
}
