package in

import (
	"context"

	"fitcoach/internal/modules/auth/dto"
)

type Usecase interface {
	Signup(ctx context.Context, input dto.SignupInput) (dto.SignupOutput, error)
	Login(ctx context.Context, input dto.LoginInput) (dto.LoginOutput, error)
	CheckEmail(ctx context.Context, input dto.CheckEmailInput) (dto.CheckEmailOutput, error)
	CheckCode(ctx context.Context, input dto.CheckCodeInput) (dto.CheckCodeOutput, error)
	ResendEmail(ctx context.Context, email string) (dto.SendEmailOutput, error)
	ChangePassword(ctx context.Context, input dto.ChangePasswordInput) error

	// PrepareCodeScreen decrypts the e/c query parameters and verifies
	// the account is still pending. Any failure means the screen must
	// bounce to login.
	PrepareCodeScreen(ctx context.Context, input dto.CodeScreenInput) (dto.CodeScreenOutput, error)

	GoogleLogin(ctx context.Context, input dto.GoogleLoginInput) (dto.GoogleLoginOutput, error)
	// CompleteGoogleRedirect caches the token and display fields carried
	// by the OAuth redirect.
	CompleteGoogleRedirect(ctx context.Context, result dto.GoogleRedirectResult) error
}
