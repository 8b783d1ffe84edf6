package usecase

import (
	"context"
	"fmt"

	"fitcoach/internal/modules/auth/dto"
	authin "fitcoach/internal/modules/auth/port/in"
	authout "fitcoach/internal/modules/auth/port/out"
	"fitcoach/internal/modules/auth/service"
	apperrors "fitcoach/internal/platform/errors"
)

type Interactor struct {
	svc      *service.AuthService
	api      authout.AuthAPI
	identity authout.IdentityCache
}

func NewInteractor(svc *service.AuthService, api authout.AuthAPI, identity authout.IdentityCache) authin.Usecase {
	return &Interactor{svc: svc, api: api, identity: identity}
}

func (i *Interactor) Signup(ctx context.Context, input dto.SignupInput) (dto.SignupOutput, error) {
	return i.svc.Signup(ctx, input)
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.LoginOutput, error) {
	return i.svc.Login(ctx, input)
}

func (i *Interactor) CheckEmail(ctx context.Context, input dto.CheckEmailInput) (dto.CheckEmailOutput, error) {
	return i.svc.CheckEmail(ctx, input)
}

func (i *Interactor) CheckCode(ctx context.Context, input dto.CheckCodeInput) (dto.CheckCodeOutput, error) {
	return i.svc.CheckCode(ctx, input)
}

func (i *Interactor) ResendEmail(ctx context.Context, email string) (dto.SendEmailOutput, error) {
	return i.svc.SendEmail(ctx, email)
}

func (i *Interactor) ChangePassword(ctx context.Context, input dto.ChangePasswordInput) error {
	return i.svc.ChangePassword(ctx, input)
}

// PrepareCodeScreen mirrors the verification screen's mount sequence:
// decrypt the email reference, confirm the account is still pending,
// then optionally decrypt a pre-filled code. Every failure path is an
// invalid entry and the caller bounces to login.
func (i *Interactor) PrepareCodeScreen(ctx context.Context, input dto.CodeScreenInput) (dto.CodeScreenOutput, error) {
	if input.EncryptedEmail == "" {
		return dto.CodeScreenOutput{}, fmt.Errorf("missing email reference: %w", apperrors.ErrInvalidInput)
	}
	email, err := i.api.DecryptData(ctx, input.EncryptedEmail)
	if err != nil || email == "" {
		return dto.CodeScreenOutput{}, fmt.Errorf("decrypt email reference: %w", apperrors.ErrInvalidInput)
	}

	status, err := i.api.CheckStatus(ctx, email)
	if err != nil {
		return dto.CodeScreenOutput{}, err
	}
	if status != dto.StatusPending {
		return dto.CodeScreenOutput{}, fmt.Errorf("account status %q: %w", status, apperrors.ErrInvalidInput)
	}

	out := dto.CodeScreenOutput{Email: email}
	if input.EncryptedCode != "" {
		// A failed code decrypt is not fatal; the user can still type it.
		if code, err := i.api.DecryptData(ctx, input.EncryptedCode); err == nil {
			out.Code = code
		}
	}
	return out, nil
}

func (i *Interactor) GoogleLogin(ctx context.Context, input dto.GoogleLoginInput) (dto.GoogleLoginOutput, error) {
	if input.Credential == "" {
		return dto.GoogleLoginOutput{}, fmt.Errorf("credential: %w", apperrors.ErrInvalidInput)
	}
	return i.api.GoogleLogin(ctx, input.Credential, input.RememberMe)
}

func (i *Interactor) CompleteGoogleRedirect(ctx context.Context, result dto.GoogleRedirectResult) error {
	if result.Token == "" {
		return fmt.Errorf("redirect missing token: %w", apperrors.ErrInvalidInput)
	}
	if i.identity == nil {
		return nil
	}
	return i.identity.CacheIdentity(ctx, result.Username, result.Email, result.Token)
}
