package service

import (
	"context"
	"fmt"
	"strings"

	"fitcoach/internal/modules/auth/domain"
	"fitcoach/internal/modules/auth/dto"
	authout "fitcoach/internal/modules/auth/port/out"
	apperrors "fitcoach/internal/platform/errors"
)

// AuthService validates inputs before any network call and forwards the
// trimmed values to the backend. Validation failures never reach the
// wire.
type AuthService struct {
	api authout.AuthAPI
}

func NewAuthService(api authout.AuthAPI) *AuthService {
	return &AuthService{api: api}
}

func (s *AuthService) Signup(ctx context.Context, input dto.SignupInput) (dto.SignupOutput, error) {
	email := strings.TrimSpace(input.Email)
	username := strings.TrimSpace(input.Username)
	if !domain.ValidEmail(email) {
		return dto.SignupOutput{}, fmt.Errorf("email: %w", apperrors.ErrInvalidInput)
	}
	if !domain.ValidUsername(username) {
		return dto.SignupOutput{}, fmt.Errorf("username: %w", apperrors.ErrInvalidInput)
	}
	if !domain.ValidPassword(input.Password) {
		return dto.SignupOutput{}, fmt.Errorf("password: %w", apperrors.ErrInvalidInput)
	}
	if !domain.ValidRepeatPassword(input.Password, input.RepeatPassword) {
		return dto.SignupOutput{}, fmt.Errorf("repeat password: %w", apperrors.ErrInvalidInput)
	}
	return s.api.Signup(ctx, email, username, input.Password)
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (dto.LoginOutput, error) {
	email := strings.TrimSpace(input.Email)
	if !domain.ValidEmail(email) {
		return dto.LoginOutput{}, fmt.Errorf("email: %w", apperrors.ErrInvalidInput)
	}
	if input.Password == "" {
		return dto.LoginOutput{}, fmt.Errorf("password: %w", apperrors.ErrInvalidInput)
	}
	return s.api.Login(ctx, email, input.Password)
}

func (s *AuthService) CheckEmail(ctx context.Context, input dto.CheckEmailInput) (dto.CheckEmailOutput, error) {
	email := strings.TrimSpace(input.Email)
	if !domain.ValidEmail(email) {
		return dto.CheckEmailOutput{}, fmt.Errorf("email: %w", apperrors.ErrInvalidInput)
	}
	return s.api.CheckEmail(ctx, email, input.Type)
}

func (s *AuthService) CheckCode(ctx context.Context, input dto.CheckCodeInput) (dto.CheckCodeOutput, error) {
	code := strings.TrimSpace(input.Code)
	if !domain.ValidCode(code) {
		return dto.CheckCodeOutput{}, fmt.Errorf("code: %w", apperrors.ErrInvalidInput)
	}
	return s.api.CheckCode(ctx, input.Email, code)
}

func (s *AuthService) SendEmail(ctx context.Context, email string) (dto.SendEmailOutput, error) {
	return s.api.SendEmail(ctx, email)
}

func (s *AuthService) ChangePassword(ctx context.Context, input dto.ChangePasswordInput) error {
	email := strings.TrimSpace(input.Email)
	if !domain.ValidEmail(email) {
		return fmt.Errorf("email: %w", apperrors.ErrInvalidInput)
	}
	if !domain.ValidPassword(input.Password) {
		return fmt.Errorf("password: %w", apperrors.ErrInvalidInput)
	}
	if !domain.ValidRepeatPassword(input.Password, input.Repeat) {
		return fmt.Errorf("repeat password: %w", apperrors.ErrInvalidInput)
	}
	return s.api.ChangePassword(ctx, email, input.Password)
}
