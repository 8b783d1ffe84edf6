package in

import (
	"context"

	"fitcoach/internal/modules/auth/dto"
	authin "fitcoach/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Signup(ctx context.Context, email, username, password, repeat string) (dto.SignupOutput, error) {
	return h.usecase.Signup(ctx, dto.SignupInput{
		Email:          email,
		Username:       username,
		Password:       password,
		RepeatPassword: repeat,
	})
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (dto.LoginOutput, error) {
	return h.usecase.Login(ctx, dto.LoginInput{Email: email, Password: password})
}

func (h CLIHandler) CheckEmail(ctx context.Context, email, flowType string) (dto.CheckEmailOutput, error) {
	return h.usecase.CheckEmail(ctx, dto.CheckEmailInput{Email: email, Type: flowType})
}

func (h CLIHandler) CheckCode(ctx context.Context, email, code string) (dto.CheckCodeOutput, error) {
	return h.usecase.CheckCode(ctx, dto.CheckCodeInput{Email: email, Code: code})
}

func (h CLIHandler) ResendEmail(ctx context.Context, email string) (dto.SendEmailOutput, error) {
	return h.usecase.ResendEmail(ctx, email)
}

func (h CLIHandler) ChangePassword(ctx context.Context, email, password, repeat string) error {
	return h.usecase.ChangePassword(ctx, dto.ChangePasswordInput{Email: email, Password: password, Repeat: repeat})
}

func (h CLIHandler) PrepareCodeScreen(ctx context.Context, encryptedEmail, encryptedCode string) (dto.CodeScreenOutput, error) {
	return h.usecase.PrepareCodeScreen(ctx, dto.CodeScreenInput{
		EncryptedEmail: encryptedEmail,
		EncryptedCode:  encryptedCode,
	})
}

func (h CLIHandler) GoogleLogin(ctx context.Context, credential string, rememberMe bool) (dto.GoogleLoginOutput, error) {
	return h.usecase.GoogleLogin(ctx, dto.GoogleLoginInput{Credential: credential, RememberMe: rememberMe})
}

func (h CLIHandler) CompleteGoogleRedirect(ctx context.Context, result dto.GoogleRedirectResult) error {
	return h.usecase.CompleteGoogleRedirect(ctx, result)
}
