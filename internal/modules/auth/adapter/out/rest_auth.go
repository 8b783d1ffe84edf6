package out

import (
	"context"
	"fmt"

	"fitcoach/internal/modules/auth/dto"
	apperrors "fitcoach/internal/platform/errors"
	"fitcoach/internal/platform/httpclient"
)

// RESTAuth talks to the /api/auth/* endpoints.
type RESTAuth struct {
	api *httpclient.Client
}

func NewRESTAuth(api *httpclient.Client) *RESTAuth {
	return &RESTAuth{api: api}
}

func (a *RESTAuth) Signup(ctx context.Context, email, username, password string) (dto.SignupOutput, error) {
	resp, err := a.api.Post(ctx, "/api/auth/signup", map[string]string{
		"email":    email,
		"username": username,
		"password": password,
	})
	if err != nil {
		return dto.SignupOutput{}, err
	}
	if !resp.OK() {
		return dto.SignupOutput{}, apperrors.Rejected(resp.StatusCode, resp.Message("Sign up failed"))
	}
	var payload struct {
		EncryptedEmail string `json:"encryptedEmail"`
		Message        string `json:"message"`
	}
	if err := resp.Decode(&payload); err != nil {
		return dto.SignupOutput{}, err
	}
	return dto.SignupOutput{EncryptedEmail: payload.EncryptedEmail, Message: payload.Message}, nil
}

func (a *RESTAuth) Login(ctx context.Context, email, password string) (dto.LoginOutput, error) {
	resp, err := a.api.Post(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return dto.LoginOutput{}, err
	}
	if !resp.OK() {
		return dto.LoginOutput{}, apperrors.Rejected(resp.StatusCode, resp.Message("Login failed"))
	}
	return dto.LoginOutput{Message: resp.Message("Login successful")}, nil
}

func (a *RESTAuth) CheckEmail(ctx context.Context, email, flowType string) (dto.CheckEmailOutput, error) {
	resp, err := a.api.Post(ctx, "/api/auth/checkEmail", map[string]string{
		"email": email,
		"type":  flowType,
	})
	if err != nil {
		return dto.CheckEmailOutput{}, err
	}
	if !resp.OK() {
		return dto.CheckEmailOutput{}, apperrors.Rejected(resp.StatusCode, resp.Message("Email not found"))
	}
	var payload struct {
		Status         string `json:"status"`
		EncryptedEmail string `json:"encryptedEmail"`
		Message        string `json:"message"`
	}
	if err := resp.Decode(&payload); err != nil {
		return dto.CheckEmailOutput{}, err
	}
	if payload.Status == "" {
		payload.Status = dto.StatusActive
	}
	return dto.CheckEmailOutput{
		Status:         payload.Status,
		EncryptedEmail: payload.EncryptedEmail,
		Message:        payload.Message,
	}, nil
}

func (a *RESTAuth) CheckCode(ctx context.Context, email, code string) (dto.CheckCodeOutput, error) {
	resp, err := a.api.Post(ctx, "/api/auth/checkCode", map[string]string{
		"email": email,
		"code":  code,
	})
	if err != nil {
		return dto.CheckCodeOutput{}, err
	}
	if !resp.OK() {
		return dto.CheckCodeOutput{}, apperrors.Rejected(resp.StatusCode, resp.Message("Invalid code"))
	}
	return dto.CheckCodeOutput{Message: resp.Message("Account verified")}, nil
}

func (a *RESTAuth) SendEmail(ctx context.Context, email string) (dto.SendEmailOutput, error) {
	resp, err := a.api.Post(ctx, "/api/auth/sendEmail", map[string]string{"email": email})
	if err != nil {
		return dto.SendEmailOutput{}, err
	}
	if !resp.OK() {
		return dto.SendEmailOutput{}, apperrors.Rejected(resp.StatusCode, resp.Message("Failed to resend email"))
	}
	var payload struct {
		EncryptedCode string `json:"encryptedCode"`
		Message       string `json:"message"`
	}
	if err := resp.Decode(&payload); err != nil {
		return dto.SendEmailOutput{}, err
	}
	return dto.SendEmailOutput{EncryptedCode: payload.EncryptedCode, Message: payload.Message}, nil
}

func (a *RESTAuth) DecryptData(ctx context.Context, encrypted string) (string, error) {
	resp, err := a.api.Post(ctx, "/api/auth/decryptData", map[string]string{"encrypted": encrypted})
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", apperrors.Rejected(resp.StatusCode, resp.Message("Could not decrypt data"))
	}
	var payload struct {
		Decrypted string `json:"decrypted"`
	}
	if err := resp.Decode(&payload); err != nil {
		return "", err
	}
	if payload.Decrypted == "" {
		return "", fmt.Errorf("decrypt reply missing payload")
	}
	return payload.Decrypted, nil
}

func (a *RESTAuth) CheckStatus(ctx context.Context, email string) (string, error) {
	resp, err := a.api.Post(ctx, "/api/auth/checkStatus", map[string]string{"email": email})
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", apperrors.Rejected(resp.StatusCode, resp.Message("Could not check account status"))
	}
	var payload struct {
		Status string `json:"status"`
	}
	if err := resp.Decode(&payload); err != nil {
		return "", err
	}
	return payload.Status, nil
}

func (a *RESTAuth) ChangePassword(ctx context.Context, email, password string) error {
	resp, err := a.api.Post(ctx, "/api/auth/changePassword", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}
	if !resp.OK() {
		return apperrors.Rejected(resp.StatusCode, resp.Message("Could not change password"))
	}
	return nil
}

func (a *RESTAuth) GoogleLogin(ctx context.Context, credential string, rememberMe bool) (dto.GoogleLoginOutput, error) {
	resp, err := a.api.Post(ctx, "/api/auth/google", map[string]any{
		"credential": credential,
		"rememberMe": rememberMe,
	})
	if err != nil {
		return dto.GoogleLoginOutput{}, err
	}
	if !resp.OK() {
		return dto.GoogleLoginOutput{}, apperrors.Rejected(resp.StatusCode, resp.Message("Google Login failed"))
	}
	return dto.GoogleLoginOutput{Message: resp.Message("Login successful")}, nil
}
