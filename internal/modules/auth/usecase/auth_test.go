package usecase_test

import (
	"context"
	"errors"
	"testing"

	"fitcoach/internal/modules/auth/dto"
	"fitcoach/internal/modules/auth/service"
	"fitcoach/internal/modules/auth/usecase"
	apperrors "fitcoach/internal/platform/errors"
)

type fakeAPI struct {
	signupCalls int
	decrypted   map[string]string
	status      string
	statusErr   error
	checkedCode string
	sendCalls   int
}

func (f *fakeAPI) Signup(_ context.Context, email, username, password string) (dto.SignupOutput, error) {
	f.signupCalls++
	return dto.SignupOutput{EncryptedEmail: "enc:" + email, Message: "ok"}, nil
}
func (f *fakeAPI) Login(_ context.Context, email, password string) (dto.LoginOutput, error) {
	return dto.LoginOutput{Message: "welcome"}, nil
}
func (f *fakeAPI) CheckEmail(_ context.Context, email, flowType string) (dto.CheckEmailOutput, error) {
	return dto.CheckEmailOutput{Status: f.status, EncryptedEmail: "enc:" + email}, nil
}
func (f *fakeAPI) CheckCode(_ context.Context, email, code string) (dto.CheckCodeOutput, error) {
	f.checkedCode = code
	return dto.CheckCodeOutput{Message: "verified"}, nil
}
func (f *fakeAPI) SendEmail(_ context.Context, email string) (dto.SendEmailOutput, error) {
	f.sendCalls++
	return dto.SendEmailOutput{Message: "sent"}, nil
}
func (f *fakeAPI) DecryptData(_ context.Context, encrypted string) (string, error) {
	v, ok := f.decrypted[encrypted]
	if !ok {
		return "", apperrors.Rejected(400, "bad ciphertext")
	}
	return v, nil
}
func (f *fakeAPI) CheckStatus(_ context.Context, email string) (string, error) {
	return f.status, f.statusErr
}
func (f *fakeAPI) ChangePassword(_ context.Context, email, password string) error { return nil }
func (f *fakeAPI) GoogleLogin(_ context.Context, credential string, rememberMe bool) (dto.GoogleLoginOutput, error) {
	return dto.GoogleLoginOutput{Message: "google ok"}, nil
}

type fakeCache struct {
	username, email, token string
}

func (f *fakeCache) CacheIdentity(_ context.Context, username, email, token string) error {
	f.username, f.email, f.token = username, email, token
	return nil
}

func newUsecase(api *fakeAPI) (ucIface, *fakeCache) {
	cache := &fakeCache{}
	return usecase.NewInteractor(service.NewAuthService(api), api, cache), cache
}

type ucIface interface {
	Signup(ctx context.Context, input dto.SignupInput) (dto.SignupOutput, error)
	CheckCode(ctx context.Context, input dto.CheckCodeInput) (dto.CheckCodeOutput, error)
	PrepareCodeScreen(ctx context.Context, input dto.CodeScreenInput) (dto.CodeScreenOutput, error)
	CompleteGoogleRedirect(ctx context.Context, result dto.GoogleRedirectResult) error
}

func TestSignupValidationNeverReachesNetwork(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc, _ := newUsecase(api)

	bad := []dto.SignupInput{
		{Email: "user@@example.com", Username: "jo.hn_doe", Password: "Abcdef1!", RepeatPassword: "Abcdef1!"},
		{Email: "user@example.com", Username: "jo", Password: "Abcdef1!", RepeatPassword: "Abcdef1!"},
		{Email: "user@example.com", Username: "jo.hn_doe", Password: "abcdefg1!", RepeatPassword: "abcdefg1!"},
		{Email: "user@example.com", Username: "jo.hn_doe", Password: "Abcdef1!", RepeatPassword: "Abcdef2!"},
	}
	for _, input := range bad {
		if _, err := uc.Signup(context.Background(), input); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
	if api.signupCalls != 0 {
		t.Fatalf("invalid input must never reach the network, got %d calls", api.signupCalls)
	}
}

func TestSignupTrimsAndForwards(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc, _ := newUsecase(api)

	out, err := uc.Signup(context.Background(), dto.SignupInput{
		Email:          "  user@example.com  ",
		Username:       "jo.hn_doe",
		Password:       "Abcdef1!",
		RepeatPassword: "Abcdef1!",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if out.EncryptedEmail != "enc:user@example.com" {
		t.Fatalf("email not trimmed before send: %q", out.EncryptedEmail)
	}
}

func TestCheckCodeRejectsMalformedCode(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc, _ := newUsecase(api)

	if _, err := uc.CheckCode(context.Background(), dto.CheckCodeInput{Email: "user@example.com", Code: "12a456"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.CheckCode(context.Background(), dto.CheckCodeInput{Email: "user@example.com", Code: " 123456 "}); err != nil {
		t.Fatalf("trimmed code should pass: %v", err)
	}
	if api.checkedCode != "123456" {
		t.Fatalf("code not trimmed, sent %q", api.checkedCode)
	}
}

func TestPrepareCodeScreenHappyPath(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{
		decrypted: map[string]string{"e1": "user@example.com", "c1": "123456"},
		status:    dto.StatusPending,
	}
	uc, _ := newUsecase(api)

	out, err := uc.PrepareCodeScreen(context.Background(), dto.CodeScreenInput{EncryptedEmail: "e1", EncryptedCode: "c1"})
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if out.Email != "user@example.com" || out.Code != "123456" {
		t.Fatalf("unexpected output %+v", out)
	}
}

func TestPrepareCodeScreenBouncesNonPendingAccounts(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{
		decrypted: map[string]string{"e1": "user@example.com"},
		status:    dto.StatusActive,
	}
	uc, _ := newUsecase(api)

	if _, err := uc.PrepareCodeScreen(context.Background(), dto.CodeScreenInput{EncryptedEmail: "e1"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("active account must not reach the code screen, got %v", err)
	}
}

func TestPrepareCodeScreenToleratesBadCodeParam(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{
		decrypted: map[string]string{"e1": "user@example.com"},
		status:    dto.StatusPending,
	}
	uc, _ := newUsecase(api)

	out, err := uc.PrepareCodeScreen(context.Background(), dto.CodeScreenInput{EncryptedEmail: "e1", EncryptedCode: "garbage"})
	if err != nil {
		t.Fatalf("bad code param must not be fatal: %v", err)
	}
	if out.Code != "" {
		t.Fatalf("expected empty prefill, got %q", out.Code)
	}
}

func TestCompleteGoogleRedirectCachesIdentity(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc, cache := newUsecase(api)

	err := uc.CompleteGoogleRedirect(context.Background(), dto.GoogleRedirectResult{
		Token: "jwt", Username: "jo.hn_doe", Email: "user@example.com",
	})
	if err != nil {
		t.Fatalf("complete redirect: %v", err)
	}
	if cache.token != "jwt" || cache.username != "jo.hn_doe" {
		t.Fatalf("identity not cached: %+v", cache)
	}
	if err := uc.CompleteGoogleRedirect(context.Background(), dto.GoogleRedirectResult{}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("missing token must fail, got %v", err)
	}
}
