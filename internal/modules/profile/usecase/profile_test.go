package usecase_test

import (
	"context"
	"errors"
	"testing"

	"fitcoach/internal/modules/profile/domain"
	"fitcoach/internal/modules/profile/dto"
	"fitcoach/internal/modules/profile/service"
	"fitcoach/internal/modules/profile/usecase"
	apperrors "fitcoach/internal/platform/errors"
)

type fakeAPI struct {
	saved        domain.Profile
	savedPwd     string
	initialCalls int
	accountCalls int
	account      domain.Profile
}

func (f *fakeAPI) SaveInitial(_ context.Context, profile domain.Profile) error {
	f.initialCalls++
	f.saved = profile
	return nil
}

func (f *fakeAPI) FetchAccount(context.Context) (domain.Profile, error) {
	return f.account, nil
}

func (f *fakeAPI) SaveAccount(_ context.Context, profile domain.Profile, password string) error {
	f.accountCalls++
	f.saved = profile
	f.savedPwd = password
	return nil
}

func TestSaveInitialValidatesBeforeNetwork(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc := usecase.NewInteractor(service.NewProfileService(api))

	bad := []dto.StatsInput{
		{Weight: 19, Height: 175, Age: 30, Gender: "male"},
		{Weight: 70, Height: 251, Age: 30, Gender: "male"},
		{Weight: 70, Height: 175, Age: 0, Gender: "male"},
		{Weight: 70, Height: 175, Age: 30, Gender: "unknown"},
	}
	for _, input := range bad {
		if err := uc.SaveInitial(context.Background(), input); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
	if api.initialCalls != 0 {
		t.Fatalf("invalid stats must not reach the network")
	}

	if err := uc.SaveInitial(context.Background(), dto.StatsInput{Weight: 70, Height: 175, Age: 30, Gender: "female"}); err != nil {
		t.Fatalf("valid stats rejected: %v", err)
	}
	if api.saved.Gender != domain.GenderFemale {
		t.Fatalf("gender forwarded wrong: %q", api.saved.Gender)
	}
}

func TestSaveAccountPasswordRules(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc := usecase.NewInteractor(service.NewProfileService(api))

	base := dto.AccountInput{Username: "jo.hn_doe", Weight: 70, Height: 175, Age: 30, Gender: "male"}

	// Empty password is simply omitted.
	if err := uc.SaveAccount(context.Background(), base); err != nil {
		t.Fatalf("save without password: %v", err)
	}
	if api.savedPwd != "" {
		t.Fatalf("empty password must not be sent, got %q", api.savedPwd)
	}

	weak := base
	weak.Password = "short"
	if err := uc.SaveAccount(context.Background(), weak); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("weak password must be rejected, got %v", err)
	}

	strong := base
	strong.Password = "Abcdef1!"
	if err := uc.SaveAccount(context.Background(), strong); err != nil {
		t.Fatalf("strong password rejected: %v", err)
	}
	if api.savedPwd != "Abcdef1!" {
		t.Fatalf("password not forwarded")
	}
}

func TestSaveAccountUsernameRelaxedRule(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc := usecase.NewInteractor(service.NewProfileService(api))

	short := dto.AccountInput{Username: "jo", Weight: 70, Height: 175, Age: 30, Gender: "male"}
	if err := uc.SaveAccount(context.Background(), short); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("two-char username must fail, got %v", err)
	}
	three := short
	three.Username = " joe "
	if err := uc.SaveAccount(context.Background(), three); err != nil {
		t.Fatalf("three-char username must pass on settings: %v", err)
	}
	if api.saved.Username != "joe" {
		t.Fatalf("username not trimmed, got %q", api.saved.Username)
	}
}
