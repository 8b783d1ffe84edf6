package service

import (
	"context"
	"fmt"
	"strings"

	"fitcoach/internal/modules/profile/domain"
	"fitcoach/internal/modules/profile/dto"
	profileout "fitcoach/internal/modules/profile/port/out"
	apperrors "fitcoach/internal/platform/errors"
	"fitcoach/internal/platform/password"
)

type ProfileService struct {
	api profileout.ProfileAPI
}

func NewProfileService(api profileout.ProfileAPI) *ProfileService {
	return &ProfileService{api: api}
}

func (s *ProfileService) SaveInitial(ctx context.Context, input dto.StatsInput) error {
	profile := domain.Profile{
		Weight: input.Weight,
		Height: input.Height,
		Age:    input.Age,
		Gender: domain.Gender(input.Gender),
	}
	if err := profile.ValidateStats(); err != nil {
		return err
	}
	return s.api.SaveInitial(ctx, profile)
}

func (s *ProfileService) FetchAccount(ctx context.Context) (dto.AccountOutput, error) {
	profile, err := s.api.FetchAccount(ctx)
	if err != nil {
		return dto.AccountOutput{}, err
	}
	return dto.AccountOutput{
		Username: profile.Username,
		Email:    profile.Email,
		Weight:   profile.Weight,
		Height:   profile.Height,
		Age:      profile.Age,
		Gender:   string(profile.Gender),
	}, nil
}

// SaveAccount relaxes the username rule relative to signup: an existing
// account only needs three characters. The password travels only when
// the user typed one, and then it must satisfy the full pattern.
func (s *ProfileService) SaveAccount(ctx context.Context, input dto.AccountInput) error {
	username := strings.TrimSpace(input.Username)
	if len(username) < 3 {
		return fmt.Errorf("username too short: %w", apperrors.ErrInvalidInput)
	}
	profile := domain.Profile{
		Weight:   input.Weight,
		Height:   input.Height,
		Age:      input.Age,
		Gender:   domain.Gender(input.Gender),
		Username: username,
	}
	if err := profile.ValidateStats(); err != nil {
		return err
	}
	if input.Password != "" && !password.Valid(input.Password) {
		return fmt.Errorf("password: %w", apperrors.ErrInvalidInput)
	}
	return s.api.SaveAccount(ctx, profile, input.Password)
}
