package usecase

import (
	"context"

	"fitcoach/internal/modules/profile/dto"
	profilein "fitcoach/internal/modules/profile/port/in"
	"fitcoach/internal/modules/profile/service"
)

type Interactor struct {
	svc *service.ProfileService
}

func NewInteractor(svc *service.ProfileService) profilein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) SaveInitial(ctx context.Context, input dto.StatsInput) error {
	return i.svc.SaveInitial(ctx, input)
}

func (i *Interactor) Account(ctx context.Context) (dto.AccountOutput, error) {
	return i.svc.FetchAccount(ctx)
}

func (i *Interactor) SaveAccount(ctx context.Context, input dto.AccountInput) error {
	return i.svc.SaveAccount(ctx, input)
}
