package in

import (
	"context"

	"fitcoach/internal/modules/profile/dto"
	profilein "fitcoach/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) SaveInitial(ctx context.Context, weight, height, age int, gender string) error {
	return h.usecase.SaveInitial(ctx, dto.StatsInput{Weight: weight, Height: height, Age: age, Gender: gender})
}

func (h CLIHandler) Account(ctx context.Context) (dto.AccountOutput, error) {
	return h.usecase.Account(ctx)
}

func (h CLIHandler) SaveAccount(ctx context.Context, input dto.AccountInput) error {
	return h.usecase.SaveAccount(ctx, input)
}
