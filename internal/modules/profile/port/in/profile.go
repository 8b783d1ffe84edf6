package in

import (
	"context"

	"fitcoach/internal/modules/profile/dto"
)

type Usecase interface {
	// SaveInitial completes the one-time profile gate.
	SaveInitial(ctx context.Context, input dto.StatsInput) error

	// Account returns the editable settings copy.
	Account(ctx context.Context) (dto.AccountOutput, error)

	// SaveAccount updates username/stats and, when set, the password.
	SaveAccount(ctx context.Context, input dto.AccountInput) error
}
