package out

import (
	"context"

	"fitcoach/internal/modules/profile/domain"
)

type ProfileAPI interface {
	SaveInitial(ctx context.Context, profile domain.Profile) error
	FetchAccount(ctx context.Context) (domain.Profile, error)
	SaveAccount(ctx context.Context, profile domain.Profile, password string) error
}
