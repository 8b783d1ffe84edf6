package out

import (
	"context"

	chatout "fitcoach/internal/modules/chat/port/out"
	profilein "fitcoach/internal/modules/profile/port/in"
)

// StatsBridge feeds the stored account stats to the analysis prompt by
// going through the profile module's input port.
type StatsBridge struct {
	profile profilein.Usecase
}

func NewStatsBridge(profile profilein.Usecase) *StatsBridge {
	return &StatsBridge{profile: profile}
}

func (b *StatsBridge) Stats(ctx context.Context) (chatout.AccountStats, error) {
	account, err := b.profile.Account(ctx)
	if err != nil {
		return chatout.AccountStats{}, err
	}
	return chatout.AccountStats{
		WeightKg: account.Weight,
		HeightCm: account.Height,
		AgeYears: account.Age,
		Gender:   account.Gender,
	}, nil
}
