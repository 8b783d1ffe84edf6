package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"fitcoach/internal/modules/chat/domain"
	"fitcoach/internal/modules/chat/dto"
	chatin "fitcoach/internal/modules/chat/port/in"
	chatout "fitcoach/internal/modules/chat/port/out"
	"fitcoach/internal/modules/chat/service"
	apperrors "fitcoach/internal/platform/errors"
)

type Interactor struct {
	svc     *service.ChatService
	api     chatout.ChatAPI
	stats   chatout.StatsReader
	sending atomic.Bool
}

func NewInteractor(svc *service.ChatService, api chatout.ChatAPI, stats chatout.StatsReader) chatin.Usecase {
	return &Interactor{svc: svc, api: api, stats: stats}
}

func (i *Interactor) History(ctx context.Context) (dto.HistoryOutput, error) {
	entries, err := i.api.History(ctx)
	if err != nil {
		return dto.HistoryOutput{}, err
	}
	out := dto.HistoryOutput{Messages: make([]dto.MessageOutput, 0, len(entries))}
	for _, e := range entries {
		out.Messages = append(out.Messages, dto.MessageOutput{
			Content: e.Content,
			IsUser:  e.Role == domain.RoleUser,
		})
	}
	return out, nil
}

func (i *Interactor) Send(ctx context.Context, input dto.SendInput) (dto.ExchangeOutput, error) {
	return i.exchange(ctx, input.Message)
}

// SendAnalysis phrases the stored stats the way the trainer model was
// trained to read them and sends the sentence as a regular message.
func (i *Interactor) SendAnalysis(ctx context.Context) (dto.ExchangeOutput, error) {
	stats, err := i.stats.Stats(ctx)
	if err != nil {
		return dto.ExchangeOutput{}, err
	}
	if stats.WeightKg == 0 || stats.HeightCm == 0 || stats.AgeYears == 0 || stats.Gender == "" {
		return dto.ExchangeOutput{}, fmt.Errorf("analysis needs full stats: %w", apperrors.ErrProfileIncomplete)
	}
	noun := "mujer"
	if stats.Gender == "male" {
		noun = "hombre"
	}
	prompt := fmt.Sprintf(
		"Peso %dkg, altura %dcm, edad %d años, soy %s. Dame mi análisis fitness personalizado completo.",
		stats.WeightKg, stats.HeightCm, stats.AgeYears, noun)
	return i.exchange(ctx, prompt)
}

func (i *Interactor) exchange(ctx context.Context, prompt string) (dto.ExchangeOutput, error) {
	if !i.sending.CompareAndSwap(false, true) {
		return dto.ExchangeOutput{}, apperrors.ErrBusy
	}
	defer i.sending.Store(false)

	prompt = strings.TrimSpace(prompt)
	reply, err := i.svc.Reply(ctx, prompt)
	if err != nil {
		return dto.ExchangeOutput{}, err
	}
	return dto.ExchangeOutput{Prompt: prompt, Reply: reply}, nil
}
