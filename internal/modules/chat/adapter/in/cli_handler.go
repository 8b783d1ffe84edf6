package in

import (
	"context"

	"fitcoach/internal/modules/chat/dto"
	chatin "fitcoach/internal/modules/chat/port/in"
)

type CLIHandler struct {
	usecase chatin.Usecase
}

func NewCLIHandler(usecase chatin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) History(ctx context.Context) (dto.HistoryOutput, error) {
	return h.usecase.History(ctx)
}

func (h CLIHandler) Send(ctx context.Context, message string) (dto.ExchangeOutput, error) {
	return h.usecase.Send(ctx, dto.SendInput{Message: message})
}

func (h CLIHandler) SendAnalysis(ctx context.Context) (dto.ExchangeOutput, error) {
	return h.usecase.SendAnalysis(ctx)
}
