package in

import (
	"context"

	"fitcoach/internal/modules/chat/dto"
)

type Usecase interface {
	// History loads the server-side transcript for the signed-in user.
	History(ctx context.Context) (dto.HistoryOutput, error)

	// Send delivers one message and returns the trainer's reply. Only
	// one send may be in flight at a time; a second call fails with
	// ErrBusy. Empty or whitespace-only messages are rejected.
	Send(ctx context.Context, input dto.SendInput) (dto.ExchangeOutput, error)

	// SendAnalysis builds an analysis request from the stored account
	// stats and sends it like a regular message.
	SendAnalysis(ctx context.Context) (dto.ExchangeOutput, error)
}
