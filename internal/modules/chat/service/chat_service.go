package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fitcoach/internal/modules/chat/domain"
	chatout "fitcoach/internal/modules/chat/port/out"
	apperrors "fitcoach/internal/platform/errors"
)

// Replies shown in place of a server answer. The trainer keeps talking
// even when the backend does not: failures become bot messages rather
// than broken turns.
const (
	sessionExpiredReply = "⚠️ Your session has expired. Please log in again."
	connectionReply     = "❌ Server connection error. Could you try again?"
	fallbackReply       = "💪 I'm here to help with your training! Ask me about routines or nutrition, " +
		"or send me your weight, height, and age for a personalized analysis."
)

// ChatService runs one conversational turn against the trainer backend.
type ChatService struct {
	api chatout.ChatAPI
}

func NewChatService(api chatout.ChatAPI) *ChatService {
	return &ChatService{api: api}
}

// Reply produces the trainer's answer for one user message. A message
// carrying a full weight/height/age triple is answered locally with the
// computed analysis and never reaches the network. Backend failures are
// folded into displayable replies; the only error Reply returns is
// input validation.
func (s *ChatService) Reply(ctx context.Context, message string) (string, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "", fmt.Errorf("empty message: %w", apperrors.ErrInvalidInput)
	}

	if m := domain.ExtractMetrics(trimmed); m.HasWeight && m.HasHeight && m.HasAge {
		return domain.ComputeAnalysis(m.WeightKg, m.HeightCm, m.AgeYears).Render(), nil
	}

	answer, err := s.api.Send(ctx, trimmed)
	switch {
	case errors.Is(err, apperrors.ErrSessionExpired) || errors.Is(err, apperrors.ErrUnauthorized):
		slog.Info("chat send: session expired")
		return sessionExpiredReply, nil
	case err != nil:
		slog.Warn("chat send failed", "error", err)
		return connectionReply, nil
	case strings.TrimSpace(answer) == "":
		return fallbackReply, nil
	}
	return answer, nil
}
