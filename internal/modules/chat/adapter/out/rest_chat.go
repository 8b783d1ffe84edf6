package out

import (
	"context"
	"net/http"

	chatout "fitcoach/internal/modules/chat/port/out"
	apperrors "fitcoach/internal/platform/errors"
	"fitcoach/internal/platform/httpclient"
)

// RESTChat talks to the /api/chatbot endpoints.
type RESTChat struct {
	api *httpclient.Client
}

func NewRESTChat(api *httpclient.Client) *RESTChat {
	return &RESTChat{api: api}
}

func (a *RESTChat) History(ctx context.Context) ([]chatout.HistoryEntry, error) {
	resp, err := a.api.Get(ctx, "/api/chatbot/history")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, apperrors.ErrSessionExpired
	}
	if !resp.OK() {
		return nil, apperrors.Rejected(resp.StatusCode, resp.Message("Could not load chat history"))
	}
	var payload struct {
		History []struct {
			Content string `json:"content"`
			Role    string `json:"role"`
		} `json:"history"`
	}
	if err := resp.Decode(&payload); err != nil {
		return nil, err
	}
	entries := make([]chatout.HistoryEntry, 0, len(payload.History))
	for _, h := range payload.History {
		entries = append(entries, chatout.HistoryEntry{Content: h.Content, Role: h.Role})
	}
	return entries, nil
}

func (a *RESTChat) Send(ctx context.Context, message string) (string, error) {
	resp, err := a.api.Post(ctx, "/api/chatbot/message", map[string]string{"message": message})
	if err != nil {
		return "", err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return "", apperrors.ErrSessionExpired
	}
	if !resp.OK() {
		return "", apperrors.Rejected(resp.StatusCode, resp.Message("Trainer is unavailable"))
	}
	var payload struct {
		Response string `json:"response"`
	}
	if err := resp.Decode(&payload); err != nil {
		return "", err
	}
	return payload.Response, nil
}
