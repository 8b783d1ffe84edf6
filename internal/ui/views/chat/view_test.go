package chat

import (
	"context"
	"fmt"
	"strings"
	"testing"

	chatdto "fitcoach/internal/modules/chat/dto"
	apperrors "fitcoach/internal/platform/errors"
)

type stubTrainer struct {
	history chatdto.HistoryOutput
	reply   chatdto.ExchangeOutput
	err     error
}

func (s stubTrainer) History(_ context.Context) (chatdto.HistoryOutput, error) {
	return s.history, s.err
}

func (s stubTrainer) Send(_ context.Context, _ string) (chatdto.ExchangeOutput, error) {
	return s.reply, s.err
}

func (s stubTrainer) SendAnalysis(_ context.Context) (chatdto.ExchangeOutput, error) {
	return s.reply, s.err
}

func TestHistoryHydratesTranscript(t *testing.T) {
	t.Parallel()
	m := New(stubTrainer{}, nil)

	m, _ = m.Update(historyMsg{out: chatdto.HistoryOutput{Messages: []chatdto.MessageOutput{
		{Content: "hola", IsUser: true},
		{Content: "Hi! Ready to train?", IsUser: false},
	}}})
	if m.log.Len() != 2 {
		t.Fatalf("transcript length = %d", m.log.Len())
	}
	rendered := m.renderTranscript()
	if !strings.Contains(rendered, "hola") || !strings.Contains(rendered, "Ready to train?") {
		t.Fatalf("rendered transcript = %q", rendered)
	}
}

func TestClearLocalEmptiesTranscriptOnly(t *testing.T) {
	t.Parallel()
	m := New(stubTrainer{}, nil)
	m, _ = m.Update(historyMsg{out: chatdto.HistoryOutput{Messages: []chatdto.MessageOutput{
		{Content: "hola", IsUser: true},
	}}})

	m = m.ClearLocal()
	if m.log.Len() != 0 {
		t.Fatalf("transcript length = %d after clear", m.log.Len())
	}
	if !strings.Contains(m.renderTranscript(), "No messages yet") {
		t.Fatalf("cleared transcript = %q", m.renderTranscript())
	}
}

func TestAnalysisAppendsPromptThenReply(t *testing.T) {
	t.Parallel()
	m := New(stubTrainer{}, nil)
	m.loading = false

	m, _ = m.Update(analysisMsg{out: chatdto.ExchangeOutput{
		Prompt: "Peso 80kg, altura 180cm, edad 25 años, soy hombre. Dame mi análisis fitness personalizado completo.",
		Reply:  "Aquí tienes tu análisis",
	}})
	messages := m.log.Messages()
	if len(messages) != 2 {
		t.Fatalf("transcript length = %d", len(messages))
	}
	if !messages[0].IsUser || !strings.Contains(messages[0].Content, "Peso 80kg") {
		t.Fatalf("first entry = %+v, want the synthesized prompt as the user line", messages[0])
	}
	if messages[1].IsUser || messages[1].Content != "Aquí tienes tu análisis" {
		t.Fatalf("second entry = %+v", messages[1])
	}
}

func TestAnalysisWithIncompleteProfileShowsNote(t *testing.T) {
	t.Parallel()
	m := New(stubTrainer{}, nil)
	m.loading = false

	m, _ = m.Update(analysisMsg{err: fmt.Errorf("analysis needs full stats: %w", apperrors.ErrProfileIncomplete)})
	if !strings.Contains(m.note, "Complete your profile") {
		t.Fatalf("note = %q", m.note)
	}
	if m.log.Len() != 0 {
		t.Fatalf("a failed analysis must not append to the transcript")
	}
}
