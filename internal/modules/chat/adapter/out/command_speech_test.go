package out_test

import (
	"context"
	"strings"
	"testing"

	"fitcoach/internal/modules/chat/adapter/out"
)

func TestCommandSpeechReturnsTrimmedStdout(t *testing.T) {
	t.Parallel()
	speech := out.NewCommandSpeech("printf '  quiero una rutina de fuerza \\n'")

	text, err := speech.Transcribe(context.Background())
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if text != "quiero una rutina de fuerza" {
		t.Fatalf("unexpected transcription: %q", text)
	}
}

func TestCommandSpeechFailureCarriesStderr(t *testing.T) {
	t.Parallel()
	speech := out.NewCommandSpeech("echo 'mic not found' >&2; exit 3")

	_, err := speech.Transcribe(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "mic not found") {
		t.Fatalf("stderr not surfaced: %v", err)
	}
}

func TestCommandSpeechRejectsEmptyOutput(t *testing.T) {
	t.Parallel()
	speech := out.NewCommandSpeech("true")

	if _, err := speech.Transcribe(context.Background()); err == nil {
		t.Fatal("expected an error for empty output")
	}
}
