package out

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandSpeech shells out to a user-configured transcriber. The command
// is expected to capture audio, block until the phrase ends and print
// the transcription on stdout.
type CommandSpeech struct {
	command string
}

func NewCommandSpeech(command string) *CommandSpeech {
	return &CommandSpeech{command: command}
}

func (s *CommandSpeech) Transcribe(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", s.command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("transcriber: %s: %w", msg, err)
		}
		return "", fmt.Errorf("transcriber: %w", err)
	}
	text := strings.TrimSpace(stdout.String())
	if text == "" {
		return "", fmt.Errorf("transcriber produced no text")
	}
	return text, nil
}
