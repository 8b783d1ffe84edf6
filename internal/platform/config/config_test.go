package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fitcoach/internal/platform/config"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FITCOACH_DATA_DIR", dir)

	cfg, err := config.Load(filepath.Join(dir, "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaseURL != "http://localhost:4000" {
		t.Fatalf("expected default base url, got %q", cfg.BaseURL)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("expected default timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.DBPath() != filepath.Join(dir, "state.db") {
		t.Fatalf("unexpected db path %q", cfg.DBPath())
	}
}

func TestLoadFileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "base_url: https://api.example.com\ndata_dir: " + dir + "\nspeech_command: whisper-cli --once\noauth:\n  callback_port: 9999\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FITCOACH_API_BASE_URL", "https://override.example.com")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaseURL != "https://override.example.com" {
		t.Fatalf("env override lost, got %q", cfg.BaseURL)
	}
	if cfg.OAuth.CallbackPort != 9999 {
		t.Fatalf("file value lost, got %d", cfg.OAuth.CallbackPort)
	}
	if cfg.SpeechCommand != "whisper-cli --once" {
		t.Fatalf("speech command lost, got %q", cfg.SpeechCommand)
	}
}

func TestValidateRejectsBadBaseURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("base_url: ftp://nope\ndata_dir: "+dir+"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected validation error for non-http base url")
	}
}
