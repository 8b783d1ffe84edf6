// Package config loads client configuration from a YAML file with
// environment-variable overrides. A .env file next to the working
// directory is honored when present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultBaseURL = "http://localhost:4000"

type Config struct {
	// BaseURL is the backend API root. All endpoints are resolved
	// relative to it.
	BaseURL string `yaml:"base_url"`

	// DataDir holds the local state database and log file.
	DataDir string `yaml:"data_dir"`

	// RequestTimeout bounds every backend call.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// LogFile receives structured logs; the terminal UI owns stdout.
	LogFile string `yaml:"log_file"`

	// SpeechCommand, when set, is a shell command that records one
	// spoken phrase and prints the transcription on stdout. Empty
	// disables voice input.
	SpeechCommand string `yaml:"speech_command"`

	OAuth OAuthConfig `yaml:"oauth"`
}

// OAuthConfig configures the Google sign-in loopback flow.
type OAuthConfig struct {
	ClientID     string `yaml:"client_id"`
	CallbackPort int    `yaml:"callback_port"`
}

// Load reads the config file at path (optional), then applies
// environment overrides and defaults.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:        defaultBaseURL,
		RequestTimeout: 30 * time.Second,
		OAuth:          OAuthConfig{CallbackPort: 8765},
	}

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// missing file is fine, defaults apply
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if v := getEnv("FITCOACH_API_BASE_URL", ""); v != "" {
		cfg.BaseURL = v
	}
	if v := getEnv("FITCOACH_DATA_DIR", ""); v != "" {
		cfg.DataDir = v
	}
	if v := getEnv("FITCOACH_SPEECH_COMMAND", ""); v != "" {
		cfg.SpeechCommand = v
	}
	if v := getEnv("FITCOACH_OAUTH_CLIENT_ID", ""); v != "" {
		cfg.OAuth.ClientID = v
	}
	if n := getEnvInt("FITCOACH_OAUTH_CALLBACK_PORT", 0); n != 0 {
		cfg.OAuth.CallbackPort = n
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".fitcoach")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, "fitcoach.log")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that required fields are set and well formed.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url cannot be empty")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base_url must be an http(s) URL, got %q", c.BaseURL)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}
	if c.OAuth.CallbackPort <= 0 || c.OAuth.CallbackPort > 65535 {
		return fmt.Errorf("oauth callback_port out of range: %d", c.OAuth.CallbackPort)
	}
	return nil
}

// DBPath is the local state database location.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "state.db")
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}
