package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Session    SessionConfig
	Shell      ShellConfig
	Filesystem FilesystemConfig
	Logging    LogConfig
}

// SessionConfig holds the initial session state.
type SessionConfig struct {
	Username string `envconfig:"FM_USERNAME" default:"User"`
	Home     string `envconfig:"FM_HOME"`
}

// ShellConfig holds REPL behavior.
type ShellConfig struct {
	Async  bool   `envconfig:"FM_ASYNC" default:"true"`
	Color  bool   `envconfig:"FM_COLOR" default:"true"`
	Prompt string `envconfig:"FM_PROMPT" default:"> "`
}

// FilesystemConfig holds stream pipeline settings.
type FilesystemConfig struct {
	Locale        string `envconfig:"FM_LOCALE" default:"en"`
	BufferSize    int    `envconfig:"FM_BUFFER_SIZE" default:"65536"`
	HashAlgorithm string `envconfig:"FM_HASH_ALGORITHM" default:"sha256"`
	Compression   string `envconfig:"FM_COMPRESSION" default:"brotli"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"FM_LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"FM_LOG_DEV" default:"false"`
	Output      string `envconfig:"FM_LOG_OUTPUT" default:"stderr"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := Default()
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			Username: "User",
		},
		Shell: ShellConfig{
			Async:  true,
			Color:  true,
			Prompt: "> ",
		},
		Filesystem: FilesystemConfig{
			Locale:        "en",
			BufferSize:    64 * 1024,
			HashAlgorithm: "sha256",
			Compression:   "brotli",
		},
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
			Output:      "stderr",
		},
	}
}

// Validate rejects values the providers cannot serve.
func (c *Config) Validate() error {
	if c.Filesystem.BufferSize <= 0 {
		return fmt.Errorf("FM_BUFFER_SIZE must be positive, got %d", c.Filesystem.BufferSize)
	}

	switch c.Filesystem.HashAlgorithm {
	case "sha256", "sha512", "blake2b":
	default:
		return fmt.Errorf("unsupported FM_HASH_ALGORITHM %q", c.Filesystem.HashAlgorithm)
	}

	switch c.Filesystem.Compression {
	case "brotli", "gzip", "zstd":
	default:
		return fmt.Errorf("unsupported FM_COMPRESSION %q", c.Filesystem.Compression)
	}

	return nil
}
