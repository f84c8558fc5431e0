package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	Polling     PollingConfig     `yaml:"polling"`
	Download    DownloadConfig    `yaml:"download"`
	Quiz        QuizConfig        `yaml:"quiz"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type GeminiConfig struct {
	Model          string        `yaml:"model"`
	APIKeyEnv      string        `yaml:"api_key_env"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// PollingConfig controls how long we wait for an uploaded file to become usable.
// A zero timeout waits forever.
type PollingConfig struct {
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
}

type DownloadConfig struct {
	BinaryPath         string `yaml:"binary_path"`
	Dir                string `yaml:"dir"`
	Format             string `yaml:"format"`
	MaxDurationSeconds int    `yaml:"max_duration_seconds"`
	Keep               bool   `yaml:"keep"`
}

type QuizConfig struct {
	Questions    int    `yaml:"questions"`
	OutputFormat string `yaml:"output_format"`
}

type PathsConfig struct {
	Output   string `yaml:"output"`
	Inbox    string `yaml:"inbox"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

const (
	DefaultModel              = "gemini-2.5-flash"
	DefaultAPIKeyEnv          = "API_KEY"
	FallbackAPIKeyEnv         = "GEMINI_API_KEY"
	DefaultRequestTimeout     = 600 * time.Second
	DefaultPollInterval       = 10 * time.Second
	DefaultMaxDurationSeconds = 3540
	DefaultVideoFormat        = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"
)

// Default returns a validated configuration for running without a config file
func Default() *Config {
	cfg := &Config{}
	// Validate only fills defaults for an empty config
	_ = cfg.Validate()
	return cfg
}

// Validate rejects impossible values and fills defaults for the rest
func (c *Config) Validate() error {
	if c.Gemini.RequestTimeout < 0 {
		return fmt.Errorf("gemini.request_timeout must not be negative")
	}
	if c.Polling.Interval < 0 {
		return fmt.Errorf("polling.interval must not be negative")
	}
	if c.Polling.Timeout < 0 {
		return fmt.Errorf("polling.timeout must not be negative")
	}
	if c.Download.MaxDurationSeconds < 0 {
		return fmt.Errorf("download.max_duration_seconds must not be negative")
	}
	if c.Quiz.Questions < 0 {
		return fmt.Errorf("quiz.questions must not be negative")
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = DefaultModel
	}
	if c.Gemini.APIKeyEnv == "" {
		c.Gemini.APIKeyEnv = DefaultAPIKeyEnv
	}
	if c.Gemini.RequestTimeout == 0 {
		c.Gemini.RequestTimeout = DefaultRequestTimeout
	}
	if c.Polling.Interval == 0 {
		c.Polling.Interval = DefaultPollInterval
	}
	if c.Download.BinaryPath == "" {
		c.Download.BinaryPath = "yt-dlp"
	}
	if c.Download.Dir == "" {
		c.Download.Dir = "data/downloads"
	}
	if c.Download.Format == "" {
		c.Download.Format = DefaultVideoFormat
	}
	if c.Download.MaxDurationSeconds == 0 {
		c.Download.MaxDurationSeconds = DefaultMaxDurationSeconds
	}
	if c.Quiz.Questions == 0 {
		c.Quiz.Questions = 10
	}
	if c.Quiz.OutputFormat == "" {
		c.Quiz.OutputFormat = "txt"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "."
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}

// MaxDuration returns the longest video the pipeline accepts
func (c *Config) MaxDuration() time.Duration {
	return time.Duration(c.Download.MaxDurationSeconds) * time.Second
}

// APIKey reads the credential from the configured environment variable,
// falling back to GEMINI_API_KEY.
func (c *Config) APIKey() (string, error) {
	if key := os.Getenv(c.Gemini.APIKeyEnv); key != "" {
		return key, nil
	}
	if key := os.Getenv(FallbackAPIKeyEnv); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("environment variable %s is not set", c.Gemini.APIKeyEnv)
}
