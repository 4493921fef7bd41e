package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingAPIKey is returned when no Gemini credential is configured or supplied.
var ErrMissingAPIKey = errors.New("gemini api key is required")

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Session     SessionConfig     `yaml:"session"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
}

type ServerConfig struct {
	Address        string        `yaml:"address"`
	MaxUploadMB    int64         `yaml:"max_upload_mb"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type GeminiConfig struct {
	APIKey       string        `yaml:"api_key"`
	Model        string        `yaml:"model"`
	PollInterval time.Duration `yaml:"poll_interval"`
	PollTimeout  time.Duration `yaml:"poll_timeout"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type SessionConfig struct {
	Backend string        `yaml:"backend"`
	TTL     time.Duration `yaml:"ttl"`
	Redis   RedisConfig   `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type AnalysisConfig struct {
	DefaultLanguage string `yaml:"default_language"`
}

// Validate checks the configuration and fills defaults for optional fields.
// The API key is not checked here since it may be supplied per request.
func (c *Config) Validate() error {
	switch c.Session.Backend {
	case "":
		c.Session.Backend = "memory"
	case "memory":
	case "redis":
		if c.Session.Redis.Addr == "" {
			return fmt.Errorf("session.redis.addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("session.backend %q is not supported", c.Session.Backend)
	}
	if c.Gemini.PollInterval < 0 || c.Gemini.PollTimeout < 0 {
		return fmt.Errorf("gemini poll durations must not be negative")
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}

	if c.Server.Address == "" {
		c.Server.Address = ":8080"
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 200
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 60 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15 * time.Minute
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 120 * time.Second
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = 15 * time.Minute
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.PollInterval == 0 {
		c.Gemini.PollInterval = 2 * time.Second
	}
	if c.Gemini.PollTimeout == 0 {
		c.Gemini.PollTimeout = 10 * time.Minute
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Session.TTL == 0 {
		c.Session.TTL = time.Hour
	}
	if c.Analysis.DefaultLanguage == "" {
		c.Analysis.DefaultLanguage = "zh"
	}

	return nil
}

// APIKey returns the request-supplied key when present, else the configured one.
func (c *Config) APIKey(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if c.Gemini.APIKey != "" {
		return c.Gemini.APIKey, nil
	}
	return "", ErrMissingAPIKey
}

// MaxUploadBytes returns the upload size cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.Server.MaxUploadMB << 20
}
