// Package config loads bonsai.yaml, the optional file that tunes which
// variables are read, how URLs are redacted, and how the client is set up.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jongio/bonsai-core/clusterurl"
	"github.com/jongio/bonsai-core/env"
	"github.com/jongio/bonsai-core/transport"
)

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "bonsai.yaml"

// ErrInvalidConfig indicates a config file that parsed but cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the content of bonsai.yaml.
type Config struct {
	PrimaryVar        string    `yaml:"primaryVar"`
	FallbackVar       string    `yaml:"fallbackVar"`
	TargetVar         string    `yaml:"targetVar"`
	RedactPlaceholder string    `yaml:"redactPlaceholder"`
	BulkConcurrency   int       `yaml:"bulkConcurrency"`
	Transport         Transport `yaml:"transport"`
	Log               Log       `yaml:"log"`
}

// Transport overrides the search client's HTTP defaults.
type Transport struct {
	UserAgent      string        `yaml:"userAgent"`
	KeepAlive      string        `yaml:"keepAlive"`
	AcceptEncoding string        `yaml:"acceptEncoding"`
	Timeout        time.Duration `yaml:"timeout"`
}

// Log configures logutil.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	t := transport.DefaultOptions()
	return &Config{
		PrimaryVar:        env.BonsaiURL,
		FallbackVar:       env.ElasticsearchURL,
		TargetVar:         env.ElasticsearchURL,
		RedactPlaceholder: clusterurl.RedactedPlaceholder,
		BulkConcurrency:   2,
		Transport: Transport{
			UserAgent:      t.UserAgent,
			KeepAlive:      t.KeepAlive,
			AcceptEncoding: t.AcceptEncoding,
			Timeout:        t.Timeout,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the config at path. An empty path means DefaultFileName in the
// working directory. A missing file yields Default. Fields left out of the
// file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	cfg := Default()
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config for values that would break startup.
func (c *Config) Validate() error {
	if c.PrimaryVar == "" || c.FallbackVar == "" || c.TargetVar == "" {
		return fmt.Errorf("%w: primaryVar, fallbackVar and targetVar must be set", ErrInvalidConfig)
	}
	if c.BulkConcurrency <= 0 {
		return fmt.Errorf("%w: bulkConcurrency must be positive, got %d", ErrInvalidConfig, c.BulkConcurrency)
	}
	if c.Transport.Timeout < 0 {
		return fmt.Errorf("%w: transport.timeout cannot be negative", ErrInvalidConfig)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// TransportOptions converts the transport section for the transport package.
func (c *Config) TransportOptions() transport.Options {
	return transport.Options{
		UserAgent:      c.Transport.UserAgent,
		KeepAlive:      c.Transport.KeepAlive,
		AcceptEncoding: c.Transport.AcceptEncoding,
		Timeout:        c.Transport.Timeout,
	}
}

// Structured reports whether logs should be JSON.
func (c *Config) Structured() bool {
	return c.Log.Format == "json"
}
