package mcpserver

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ──────────────────────────────────────────────
// Configuration
// ──────────────────────────────────────────────

// Transport names.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config configures the serving boundary. The core enhancement pipeline has
// no configuration: every table is a process-wide constant.
type Config struct {
	Name           string `json:"name"`
	Version        string `json:"version"`
	Transport      string `json:"transport"` // "stdio" | "http"
	Addr           string `json:"addr"`      // http only
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// DefaultConfig returns the stdio-serving defaults.
func DefaultConfig() Config {
	return Config{
		Name:           "slapstick-enhancer",
		Version:        "1.0.0",
		Transport:      TransportStdio,
		Addr:           "127.0.0.1:8137",
		TimeoutSeconds: 30,
	}
}

// LoadConfig reads a JSON config file. Fields left unset keep their
// defaults. A missing path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("mcpserver: read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("mcpserver: parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("mcpserver: unknown transport %q", c.Transport)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("mcpserver: timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	return nil
}

// Timeout returns the configured timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
