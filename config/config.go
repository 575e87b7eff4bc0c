// Package config loads lvtrace server settings from a TOML file.
//
// Values absent from the file keep their Default. A typical file:
//
//	[server]
//	addr            = ":8080"
//	max_body_bytes  = 1048576
//	read_timeout    = "5s"
//	write_timeout   = "10s"
//	allowed_origins = ["http://localhost:5173"]
//
//	[log]
//	level = "debug"
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// ErrInvalidConfig indicates a configuration value out of range or a key the
// loader does not recognise.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration.
type Config struct {
	Server Server `toml:"server"`
	Log    Log    `toml:"log"`
}

// Server configures the HTTP adapter.
type Server struct {
	Addr           string        `toml:"addr"`
	MaxBodyBytes   int64         `toml:"max_body_bytes"`
	ReadTimeout    time.Duration `toml:"read_timeout"`
	WriteTimeout   time.Duration `toml:"write_timeout"`
	AllowedOrigins []string      `toml:"allowed_origins"`
}

// Log configures the logger.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{
			Addr:           ":8080",
			MaxBodyBytes:   1 << 20,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			AllowedOrigins: []string{"*"},
		},
		Log: Log{Level: "info"},
	}
}

// Load reads the TOML file at path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: server.max_body_bytes must be positive", ErrInvalidConfig)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}

	return nil
}

// ParseLevel converts Level to a log.Level; empty means info.
func (l Log) ParseLevel() (log.Level, error) {
	if l.Level == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}

	return level, nil
}
