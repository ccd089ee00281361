// Package config loads mtcsctl's configuration by layering, in
// increasing priority, built-in defaults, an optional YAML file, and
// environment variables prefixed MTCS_.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix    = "MTCS_"
	configEnvVar = "MTCS_CONFIG_PATH"
)

// Config is mtcsctl's full configuration surface.
type Config struct {
	Engine EngineConfig `koanf:"engine"`
	Log    LogConfig    `koanf:"log"`
}

// EngineConfig selects and tunes the MCMF engine the clearing pipeline runs.
type EngineConfig struct {
	// Kind is "primal-dual" or "network-simplex".
	Kind string `koanf:"kind"`
}

// LogConfig mirrors internal/logging.Config, koanf-tagged for loading.
type LogConfig struct {
	Level      string `koanf:"level"`       // debug, info, warn, error
	Format     string `koanf:"format"`      // json, text
	Output     string `koanf:"output"`      // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"`    // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`     // days
	Compress   bool   `koanf:"compress"`
}

// Loader assembles a Config from defaults, an optional file, and env vars.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConfigPaths overrides the search paths probed for a YAML file.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) { l.configPaths = paths }
}

// NewLoader constructs a Loader with mtcsctl's default search paths.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k: koanf.New("."),
		configPaths: []string{
			"mtcsctl.yaml",
			"config/mtcsctl.yaml",
			"/etc/mtcs/mtcsctl.yaml",
		},
		envPrefix: envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load runs the defaults -> file -> env layering and validates the result.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if err := l.loadConfigFile(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
	}

	if err := l.k.Load(env.Provider(l.envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, l.envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (l *Loader) loadConfigFile() error {
	if p := os.Getenv(configEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return l.k.Load(file.Provider(p), yaml.Parser())
		}
	}

	for _, path := range l.configPaths {
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		if _, err := os.Stat(abs); err == nil {
			return l.k.Load(file.Provider(abs), yaml.Parser())
		}
	}

	return fmt.Errorf("config file not found in paths: %v", l.configPaths)
}

func defaults() map[string]any {
	return map[string]any{
		"engine.kind":     "primal-dual",
		"log.level":       "info",
		"log.format":      "json",
		"log.output":      "stdout",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    true,
	}
}

// Load loads configuration using the default search paths.
func Load() (*Config, error) {
	return NewLoader().Load()
}

// Validate rejects configuration values the engine cannot act on.
func (c *Config) Validate() error {
	var errs []string

	switch c.Engine.Kind {
	case "primal-dual", "network-simplex":
	default:
		errs = append(errs, fmt.Sprintf("engine.kind must be one of: primal-dual, network-simplex, got %q", c.Engine.Kind))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %q", c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}
