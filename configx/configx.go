// Package configx binds configuration from environment variables and an
// optional YAML file into typed structs.
//
// Overview:
//   - Responsibility: One-shot configuration loading for the SDK and CLI
//   - Key Types: LoadOption for sources, BaseConfig for the shared OPENSTATUS_* settings
//   - Concurrency Model: Load is safe for concurrent use on distinct targets
//   - Error Semantics: Load returns parse, file and validation errors
//
// Precedence, lowest first: envDefault tags, YAML file, environment.
//
// Usage:
//
//	var cfg configx.BaseConfig
//	if err := configx.Load(&cfg, configx.WithPrefix(configx.DefaultPrefix)); err != nil {
//		return err
//	}
package configx

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPrefix is the environment prefix of every OpenStatus setting.
const DefaultPrefix = "OPENSTATUS_"

// noDefaultTag disables envDefault handling on the environment pass so that
// values read from the YAML file are not reset.
const noDefaultTag = "configx-no-default"

// BaseConfig holds the settings shared by the SDK and the CLI.
type BaseConfig struct {
	APIKey    string `env:"API_KEY" yaml:"api_key"`
	APIURL    string `env:"API_URL" yaml:"api_url" validate:"omitempty,url"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console" yaml:"log_format" validate:"oneof=console json logfmt"`
}

type loadConfig struct {
	prefix      string
	environment map[string]string
	file        string
	optional    bool
	validate    *validator.Validate
	skipChecks  bool
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

// WithPrefix prepends prefix to every env tag.
func WithPrefix(prefix string) LoadOption {
	return func(c *loadConfig) {
		c.prefix = prefix
	}
}

// WithEnvironment replaces the process environment as the env source.
func WithEnvironment(environ map[string]string) LoadOption {
	return func(c *loadConfig) {
		c.environment = environ
	}
}

// WithFile reads a YAML file before the environment. A missing file is an
// error unless optional is true. An empty path is ignored.
func WithFile(path string, optional bool) LoadOption {
	return func(c *loadConfig) {
		c.file = path
		c.optional = optional
	}
}

// WithValidator sets the validator used after binding.
func WithValidator(v *validator.Validate) LoadOption {
	return func(c *loadConfig) {
		c.validate = v
	}
}

// WithoutValidation skips struct validation.
func WithoutValidation() LoadOption {
	return func(c *loadConfig) {
		c.skipChecks = true
	}
}

// Load populates target, which must be a pointer to a struct.
func Load(target any, opts ...LoadOption) error {
	if target == nil {
		return errors.New("target cannot be nil")
	}

	cfg := loadConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	environ := cfg.environment
	if environ == nil {
		environ = Environ(cfg.prefix)
	}

	// Defaults only.
	if err := env.ParseWithOptions(target, env.Options{
		Prefix:      cfg.prefix,
		Environment: map[string]string{},
	}); err != nil {
		return fmt.Errorf("apply defaults: %w", err)
	}

	if cfg.file != "" {
		if err := loadFile(cfg.file, cfg.optional, target); err != nil {
			return err
		}
	}

	if err := env.ParseWithOptions(target, env.Options{
		Prefix:              cfg.prefix,
		Environment:         environ,
		DefaultValueTagName: noDefaultTag,
	}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if cfg.skipChecks {
		return nil
	}
	return ValidateStruct(cfg.validate, target)
}

// Environ returns the process environment restricted to keys with prefix.
// An empty prefix returns the whole environment.
func Environ(prefix string) map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}
		out[key] = value
	}
	return out
}

func loadFile(path string, optional bool, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}
