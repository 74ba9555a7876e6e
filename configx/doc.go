// Package configx loads OpenStatus settings.
//
// # Overview
//
// configx reads a struct from three layers: envDefault tags, an optional
// YAML file and the environment, later layers winning. Binding is done by
// github.com/caarlos0/env/v11 and the result is checked with
// github.com/go-playground/validator/v10.
//
// # Usage
//
//	type Config struct {
//		configx.BaseConfig
//		Output string `env:"OUTPUT" envDefault:"table" yaml:"output"`
//	}
//
//	var cfg Config
//	err := configx.Load(&cfg,
//		configx.WithPrefix(configx.DefaultPrefix),
//		configx.WithFile(path, true),
//	)
//
// # Layer
//
// configx depends on nothing else in the module and is used by clientx and
// the CLI.
package configx
