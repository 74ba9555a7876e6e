package configx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseConfig `yaml:",inline"`
	Output     string `env:"OUTPUT" envDefault:"table" yaml:"output" validate:"oneof=table json yaml"`
	Limit      int    `env:"LIMIT" yaml:"limit"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, Load(&cfg, WithPrefix(DefaultPrefix), WithEnvironment(map[string]string{})))

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "table", cfg.Output)
	assert.Empty(t, cfg.APIKey)
}

func TestLoad_EnvironmentWithPrefix(t *testing.T) {
	var cfg testConfig
	err := Load(&cfg, WithPrefix(DefaultPrefix), WithEnvironment(map[string]string{
		"OPENSTATUS_API_KEY":   "abc123",
		"OPENSTATUS_API_URL":   "http://localhost:3000/rpc",
		"OPENSTATUS_LOG_LEVEL": "debug",
		"OPENSTATUS_LIMIT":     "25",
		"API_KEY":              "ignored",
	}))
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.APIKey)
	assert.Equal(t, "http://localhost:3000/rpc", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 25, cfg.Limit)
}

func TestLoad_FilePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openstatus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_key: from-file\nlog_level: warn\noutput: json\n"), 0o600))

	var cfg testConfig
	err := Load(&cfg,
		WithPrefix(DefaultPrefix),
		WithFile(path, false),
		WithEnvironment(map[string]string{"OPENSTATUS_API_KEY": "from-env"}),
	)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.APIKey, "environment overrides file")
	assert.Equal(t, "warn", cfg.LogLevel, "file overrides default")
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "console", cfg.LogFormat, "default kept when neither sets it")
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	var cfg testConfig
	assert.NoError(t, Load(&cfg, WithFile(path, true), WithEnvironment(map[string]string{})))
	assert.Error(t, Load(&cfg, WithFile(path, false), WithEnvironment(map[string]string{})))
}

func TestLoad_Validation(t *testing.T) {
	env := map[string]string{"OPENSTATUS_LOG_LEVEL": "verbose"}

	var cfg testConfig
	err := Load(&cfg, WithPrefix(DefaultPrefix), WithEnvironment(env))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)

	assert.NoError(t, Load(&cfg, WithPrefix(DefaultPrefix), WithEnvironment(env), WithoutValidation()))
	assert.Equal(t, "verbose", cfg.LogLevel)
}

func TestLoad_NilTarget(t *testing.T) {
	assert.Error(t, Load(nil))
}

func TestEnviron(t *testing.T) {
	t.Setenv("OPENSTATUS_TEST_ENVIRON", "yes")
	t.Setenv("OTHER_TEST_ENVIRON", "no")

	got := Environ(DefaultPrefix)
	assert.Equal(t, "yes", got["OPENSTATUS_TEST_ENVIRON"])
	_, ok := got["OTHER_TEST_ENVIRON"]
	assert.False(t, ok)
}
