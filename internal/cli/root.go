// Package cli implements the openstatus command-line client.
//
// Overview:
//   - Responsibility: Parse flags and configuration, build one SDK client, render results
//   - Key Types: App holding per-invocation state, Config bound from OPENSTATUS_* and a YAML file
//   - Concurrency Model: Single-threaded CLI execution
//   - Error Semantics: Commands return errors; Execute formats them with hints and maps them to exit codes
//
// Usage:
//
//	openstatus health
//	openstatus monitors list -o json
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	openstatus "github.com/openstatushq/openstatus-go"
	"github.com/openstatushq/openstatus-go/configx"
	"github.com/openstatushq/openstatus-go/core/errors"
	"github.com/openstatushq/openstatus-go/core/identity"
	"github.com/openstatushq/openstatus-go/core/log"
	"github.com/openstatushq/openstatus-go/internal/version"
	"github.com/openstatushq/openstatus-go/logx"
	"github.com/openstatushq/openstatus-go/obsx"
)

const (
	serviceName  = "openstatus-cli"
	flushTimeout = 5 * time.Second
)

// Config is the CLI configuration. Environment variables carry the
// OPENSTATUS_ prefix; the YAML file uses the yaml keys.
type Config struct {
	configx.BaseConfig `yaml:",inline"`

	Output      string        `env:"OUTPUT" envDefault:"table" yaml:"output" validate:"oneof=table json yaml"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"30s" yaml:"timeout" validate:"gte=0"`
	HTTPVersion string        `env:"HTTP_VERSION" envDefault:"2" yaml:"http_version" validate:"oneof=2 1.1"`

	// OTLPEndpoint exports spans and metrics of every call to a collector.
	OTLPEndpoint string `env:"OTLP_ENDPOINT" yaml:"otlp_endpoint" validate:"omitempty,url"`
}

// flagValues holds the raw persistent flags. They override Config only when
// set on the command line.
type flagValues struct {
	configFile string
	apiKey     string
	apiURL     string
	output     string
	logLevel   string
	timeout    time.Duration
	http1      bool
	verbose    bool
	metrics    bool
	otlp       string
}

// App is the state shared by the commands of one invocation.
type App struct {
	flags   flagValues
	cfg     Config
	logger  log.Logger
	client  *openstatus.Client
	metrics *obsx.Provider
	tracer  *sdktrace.TracerProvider
	printer *printer
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&App{})
}

func newRootCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "openstatus",
		Short: "Command-line client for the OpenStatus API",
		Long: `Command-line client for the OpenStatus API.

Most commands need an API key, read from OPENSTATUS_API_KEY, the config file
or --api-key. The health command works without one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return app.teardown(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&app.flags.configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/openstatus/config.yaml)")
	f.StringVar(&app.flags.apiKey, "api-key", "", "API key (overrides OPENSTATUS_API_KEY)")
	f.StringVar(&app.flags.apiURL, "api-url", "", "API base URL (overrides OPENSTATUS_API_URL)")
	f.StringVarP(&app.flags.output, "output", "o", "", "output format: table, json or yaml")
	f.StringVar(&app.flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	f.DurationVar(&app.flags.timeout, "timeout", 0, "request timeout, 0 disables")
	f.BoolVar(&app.flags.http1, "http1", false, "use HTTP/1.1 instead of HTTP/2")
	f.BoolVarP(&app.flags.verbose, "verbose", "v", false, "log every RPC to stderr")
	f.BoolVar(&app.flags.metrics, "metrics", false, "print client metrics to stderr on exit")
	f.StringVar(&app.flags.otlp, "otlp-endpoint", "", "OTLP/gRPC collector URL for traces and metrics")

	cmd.Version = version.GetVersionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddCommand(
		newVersionCommand(),
		newHealthCommand(app),
		newMonitorsCommand(app),
		newNotificationsCommand(app),
		newPagesCommand(app),
		newReportsCommand(app),
		newMaintenancesCommand(app),
	)

	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := &App{}
	cmd := newRootCommand(app)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	ran, err := cmd.ExecuteContextC(ctx)
	app.close(ctx)
	if err != nil {
		err = errors.Wrap("", operation(cmd, ran), err)
		fmt.Fprintln(stderr, formatError(err))
		return exitCode(err)
	}
	return 0
}

// operation names the command that ran, without the program name.
func operation(root, ran *cobra.Command) string {
	if ran == nil || ran == root {
		return ""
	}
	return strings.TrimPrefix(ran.CommandPath(), root.Name()+" ")
}

func (a *App) setup(cmd *cobra.Command) error {
	if err := a.loadConfig(cmd); err != nil {
		return err
	}

	level, err := logx.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logx.ParseFormat(a.cfg.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logx.New(
		logx.WithFormat(format),
		logx.WithLevel(level),
		logx.WithWriter(cmd.ErrOrStderr()),
	)

	opts := []openstatus.Option{
		openstatus.WithBaseURL(a.cfg.APIURL),
		openstatus.WithHTTPVersion(a.cfg.HTTPVersion),
		openstatus.WithTimeout(a.cfg.Timeout),
		openstatus.WithRequestID(),
	}
	if a.cfg.APIKey != "" {
		opts = append(opts, openstatus.WithAPIKey(a.cfg.APIKey))
	}
	// Per-call logs are noise unless asked for.
	if a.flags.verbose || level <= slog.LevelDebug {
		opts = append(opts, openstatus.WithLogger(a.logger))
	}

	if a.flags.metrics || a.cfg.OTLPEndpoint != "" {
		a.metrics, err = obsx.NewProvider(cmd.Context(), obsx.Options{
			ServiceName:    serviceName,
			ServiceVersion: version.Version,
			OTLPEndpoint:   a.cfg.OTLPEndpoint,
		})
		if err != nil {
			return fmt.Errorf("init metrics: %w", err)
		}
		if err := a.metrics.EnableRuntimeMetrics(cmd.Context()); err != nil {
			return fmt.Errorf("init runtime metrics: %w", err)
		}
		opts = append(opts, openstatus.WithMeterProvider(a.metrics.MeterProvider()))
	}
	if a.cfg.OTLPEndpoint != "" {
		a.tracer, err = obsx.NewTracerProvider(cmd.Context(), obsx.TracingOptions{
			ServiceName:    serviceName,
			ServiceVersion: version.Version,
			Endpoint:       a.cfg.OTLPEndpoint,
		})
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		opts = append(opts, openstatus.WithTracerProvider(a.tracer))
	}

	a.client = openstatus.NewClient(opts...)
	a.printer = newPrinter(cmd.OutOrStdout(), a.cfg.Output)
	cmd.SetContext(identity.WithMeta(cmd.Context(), &identity.RequestMeta{
		UserAgent: serviceName + "/" + version.Version,
	}))
	return nil
}

func (a *App) teardown(cmd *cobra.Command) error {
	if a.metrics == nil || !a.flags.metrics {
		return nil
	}
	return a.metrics.WriteText(cmd.ErrOrStderr())
}

// close flushes exporters, whether or not the command succeeded.
func (a *App) close(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
	defer cancel()
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			a.logger.Warn("flush traces failed", "error", err.Error())
		}
	}
	if a.metrics != nil {
		if err := a.metrics.Shutdown(ctx); err != nil {
			a.logger.Warn("flush metrics failed", "error", err.Error())
		}
	}
}

// loadConfig reads envDefault tags, the YAML file, the environment and the
// command line, in increasing precedence.
func (a *App) loadConfig(cmd *cobra.Command) error {
	path, optional := a.flags.configFile, false
	if path == "" {
		path, optional = defaultConfigPath(), true
	}

	var cfg Config
	if err := configx.Load(&cfg,
		configx.WithPrefix(configx.DefaultPrefix),
		configx.WithFile(path, optional),
		configx.WithoutValidation(),
	); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("api-key") {
		cfg.APIKey = a.flags.apiKey
	}
	if flags.Changed("api-url") {
		cfg.APIURL = a.flags.apiURL
	}
	if flags.Changed("output") {
		cfg.Output = a.flags.output
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if flags.Changed("otlp-endpoint") {
		cfg.OTLPEndpoint = a.flags.otlp
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.flags.timeout
	}
	if a.flags.http1 {
		cfg.HTTPVersion = openstatus.HTTPVersion1
	}
	if a.flags.verbose {
		cfg.LogLevel = "debug"
	}

	if err := configx.ValidateStruct(nil, &cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg
	return nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "openstatus", "config.yaml")
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersionInfo())
			return err
		},
	}
}
