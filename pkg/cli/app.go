package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mchmarny/spamdetector/pkg/classify"
	"github.com/mchmarny/spamdetector/pkg/config"
	"github.com/mchmarny/spamdetector/pkg/detector"
	"github.com/mchmarny/spamdetector/pkg/logging"
	urfave "github.com/urfave/cli/v2"
)

const (
	appName      = "spamdetector"
	appConfigKey = "app-config"
	argCount     = 3

	envPrefix = "SPAMDETECTOR_"

	debugFlagName    = "debug"
	configFlagName   = "config"
	formatFlagName   = "format"
	logLevelFlagName = "log-level"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""
)

// Execute creates and runs the CLI application and exits with its code.
func Execute() {
	os.Exit(Run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// Run executes the application with args (including the program name) and
// returns the process exit code. On failure exactly one diagnostic line is
// written to stderr and nothing to stdout.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	err := app.RunContext(ctx, args)
	if err == nil {
		return ExitOK
	}

	code, msg := exitFor(err)
	if msg != "" {
		fmt.Fprintln(stderr, msg)
	}
	return code
}

type appConfig struct {
	Format   classify.Format
	LogLevel string
}

func getConfig(c *urfave.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

func newApp(stdout, stderr io.Writer) *urfave.App {
	return &urfave.App{
		Name:            appName,
		Version:         fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:        time.Now(),
		HideHelpCommand: true,
		Usage:           "Classify a text as spam using a word/score database",
		ArgsUsage:       "<database path> <text path> <threshold>",
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags:           newFlags(),
		Action:          cmdClassify,
		Before: func(c *urfave.Context) error {
			cfg, err := config.Load(c.String(configFlagName))
			if err != nil {
				return usageError(fmt.Errorf("loading config: %w", err))
			}

			level := cfg.LogLevel
			if c.IsSet(logLevelFlagName) {
				level = c.String(logLevelFlagName)
			}
			if c.Bool(debugFlagName) {
				level = "debug"
			}
			logging.SetDefaultCLILogger(stderr, level)

			f := cfg.Format
			if c.IsSet(formatFlagName) {
				f = c.String(formatFlagName)
			}
			format, err := classify.ParseFormat(f)
			if err != nil {
				return usageError(err)
			}

			c.App.Metadata[appConfigKey] = &appConfig{
				Format:   format,
				LogLevel: level,
			}
			slog.Debug("config resolved", "format", format, "log_level", level)
			return nil
		},
		OnUsageError: func(_ *urfave.Context, err error, _ bool) error {
			return usageError(err)
		},
		// Run owns the exit code and stderr.
		ExitErrHandler: func(_ *urfave.Context, _ error) {},
	}
}

// newFlags builds the global flags for one app. Flags resolved from the
// environment store the value on the flag itself, so they are never shared.
func newFlags() []urfave.Flag {
	return []urfave.Flag{
		&urfave.BoolFlag{
			Name:  debugFlagName,
			Usage: "Prints verbose logs (optional, default: false)",
		},
		&urfave.StringFlag{
			Name:    configFlagName,
			Usage:   "Path to a yaml config file (optional)",
			EnvVars: []string{envPrefix + "CONFIG"},
		},
		&urfave.StringFlag{
			Name:    formatFlagName,
			Usage:   "Output format [text, json, yaml]",
			EnvVars: []string{envPrefix + "FORMAT"},
		},
		&urfave.StringFlag{
			Name:    logLevelFlagName,
			Usage:   "Log level [debug, info, warn, error]",
			EnvVars: []string{envPrefix + "LOG_LEVEL"},
		},
	}
}

func cmdClassify(c *urfave.Context) error {
	if c.NArg() != argCount {
		return usageError(errors.New(usageText))
	}

	in := detector.Input{
		DatabasePath: c.Args().Get(0),
		TextPath:     c.Args().Get(1),
		Threshold:    c.Args().Get(2),
	}
	slog.Debug("classifying", "database", in.DatabasePath, "text", in.TextPath, "threshold", in.Threshold)

	report, err := detector.Run(c.Context, in)
	if err != nil {
		return classifyError(in, err)
	}

	cfg := getConfig(c)
	if err := classify.Render(c.App.Writer, report, cfg.Format); err != nil {
		return fmt.Errorf("error rendering report: %w", err)
	}

	return nil
}
