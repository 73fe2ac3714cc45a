package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/logging"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/safe"
	"github.com/sethvargo/go-githubactions"
	"github.com/urfave/cli/v3"
)

const (
	LogFormatActions = "actions"
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Logger holds logging configuration
type Logger struct {
	level  string
	format string
	output string
	debug  string
}

func (x *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [debug|info|warn|error]",
			Category:    "Logging",
			Value:       "info",
			Destination: &x.level,
			Sources:     cli.EnvVars("SLACK_DEPLOY_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [actions|console|json]",
			Category:    "Logging",
			Value:       LogFormatActions,
			Destination: &x.format,
			Sources:     cli.EnvVars("SLACK_DEPLOY_LOG_FORMAT"),
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [stdout|stderr|<file path>]",
			Category:    "Logging",
			Value:       "stdout",
			Destination: &x.output,
			Sources:     cli.EnvVars("SLACK_DEPLOY_LOG_OUTPUT"),
		},
		&cli.StringFlag{
			Name:        "debug",
			Usage:       "Enable debug logging and stack traces when set to 1",
			Category:    "Logging",
			Destination: &x.debug,
			Sources:     cli.EnvVars("RUNNER_DEBUG"),
		},
	}
}

func (x Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", x.level),
		slog.String("format", x.format),
		slog.String("output", x.output),
		slog.Bool("debug", x.Debug()),
	)
}

// Debug reports whether the runner requested debug output
func (x Logger) Debug() bool {
	return x.debug == "1" || strings.EqualFold(x.debug, "true")
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Configure replaces the default logger and returns a closer for the output
func (x *Logger) Configure() (func(), error) {
	level, ok := logLevels[strings.ToLower(x.level)]
	if !ok {
		return nil, goerr.Wrap(ErrInvalidLogLevel, "unsupported log level", goerr.V(LevelKey, x.level))
	}
	if x.Debug() {
		level = slog.LevelDebug
	}

	var w io.Writer
	closer := func() {}
	switch x.output {
	case "stdout", "-", "":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		// #nosec G304 -- path comes from CLI flag
		f, err := os.OpenFile(x.output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open log file", goerr.V(OutputKey, x.output))
		}
		w = f
		closer = func() { safe.Close(context.Background(), f) }
	}

	handler, err := newHandler(x.format, w, level)
	if err != nil {
		closer()
		return nil, err
	}

	logging.SetDefault(slog.New(handler))
	return closer, nil
}

func newHandler(format string, w io.Writer, level slog.Level) (slog.Handler, error) {
	filter := masq.New(
		masq.WithTag("secret"),
		masq.WithFieldName("Token"),
		masq.WithFieldPrefix("secret_"),
		masq.WithContain("xoxb-"),
		masq.WithContain("xoxp-"),
	)

	switch format {
	case LogFormatActions:
		action := githubactions.New(githubactions.WithWriter(w))
		return logging.NewActionsHandler(action, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: filter,
		}), nil

	case LogFormatConsole:
		return clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithReplaceAttr(filter),
			clog.WithSource(level == slog.LevelDebug),
			clog.WithColorMap(&clog.ColorMap{
				Level: map[slog.Level]*color.Color{
					slog.LevelDebug: color.New(color.FgGreen, color.Bold),
					slog.LevelInfo:  color.New(color.FgCyan, color.Bold),
					slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
					slog.LevelError: color.New(color.FgRed, color.Bold),
				},
				LevelDefault: color.New(color.FgBlue, color.Bold),
				Time:         color.New(color.FgWhite),
				Message:      color.New(color.FgHiWhite),
				AttrKey:      color.New(color.FgHiCyan),
				AttrValue:    color.New(color.FgHiWhite),
			}),
		), nil

	case LogFormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: filter,
		}), nil

	default:
		return nil, goerr.Wrap(ErrInvalidLogFormat, "unsupported log format", goerr.V(FormatKey, format))
	}
}
