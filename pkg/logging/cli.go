package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	errorColor = newColor(color.FgRed)
	warnColor  = newColor(color.FgYellow)
	infoColor  = newColor(color.FgGreen)
)

// CLIHandler is a custom slog.Handler for CLI output.
type CLIHandler struct {
	writer io.Writer
	level  slog.Level
	prefix string
	color  bool
}

// NewCLIHandler writes records at or above level to w. Colors are enabled
// only when w is a terminal.
func NewCLIHandler(w io.Writer, level slog.Level) *CLIHandler {
	return &CLIHandler{
		writer: w,
		level:  level,
		color:  isTerminal(w),
	}
}

// WithColor returns a copy of h with coloring forced on or off.
func (h *CLIHandler) WithColor(enabled bool) *CLIHandler {
	c := *h
	c.color = enabled
	return &c
}

func (h *CLIHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *CLIHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	if h.prefix != "" {
		msg = "[" + h.prefix + "] " + msg
	}

	if r.NumAttrs() > 0 {
		var attrs []string
		r.Attrs(func(a slog.Attr) bool {
			attrs = append(attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
			return true
		})
		if len(attrs) > 0 {
			msg = msg + ": " + strings.Join(attrs, " ")
		}
	}

	if h.color {
		switch {
		case r.Level >= slog.LevelError:
			msg = errorColor.Sprint(msg)
		case r.Level >= slog.LevelWarn:
			msg = warnColor.Sprint(msg)
		default:
			msg = infoColor.Sprint(msg)
		}
	}

	_, err := fmt.Fprintln(h.writer, msg)
	return err
}

func (h *CLIHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *CLIHandler) WithGroup(name string) slog.Handler {
	return &CLIHandler{
		writer: h.writer,
		level:  h.level,
		prefix: name,
		color:  h.color,
	}
}

func NewCLILogger(w io.Writer, level string) *slog.Logger {
	lev := ParseLogLevel(level)
	handler := NewCLIHandler(w, lev)
	return slog.New(handler)
}

// SetDefaultCLILogger installs a CLI logger writing to w as the slog default.
func SetDefaultCLILogger(w io.Writer, level string) {
	slog.SetDefault(NewCLILogger(w, level))
}

// ParseLogLevel converts a string log level to slog.Level.
// Defaults to slog.LevelInfo for unrecognized strings.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newColor(a color.Attribute) *color.Color {
	c := color.New(a)
	c.EnableColor()
	return c
}
