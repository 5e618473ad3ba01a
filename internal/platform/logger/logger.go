package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case Debug:
		return slog.LevelDebug
	case Warn:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Logger es la interfaz que usan handlers y main; los campos van como map
// para no atar a los llamadores a slog.
type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type slogLogger struct {
	l *slog.Logger
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Output: default os.Stdout.
	Output io.Writer
}

func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	hopts := &slog.HandlerOptions{Level: opts.Level.slog()}

	var h slog.Handler
	if opts.Format == FormatJSON {
		h = slog.NewJSONHandler(out, hopts)
	} else {
		h = slog.NewTextHandler(out, hopts)
	}

	l := slog.New(h)
	if app := strings.TrimSpace(opts.App); app != "" {
		l = l.With("app", app)
	}
	return &slogLogger{l: l}
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME=people-pets-api (opcional)
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

// Nop descarta todo; útil en tests.
func Nop() Logger {
	return New(Options{Level: Error, Output: io.Discard})
}

func (l *slogLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	return &slogLogger{l: l.l.With(attrs(fields)...)}
}

func (l *slogLogger) Debug(msg string, fields map[string]any) { l.log(slog.LevelDebug, msg, fields) }
func (l *slogLogger) Info(msg string, fields map[string]any)  { l.log(slog.LevelInfo, msg, fields) }
func (l *slogLogger) Warn(msg string, fields map[string]any)  { l.log(slog.LevelWarn, msg, fields) }
func (l *slogLogger) Error(msg string, fields map[string]any) { l.log(slog.LevelError, msg, fields) }

func (l *slogLogger) log(lvl slog.Level, msg string, fields map[string]any) {
	l.l.Log(context.Background(), lvl, msg, attrs(fields)...)
}

// attrs ordena las keys para salida estable (útil en tests/logs).
func attrs(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}
