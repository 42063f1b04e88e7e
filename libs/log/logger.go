package log

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
)

// Logger is what the node client and the CLI log through. Keyvals are
// alternating keys and values, e.g. "action", "account_balance".
type Logger interface {
	Error(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Debug(msg string, keyvals ...any)

	// With returns a logger adding keyvals to every line, as Invoke does
	// with the action and trace id of a call.
	With(keyvals ...any) Logger

	// Impl returns the *slog.Logger behind the logger, or nil.
	Impl() any
}

type slogLogger struct {
	srcLogger *slog.Logger
}

var _ Logger = (*slogLogger)(nil)

// NewLogger returns a colored text logger writing to w, which the CLI points
// at stderr so results on stdout stay parseable. w must be safe for
// concurrent use if the logger is.
func NewLogger(w io.Writer) Logger {
	return NewLoggerWithColor(w, true)
}

// NewLoggerWithColor is NewLogger with the tint colors optional, for output
// that is not a terminal.
func NewLoggerWithColor(w io.Writer, color bool) Logger {
	return &slogLogger{slog.New(tint.NewHandler(w, &tint.Options{
		Level:   slog.LevelDebug,
		NoColor: !color,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if err, ok := a.Value.Any().(error); ok {
				aErr := tint.Err(err)
				aErr.Key = a.Key
				return aErr
			}
			return a
		},
	}))}
}

func (l *slogLogger) Error(msg string, keyvals ...any) {
	l.srcLogger.Error(msg, keyvals...)
}

func (l *slogLogger) Info(msg string, keyvals ...any) {
	l.srcLogger.Info(msg, keyvals...)
}

func (l *slogLogger) Warn(msg string, keyvals ...any) {
	l.srcLogger.Warn(msg, keyvals...)
}

func (l *slogLogger) Debug(msg string, keyvals ...any) {
	l.srcLogger.Debug(msg, keyvals...)
}

func (l *slogLogger) With(keyvals ...any) Logger {
	return &slogLogger{l.srcLogger.With(keyvals...)}
}

// Impl returns the slog.Logger.
func (l *slogLogger) Impl() any {
	return l.srcLogger
}

// NewJSONLogger returns a logger writing one JSON object per line to w, used
// for log_format = "json".
func NewJSONLogger(w io.Writer) Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return &slogLogger{logger}
}

// NewJSONLoggerNoTS is NewJSONLogger without timestamps, for tests.
func NewJSONLoggerNoTS(w io.Writer) Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	}))
	return &slogLogger{logger}
}

type nopLogger struct{}

var _ Logger = (*nopLogger)(nil)

// NewNopLogger returns a logger that doesn't do anything. It is the default
// logger of the RPC client.
func NewNopLogger() Logger { return &nopLogger{} }

func (nopLogger) Error(string, ...any)  {}
func (nopLogger) Warn(string, ...any)   {}
func (nopLogger) Info(string, ...any)   {}
func (nopLogger) Debug(string, ...any)  {}
func (l *nopLogger) With(...any) Logger { return l }
func (nopLogger) Impl() any             { return nil }
