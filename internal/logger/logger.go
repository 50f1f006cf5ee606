package logger

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger provides leveled, structured logging for the command-line tool
type Logger struct {
	*slog.Logger
	level *slog.LevelVar
}

var defaultLogger *Logger

func init() {
	defaultLogger = New(false, os.Stderr)
}

// New creates a logger writing slog text records to output. Debug records
// are only emitted when verbose is set.
func New(verbose bool, output io.Writer) *Logger {
	level := new(slog.LevelVar)
	l := &Logger{level: level}
	l.SetVerbose(verbose)

	handler := slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				a.Value = slog.StringValue(a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	})
	l.Logger = slog.New(handler)
	return l
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// Default returns the default logger instance
func Default() *Logger {
	return defaultLogger
}

// SetVerbose enables or disables debug records
func (l *Logger) SetVerbose(verbose bool) {
	if verbose {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}
}

// IsVerbose returns whether debug records are emitted
func (l *Logger) IsVerbose() bool {
	return l.level.Level() <= slog.LevelDebug
}

// With returns a logger that adds args to every record
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...), level: l.level}
}

// SetVerbose enables or disables debug records on the default logger
func SetVerbose(verbose bool) {
	defaultLogger.SetVerbose(verbose)
}

// IsVerbose returns whether the default logger emits debug records
func IsVerbose() bool {
	return defaultLogger.IsVerbose()
}

// Info logs using the default logger
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Debug logs using the default logger (only shown if verbose is enabled)
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Warn logs using the default logger
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs using the default logger
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}
