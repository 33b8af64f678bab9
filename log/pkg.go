package log

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// DefaultContextProvider supplies the context for logging calls that do not
// take one.
var DefaultContextProvider = context.TODO

var (
	defaultMu  sync.RWMutex
	defaultLog = Make(os.Stderr)
)

func std() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultLog
}

// Config reconfigures the package logger. Options not given keep their
// current values.
func Config(opts ...Option) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultLog = defaultLog.Wrap(opts...)
}

// Default returns the package logger.
func Default() Logger { return std() }

// With returns the package logger with attrs added to every record.
func With(attrs ...slog.Attr) Logger { return std().With(attrs...) }

// TraceContext logs at [LevelTrace] through the package logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	std().log(ctx, LevelTrace, msg, attrs...)
}

// DebugContext logs at [LevelDebug] through the package logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	std().log(ctx, LevelDebug, msg, attrs...)
}

// Debug logs at [LevelDebug] through the package logger.
func Debug(msg string, attrs ...slog.Attr) {
	std().log(DefaultContextProvider(), LevelDebug, msg, attrs...)
}

// InfoContext logs at [LevelInfo] through the package logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	std().log(ctx, LevelInfo, msg, attrs...)
}

// Info logs at [LevelInfo] through the package logger.
func Info(msg string, attrs ...slog.Attr) {
	std().log(DefaultContextProvider(), LevelInfo, msg, attrs...)
}

// WarnContext logs at [LevelWarn] through the package logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	std().log(ctx, LevelWarn, msg, attrs...)
}

// Warn logs at [LevelWarn] through the package logger.
func Warn(msg string, attrs ...slog.Attr) {
	std().log(DefaultContextProvider(), LevelWarn, msg, attrs...)
}

// ErrorContext logs at [LevelError] through the package logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	std().log(ctx, LevelError, msg, attrs...)
}

// Error logs at [LevelError] through the package logger.
func Error(msg string, attrs ...slog.Attr) {
	std().log(DefaultContextProvider(), LevelError, msg, attrs...)
}
