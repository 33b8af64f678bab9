// Package log is a small structured logging layer over [log/slog].
//
// A [Logger] is created with [Make] and configured with functional options
// applied at creation time:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"))
//
//	logger.Info("parsed", slog.Int("sections", 3))
//
// [Logger.Wrap] derives a logger with some options overridden and
// [Logger.With] derives one that carries extra attributes.
//
// The zero Logger discards everything, so library code can accept a Logger
// option and log unconditionally.
//
// # Levels
//
// [LevelTrace], [LevelDebug], [LevelInfo], [LevelWarn] and [LevelError].
// Trace sits below slog's debug level and is used for per-line parser
// diagnostics.
//
// # Formats
//
// [FormatJSON] (default) and [FormatText]. With [WithPretty] enabled, JSON
// records are indented and text records are colorized with lipgloss.
//
// # Package logger
//
// The package-level functions ([Info], [DebugContext], ...) write through a
// default logger on standard error that is reconfigured with [Config].
package log
