package logging

import "log/slog"

// Nil-tolerant emit helpers. The tracker, poller and stores treat their
// logger as optional wiring; these drop the record instead of panicking
// when none was injected.

// Info emits an info record if a logger is wired.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Info(msg, args...)
}

// Warn emits a warning record if a logger is wired.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, args...)
}

// Error emits an error record if a logger is wired, appending the error
// value as a field when non-nil.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	logger.Error(msg, args...)
}
