// Package logger provides a logging utility based on log/slog
//
// DEBUG logging can be enabled by setting the PATTERNS_DEBUG environment variable:
//   export PATTERNS_DEBUG=1
//
// By default, debug logging is disabled to reduce noise in normal operation.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

var (
	// Logger is the global logger instance
	Logger *slog.Logger

	level = new(slog.LevelVar)
)

func init() {
	if DebugEnabled(os.Getenv("PATTERNS_DEBUG")) {
		level.Set(slog.LevelDebug)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	Logger = slog.New(handler)

	// Replace the default slog logger too
	slog.SetDefault(Logger)
}

// DebugEnabled reports whether an environment value switches debug logging on.
// Empty, "0" and "false" (any case) leave it off.
func DebugEnabled(v string) bool {
	return v != "" && strings.ToLower(v) != "false" && v != "0"
}

// SetLevel changes the minimum level of the global logger.
// Unknown names fall back to info.
func SetLevel(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "warn", "warning":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	default:
		level.Set(slog.LevelInfo)
	}
}

// Level returns the current minimum level.
func Level() slog.Level {
	return level.Level()
}

// Debug logs a debug message if debug logging is enabled
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
