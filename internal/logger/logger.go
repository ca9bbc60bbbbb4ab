// Package logger configures the process-wide structured logger. TUI
// sessions log to a file under the XDG state directory so log lines do
// not corrupt the terminal; plain CLI invocations log to stderr.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

var defaultLogger *slog.Logger

// logFilePath returns the log file location under XDG_STATE_HOME,
// falling back to ~/.local/state.
func logFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, "datagrid", "datagrid.log"), nil
}

// Init configures the default logger. It must be called once at
// startup, before any log calls. In TUI mode logging goes to the state
// file; if the file cannot be opened, logging falls back to stderr.
func Init(tui bool) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	if tui {
		path, err := logFilePath()
		if err == nil {
			if err = os.MkdirAll(filepath.Dir(path), 0o750); err == nil {
				var f *os.File
				f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
				if err == nil {
					defaultLogger = slog.New(slog.NewJSONHandler(f, opts))
					return
				}
			}
		}
		fmt.Fprintf(os.Stderr, "file logging unavailable (%v), logging to stderr\n", err)
	}

	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// SetLogger replaces the default logger, mainly for tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

func get() *slog.Logger {
	if defaultLogger == nil {
		Init(false)
	}
	return defaultLogger
}

// Info logs an informational message with key-value attributes.
func Info(msg string, args ...any) {
	get().Info(msg, args...)
}

// Warn logs a warning with key-value attributes.
func Warn(msg string, args ...any) {
	get().Warn(msg, args...)
}

// Error logs an error with key-value attributes.
func Error(msg string, args ...any) {
	get().Error(msg, args...)
}

// Debug logs a debug message with key-value attributes.
func Debug(msg string, args ...any) {
	get().Debug(msg, args...)
}
