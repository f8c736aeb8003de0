// Package log is a leveled logging wrapper around slog. Output goes to
// stderr unless redirected with SetOutput.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level  = new(slog.LevelVar)
	logger atomic.Pointer[slog.Logger]
)

func init() {
	level.Set(LevelInfo)
	SetOutput(os.Stderr)
}

// SetOutput redirects log output to w.
func SetOutput(w io.Writer) {
	logger.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return level.Level()
}

// ParseLevel parses a level name such as "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.TrimSpace(s)))
	return l, err
}

// Debug logs msg with key/value pairs at debug level.
func Debug(msg string, args ...any) {
	logger.Load().Debug(msg, args...)
}

// Info logs msg with key/value pairs at info level.
func Info(msg string, args ...any) {
	logger.Load().Info(msg, args...)
}

// Warn logs msg with key/value pairs at warn level.
func Warn(msg string, args ...any) {
	logger.Load().Warn(msg, args...)
}

// Error logs msg with key/value pairs at error level.
func Error(msg string, args ...any) {
	logger.Load().Error(msg, args...)
}
