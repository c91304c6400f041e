package logger

import (
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger is the minimal leveled interface used across the application.
// Exposed as an interface so implementations can be swapped in tests.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Log is the process-wide logger. It defaults to info level so packages can
// log before Init runs.
var Log Logger = New("info")

// Init replaces the global logger with one at the given level.
func Init(level string) {
	Log = New(level)
}

// New builds a gookit/slog backed logger for the given level name.
// Unknown or empty names fall back to info.
func New(level string) Logger {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "" {
		name = "info"
	}
	logLevel := slog.LevelByName(name)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	return slog.NewWithHandlers(handler.NewConsoleHandler(levels))
}
