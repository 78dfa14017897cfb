package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs a JSON stdout logger as the slog default. Extra sinks, such
// as a PGHandler, receive every record they are enabled for.
func Setup(level string, sinks ...slog.Handler) {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	if len(sinks) > 0 {
		handler = NewMultiHandler(append([]slog.Handler{handler}, sinks...)...)
	}
	slog.SetDefault(slog.New(handler))
}

// ParseLevel maps debug/info/warn/error to a level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
