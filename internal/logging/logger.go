package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Config selects the handler format, minimum level, and common fields.
type Config struct {
	Format  string
	Level   string
	Service string
	Version string
}

// NewLogger returns a structured logger with sane defaults: text output at
// info level unless the config says otherwise.
func NewLogger(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	var logger *slog.Logger
	if strings.EqualFold(cfg.Format, "json") {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	for _, attr := range WithCommon(nil, cfg.Service, cfg.Version) {
		logger = logger.With(attr)
	}
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
