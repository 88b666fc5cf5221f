// Package logging configures the process-wide slog logger for FleetDNS.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Level       string
	Structured  bool
	Format      string // "json" or "text", only used when Structured
	IncludePID  bool
	ExtraFields map[string]string
}

// Configure builds a slog.Logger from cfg, installs it as the default
// logger and returns it.
func Configure(cfg Config) *slog.Logger {
	return ConfigureWithWriter(cfg, os.Stderr)
}

// ConfigureWithWriter is Configure with an explicit output writer.
// Tests use this to capture log output.
func ConfigureWithWriter(cfg Config, out io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)

	attrs := make([]slog.Attr, 0, len(cfg.ExtraFields)+1)
	for k, v := range cfg.ExtraFields {
		attrs = append(attrs, slog.String(k, v))
	}
	if cfg.IncludePID {
		attrs = append(attrs, slog.Int("pid", os.Getpid()))
	}

	var handler slog.Handler
	if cfg.Structured && strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	}

	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
