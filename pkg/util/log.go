package util

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type LogOptions struct {
	// debug, info, warn or error. VEB_LOG_LEVEL when empty, info by default.
	LogLevel string

	// text or json. VEB_LOG_FMT when empty, text by default.
	LogFormat string

	// stderr when nil
	Out io.Writer
}

// SetupSlog builds a logger from options and env vars and installs it as
// the slog default.
func SetupSlog(options LogOptions) (*slog.Logger, error) {
	var hopts slog.HandlerOptions
	if options.LogLevel == "" {
		options.LogLevel = os.Getenv("VEB_LOG_LEVEL")
	}
	switch strings.ToLower(options.LogLevel) {
	case "", "info":
		hopts.Level = slog.LevelInfo
	case "debug":
		hopts.Level = slog.LevelDebug
	case "warn":
		hopts.Level = slog.LevelWarn
	case "error":
		hopts.Level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level: %#v", options.LogLevel)
	}

	if options.LogFormat == "" {
		options.LogFormat = os.Getenv("VEB_LOG_FMT")
	}
	out := options.Out
	if out == nil {
		out = os.Stderr
	}

	var handler slog.Handler
	switch strings.ToLower(options.LogFormat) {
	case "", "text":
		handler = slog.NewTextHandler(out, &hopts)
	case "json":
		handler = slog.NewJSONHandler(out, &hopts)
	default:
		return nil, fmt.Errorf("invalid log format: %#v", options.LogFormat)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}
