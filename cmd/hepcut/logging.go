package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

var logLevelMap = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// initLogging installs the default slog logger. Logs go to stderr so
// command output on stdout stays machine-readable.
func initLogging(logLevel string, jsonFormat bool) error {
	level, ok := logLevelMap[strings.ToLower(logLevel)]
	if !ok {
		return fmt.Errorf("unknown log level %q (use debug, info, warn or error)", logLevel)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}
