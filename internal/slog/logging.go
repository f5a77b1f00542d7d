// Package slog configures the log/slog loggers used by udpftp.
//
// Log levels are read from the UDPFTP_LOG_LEVEL environment variable.
// Logging is disabled if the variable is not set.
package slog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel is the environment variable holding the log configuration.
const EnvLogLevel = "UDPFTP_LOG_LEVEL"

// LogLevelNone is a log level that disables all logging.
const LogLevelNone slog.Level = slog.LevelError + 1

// ComponentKey is the slog attribute key used to identify the component.
const ComponentKey = "component"

// The components that log.
const (
	ComponentHandshake = "handshake"
	ComponentTransfer  = "transfer"
	ComponentTransport = "transport"
	ComponentServer    = "server"
	ComponentClient    = "client"
)

type logLevels struct {
	Level      slog.Level            // top-level log level
	Components map[string]slog.Level // nil if no component-specific levels
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "none":
		return LogLevelNone, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", s)
	}
}

// parseLogConfig parses a log configuration.
//
// Valid formats:
//   - "info"                         - top-level only
//   - "debug,transfer=info"          - top-level + component
//   - "transfer=debug,server=error"  - components only (no top-level)
func parseLogConfig(config string) (logLevels, error) {
	levels := logLevels{Level: LogLevelNone}
	for part := range strings.SplitSeq(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		component, levelStr, isComponent := strings.Cut(part, "=")
		if !isComponent {
			level, err := parseLogLevel(part)
			if err != nil {
				return logLevels{}, err
			}
			levels.Level = level
			continue
		}
		component = strings.TrimSpace(component)
		level, err := parseLogLevel(strings.TrimSpace(levelStr))
		if err != nil {
			return logLevels{}, fmt.Errorf("component %s: %w", component, err)
		}
		if levels.Components == nil {
			levels.Components = make(map[string]slog.Level)
		}
		levels.Components[component] = level
	}
	return levels, nil
}

type levelFilterHandler struct {
	Component string // component attribute value for this handler, empty for top-level

	slog.Handler
	Levels logLevels
}

var _ slog.Handler = &levelFilterHandler{}

func (h *levelFilterHandler) Enabled(_ context.Context, level slog.Level) bool {
	if minLevel, ok := h.Levels.Components[h.Component]; ok {
		return level >= minLevel
	}
	return level >= h.Levels.Level
}

func (h *levelFilterHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	component := h.Component
	for _, attr := range attrs {
		if attr.Key == ComponentKey {
			component = attr.Value.String()
			break
		}
	}
	return &levelFilterHandler{
		Handler:   h.Handler.WithAttrs(attrs),
		Levels:    h.Levels,
		Component: component,
	}
}

func (h *levelFilterHandler) WithGroup(name string) slog.Handler {
	return &levelFilterHandler{
		Handler:   h.Handler.WithGroup(name),
		Levels:    h.Levels,
		Component: h.Component,
	}
}

// NewLogger creates a logger writing to w, configured by UDPFTP_LOG_LEVEL.
// An invalid configuration is reported on stderr, and logging is disabled.
func NewLogger(w io.Writer) *slog.Logger {
	logger, err := NewLoggerWithConfig(w, os.Getenv(EnvLogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse %s: %v\n", EnvLogLevel, err)
		logger, _ = NewLoggerWithConfig(w, "")
	}
	return logger
}

// NewLoggerWithConfig creates a logger writing to w, using the level configuration
// format of UDPFTP_LOG_LEVEL.
func NewLoggerWithConfig(w io.Writer, config string) (*slog.Logger, error) {
	levels, err := parseLogConfig(config)
	if err != nil {
		return nil, err
	}
	return slog.New(&levelFilterHandler{
		Handler: slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug, // filtering is done by the levelFilterHandler
		}),
		Levels: levels,
	}), nil
}

// DefaultLogger writes to stderr.
var DefaultLogger = NewLogger(os.Stderr)
