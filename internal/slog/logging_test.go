package slog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	const (
		topInfo       = `level=INFO msg="top-level info"`
		topDebug      = `level=DEBUG msg="top-level debug"`
		topError      = `level=ERROR msg="top-level error"`
		transferInfo  = `level=INFO msg="transfer info" component=transfer`
		transferDebug = `level=DEBUG msg="transfer debug" component=transfer`
		transferError = `level=ERROR msg="transfer error" component=transfer`
		serverInfo    = `level=INFO msg="server info" component=server`
		serverDebug   = `level=DEBUG msg="server debug" component=server`
		serverError   = `level=ERROR msg="server error" component=server`
	)

	testCases := []struct {
		name     string
		env      string
		expected []string
	}{
		{
			name:     "no env set",
			env:      "",
			expected: nil,
		},
		{
			name:     "info level",
			env:      "info",
			expected: []string{topInfo, topError, transferInfo, transferError, serverInfo, serverError},
		},
		{
			name:     "debug level",
			env:      "debug",
			expected: []string{topInfo, topDebug, topError, transferInfo, transferDebug, transferError, serverInfo, serverDebug, serverError},
		},
		{
			name:     "top-level debug, transfer error only",
			env:      "debug,transfer=error",
			expected: []string{topInfo, topDebug, topError, transferError, serverInfo, serverDebug, serverError},
		},
		{
			name:     "no top-level, only components specified",
			env:      "transfer=info,server=debug",
			expected: []string{transferInfo, transferError, serverInfo, serverDebug, serverError},
		},
		{
			name:     "none disables all logging",
			env:      "none",
			expected: nil,
		},
		{
			name:     "invalid config disables logging",
			env:      "verbose",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvLogLevel, tc.env)
			b := &bytes.Buffer{}
			logger := NewLogger(b)

			logger.Info("top-level info")
			logger.Debug("top-level debug")
			logger.Error("top-level error")

			transferLogger := logger.With(ComponentKey, ComponentTransfer)
			transferLogger.Info("transfer info")
			transferLogger.Debug("transfer debug")
			transferLogger.Error("transfer error")

			serverLogger := logger.With(ComponentKey, ComponentServer)
			serverLogger.Info("server info")
			serverLogger.Debug("server debug")
			serverLogger.Error("server error")

			var suffixes []string
			if s := strings.TrimSuffix(b.String(), "\n"); s != "" {
				for line := range strings.SplitSeq(s, "\n") {
					// strip the "time=..." prefix
					require.Equal(t, "time=", line[:5])
					if idx := strings.Index(line, " "); idx != -1 {
						suffixes = append(suffixes, line[idx+1:])
					}
				}
			}
			require.Equal(t, tc.expected, suffixes)
		})
	}
}

func TestParseLogConfigErrors(t *testing.T) {
	_, err := parseLogConfig("foo")
	require.EqualError(t, err, "unknown log level: foo")
	_, err = parseLogConfig("info,transfer=loud")
	require.EqualError(t, err, "component transfer: unknown log level: loud")
}

func TestNewLoggerWithConfig(t *testing.T) {
	b := &bytes.Buffer{}
	logger, err := NewLoggerWithConfig(b, " warn , client = debug ")
	require.NoError(t, err)
	logger.Info("dropped")
	logger.Warn("kept")
	logger.With(ComponentKey, ComponentClient).Debug("client")
	require.Contains(t, b.String(), `msg=kept`)
	require.Contains(t, b.String(), `msg=client component=client`)
	require.NotContains(t, b.String(), "dropped")
}
