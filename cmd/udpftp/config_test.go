package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
transfer:
  window_size: 8
  timeout: 500ms
  reliability: 0.5
server:
  addr: 0.0.0.0:4000
  metrics_addr: localhost:9100
client:
  download_dir: /tmp/downloads
log_level: info,transfer=debug
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Transfer.WindowSize)
	require.Equal(t, 500*time.Millisecond, cfg.Transfer.Timeout)
	require.Equal(t, 0.5, cfg.Transfer.Reliability)
	require.Equal(t, "0.0.0.0:4000", cfg.Server.Addr)
	require.Equal(t, "localhost:9100", cfg.Server.MetricsAddr)
	require.Equal(t, "/tmp/downloads", cfg.Client.DownloadDir)
	require.Equal(t, "info,transfer=debug", cfg.LogLevel)
	// values not set in the file keep their defaults
	require.Equal(t, 1024, cfg.Transfer.BlockSize)
	require.Equal(t, 5, cfg.Transfer.MaxAttempts)
	require.Equal(t, "fichiers_serveur", cfg.Server.Dir)
	require.Equal(t, defaultPort, cfg.Client.Port)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "transfer: [1, 2"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing")
}

func TestTransferConfigReliability(t *testing.T) {
	c := defaultConfig().Transfer
	conf := c.udpftpConfig()
	require.Equal(t, 0.95, conf.Reliability)
	require.Equal(t, 1024, conf.BlockSize)
	require.Equal(t, 5, conf.WindowSize)
	require.Equal(t, 3*time.Second, conf.Timeout)
	require.Equal(t, 5, conf.MaxAttempts)

	c.Reliability = 0
	require.Negative(t, c.udpftpConfig().Reliability)
}
