package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/udpftp/udpftp"

	"gopkg.in/yaml.v3"
)

const defaultPort = "2212"

type transferConfig struct {
	BlockSize   int           `yaml:"block_size"`
	WindowSize  int           `yaml:"window_size"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxAttempts int           `yaml:"max_attempts"`
	// Reliability is the probability that a datagram is delivered.
	// Unlike udpftp.Config, 0 means that every datagram is dropped.
	Reliability float64 `yaml:"reliability"`
	MaxSendRate float64 `yaml:"max_send_rate"`
}

type serverConfig struct {
	Addr           string `yaml:"addr"`
	Dir            string `yaml:"dir"`
	MaxConnections int    `yaml:"max_connections"`
	MetricsAddr    string `yaml:"metrics_addr"`
	QlogDir        string `yaml:"qlog_dir"`
}

type clientConfig struct {
	// Port is used by open if the address doesn't contain a port.
	Port        string `yaml:"port"`
	DownloadDir string `yaml:"download_dir"`
}

type config struct {
	Transfer transferConfig `yaml:"transfer"`
	Server   serverConfig   `yaml:"server"`
	Client   clientConfig   `yaml:"client"`
	LogLevel string         `yaml:"log_level"`
}

func defaultConfig() *config {
	return &config{
		Transfer: transferConfig{
			BlockSize:   1024,
			WindowSize:  5,
			Timeout:     3 * time.Second,
			MaxAttempts: 5,
			Reliability: 0.95,
		},
		Server: serverConfig{
			Addr: "127.0.0.1:" + defaultPort,
			Dir:  "fichiers_serveur",
		},
		Client: clientConfig{
			Port:        defaultPort,
			DownloadDir: ".",
		},
	}
}

// defaultConfigPath returns ~/.udpftp/config.yaml.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".udpftp", "config.yaml")
	}
	return filepath.Join(home, ".udpftp", "config.yaml")
}

// loadConfig reads the configuration from a YAML file.
// Missing values keep their defaults. A missing file is not an error.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func (c *transferConfig) udpftpConfig() *udpftp.Config {
	reliability := c.Reliability
	if reliability <= 0 {
		reliability = -1 // drop everything
	}
	return &udpftp.Config{
		BlockSize:   c.BlockSize,
		WindowSize:  c.WindowSize,
		Timeout:     c.Timeout,
		MaxAttempts: c.MaxAttempts,
		Reliability: reliability,
		MaxSendRate: c.MaxSendRate,
	}
}
