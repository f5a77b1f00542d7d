package udpftp

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"

	"github.com/udpftp/udpftp/internal/protocol"
	"github.com/udpftp/udpftp/internal/slog"
)

// Clone clones a Config
func (c *Config) Clone() *Config {
	copy := *c
	return &copy
}

func validateConfig(config *Config) error {
	if config == nil {
		return nil
	}
	if config.BlockSize < 0 || config.BlockSize > protocol.MaxBlockSize {
		return fmt.Errorf("invalid value for Config.BlockSize: %d (must be at most %d, or 0 for the default)", config.BlockSize, protocol.MaxBlockSize)
	}
	if config.WindowSize < 0 || config.WindowSize > protocol.MaxWindowSize {
		return fmt.Errorf("invalid value for Config.WindowSize: %d (must be at most %d, or 0 for the default)", config.WindowSize, protocol.MaxWindowSize)
	}
	if config.MaxAttempts < 0 {
		return errors.New("invalid value for Config.MaxAttempts")
	}
	if config.Timeout < 0 || config.HandshakeTimeout < 0 || config.MaxIdleTimeout < 0 {
		return errors.New("invalid value for Config timeouts: must not be negative")
	}
	if math.IsNaN(config.Reliability) || config.Reliability > 1 {
		return fmt.Errorf("invalid value for Config.Reliability: %v", config.Reliability)
	}
	if math.IsNaN(config.MaxSendRate) || config.MaxSendRate < 0 {
		return fmt.Errorf("invalid value for Config.MaxSendRate: %v", config.MaxSendRate)
	}
	if config.MaxConnections < 0 {
		return errors.New("invalid value for Config.MaxConnections")
	}
	return nil
}

// populateConfig populates fields in the Config with their default values, if none are set.
// It may be called with nil.
func populateConfig(config *Config) *Config {
	if config == nil {
		config = &Config{}
	}
	blockSize := config.BlockSize
	if blockSize == 0 {
		blockSize = protocol.DefaultBlockSize
	}
	windowSize := config.WindowSize
	if windowSize == 0 {
		windowSize = protocol.DefaultWindowSize
	}
	timeout := protocol.DefaultTimeout
	if config.Timeout != 0 {
		timeout = config.Timeout
	}
	handshakeTimeout := timeout
	if config.HandshakeTimeout != 0 {
		handshakeTimeout = config.HandshakeTimeout
	}
	idleTimeout := protocol.DefaultIdleTimeout
	if config.MaxIdleTimeout != 0 {
		idleTimeout = config.MaxIdleTimeout
	}
	maxAttempts := config.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = protocol.DefaultMaxAttempts
	}
	reliability := config.Reliability
	if reliability == 0 {
		reliability = protocol.DefaultReliability
	} else if reliability < 0 {
		reliability = 0
	}
	random := config.Rand
	if random == nil {
		random = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.DefaultLogger
	}

	return &Config{
		BlockSize:        blockSize,
		WindowSize:       windowSize,
		Timeout:          timeout,
		HandshakeTimeout: handshakeTimeout,
		MaxIdleTimeout:   idleTimeout,
		MaxAttempts:      maxAttempts,
		Reliability:      reliability,
		Rand:             random,
		MaxSendRate:      config.MaxSendRate,
		MaxConnections:   config.MaxConnections,
		Tracer:           config.Tracer,
		Logger:           logger,
	}
}
