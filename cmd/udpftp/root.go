package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	ulog "github.com/udpftp/udpftp/internal/slog"
)

// options is the state shared by all commands.
type options struct {
	cfgFile string
	cfg     *config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	transfer := defaultConfig().Transfer
	var logLevel string

	cmd := &cobra.Command{
		Use:   "udpftp",
		Short: "Serve and download files over a lossy UDP transport",
		Long: `udpftp transfers files over UDP with a three-way handshake, a fixed
send window, window retransmission and a SHA-256 integrity check.
Packet loss can be simulated on both peers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path := opts.cfgFile
			if path == "" {
				path = defaultConfigPath()
			}
			cfg, err := loadConfig(path)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			applyTransferFlags(cmd.Flags(), &cfg.Transfer, &transfer)
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			opts.cfg = cfg

			if cfg.LogLevel == "" {
				opts.logger = ulog.NewLogger(cmd.ErrOrStderr())
				return nil
			}
			logger, err := ulog.NewLoggerWithConfig(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			opts.logger = logger
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is ~/.udpftp/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log levels, e.g. \"info,transfer=debug\" (default from "+ulog.EnvLogLevel+")")
	flags.IntVar(&transfer.BlockSize, "block-size", transfer.BlockSize, "maximum payload size of a data block")
	flags.IntVar(&transfer.WindowSize, "window", transfer.WindowSize, "number of blocks sent before waiting for an acknowledgment")
	flags.DurationVar(&transfer.Timeout, "timeout", transfer.Timeout, "time to wait for a response")
	flags.IntVar(&transfer.MaxAttempts, "attempts", transfer.MaxAttempts, "consecutive timeouts tolerated for a window")
	flags.Float64Var(&transfer.Reliability, "reliability", transfer.Reliability, "probability that an outgoing datagram is delivered")
	flags.Float64Var(&transfer.MaxSendRate, "send-rate", transfer.MaxSendRate, "maximum datagrams sent per second (0: unlimited)")

	cmd.AddCommand(newServeCmd(opts), newShellCmd(opts))
	return cmd
}

// applyTransferFlags overrides the configuration file with the flags that were set on the command line.
func applyTransferFlags(flags *pflag.FlagSet, dst, src *transferConfig) {
	if flags.Changed("block-size") {
		dst.BlockSize = src.BlockSize
	}
	if flags.Changed("window") {
		dst.WindowSize = src.WindowSize
	}
	if flags.Changed("timeout") {
		dst.Timeout = src.Timeout
	}
	if flags.Changed("attempts") {
		dst.MaxAttempts = src.MaxAttempts
	}
	if flags.Changed("reliability") {
		dst.Reliability = src.Reliability
	}
	if flags.Changed("send-rate") {
		dst.MaxSendRate = src.MaxSendRate
	}
}
