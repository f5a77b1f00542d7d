package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/udpftp/udpftp"
	"github.com/udpftp/udpftp/logging"
	"github.com/udpftp/udpftp/metrics"
	"github.com/udpftp/udpftp/qlog"
)

type serveOptions struct {
	addr           string
	dir            string
	maxConnections int
	metricsAddr    string
	qlogDir        string
}

func newServeCmd(opts *options) *cobra.Command {
	var so serveOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the files of a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyServeFlags(cmd, &opts.cfg.Server, &so)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, opts, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
		},
	}
	def := defaultConfig().Server
	cmd.Flags().StringVar(&so.addr, "addr", def.Addr, "UDP address to listen on")
	cmd.Flags().StringVar(&so.dir, "dir", def.Dir, "directory containing the files to serve")
	cmd.Flags().IntVar(&so.maxConnections, "max-conns", def.MaxConnections, "maximum number of concurrent clients (0: unlimited)")
	cmd.Flags().StringVar(&so.metricsAddr, "metrics", def.MetricsAddr, "serve Prometheus metrics on this TCP address")
	cmd.Flags().StringVar(&so.qlogDir, "qlog", def.QlogDir, "write a qlog file per connection to this directory (default from QLOGDIR)")
	return cmd
}

func applyServeFlags(cmd *cobra.Command, dst *serverConfig, src *serveOptions) {
	flags := cmd.Flags()
	if flags.Changed("addr") {
		dst.Addr = src.addr
	}
	if flags.Changed("dir") {
		dst.Dir = src.dir
	}
	if flags.Changed("max-conns") {
		dst.MaxConnections = src.maxConnections
	}
	if flags.Changed("metrics") {
		dst.MetricsAddr = src.metricsAddr
	}
	if flags.Changed("qlog") {
		dst.QlogDir = src.qlogDir
	}
}

func newTracer(cfg *serverConfig, registerer prometheus.Registerer) func(context.Context, logging.Perspective, udpftp.ConnectionID) *logging.ConnectionTracer {
	qlogTracer := qlog.DefaultTracer
	if cfg.QlogDir != "" {
		qlogTracer = qlog.DirTracer(cfg.QlogDir)
	}
	var metricsTracer func(context.Context, logging.Perspective, udpftp.ConnectionID) *logging.ConnectionTracer
	if cfg.MetricsAddr != "" {
		metricsTracer = metrics.DefaultTracerWithRegisterer(registerer)
	}
	return func(ctx context.Context, p logging.Perspective, connID udpftp.ConnectionID) *logging.ConnectionTracer {
		tracers := []*logging.ConnectionTracer{qlogTracer(ctx, p, connID)}
		if metricsTracer != nil {
			tracers = append(tracers, metricsTracer(ctx, p, connID))
		}
		return logging.NewMultiplexedConnectionTracer(tracers...)
	}
}

func runServer(ctx context.Context, opts *options, registerer prometheus.Registerer, gatherer prometheus.Gatherer) error {
	cfg := opts.cfg
	if info, err := os.Stat(cfg.Server.Dir); err != nil {
		return err
	} else if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", cfg.Server.Dir)
	}
	if cfg.Server.QlogDir != "" {
		if err := os.MkdirAll(cfg.Server.QlogDir, 0o755); err != nil {
			return fmt.Errorf("failed to create qlog dir: %w", err)
		}
	}

	conf := cfg.Transfer.udpftpConfig()
	conf.MaxConnections = cfg.Server.MaxConnections
	conf.Tracer = newTracer(&cfg.Server, registerer)
	conf.Logger = opts.logger

	server, err := udpftp.Listen(cfg.Server.Addr, udpftp.NewDirStore(cfg.Server.Dir), conf)
	if err != nil {
		return err
	}
	opts.logger.Info("serving files", "dir", cfg.Server.Dir, "addr", server.Addr(), "reliability", cfg.Transfer.Reliability)

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Server.MetricsAddr != "" {
		ln, err := net.Listen("tcp", cfg.Server.MetricsAddr)
		if err != nil {
			server.Close()
			return err
		}
		opts.logger.Info("serving metrics", "addr", ln.Addr())
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
		srv := &http.Server{Handler: mux}
		g.Go(func() error {
			if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			return srv.Close()
		})
	}
	g.Go(func() error {
		err := server.Serve(ctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, udpftp.ErrServerClosed) {
			return nil
		}
		return err
	})
	return g.Wait()
}
