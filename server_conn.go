package udpftp

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/udpftp/udpftp/internal/protocol"
	ulog "github.com/udpftp/udpftp/internal/slog"
	"github.com/udpftp/udpftp/internal/wire"
	"github.com/udpftp/udpftp/logging"
)

// A serverConn serves the requests of a single client.
// Requests are processed sequentially: a client can't run two transfers at the same time.
type serverConn struct {
	peer   *peerConn
	store  FileStore
	config *Config
	connID protocol.ConnectionID

	state  protocol.ConnState
	sender *windowSender
	// time the handshake completed, as UnixNano, until the first request arrives
	establishedAt atomic.Int64

	closeOnce sync.Once

	tracer *logging.ConnectionTracer
	logger *slog.Logger
}

var _ packetHandler = &serverConn{}

func newServerConn(ctx context.Context, lossy *lossyConn, remote net.Addr, store FileStore, config *Config, logger *slog.Logger) *serverConn {
	connID := protocol.GenerateConnectionID()
	var tracer *logging.ConnectionTracer
	if config.Tracer != nil {
		tracer = config.Tracer(ctx, protocol.PerspectiveServer, connID)
	}
	logger = logger.With("conn", connID.String(), "remote", remote.String())
	c := &serverConn{
		store:  store,
		config: config,
		connID: connID,
		state:  protocol.StateListening,
		tracer: tracer,
		logger: logger,
	}
	c.peer = newPeerConn(lossy, remote, tracer, logger)
	c.sender = newWindowSender(
		c.peer,
		config.BlockSize,
		config.WindowSize,
		config,
		tracer,
		logger.With(ulog.ComponentKey, ulog.ComponentTransfer),
	)
	if tracer != nil && tracer.StartedConnection != nil {
		tracer.StartedConnection(lossy.LocalAddr(), remote)
	}
	return c
}

func (c *serverConn) handleMessage(m wire.Message) { c.peer.handleMessage(m) }

// destroy makes run return.
func (c *serverConn) destroy(e error) { c.peer.queue.CloseWithError(e) }

func (c *serverConn) setState(s protocol.ConnState) {
	c.peer.updateState(c.state, s)
	c.state = s
}

// run serves the client until it says goodbye, the connection times out, or the connection is destroyed.
func (c *serverConn) run(ctx context.Context) {
	err := c.serve(ctx)
	switch {
	case err == nil:
		c.logger.Debug("connection closed by peer")
	case errors.Is(err, ErrServerClosed):
		c.logger.Debug("connection closed, server shutting down")
	default:
		c.logger.Info("closing connection", "error", err)
	}
	c.setState(protocol.StateClosed)
	if c.tracer != nil {
		if c.tracer.ClosedConnection != nil {
			c.tracer.ClosedConnection(err)
		}
		if c.tracer.Close != nil {
			c.tracer.Close()
		}
	}
}

func (c *serverConn) serve(ctx context.Context) error {
	for {
		m, err := c.nextCommand(ctx)
		if err != nil {
			return err
		}
		if m.Kind() == wire.KindSyn {
			if err := c.runServerHandshake(ctx); err != nil {
				return err
			}
			continue
		}
		if c.state != protocol.StateEstablished {
			ignoreUnexpected(c.tracer, c.logger, m, c.state.String())
			continue
		}
		c.establishedAt.Store(0)
		switch m.Kind() {
		case wire.KindList:
			if err := c.handleList(ctx); err != nil {
				return err
			}
		case wire.KindGet:
			if err := c.handleGet(ctx, m); err != nil {
				if errors.Is(err, errPeerClosed) {
					return nil
				}
				return err
			}
		case wire.KindBye:
			return nil
		default:
			// e.g. acknowledgments for blocks that were retransmitted after the transfer completed
			ignoreUnexpected(c.tracer, c.logger, m, c.state.String())
		}
	}
}

// unconfirmedFor returns how long ago the handshake completed,
// or 0 if the client already sent a request.
func (c *serverConn) unconfirmedFor(now time.Time) time.Duration {
	t := c.establishedAt.Load()
	if t == 0 {
		return 0
	}
	return now.Sub(time.Unix(0, t))
}

// nextCommand returns the next control message that needs to be handled.
// Commands received during a transfer are handled first.
func (c *serverConn) nextCommand(ctx context.Context) (*wire.Control, error) {
	if m, ok := c.sender.popDeferred(); ok {
		return m, nil
	}
	m, err := awaitControl(ctx, c.peer, time.Now().Add(c.config.MaxIdleTimeout), c.state)
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return nil, &TimeoutError{Op: "idle", Timeout: c.config.MaxIdleTimeout}
	}
	return m, err
}

func (c *serverConn) handleList(ctx context.Context) error {
	names, err := c.store.List()
	if err != nil {
		c.logger.Info("listing files failed", "error", err)
		return c.peer.Send(ctx, wire.NewError(err.Error()))
	}
	return c.peer.Send(ctx, wire.NewFileList(names))
}

// handleGet transfers a file.
// It only returns an error if the connection can't be used any more.
func (c *serverConn) handleGet(ctx context.Context, m *wire.Control) error {
	name, err := wire.ParseGet(m)
	if err != nil {
		return c.peer.Send(ctx, wire.NewError(err.Error()))
	}
	f, err := c.store.Open(name)
	if err != nil {
		var nf *FileNotFoundError
		if errors.As(err, &nf) {
			c.logger.Debug("requested file not found", "file", name)
			return c.peer.Send(ctx, wire.NewError(wire.ReasonFileNotFound+": "+name))
		}
		c.logger.Info("opening file failed", "file", name, "error", err)
		return c.peer.Send(ctx, wire.NewError("cannot open file: "+name))
	}
	defer f.Close()

	err = c.sender.Send(ctx, name, f, f.Size())
	var aborted *TransferAbortedError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &aborted):
		c.logger.Info("transfer aborted", "file", name, "error", err)
		return nil
	case errors.Is(err, errPeerClosed), errors.Is(err, &TransportError{}):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		// the connection is still usable
		c.logger.Info("transfer failed", "file", name, "error", err)
		return nil
	}
}
