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

// A Conn is a client connection to a udpftp server.
// Requests are executed one at a time: concurrent calls block until the previous request completed.
type Conn struct {
	conn        rawConn
	createdConn bool
	peer        *peerConn

	config *Config
	connID protocol.ConnectionID

	// only one request at a time
	mutex sync.Mutex

	state       protocol.ConnState // only accessed by the handshake and destroy
	established atomic.Bool
	blockSize   int
	windowSize  int

	closeOnce  sync.Once
	closed     chan struct{}
	runStopped chan struct{}

	tracer *logging.ConnectionTracer
	logger *slog.Logger
}

// Connect establishes a new connection to a server.
// It listens on an ephemeral UDP port, and runs the handshake.
func Connect(ctx context.Context, addr string, conf *Config) (*Conn, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}
	udpConn, err := net.ListenUDP("udp", nil)
	if err != nil {
		return nil, err
	}
	return dial(ctx, udpConn, udpAddr, conf, true)
}

// Dial establishes a new connection to a server using a net.PacketConn.
// The same PacketConn must not be used for multiple connections.
// It is not closed when the Conn is closed, and the Conn keeps reading from it until it is.
func Dial(ctx context.Context, conn net.PacketConn, addr net.Addr, conf *Config) (*Conn, error) {
	return dial(ctx, conn, addr, conf, false)
}

func dial(ctx context.Context, conn rawConn, addr net.Addr, conf *Config, createdConn bool) (*Conn, error) {
	if err := validateConfig(conf); err != nil {
		if createdConn {
			conn.Close()
		}
		return nil, err
	}
	config := populateConfig(conf)
	c := newConn(ctx, conn, addr, config, createdConn)
	go c.run()

	if err := c.runClientHandshake(ctx); err != nil {
		c.logger.Debug("handshake failed", "error", err)
		c.destroy(err)
		return nil, err
	}
	return c, nil
}

func newConn(ctx context.Context, conn rawConn, addr net.Addr, config *Config, createdConn bool) *Conn {
	connID := protocol.GenerateConnectionID()
	var tracer *logging.ConnectionTracer
	if config.Tracer != nil {
		tracer = config.Tracer(ctx, protocol.PerspectiveClient, connID)
	}
	logger := config.Logger.With(ulog.ComponentKey, ulog.ComponentClient, "conn", connID.String())
	c := &Conn{
		conn:        conn,
		createdConn: createdConn,
		config:      config,
		connID:      connID,
		state:       protocol.StateClosed,
		closed:      make(chan struct{}),
		runStopped:  make(chan struct{}),
		tracer:      tracer,
		logger:      logger,
	}
	c.peer = newPeerConn(newLossyConn(conn, config), addr, tracer, logger)
	if tracer != nil && tracer.StartedConnection != nil {
		tracer.StartedConnection(conn.LocalAddr(), addr)
	}
	return c
}

// run reads datagrams until the underlying connection is closed.
func (c *Conn) run() {
	defer close(c.runStopped)

	buf := make([]byte, protocol.MaxDatagramSize)
	remote := c.peer.remote.String()
	for {
		n, addr, err := c.conn.ReadFrom(buf)
		if err != nil {
			select {
			case <-c.closed:
				c.peer.queue.CloseWithError(ErrConnectionClosed)
			default:
				c.peer.queue.CloseWithError(&TransportError{Op: "read", Err: err})
			}
			return
		}
		if addr.String() != remote {
			c.logger.Debug("dropping datagram from unknown peer", "remote", addr, "len", n)
			if c.tracer != nil && c.tracer.DroppedDatagram != nil {
				c.tracer.DroppedDatagram(protocol.ByteCount(n), logging.DatagramDropUnknownPeer)
			}
			continue
		}
		m, err := wire.Parse(buf[:n])
		if err != nil {
			c.logger.Debug("dropping undecodable datagram", "len", n, "error", err)
			if c.tracer != nil && c.tracer.DroppedDatagram != nil {
				c.tracer.DroppedDatagram(protocol.ByteCount(n), logging.DatagramDropParseError)
			}
			continue
		}
		c.peer.handleMessage(m)
	}
}

func (c *Conn) setState(s protocol.ConnState) {
	c.peer.updateState(c.state, s)
	c.state = s
}

// LocalAddr returns the local address.
func (c *Conn) LocalAddr() net.Addr { return c.conn.LocalAddr() }

// RemoteAddr returns the address of the server.
func (c *Conn) RemoteAddr() net.Addr { return c.peer.remote }

// BlockSize returns the block size announced by the server.
func (c *Conn) BlockSize() int { return c.blockSize }

// WindowSize returns the window size announced by the server.
func (c *Conn) WindowSize() int { return c.windowSize }

func (c *Conn) checkEstablished() error {
	select {
	case <-c.closed:
		return ErrConnectionClosed
	default:
	}
	if !c.established.Load() {
		return ErrConnectionClosed
	}
	return nil
}

// ListFiles asks the server for the names of the files it serves.
func (c *Conn) ListFiles(ctx context.Context) ([]string, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if err := c.checkEstablished(); err != nil {
		return nil, err
	}
	c.discardStale()
	if err := c.peer.Send(ctx, &wire.Control{Text: wire.TextList}); err != nil {
		return nil, err
	}
	reply, err := awaitControl(ctx, c.peer, time.Now().Add(c.config.Timeout), protocol.StateEstablished)
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return nil, &TimeoutError{Op: "list", Timeout: c.config.Timeout}
	}
	if err != nil {
		return nil, err
	}
	if reply.Kind() == wire.KindError {
		reason, _ := wire.ParseError(reply)
		return nil, &RequestError{Op: "list", Reason: reason}
	}
	return wire.ParseFileList(reply), nil
}

// FetchFile downloads a file.
// The result is returned even if the file is incomplete, or doesn't pass the integrity check:
// use FetchResult.Complete and FetchResult.IntegrityErr to check.
// If the server aborts the transfer, the partial result is returned along with a *TransferAbortedError.
func (c *Conn) FetchFile(ctx context.Context, name string) (*FetchResult, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if err := c.checkEstablished(); err != nil {
		return nil, err
	}
	c.discardStale()
	if err := c.peer.Send(ctx, wire.NewGet(name)); err != nil {
		return nil, err
	}
	r := newReassembler(c.peer, name, c.windowSize, c.config.Timeout, c.tracer, c.logger.With(ulog.ComponentKey, ulog.ComponentTransfer))
	return r.Run(ctx)
}

// discardStale drops messages that arrived after the previous request completed,
// e.g. retransmissions of a download the client already gave up on.
func (c *Conn) discardStale() {
	if n := c.peer.queue.Clear(); n > 0 {
		c.logger.Debug("discarded stale messages", "count", n)
	}
}

// Close says goodbye to the server and closes the connection.
// A request that is in progress returns ErrConnectionClosed.
func (c *Conn) Close() error {
	var err error
	if c.established.Load() {
		err = c.peer.Send(context.Background(), &wire.Control{Text: wire.TextBye})
	}
	c.destroy(nil)
	return err
}

func (c *Conn) destroy(e error) {
	c.closeOnce.Do(func() {
		close(c.closed)
		c.established.Store(false)
		c.setState(protocol.StateClosed)
		if c.createdConn {
			c.conn.Close()
		}
		c.peer.queue.CloseWithError(ErrConnectionClosed)
		if c.tracer != nil {
			if c.tracer.ClosedConnection != nil {
				c.tracer.ClosedConnection(e)
			}
			if c.tracer.Close != nil {
				c.tracer.Close()
			}
		}
	})
}
