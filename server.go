package udpftp

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udpftp/udpftp/internal/protocol"
	ulog "github.com/udpftp/udpftp/internal/slog"
	"github.com/udpftp/udpftp/internal/wire"
)

var errEvicted = errors.New("udpftp: connection evicted, no request after the handshake")

// A Server serves files to udpftp clients.
// Every client is served by its own goroutine, so a slow transfer doesn't block other clients.
type Server struct {
	conn     rawConn
	lossy    *lossyConn
	store    FileStore
	config   *Config
	handlers *packetHandlerMap

	closeOnce sync.Once
	closed    chan struct{}

	logger *slog.Logger
}

// Listen creates a server listening on the given UDP address.
func Listen(addr string, store FileStore, conf *Config) (*Server, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, err
	}
	s, err := NewServer(conn, store, conf)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// NewServer creates a server using a net.PacketConn.
// The server takes ownership of conn: it is closed when the server is closed.
func NewServer(conn net.PacketConn, store FileStore, conf *Config) (*Server, error) {
	return newServer(conn, store, conf)
}

func newServer(conn rawConn, store FileStore, conf *Config) (*Server, error) {
	if store == nil {
		return nil, errors.New("udpftp: no file store")
	}
	if err := validateConfig(conf); err != nil {
		return nil, err
	}
	config := populateConfig(conf)
	return &Server{
		conn:     conn,
		lossy:    newLossyConn(conn, config),
		store:    store,
		config:   config,
		handlers: newPacketHandlerMap(),
		closed:   make(chan struct{}),
		logger:   config.Logger.With(ulog.ComponentKey, ulog.ComponentServer),
	}, nil
}

// Addr returns the local address the server is listening on.
func (s *Server) Addr() net.Addr { return s.conn.LocalAddr() }

// Serve serves clients until the server is closed or the context is canceled.
// It returns ErrServerClosed after Close was called.
func (s *Server) Serve(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case <-ctx.Done():
			s.shutdown(context.Cause(ctx))
		case <-s.closed:
		}
		return nil
	})
	g.Go(func() error {
		return s.readLoop(ctx, g)
	})
	return g.Wait()
}

func (s *Server) readLoop(ctx context.Context, g *errgroup.Group) error {
	s.logger.Info("serving", "addr", s.conn.LocalAddr())
	buf := make([]byte, protocol.MaxDatagramSize)
	for {
		n, addr, err := s.conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			select {
			case <-s.closed:
				return ErrServerClosed
			default:
			}
			return &TransportError{Op: "read", Err: err}
		}
		m, err := wire.Parse(buf[:n])
		if err != nil {
			s.logger.Debug("dropping undecodable datagram", "remote", addr, "len", n, "error", err)
			continue
		}
		s.handleMessage(ctx, g, m, addr)
	}
}

func (s *Server) handleMessage(ctx context.Context, g *errgroup.Group, m wire.Message, addr net.Addr) {
	if handler, ok := s.handlers.Get(addr); ok {
		handler.handleMessage(m)
		return
	}
	if c, ok := m.(*wire.Control); !ok || c.Kind() != wire.KindSyn {
		s.logger.Debug("dropping message from unknown peer", "remote", addr, "type", m.Type())
		return
	}

	// Only the read loop adds connections, so the number of connections can't grow after this check.
	if limit := s.config.MaxConnections; limit > 0 && s.handlers.Len() >= limit && !s.evictUnconfirmed() {
		s.logger.Info("rejecting connection, too many connections", "remote", addr)
		if _, err := s.lossy.Send(ctx, wire.NewError(wire.ReasonServerBusy), addr); err != nil {
			s.logger.Debug("sending rejection failed", "error", err)
		}
		return
	}
	conn := newServerConn(ctx, s.lossy, addr, s.store, s.config, s.logger)
	if !s.handlers.Add(addr, conn) {
		// the server is shutting down
		return
	}
	s.logger.Debug("new connection", "remote", addr)
	conn.handleMessage(m)
	g.Go(func() error {
		conn.run(ctx)
		s.handlers.Remove(addr, conn)
		return nil
	})
}

// evictUnconfirmed closes a connection that completed the handshake a while ago, but never sent a request.
// Most likely, the parameters were lost and the client retried from a different address.
func (s *Server) evictUnconfirmed() bool {
	now := time.Now()
	h, ok := s.handlers.EvictIf(func(h packetHandler) bool {
		c, ok := h.(*serverConn)
		return ok && c.unconfirmedFor(now) >= s.config.HandshakeTimeout
	})
	if !ok {
		return false
	}
	c := h.(*serverConn)
	s.logger.Info("evicting connection without requests", "remote", c.peer.remote)
	c.destroy(errEvicted)
	return true
}

// Close closes the server and all its connections.
// Transfers in progress are aborted without notifying the clients.
func (s *Server) Close() error {
	return s.shutdown(ErrServerClosed)
}

func (s *Server) shutdown(e error) error {
	var err error
	s.closeOnce.Do(func() {
		close(s.closed)
		err = s.conn.Close()
		s.handlers.CloseAll(e)
	})
	return err
}
