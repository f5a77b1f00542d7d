package udpftp

import (
	"context"
	"log/slog"
	"net"
	"sync"

	"golang.org/x/time/rate"

	"github.com/udpftp/udpftp/internal/protocol"
	"github.com/udpftp/udpftp/internal/wire"
)

// rawConn is the part of a net.PacketConn used by udpftp.
type rawConn interface {
	ReadFrom([]byte) (int, net.Addr, error)
	WriteTo([]byte, net.Addr) (int, error)
	LocalAddr() net.Addr
	Close() error
}

var _ rawConn = &net.UDPConn{}

// A lossyConn sends messages on a rawConn, dropping each of them with probability 1 - reliability.
// It is safe for concurrent use by multiple goroutines.
type lossyConn struct {
	conn rawConn

	mutex       sync.Mutex
	reliability float64
	rand        RandomSource
	buf         []byte

	// nil if sending is not paced
	limiter *rate.Limiter

	logger *slog.Logger
}

func newLossyConn(conn rawConn, config *Config) *lossyConn {
	c := &lossyConn{
		conn:        conn,
		reliability: config.Reliability,
		rand:        config.Rand,
		buf:         make([]byte, 0, protocol.MaxDatagramSize),
		logger:      config.Logger,
	}
	if config.MaxSendRate > 0 {
		burst := max(1, int(config.MaxSendRate))
		c.limiter = rate.NewLimiter(rate.Limit(config.MaxSendRate), burst)
	}
	return c
}

// Send sends a message to addr.
// It reports if the message was dropped on purpose.
// Only I/O errors of the underlying connection are returned as errors.
func (c *lossyConn) Send(ctx context.Context, m wire.Message, addr net.Addr) (dropped bool, _ error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return false, err
		}
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.shouldDrop() {
		if c.logger.Enabled(ctx, slog.LevelDebug) {
			c.logger.Debug("dropping message", "type", m.Type(), "len", m.Length(), "remote", addr)
		}
		return true, nil
	}
	c.buf = m.Append(c.buf[:0])
	if _, err := c.conn.WriteTo(c.buf, addr); err != nil {
		return false, &TransportError{Op: "write", Err: err}
	}
	return false, nil
}

// must be called with the mutex held
func (c *lossyConn) shouldDrop() bool {
	switch {
	case c.reliability >= 1:
		return false
	case c.reliability <= 0:
		return true
	}
	return c.rand.Float64() > c.reliability
}

func (c *lossyConn) LocalAddr() net.Addr { return c.conn.LocalAddr() }
