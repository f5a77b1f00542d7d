package udpftp

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/udpftp/udpftp/internal/protocol"
	"github.com/udpftp/udpftp/internal/wire"
	"github.com/udpftp/udpftp/logging"
)

// A messageConn exchanges messages with a single peer.
// The handshake and the transfer engines only use this interface.
type messageConn interface {
	Send(context.Context, wire.Message) error
	// Receive returns os.ErrDeadlineExceeded if no message arrives before the deadline.
	Receive(ctx context.Context, deadline time.Time) (wire.Message, error)
}

// A peerConn is a messageConn for a remote address on a (possibly shared) lossyConn.
type peerConn struct {
	lossy  *lossyConn
	remote net.Addr
	queue  *receiveQueue

	tracer *logging.ConnectionTracer
	logger *slog.Logger
}

var _ messageConn = &peerConn{}

func newPeerConn(lossy *lossyConn, remote net.Addr, tracer *logging.ConnectionTracer, logger *slog.Logger) *peerConn {
	return &peerConn{
		lossy:  lossy,
		remote: remote,
		queue:  newReceiveQueue(),
		tracer: tracer,
		logger: logger,
	}
}

func (c *peerConn) Send(ctx context.Context, m wire.Message) error {
	dropped, err := c.lossy.Send(ctx, m, c.remote)
	if err != nil {
		return err
	}
	if !dropped {
		wire.LogMessage(c.logger, m, true)
	}
	if c.tracer != nil && c.tracer.SentMessage != nil {
		c.tracer.SentMessage(m.Type(), protocol.ByteCount(m.Length()), dropped)
	}
	return nil
}

func (c *peerConn) Receive(ctx context.Context, deadline time.Time) (wire.Message, error) {
	return c.queue.Receive(ctx, deadline)
}

// handleMessage is called by the read loop for every message received from the remote address.
func (c *peerConn) handleMessage(m wire.Message) {
	if !c.queue.Add(m) {
		c.logger.Debug("dropping message, receive queue full", "type", m.Type())
		if c.tracer != nil && c.tracer.DroppedDatagram != nil {
			c.tracer.DroppedDatagram(protocol.ByteCount(m.Length()), logging.DatagramDropQueueFull)
		}
		return
	}
	wire.LogMessage(c.logger, m, false)
	if c.tracer != nil && c.tracer.ReceivedMessage != nil {
		c.tracer.ReceivedMessage(m.Type(), protocol.ByteCount(m.Length()))
	}
}

func ignoreUnexpected(tracer *logging.ConnectionTracer, logger *slog.Logger, m wire.Message, state string) {
	logger.Debug("ignoring unexpected message", "type", m.Type(), "state", state)
	if tracer != nil && tracer.DroppedDatagram != nil {
		tracer.DroppedDatagram(protocol.ByteCount(m.Length()), logging.DatagramDropUnexpected)
	}
}

func (c *peerConn) updateState(old, new protocol.ConnState) {
	if old == new {
		return
	}
	c.logger.Debug("state change", "old", old, "new", new)
	if c.tracer != nil && c.tracer.UpdatedState != nil {
		c.tracer.UpdatedState(old, new)
	}
}
