package udpftp

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/udpftp/udpftp/internal/protocol"
	"github.com/udpftp/udpftp/internal/wire"
)

// awaitControl waits for the next control message.
// Data blocks still in flight from an earlier transfer are skipped.
func awaitControl(ctx context.Context, c *peerConn, deadline time.Time, state protocol.ConnState) (*wire.Control, error) {
	for {
		m, err := c.Receive(ctx, deadline)
		if err != nil {
			return nil, err
		}
		if ctrl, ok := m.(*wire.Control); ok {
			return ctrl, nil
		}
		ignoreUnexpected(c.tracer, c.logger, m, state.String())
	}
}

// runClientHandshake performs the initiator side of the three-way handshake:
// SYN, wait for SYN-ACK, ACK, wait for the negotiated parameters.
func (c *Conn) runClientHandshake(ctx context.Context) error {
	start := time.Now()
	timeout := c.config.HandshakeTimeout

	c.setState(protocol.StateSynSent)
	if err := c.peer.Send(ctx, &wire.Control{Text: wire.TextSyn}); err != nil {
		return err
	}
	reply, err := awaitControl(ctx, c.peer, time.Now().Add(timeout), c.state)
	if err != nil {
		return c.handshakeError(err)
	}
	switch reply.Kind() {
	case wire.KindSynAck:
	case wire.KindError:
		reason, _ := wire.ParseError(reply)
		return &HandshakeRejectedError{Reason: reason}
	default:
		return &HandshakeRejectedError{Reason: "unexpected response to SYN: " + reply.Text}
	}

	if err := c.peer.Send(ctx, &wire.Control{Text: wire.TextAck}); err != nil {
		return err
	}
	for {
		reply, err = awaitControl(ctx, c.peer, time.Now().Add(timeout), c.state)
		if err != nil {
			return c.handshakeError(err)
		}
		// our SYN might have been duplicated
		if reply.Kind() != wire.KindSynAck {
			break
		}
	}
	if reply.Kind() == wire.KindError {
		reason, _ := wire.ParseError(reply)
		return &HandshakeRejectedError{Reason: reason}
	}
	blockSize, windowSize, err := wire.ParseParameters(reply)
	if err != nil {
		return &HandshakeRejectedError{Reason: err.Error()}
	}
	c.blockSize = blockSize
	c.windowSize = windowSize
	c.setState(protocol.StateEstablished)
	c.established.Store(true)

	took := time.Since(start)
	c.logger.Debug("handshake completed", "block_size", blockSize, "window_size", windowSize, "took", took)
	if c.tracer != nil && c.tracer.NegotiatedParameters != nil {
		c.tracer.NegotiatedParameters(blockSize, windowSize, took)
	}
	return nil
}

func (c *Conn) handshakeError(err error) error {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return &HandshakeTimeoutError{State: c.state, Timeout: c.config.HandshakeTimeout}
	}
	return err
}

// runServerHandshake performs the responder side of the handshake, after a SYN was received.
func (c *serverConn) runServerHandshake(ctx context.Context) error {
	start := time.Now()
	timeout := c.config.HandshakeTimeout

	c.setState(protocol.StateSynReceived)
	if err := c.peer.Send(ctx, &wire.Control{Text: wire.TextSynAck}); err != nil {
		return err
	}
	deadline := time.Now().Add(timeout)
	for {
		m, err := awaitControl(ctx, c.peer, deadline, c.state)
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return &HandshakeTimeoutError{State: c.state, Timeout: timeout}
		}
		if err != nil {
			return err
		}
		switch m.Kind() {
		case wire.KindSyn:
			// the SYN-ACK was probably lost
			if err := c.peer.Send(ctx, &wire.Control{Text: wire.TextSynAck}); err != nil {
				return err
			}
			deadline = time.Now().Add(timeout)
		case wire.KindAck:
			if err := c.peer.Send(ctx, wire.NewParameters(c.config.BlockSize, c.config.WindowSize)); err != nil {
				return err
			}
			c.setState(protocol.StateEstablished)
			c.establishedAt.Store(time.Now().UnixNano())
			took := time.Since(start)
			c.logger.Debug("handshake completed", "took", took)
			if c.tracer != nil && c.tracer.NegotiatedParameters != nil {
				c.tracer.NegotiatedParameters(c.config.BlockSize, c.config.WindowSize, took)
			}
			return nil
		default:
			ignoreUnexpected(c.tracer, c.logger, m, c.state.String())
		}
	}
}
