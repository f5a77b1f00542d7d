package udpftp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/udpftp/udpftp/internal/integrity"
	"github.com/udpftp/udpftp/internal/protocol"
	"github.com/udpftp/udpftp/internal/wire"
	"github.com/udpftp/udpftp/logging"
)

// errPeerClosed is returned by the windowSender when the peer sent a bye during the transfer.
var errPeerClosed = errors.New("peer closed the connection")

// A windowSender transmits a file as a sequence of data blocks, waiting for a cumulative
// acknowledgment after every window. An unacknowledged window is retransmitted until
// maxAttempts consecutive timeouts occurred.
type windowSender struct {
	conn        messageConn
	blockSize   int
	windowSize  int
	timeout     time.Duration
	maxAttempts int

	buf []byte
	// commands received while waiting for an acknowledgment
	deferred []*wire.Control

	retransmissions int

	tracer *logging.ConnectionTracer
	logger *slog.Logger
}

func newWindowSender(conn messageConn, blockSize, windowSize int, config *Config, tracer *logging.ConnectionTracer, logger *slog.Logger) *windowSender {
	return &windowSender{
		conn:        conn,
		blockSize:   blockSize,
		windowSize:  windowSize,
		timeout:     config.Timeout,
		maxAttempts: config.MaxAttempts,
		buf:         make([]byte, blockSize),
		tracer:      tracer,
		logger:      logger,
	}
}

func (s *windowSender) numBlocks(size int64) uint64 {
	if size <= 0 {
		return 0
	}
	bs := uint64(s.blockSize)
	return (uint64(size) + bs - 1) / bs
}

// Send transfers the first size bytes of f.
// It returns a *TransferAbortedError if a window couldn't be delivered.
func (s *windowSender) Send(ctx context.Context, name string, f io.ReaderAt, size int64) error {
	start := time.Now()
	s.retransmissions = 0
	if s.tracer != nil && s.tracer.StartedTransfer != nil {
		s.tracer.StartedTransfer(name, protocol.ByteCount(size))
	}
	n := s.numBlocks(size)
	err := s.send(ctx, f, size, n)
	if err == nil {
		s.logger.Debug("transfer completed", "file", name, "blocks", n, "retransmissions", s.retransmissions, "took", time.Since(start))
	}
	if s.tracer != nil && s.tracer.CompletedTransfer != nil {
		s.tracer.CompletedTransfer(logging.TransferSummary{
			Filename:        name,
			Blocks:          int(n),
			Bytes:           protocol.ByteCount(size),
			Retransmissions: s.retransmissions,
			Err:             err,
		})
	}
	return err
}

func (s *windowSender) send(ctx context.Context, f io.ReaderAt, size int64, n uint64) error {
	if n > uint64(protocol.MaxSequenceNumber) {
		// Nothing has been sent yet. Tell the client, so it doesn't wait for the checksum.
		reason := fmt.Sprintf("file too large: %d blocks", n)
		if err := s.conn.Send(ctx, wire.NewError(reason)); err != nil {
			return err
		}
		return errors.New(reason)
	}

	digest, err := integrity.HashReader(io.NewSectionReader(f, 0, size))
	if err != nil {
		if err := s.conn.Send(ctx, wire.NewError("read failed")); err != nil {
			return err
		}
		return fmt.Errorf("hashing file: %w", err)
	}
	if err := s.conn.Send(ctx, wire.NewChecksum(digest)); err != nil {
		return err
	}

	var windowStart protocol.SequenceNumber
	for i := range protocol.SequenceNumber(n) {
		if err := s.sendBlock(ctx, f, size, i); err != nil {
			return err
		}
		if i.IsWindowBoundary(s.windowSize) {
			if err := s.waitForAck(ctx, f, size, windowStart, i); err != nil {
				return err
			}
			windowStart = i + 1
		}
	}
	return s.conn.Send(ctx, &wire.End{Sequence: protocol.SequenceNumber(n)})
}

func (s *windowSender) sendBlock(ctx context.Context, f io.ReaderAt, size int64, seq protocol.SequenceNumber) error {
	offset := int64(seq) * int64(s.blockSize)
	l := min(int64(s.blockSize), size-offset)
	b := s.buf[:l]
	if n, err := f.ReadAt(b, offset); n < len(b) {
		return fmt.Errorf("reading block %d: %w", seq, err)
	}
	return s.conn.Send(ctx, &wire.Data{Sequence: seq, Payload: b})
}

// waitForAck waits for an ACK_Block covering the window [start, end].
// The deadline is fixed for every attempt: messages that don't acknowledge the window don't extend it.
func (s *windowSender) waitForAck(ctx context.Context, f io.ReaderAt, size int64, start, end protocol.SequenceNumber) error {
	var attempts int
	deadline := time.Now().Add(s.timeout)
	for {
		m, err := s.conn.Receive(ctx, deadline)
		if errors.Is(err, os.ErrDeadlineExceeded) {
			attempts++
			if attempts >= s.maxAttempts {
				s.logger.Debug("aborting transfer", "window_start", start, "window_end", end, "attempts", attempts)
				if err := s.conn.Send(ctx, wire.NewError(wire.ReasonTransferAborted)); err != nil {
					return err
				}
				return &TransferAbortedError{Attempts: attempts, WindowStart: start, WindowEnd: end}
			}
			s.logger.Debug("retransmitting window", "window_start", start, "window_end", end, "attempt", attempts)
			if s.tracer != nil && s.tracer.RetransmittedWindow != nil {
				s.tracer.RetransmittedWindow(start, end, attempts)
			}
			for seq := start; seq <= end; seq++ {
				if err := s.sendBlock(ctx, f, size, seq); err != nil {
					return err
				}
				s.retransmissions++
			}
			deadline = time.Now().Add(s.timeout)
			continue
		}
		if err != nil {
			return err
		}

		c, ok := m.(*wire.Control)
		if !ok {
			ignoreUnexpected(s.tracer, s.logger, m, "sending")
			continue
		}
		switch c.Kind() {
		case wire.KindAckBlock:
			seq, err := wire.ParseAckBlock(c)
			if err != nil {
				s.logger.Debug("ignoring invalid ACK_Block", "error", err)
				continue
			}
			// stale acknowledgment for a previous window
			if seq < end {
				continue
			}
			if s.tracer != nil && s.tracer.AcknowledgedWindow != nil {
				s.tracer.AcknowledgedWindow(end)
			}
			return nil
		case wire.KindBye:
			return errPeerClosed
		case wire.KindSyn, wire.KindList, wire.KindGet:
			s.deferred = append(s.deferred, c)
		default:
			ignoreUnexpected(s.tracer, s.logger, m, "sending")
		}
	}
}

// popDeferred returns a command received during the last transfer, if any.
func (s *windowSender) popDeferred() (*wire.Control, bool) {
	if len(s.deferred) == 0 {
		return nil, false
	}
	c := s.deferred[0]
	s.deferred = s.deferred[1:]
	return c, true
}
