package udpftp

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/udpftp/udpftp/internal/integrity"
	"github.com/udpftp/udpftp/internal/protocol"
	"github.com/udpftp/udpftp/internal/wire"
	"github.com/udpftp/udpftp/logging"
)

// A reassembler collects the data blocks of a single download.
// It acknowledges every block at a window boundary, without checking for gaps:
// missing blocks are detected after the transfer.
type reassembler struct {
	conn       messageConn
	filename   string
	windowSize int
	timeout    time.Duration

	blocks      map[protocol.SequenceNumber][]byte
	highest     protocol.SequenceNumber // only valid if blocks is not empty
	announced   *integrity.Digest
	endReceived bool
	endSeq      protocol.SequenceNumber

	tracer *logging.ConnectionTracer
	logger *slog.Logger
}

func newReassembler(conn messageConn, filename string, windowSize int, timeout time.Duration, tracer *logging.ConnectionTracer, logger *slog.Logger) *reassembler {
	return &reassembler{
		conn:       conn,
		filename:   filename,
		windowSize: windowSize,
		timeout:    timeout,
		blocks:     make(map[protocol.SequenceNumber][]byte),
		tracer:     tracer,
		logger:     logger,
	}
}

// Run receives the file.
// It returns the (possibly partial) result along with a *TransferAbortedError if the sender gave up,
// and only an error if the file doesn't exist or the connection failed.
func (r *reassembler) Run(ctx context.Context) (*FetchResult, error) {
	if r.tracer != nil && r.tracer.StartedTransfer != nil {
		r.tracer.StartedTransfer(r.filename, -1)
	}
	res, err := r.run(ctx)
	if r.tracer != nil && r.tracer.CompletedTransfer != nil {
		summary := logging.TransferSummary{Filename: r.filename, Err: err}
		if res != nil {
			summary.Blocks = res.Blocks
			summary.Bytes = protocol.ByteCount(len(res.Data))
			summary.Missing = res.MissingBlocks()
			summary.EndReceived = res.Completion == CompletionEndReceived
			summary.Verdict = res.Verdict
		}
		r.tracer.CompletedTransfer(summary)
	}
	return res, err
}

func (r *reassembler) run(ctx context.Context) (*FetchResult, error) {
	// The checksum is announced before the first block.
	// If it was lost, the first message might already be a block.
	m, err := r.conn.Receive(ctx, time.Now().Add(r.timeout))
	switch {
	case errors.Is(err, os.ErrDeadlineExceeded):
		r.logger.Debug("no checksum received", "file", r.filename)
	case err != nil:
		return nil, err
	default:
		done, err := r.handleMessage(ctx, m)
		if err != nil {
			var nf *FileNotFoundError
			if errors.As(err, &nf) {
				return nil, err
			}
			return r.result(CompletionAborted), err
		}
		if done {
			return r.result(CompletionEndReceived), nil
		}
	}

	for {
		m, err := r.conn.Receive(ctx, time.Now().Add(r.timeout))
		if errors.Is(err, os.ErrDeadlineExceeded) {
			r.logger.Debug("transfer idle, stopping", "file", r.filename, "blocks", len(r.blocks))
			return r.result(CompletionIdleTimeout), nil
		}
		if err != nil {
			return nil, err
		}
		done, err := r.handleMessage(ctx, m)
		if err != nil {
			return r.result(CompletionAborted), err
		}
		if done {
			return r.result(CompletionEndReceived), nil
		}
	}
}

func (r *reassembler) handleMessage(ctx context.Context, m wire.Message) (done bool, _ error) {
	switch msg := m.(type) {
	case *wire.Data:
		if len(r.blocks) == 0 || msg.Sequence > r.highest {
			r.highest = msg.Sequence
		}
		r.blocks[msg.Sequence] = msg.Payload
		if msg.Sequence.IsWindowBoundary(r.windowSize) {
			if err := r.conn.Send(ctx, wire.NewAckBlock(msg.Sequence)); err != nil {
				return false, err
			}
			if r.tracer != nil && r.tracer.AcknowledgedWindow != nil {
				r.tracer.AcknowledgedWindow(msg.Sequence)
			}
		}
		return false, nil
	case *wire.End:
		if !r.plausibleEnd(msg.Sequence) {
			r.logger.Debug("ignoring end marker beyond the current window", "seq", msg.Sequence, "blocks", len(r.blocks))
			break
		}
		r.endReceived = true
		r.endSeq = msg.Sequence
		return true, nil
	case *wire.Control:
		switch msg.Kind() {
		case wire.KindChecksum:
			d, err := wire.ParseChecksum(msg)
			if err != nil {
				r.logger.Debug("ignoring invalid checksum", "error", err)
				return false, nil
			}
			if r.announced == nil {
				r.announced = &d
			}
			return false, nil
		case wire.KindError:
			reason, _ := wire.ParseError(msg)
			if strings.HasPrefix(reason, wire.ReasonFileNotFound) {
				return false, &FileNotFoundError{Name: r.filename, Remote: true}
			}
			return false, &TransferAbortedError{Remote: true, Reason: reason}
		}
	}
	ignoreUnexpected(r.tracer, r.logger, m, "receiving")
	return false, nil
}

// plausibleEnd says if the sender could have sent an End with this sequence number.
// End is only sent after the last full window was acknowledged, and every acknowledged
// boundary was received, so at most one window follows the highest block.
func (r *reassembler) plausibleEnd(seq protocol.SequenceNumber) bool {
	limit := uint64(r.windowSize)
	if len(r.blocks) > 0 {
		limit += uint64(r.highest)
	}
	return uint64(seq) <= limit
}

func (r *reassembler) result(c Completion) *FetchResult {
	keys := make([]protocol.SequenceNumber, 0, len(r.blocks))
	var size int
	for seq, b := range r.blocks {
		keys = append(keys, seq)
		size += len(b)
	}
	slices.Sort(keys)

	data := make([]byte, 0, size)
	for _, seq := range keys {
		data = append(data, r.blocks[seq]...)
	}

	// gaps between the received blocks, and up to the end marker
	var missing []BlockRange
	var next uint64
	for _, seq := range keys {
		if uint64(seq) > next {
			missing = append(missing, BlockRange{Start: protocol.SequenceNumber(next), End: seq - 1})
		}
		next = uint64(seq) + 1
	}
	if r.endReceived && uint64(r.endSeq) > next {
		missing = append(missing, BlockRange{Start: protocol.SequenceNumber(next), End: r.endSeq - 1})
	}

	computed := integrity.Hash(data)
	res := &FetchResult{
		Filename:         r.filename,
		Data:             data,
		Blocks:           len(keys),
		Missing:          missing,
		ComputedChecksum: computed.String(),
		Verdict:          integrity.Compare(r.announced, computed),
		Completion:       c,
	}
	if r.announced != nil {
		res.AnnouncedChecksum = r.announced.String()
	}
	return res
}
