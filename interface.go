package udpftp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/udpftp/udpftp/internal/integrity"
	"github.com/udpftp/udpftp/internal/protocol"
	"github.com/udpftp/udpftp/logging"
)

// A SequenceNumber is the index of a data block within a transfer.
type SequenceNumber = protocol.SequenceNumber

// A ConnectionID identifies a connection in logs and traces.
type ConnectionID = protocol.ConnectionID

// A Verdict is the outcome of the integrity check of a download.
type Verdict = integrity.Verdict

const (
	// VerdictUnknown is used when the server's checksum was never received.
	VerdictUnknown = integrity.VerdictUnknown
	// VerdictMatch is used when the reassembled file matches the announced checksum.
	VerdictMatch = integrity.VerdictMatch
	// VerdictMismatch is used when the reassembled file doesn't match the announced checksum.
	VerdictMismatch = integrity.VerdictMismatch
)

// A File is a file served by the server.
type File interface {
	io.ReaderAt
	io.Closer
	// Size is the size of the file in bytes.
	// Only the first Size bytes are transferred, even if the file grows.
	Size() int64
}

// A FileStore provides the files served by a Server.
type FileStore interface {
	// List returns the names of all files that can be downloaded.
	List() ([]string, error)
	// Open opens a file for download.
	// It returns a *FileNotFoundError if there's no such file.
	Open(name string) (File, error)
}

// A RandomSource decides which outgoing datagrams are delivered.
// *rand.Rand from golang.org/x/exp/rand and math/rand satisfy this interface.
// It doesn't need to be safe for concurrent use.
type RandomSource interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
}

// Config contains all configuration data needed for a udpftp Server or Conn.
type Config struct {
	// BlockSize is the maximum payload size of a data block.
	// It is announced by the server during the handshake, so the client's value is ignored.
	// If not set, it uses protocol.DefaultBlockSize.
	BlockSize int
	// WindowSize is the number of blocks sent before waiting for an acknowledgment.
	// It is announced by the server during the handshake, so the client's value is ignored.
	// It must not exceed protocol.MaxWindowSize.
	// If not set, it uses protocol.DefaultWindowSize.
	WindowSize int
	// Timeout is the time to wait for a response.
	// The sender retransmits a window if it isn't acknowledged within this time,
	// and the receiver considers a transfer finished if it doesn't receive anything for this time.
	// If not set, it uses protocol.DefaultTimeout.
	Timeout time.Duration
	// HandshakeTimeout is the time to wait for each step of the handshake.
	// If not set, Timeout is used.
	HandshakeTimeout time.Duration
	// MaxIdleTimeout is the time after which the server closes a connection that doesn't send any requests.
	// If not set, it uses protocol.DefaultIdleTimeout.
	MaxIdleTimeout time.Duration
	// MaxAttempts is the number of consecutive timeouts tolerated for a single window,
	// before the transfer is aborted.
	// If not set, it uses protocol.DefaultMaxAttempts.
	MaxAttempts int
	// Reliability is the probability that an outgoing datagram is actually sent.
	// Values below 1 simulate a lossy network.
	// If not set, no loss is simulated: the zero value means a reliability of 1.0, not 0.0.
	// To drop every datagram (a reliability of 0.0), use a negative value.
	Reliability float64
	// Rand is used to decide which datagrams are dropped.
	// If not set, a pseudo-random source seeded from the current time is used.
	Rand RandomSource
	// MaxSendRate limits the number of datagrams sent per second.
	// If not set, sending is not paced.
	MaxSendRate float64
	// MaxConnections is the maximum number of concurrent client connections of a server.
	// If not set, the number of connections is not limited.
	MaxConnections int
	// Tracer is called for every new connection.
	// It may return nil.
	Tracer func(context.Context, logging.Perspective, ConnectionID) *logging.ConnectionTracer
	// Logger is used for debug logging.
	// If not set, the logger configured by the UDPFTP_LOG_LEVEL environment variable is used.
	Logger *slog.Logger
}

// Completion says how a download terminated.
type Completion uint8

const (
	// CompletionEndReceived is used when the server's End message was received.
	CompletionEndReceived Completion = iota
	// CompletionIdleTimeout is used when no message was received for the configured timeout.
	// The download might be incomplete.
	CompletionIdleTimeout
	// CompletionAborted is used when the server aborted the transfer.
	CompletionAborted
)

func (c Completion) String() string {
	switch c {
	case CompletionEndReceived:
		return "end received"
	case CompletionIdleTimeout:
		return "idle timeout"
	case CompletionAborted:
		return "aborted"
	default:
		return "unknown completion"
	}
}

// A BlockRange is an inclusive range of sequence numbers.
type BlockRange struct {
	Start, End SequenceNumber
}

// Len returns the number of blocks in the range.
func (r BlockRange) Len() int { return int(uint64(r.End-r.Start) + 1) }

func (r BlockRange) String() string {
	if r.Start == r.End {
		return strconv.FormatUint(uint64(r.Start), 10)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// FetchResult is the result of a download.
// The data is delivered even if it is incomplete, or doesn't match the announced checksum.
type FetchResult struct {
	Filename string
	// Data is the concatenation of all received blocks, in sequence number order.
	Data []byte
	// Blocks is the number of distinct blocks received.
	Blocks int
	// Missing are the ranges of blocks that were never received, in ascending order.
	Missing []BlockRange
	// AnnouncedChecksum is the hex-encoded hash announced by the server.
	// It is empty if the announcement was lost.
	AnnouncedChecksum string
	// ComputedChecksum is the hex-encoded hash of Data.
	ComputedChecksum string
	Verdict          Verdict
	Completion       Completion
}

// MissingBlocks returns the number of blocks that were never received.
func (r *FetchResult) MissingBlocks() int {
	var n int
	for _, br := range r.Missing {
		n += br.Len()
	}
	return n
}

// Complete says if the End message was received and no block is missing.
func (r *FetchResult) Complete() bool {
	return r.Completion == CompletionEndReceived && len(r.Missing) == 0
}

// IntegrityErr returns an error if the data doesn't match the announced checksum,
// or if the checksum is unknown.
func (r *FetchResult) IntegrityErr() error {
	switch r.Verdict {
	case VerdictMatch:
		return nil
	case VerdictMismatch:
		return &ChecksumMismatchError{Announced: r.AnnouncedChecksum, Computed: r.ComputedChecksum}
	default:
		return ErrChecksumUnavailable
	}
}
