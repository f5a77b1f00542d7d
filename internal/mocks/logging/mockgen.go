//go:build gomock || generate

package mocklogging

import (
	"net"
	"time"

	"github.com/udpftp/udpftp/logging"
)

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package internal -destination internal/connection_tracer.go github.com/udpftp/udpftp/internal/mocks/logging ConnectionTracer"
type ConnectionTracer interface {
	StartedConnection(local, remote net.Addr)
	UpdatedState(old, new logging.ConnState)
	NegotiatedParameters(blockSize, windowSize int, handshakeDuration time.Duration)
	SentMessage(typ logging.MessageType, size logging.ByteCount, dropped bool)
	ReceivedMessage(typ logging.MessageType, size logging.ByteCount)
	DroppedDatagram(size logging.ByteCount, reason logging.DatagramDropReason)
	StartedTransfer(filename string, size logging.ByteCount)
	AcknowledgedWindow(boundary logging.SequenceNumber)
	RetransmittedWindow(start, end logging.SequenceNumber, attempt int)
	CompletedTransfer(logging.TransferSummary)
	ClosedConnection(error)
	// Close is called when the connection is closed.
	Close()
}
