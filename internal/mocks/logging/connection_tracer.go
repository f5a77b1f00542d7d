//go:build !gomock && !generate

package mocklogging

import (
	"net"
	"time"

	"github.com/udpftp/udpftp/internal/mocks/logging/internal"
	"github.com/udpftp/udpftp/logging"

	"go.uber.org/mock/gomock"
)

type MockConnectionTracer = internal.MockConnectionTracer

func NewMockConnectionTracer(ctrl *gomock.Controller) (*logging.ConnectionTracer, *MockConnectionTracer) {
	t := internal.NewMockConnectionTracer(ctrl)
	return &logging.ConnectionTracer{
		StartedConnection: func(local, remote net.Addr) {
			t.StartedConnection(local, remote)
		},
		UpdatedState: func(old, new logging.ConnState) {
			t.UpdatedState(old, new)
		},
		NegotiatedParameters: func(blockSize, windowSize int, handshakeDuration time.Duration) {
			t.NegotiatedParameters(blockSize, windowSize, handshakeDuration)
		},
		SentMessage: func(typ logging.MessageType, size logging.ByteCount, dropped bool) {
			t.SentMessage(typ, size, dropped)
		},
		ReceivedMessage: func(typ logging.MessageType, size logging.ByteCount) {
			t.ReceivedMessage(typ, size)
		},
		DroppedDatagram: func(size logging.ByteCount, reason logging.DatagramDropReason) {
			t.DroppedDatagram(size, reason)
		},
		StartedTransfer: func(filename string, size logging.ByteCount) {
			t.StartedTransfer(filename, size)
		},
		AcknowledgedWindow: func(boundary logging.SequenceNumber) {
			t.AcknowledgedWindow(boundary)
		},
		RetransmittedWindow: func(start, end logging.SequenceNumber, attempt int) {
			t.RetransmittedWindow(start, end, attempt)
		},
		CompletedTransfer: func(s logging.TransferSummary) {
			t.CompletedTransfer(s)
		},
		ClosedConnection: func(e error) {
			t.ClosedConnection(e)
		},
		Close: func() {
			t.Close()
		},
	}, t
}
