package qlog

import (
	"io"
	"net"
	"time"

	"github.com/udpftp/udpftp/logging"
)

type connectionTracer struct {
	w           *writer
	perspective logging.Perspective
}

// NewConnectionTracer creates a new tracer to record a qlog for a connection.
func NewConnectionTracer(w io.WriteCloser, p logging.Perspective, connID logging.ConnectionID) *logging.ConnectionTracer {
	tr := &trace{
		VantagePoint: vantagePoint{Type: p},
		CommonFields: commonFields{
			GroupID:       connID,
			ReferenceTime: time.Now(),
		},
	}
	t := connectionTracer{
		w:           newWriter(w, tr),
		perspective: p,
	}
	go t.w.Run()
	return &logging.ConnectionTracer{
		StartedConnection: func(local, remote net.Addr) {
			t.recordEvent(eventConnectionStarted{Local: local, Remote: remote})
		},
		UpdatedState: func(old, new logging.ConnState) {
			t.recordEvent(eventConnectionStateUpdated{Old: old, New: new})
		},
		NegotiatedParameters: func(blockSize, windowSize int, handshakeDuration time.Duration) {
			t.recordEvent(eventParametersSet{
				BlockSize:         blockSize,
				WindowSize:        windowSize,
				HandshakeDuration: handshakeDuration,
			})
		},
		SentMessage: func(typ logging.MessageType, size logging.ByteCount, dropped bool) {
			t.recordEvent(eventMessageSent{Type: typ, Length: size, Dropped: dropped})
		},
		ReceivedMessage: func(typ logging.MessageType, size logging.ByteCount) {
			t.recordEvent(eventMessageReceived{Type: typ, Length: size})
		},
		DroppedDatagram: func(size logging.ByteCount, reason logging.DatagramDropReason) {
			t.recordEvent(eventDatagramDropped{Length: size, Trigger: reason})
		},
		StartedTransfer: func(filename string, size logging.ByteCount) {
			t.recordEvent(eventTransferStarted{Filename: filename, Size: size})
		},
		AcknowledgedWindow: func(boundary logging.SequenceNumber) {
			t.recordEvent(eventWindowAcknowledged{Boundary: boundary})
		},
		RetransmittedWindow: func(start, end logging.SequenceNumber, attempt int) {
			t.recordEvent(eventWindowRetransmitted{Start: start, End: end, Attempt: attempt})
		},
		CompletedTransfer: func(s logging.TransferSummary) {
			t.recordEvent(eventTransferCompleted{Summary: s, Perspective: t.perspective})
		},
		ClosedConnection: func(err error) {
			t.recordEvent(eventConnectionClosed{Err: err})
		},
		Close: func() { t.w.Close() },
	}
}

func (t *connectionTracer) recordEvent(details eventDetails) {
	t.w.RecordEvent(time.Now(), details)
}
