// Package logging defines tracing hooks for udpftp connections.
// This package should not be considered stable
package logging

import (
	"net"
	"time"
)

// A ConnectionTracer records events of a single connection.
// Every callback is optional.
type ConnectionTracer struct {
	StartedConnection    func(local, remote net.Addr)
	UpdatedState         func(old, new ConnState)
	NegotiatedParameters func(blockSize, windowSize int, handshakeDuration time.Duration)
	SentMessage          func(typ MessageType, size ByteCount, dropped bool)
	ReceivedMessage      func(typ MessageType, size ByteCount)
	DroppedDatagram      func(size ByteCount, reason DatagramDropReason)
	StartedTransfer      func(filename string, size ByteCount)
	AcknowledgedWindow   func(boundary SequenceNumber)
	RetransmittedWindow  func(start, end SequenceNumber, attempt int)
	CompletedTransfer    func(TransferSummary)
	ClosedConnection     func(error)
	Close                func()
}

// NewMultiplexedConnectionTracer creates a new connection tracer that multiplexes events to multiple tracers.
func NewMultiplexedConnectionTracer(tracers ...*ConnectionTracer) *ConnectionTracer {
	var nonNil []*ConnectionTracer
	for _, t := range tracers {
		if t != nil {
			nonNil = append(nonNil, t)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	}
	tracers = nonNil
	return &ConnectionTracer{
		StartedConnection: func(local, remote net.Addr) {
			for _, t := range tracers {
				if t.StartedConnection != nil {
					t.StartedConnection(local, remote)
				}
			}
		},
		UpdatedState: func(old, new ConnState) {
			for _, t := range tracers {
				if t.UpdatedState != nil {
					t.UpdatedState(old, new)
				}
			}
		},
		NegotiatedParameters: func(blockSize, windowSize int, handshakeDuration time.Duration) {
			for _, t := range tracers {
				if t.NegotiatedParameters != nil {
					t.NegotiatedParameters(blockSize, windowSize, handshakeDuration)
				}
			}
		},
		SentMessage: func(typ MessageType, size ByteCount, dropped bool) {
			for _, t := range tracers {
				if t.SentMessage != nil {
					t.SentMessage(typ, size, dropped)
				}
			}
		},
		ReceivedMessage: func(typ MessageType, size ByteCount) {
			for _, t := range tracers {
				if t.ReceivedMessage != nil {
					t.ReceivedMessage(typ, size)
				}
			}
		},
		DroppedDatagram: func(size ByteCount, reason DatagramDropReason) {
			for _, t := range tracers {
				if t.DroppedDatagram != nil {
					t.DroppedDatagram(size, reason)
				}
			}
		},
		StartedTransfer: func(filename string, size ByteCount) {
			for _, t := range tracers {
				if t.StartedTransfer != nil {
					t.StartedTransfer(filename, size)
				}
			}
		},
		AcknowledgedWindow: func(boundary SequenceNumber) {
			for _, t := range tracers {
				if t.AcknowledgedWindow != nil {
					t.AcknowledgedWindow(boundary)
				}
			}
		},
		RetransmittedWindow: func(start, end SequenceNumber, attempt int) {
			for _, t := range tracers {
				if t.RetransmittedWindow != nil {
					t.RetransmittedWindow(start, end, attempt)
				}
			}
		},
		CompletedTransfer: func(s TransferSummary) {
			for _, t := range tracers {
				if t.CompletedTransfer != nil {
					t.CompletedTransfer(s)
				}
			}
		},
		ClosedConnection: func(err error) {
			for _, t := range tracers {
				if t.ClosedConnection != nil {
					t.ClosedConnection(err)
				}
			}
		},
		Close: func() {
			for _, t := range tracers {
				if t.Close != nil {
					t.Close()
				}
			}
		},
	}
}
