package protocol

import (
	"fmt"
	"math"
)

// A SequenceNumber identifies a data block's position in the transferred stream.
// It is carried on the wire as a 4-byte big-endian integer.
type SequenceNumber uint32

// MaxSequenceNumber is the largest sequence number that can be encoded.
// Since the terminal marker carries the number of data blocks, a transfer may
// contain at most MaxSequenceNumber data blocks. Sequence numbers never wrap.
const MaxSequenceNumber SequenceNumber = math.MaxUint32

// IsWindowBoundary says if seq is the last sequence number of a window.
// Boundaries are windowSize-1, 2*windowSize-1, ...
func (s SequenceNumber) IsWindowBoundary(windowSize int) bool {
	return (uint64(s)+1)%uint64(windowSize) == 0
}

// A ByteCount is a number of bytes
type ByteCount int64

// Perspective determines if we're acting as a server or a client
type Perspective int

// the perspectives
const (
	PerspectiveServer Perspective = 1
	PerspectiveClient Perspective = 2
)

// Opposite returns the perspective of the peer
func (p Perspective) Opposite() Perspective {
	return 3 - p
}

func (p Perspective) String() string {
	switch p {
	case PerspectiveServer:
		return "server"
	case PerspectiveClient:
		return "client"
	default:
		return "invalid perspective"
	}
}

// ConnState is the state of the handshake state machine.
type ConnState uint8

const (
	// StateClosed is the initial state of the initiator, and the final state of every connection.
	StateClosed ConnState = iota
	// StateSynSent: the initiator sent a SYN and waits for the SYN-ACK.
	StateSynSent
	// StateListening is the initial state of the responder.
	StateListening
	// StateSynReceived: the responder received a SYN and replied with a SYN-ACK.
	StateSynReceived
	// StateEstablished: the parameters have been negotiated.
	StateEstablished
)

func (s ConnState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateSynSent:
		return "syn_sent"
	case StateListening:
		return "listening"
	case StateSynReceived:
		return "syn_received"
	case StateEstablished:
		return "established"
	default:
		return fmt.Sprintf("unknown state (%d)", s)
	}
}
