package logging

import (
	"github.com/udpftp/udpftp/internal/integrity"
	"github.com/udpftp/udpftp/internal/protocol"
	"github.com/udpftp/udpftp/internal/wire"
)

type (
	// A ByteCount is used to count bytes.
	ByteCount = protocol.ByteCount
	// A ConnectionID identifies a connection in logs.
	ConnectionID = protocol.ConnectionID
	// The Perspective is the role of a peer: client or server.
	Perspective = protocol.Perspective
	// A ConnState is a state of the handshake state machine.
	ConnState = protocol.ConnState
	// A SequenceNumber is the sequence number of a data block.
	SequenceNumber = protocol.SequenceNumber
	// A MessageType is the type of a datagram.
	MessageType = wire.MessageType
	// A Verdict is the outcome of the integrity check.
	Verdict = integrity.Verdict
)

const (
	// StateClosed is the initial state of a client
	StateClosed = protocol.StateClosed
	// StateSynSent is used after a client sent a SYN
	StateSynSent = protocol.StateSynSent
	// StateListening is the initial state of a server connection
	StateListening = protocol.StateListening
	// StateSynReceived is used after a server received a SYN
	StateSynReceived = protocol.StateSynReceived
	// StateEstablished is used after the parameters have been negotiated
	StateEstablished = protocol.StateEstablished
)

const (
	// PerspectiveServer is used for a server
	PerspectiveServer = protocol.PerspectiveServer
	// PerspectiveClient is used for a client
	PerspectiveClient = protocol.PerspectiveClient
)

const (
	// MessageTypeControl is a text message
	MessageTypeControl = wire.MessageTypeControl
	// MessageTypeData is a data block
	MessageTypeData = wire.MessageTypeData
	// MessageTypeEnd is the terminal marker of a transfer
	MessageTypeEnd = wire.MessageTypeEnd
)

const (
	// VerdictUnknown is used when no checksum was announced
	VerdictUnknown = integrity.VerdictUnknown
	// VerdictMatch is used when the checksums match
	VerdictMatch = integrity.VerdictMatch
	// VerdictMismatch is used when the checksums differ
	VerdictMismatch = integrity.VerdictMismatch
)

// A DatagramDropReason is the reason a received datagram was dropped.
type DatagramDropReason uint8

const (
	// DatagramDropParseError is used when a datagram couldn't be decoded
	DatagramDropParseError DatagramDropReason = iota
	// DatagramDropUnknownPeer is used when a datagram was received from an address without a connection
	DatagramDropUnknownPeer
	// DatagramDropQueueFull is used when a connection has too many unprocessed datagrams
	DatagramDropQueueFull
	// DatagramDropUnexpected is used when a message was received in a state that doesn't expect it
	DatagramDropUnexpected
)

func (r DatagramDropReason) String() string {
	switch r {
	case DatagramDropParseError:
		return "parse_error"
	case DatagramDropUnknownPeer:
		return "unknown_peer"
	case DatagramDropQueueFull:
		return "queue_full"
	case DatagramDropUnexpected:
		return "unexpected"
	default:
		panic("unknown drop reason")
	}
}

// A TransferSummary describes a completed (or failed) transfer.
type TransferSummary struct {
	Filename string
	// Blocks is the number of distinct data blocks sent, or received.
	Blocks int
	// Bytes is the number of payload bytes sent, or reassembled.
	Bytes ByteCount
	// Retransmissions is the number of data blocks sent more than once.
	// It is only known to the sender.
	Retransmissions int
	// Missing is the number of data blocks detected as missing.
	// It is only known to the receiver.
	Missing int
	// EndReceived says if the receiver observed the terminal marker.
	EndReceived bool
	// Verdict is the outcome of the integrity check. It is only known to the receiver.
	Verdict Verdict
	// Err is nil if the transfer completed.
	Err error
}
