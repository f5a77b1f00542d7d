package wire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/udpftp/udpftp/internal/protocol"
)

// A MessageType is the first byte of every datagram.
type MessageType uint8

const (
	// MessageTypeControl carries a text message (handshake, commands, acknowledgments, errors).
	MessageTypeControl MessageType = 0x01
	// MessageTypeData carries a sequence-numbered data block.
	MessageTypeData MessageType = 0x02
	// MessageTypeEnd is the terminal marker of a transfer.
	MessageTypeEnd MessageType = 0x03
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeControl:
		return "control"
	case MessageTypeData:
		return "data"
	case MessageTypeEnd:
		return "end"
	default:
		return fmt.Sprintf("unknown message type: %#x", uint8(t))
	}
}

var endMarker = []byte("END")

var (
	errEmptyDatagram  = errors.New("empty datagram")
	errTooShort       = errors.New("datagram too short")
	errInvalidEnd     = errors.New("invalid terminal marker")
	errUnknownMessage = errors.New("unknown message type")
)

// A Message is a datagram exchanged between client and server.
// It is one of *Control, *Data or *End.
type Message interface {
	Type() MessageType
	Append(b []byte) []byte
	Length() int
}

// Control is a text message.
type Control struct {
	Text string
}

// Data is a data block.
type Data struct {
	Sequence protocol.SequenceNumber
	Payload  []byte
}

// End is the terminal marker. Its sequence number is the number of data blocks sent.
type End struct {
	Sequence protocol.SequenceNumber
}

var (
	_ Message = &Control{}
	_ Message = &Data{}
	_ Message = &End{}
)

func (c *Control) Type() MessageType { return MessageTypeControl }
func (d *Data) Type() MessageType    { return MessageTypeData }
func (e *End) Type() MessageType     { return MessageTypeEnd }

func (c *Control) Append(b []byte) []byte {
	b = append(b, byte(MessageTypeControl))
	return append(b, c.Text...)
}

func (d *Data) Append(b []byte) []byte {
	b = append(b, byte(MessageTypeData))
	b = binary.BigEndian.AppendUint32(b, uint32(d.Sequence))
	return append(b, d.Payload...)
}

func (e *End) Append(b []byte) []byte {
	b = append(b, byte(MessageTypeEnd))
	b = binary.BigEndian.AppendUint32(b, uint32(e.Sequence))
	return append(b, endMarker...)
}

func (c *Control) Length() int { return 1 + len(c.Text) }
func (d *Data) Length() int    { return protocol.DataHeaderSize + len(d.Payload) }
func (e *End) Length() int     { return protocol.DataHeaderSize + len(endMarker) }

// Parse decodes a single datagram.
// The payload of a data block is copied, so b may be reused by the caller.
func Parse(b []byte) (Message, error) {
	if len(b) == 0 {
		return nil, errEmptyDatagram
	}
	typ := MessageType(b[0])
	b = b[1:]
	switch typ {
	case MessageTypeControl:
		return &Control{Text: string(b)}, nil
	case MessageTypeData:
		if len(b) < 4 {
			return nil, errTooShort
		}
		payload := make([]byte, len(b)-4)
		copy(payload, b[4:])
		return &Data{
			Sequence: protocol.SequenceNumber(binary.BigEndian.Uint32(b)),
			Payload:  payload,
		}, nil
	case MessageTypeEnd:
		if len(b) < 4 {
			return nil, errTooShort
		}
		if string(b[4:]) != string(endMarker) {
			return nil, errInvalidEnd
		}
		return &End{Sequence: protocol.SequenceNumber(binary.BigEndian.Uint32(b))}, nil
	default:
		return nil, fmt.Errorf("%w: %#x", errUnknownMessage, uint8(typ))
	}
}
