package qlog

import (
	"net"
	"time"

	"github.com/udpftp/udpftp/logging"

	"github.com/francoispqt/gojay"
)

func milliseconds(dur time.Duration) float64 { return float64(dur.Nanoseconds()) / 1e6 }

type eventDetails interface {
	Name() string
	gojay.MarshalerJSONObject
}

type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONObject = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("time", milliseconds(e.RelativeTime))
	enc.StringKey("name", e.Name())
	enc.ObjectKey("data", e.eventDetails)
}

type eventConnectionStarted struct {
	Local, Remote net.Addr
}

func (e eventConnectionStarted) Name() string { return "transport:connection_started" }
func (e eventConnectionStarted) IsNil() bool  { return false }

func (e eventConnectionStarted) MarshalJSONObject(enc *gojay.Encoder) {
	if udpAddr, ok := e.Local.(*net.UDPAddr); ok {
		if udpAddr.IP.To4() == nil {
			enc.StringKey("ip_version", "ipv6")
		} else {
			enc.StringKey("ip_version", "ipv4")
		}
	}
	enc.StringKey("local", e.Local.String())
	enc.StringKey("remote", e.Remote.String())
}

type eventConnectionStateUpdated struct {
	Old, New logging.ConnState
}

func (e eventConnectionStateUpdated) Name() string { return "transport:connection_state_updated" }
func (e eventConnectionStateUpdated) IsNil() bool  { return false }

func (e eventConnectionStateUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("old", e.Old.String())
	enc.StringKey("new", e.New.String())
}

type eventParametersSet struct {
	BlockSize, WindowSize int
	HandshakeDuration     time.Duration
}

func (e eventParametersSet) Name() string { return "transport:parameters_set" }
func (e eventParametersSet) IsNil() bool  { return false }

func (e eventParametersSet) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("block_size", e.BlockSize)
	enc.IntKey("window_size", e.WindowSize)
	enc.Float64Key("handshake_duration", milliseconds(e.HandshakeDuration))
}

type eventMessageSent struct {
	Type    logging.MessageType
	Length  logging.ByteCount
	Dropped bool
}

func (e eventMessageSent) Name() string { return "transport:message_sent" }
func (e eventMessageSent) IsNil() bool  { return false }

func (e eventMessageSent) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("message_type", e.Type.String())
	enc.Int64Key("length", int64(e.Length))
	// the simulated lossy transport discarded the message
	enc.BoolKeyOmitEmpty("dropped", e.Dropped)
}

type eventMessageReceived struct {
	Type   logging.MessageType
	Length logging.ByteCount
}

func (e eventMessageReceived) Name() string { return "transport:message_received" }
func (e eventMessageReceived) IsNil() bool  { return false }

func (e eventMessageReceived) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("message_type", e.Type.String())
	enc.Int64Key("length", int64(e.Length))
}

type eventDatagramDropped struct {
	Length  logging.ByteCount
	Trigger logging.DatagramDropReason
}

func (e eventDatagramDropped) Name() string { return "transport:datagram_dropped" }
func (e eventDatagramDropped) IsNil() bool  { return false }

func (e eventDatagramDropped) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Int64Key("length", int64(e.Length))
	enc.StringKey("trigger", e.Trigger.String())
}

type eventTransferStarted struct {
	Filename string
	Size     logging.ByteCount
}

func (e eventTransferStarted) Name() string { return "transfer:started" }
func (e eventTransferStarted) IsNil() bool  { return false }

func (e eventTransferStarted) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("filename", e.Filename)
	// the receiver doesn't know the size
	if e.Size >= 0 {
		enc.Int64Key("size", int64(e.Size))
	}
}

type eventWindowAcknowledged struct {
	Boundary logging.SequenceNumber
}

func (e eventWindowAcknowledged) Name() string { return "transfer:window_acknowledged" }
func (e eventWindowAcknowledged) IsNil() bool  { return false }

func (e eventWindowAcknowledged) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint32Key("boundary", uint32(e.Boundary))
}

type eventWindowRetransmitted struct {
	Start, End logging.SequenceNumber
	Attempt    int
}

func (e eventWindowRetransmitted) Name() string { return "transfer:window_retransmitted" }
func (e eventWindowRetransmitted) IsNil() bool  { return false }

func (e eventWindowRetransmitted) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint32Key("start", uint32(e.Start))
	enc.Uint32Key("end", uint32(e.End))
	enc.IntKey("attempt", e.Attempt)
}

type eventTransferCompleted struct {
	Summary     logging.TransferSummary
	Perspective logging.Perspective
}

func (e eventTransferCompleted) Name() string { return "transfer:completed" }
func (e eventTransferCompleted) IsNil() bool  { return false }

func (e eventTransferCompleted) MarshalJSONObject(enc *gojay.Encoder) {
	s := e.Summary
	enc.StringKey("filename", s.Filename)
	enc.IntKey("blocks", s.Blocks)
	enc.Int64Key("bytes", int64(s.Bytes))
	if e.Perspective == logging.PerspectiveServer {
		enc.IntKey("retransmissions", s.Retransmissions)
	} else {
		enc.IntKey("missing", s.Missing)
		enc.BoolKey("end_received", s.EndReceived)
		enc.StringKey("verdict", s.Verdict.String())
	}
	if s.Err != nil {
		enc.StringKey("error", s.Err.Error())
	}
}

type eventConnectionClosed struct {
	Err error
}

func (e eventConnectionClosed) Name() string { return "transport:connection_closed" }
func (e eventConnectionClosed) IsNil() bool  { return false }

func (e eventConnectionClosed) MarshalJSONObject(enc *gojay.Encoder) {
	if e.Err == nil {
		enc.StringKey("trigger", "clean")
		return
	}
	enc.StringKey("trigger", "error")
	enc.StringKey("reason", e.Err.Error())
}
