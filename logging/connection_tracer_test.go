package logging

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMultiplexingNilTracers(t *testing.T) {
	require.Nil(t, NewMultiplexedConnectionTracer())
	require.Nil(t, NewMultiplexedConnectionTracer(nil, nil))
}

func TestMultiplexingSingleTracer(t *testing.T) {
	tr := &ConnectionTracer{}
	require.Same(t, tr, NewMultiplexedConnectionTracer(nil, tr))
}

func TestMultiplexedConnectionTracer(t *testing.T) {
	var events1, events2 []string
	tr1 := &ConnectionTracer{
		StartedConnection: func(local, remote net.Addr) { events1 = append(events1, "started "+remote.String()) },
		UpdatedState:      func(old, new ConnState) { events1 = append(events1, old.String()+"->"+new.String()) },
		NegotiatedParameters: func(blockSize, windowSize int, _ time.Duration) {
			require.Equal(t, 1024, blockSize)
			require.Equal(t, 5, windowSize)
			events1 = append(events1, "negotiated")
		},
		SentMessage: func(typ MessageType, size ByteCount, dropped bool) {
			events1 = append(events1, "sent "+typ.String())
		},
		RetransmittedWindow: func(start, end SequenceNumber, attempt int) {
			require.EqualValues(t, 5, start)
			require.EqualValues(t, 9, end)
			require.Equal(t, 2, attempt)
			events1 = append(events1, "retransmitted")
		},
		CompletedTransfer: func(s TransferSummary) { events1 = append(events1, "completed "+s.Filename) },
		ClosedConnection:  func(err error) { events1 = append(events1, "closed: "+err.Error()) },
	}
	// the second tracer only implements a few callbacks
	tr2 := &ConnectionTracer{
		SentMessage:     func(typ MessageType, size ByteCount, dropped bool) { events2 = append(events2, "sent") },
		DroppedDatagram: func(size ByteCount, reason DatagramDropReason) { events2 = append(events2, reason.String()) },
		Close:           func() { events2 = append(events2, "close") },
	}
	tr := NewMultiplexedConnectionTracer(tr1, tr2)

	tr.StartedConnection(&net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 2212}, &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 1234})
	tr.UpdatedState(StateClosed, StateSynSent)
	tr.NegotiatedParameters(1024, 5, time.Second)
	tr.SentMessage(MessageTypeData, 1029, false)
	tr.ReceivedMessage(MessageTypeControl, 12)
	tr.DroppedDatagram(3, DatagramDropParseError)
	tr.StartedTransfer("foo.txt", 100)
	tr.AcknowledgedWindow(4)
	tr.RetransmittedWindow(5, 9, 2)
	tr.CompletedTransfer(TransferSummary{Filename: "foo.txt"})
	tr.ClosedConnection(errors.New("bye"))
	tr.Close()

	require.Equal(t, []string{
		"started 127.0.0.1:1234",
		"closed->syn_sent",
		"negotiated",
		"sent data",
		"retransmitted",
		"completed foo.txt",
		"closed: bye",
	}, events1)
	require.Equal(t, []string{"sent", "parse_error", "close"}, events2)
}
