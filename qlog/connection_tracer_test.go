package qlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/udpftp/udpftp/internal/qerr"
	"github.com/udpftp/udpftp/logging"

	"github.com/stretchr/testify/require"
)

type entry struct {
	Time  float64
	Name  string
	Event map[string]any
}

func decodeRecords(t *testing.T, data []byte) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		require.True(t, strings.HasPrefix(line, "\x1e"), "record doesn't start with a record separator: %q", line)
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line[1:]), &m))
		records = append(records, m)
	}
	return records
}

func exportAndParse(t *testing.T, buf *bytes.Buffer) (header map[string]any, entries []entry) {
	t.Helper()
	records := decodeRecords(t, buf.Bytes())
	require.NotEmpty(t, records)
	header = records[0]
	for _, r := range records[1:] {
		require.Contains(t, r, "time")
		require.Contains(t, r, "name")
		require.Contains(t, r, "data")
		entries = append(entries, entry{
			Time:  r["time"].(float64),
			Name:  r["name"].(string),
			Event: r["data"].(map[string]any),
		})
	}
	return header, entries
}

func newTracer(t *testing.T, p logging.Perspective) (*logging.ConnectionTracer, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	connID := logging.ConnectionID{0xde, 0xad, 0xbe, 0xef}
	return NewConnectionTracer(nopWriteCloser(buf), p, connID), buf
}

func TestTraceHeader(t *testing.T) {
	tracer, buf := newTracer(t, logging.PerspectiveServer)
	tracer.Close()

	header, entries := exportAndParse(t, buf)
	require.Empty(t, entries)
	require.Equal(t, "JSON-SEQ", header["qlog_format"])
	require.Equal(t, "0.3", header["qlog_version"])
	require.Equal(t, "udpftp qlog", header["title"])
	require.Contains(t, header["configuration"], "code_version")

	tr := header["trace"].(map[string]any)
	require.Equal(t, map[string]any{"type": "server"}, tr["vantage_point"])
	common := tr["common_fields"].(map[string]any)
	require.Equal(t, "deadbeef-0000-0000-0000-000000000000", common["group_id"])
	require.Equal(t, "UDPFTP", common["protocol_type"])
	require.Equal(t, "relative", common["time_format"])
	refTime := time.UnixMilli(int64(common["reference_time"].(float64)))
	require.WithinDuration(t, time.Now(), refTime, 10*time.Second)
}

func TestConnectionEvents(t *testing.T) {
	tracer, buf := newTracer(t, logging.PerspectiveClient)
	tracer.StartedConnection(
		&net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 1234},
		&net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 2212},
	)
	tracer.UpdatedState(logging.StateClosed, logging.StateSynSent)
	tracer.NegotiatedParameters(1024, 5, 1500*time.Microsecond)
	tracer.SentMessage(logging.MessageTypeControl, 4, false)
	tracer.SentMessage(logging.MessageTypeData, 1029, true)
	tracer.ReceivedMessage(logging.MessageTypeEnd, 8)
	tracer.DroppedDatagram(3, logging.DatagramDropParseError)
	tracer.ClosedConnection(&qerr.TimeoutError{Op: "idle"})
	tracer.ClosedConnection(nil)
	tracer.Close()

	_, entries := exportAndParse(t, buf)
	require.Len(t, entries, 9)
	for i := 1; i < len(entries); i++ {
		require.GreaterOrEqual(t, entries[i].Time, entries[i-1].Time)
	}

	require.Equal(t, "transport:connection_started", entries[0].Name)
	require.Equal(t, map[string]any{
		"ip_version": "ipv4",
		"local":      "127.0.0.1:1234",
		"remote":     "127.0.0.1:2212",
	}, entries[0].Event)

	require.Equal(t, "transport:connection_state_updated", entries[1].Name)
	require.Equal(t, map[string]any{"old": "closed", "new": "syn_sent"}, entries[1].Event)

	require.Equal(t, "transport:parameters_set", entries[2].Name)
	require.Equal(t, map[string]any{
		"block_size":         float64(1024),
		"window_size":        float64(5),
		"handshake_duration": 1.5,
	}, entries[2].Event)

	require.Equal(t, "transport:message_sent", entries[3].Name)
	require.Equal(t, map[string]any{"message_type": "control", "length": float64(4)}, entries[3].Event)
	require.Equal(t, "transport:message_sent", entries[4].Name)
	require.Equal(t, true, entries[4].Event["dropped"])

	require.Equal(t, "transport:message_received", entries[5].Name)
	require.Equal(t, map[string]any{"message_type": "end", "length": float64(8)}, entries[5].Event)

	require.Equal(t, "transport:datagram_dropped", entries[6].Name)
	require.Equal(t, map[string]any{"length": float64(3), "trigger": "parse_error"}, entries[6].Event)

	require.Equal(t, "transport:connection_closed", entries[7].Name)
	require.Equal(t, "error", entries[7].Event["trigger"])
	require.Contains(t, entries[7].Event["reason"], "idle")
	require.Equal(t, map[string]any{"trigger": "clean"}, entries[8].Event)
}

func TestServerTransferEvents(t *testing.T) {
	tracer, buf := newTracer(t, logging.PerspectiveServer)
	tracer.StartedTransfer("foo.txt", 12500)
	tracer.AcknowledgedWindow(4)
	tracer.RetransmittedWindow(5, 9, 1)
	tracer.CompletedTransfer(logging.TransferSummary{
		Filename:        "foo.txt",
		Blocks:          13,
		Bytes:           12500,
		Retransmissions: 5,
	})
	tracer.CompletedTransfer(logging.TransferSummary{
		Filename: "foo.txt",
		Err:      &qerr.TransferAbortedError{Attempts: 5, WindowStart: 5, WindowEnd: 9},
	})
	tracer.Close()

	_, entries := exportAndParse(t, buf)
	require.Len(t, entries, 5)
	require.Equal(t, "transfer:started", entries[0].Name)
	require.Equal(t, map[string]any{"filename": "foo.txt", "size": float64(12500)}, entries[0].Event)
	require.Equal(t, "transfer:window_acknowledged", entries[1].Name)
	require.Equal(t, map[string]any{"boundary": float64(4)}, entries[1].Event)
	require.Equal(t, "transfer:window_retransmitted", entries[2].Name)
	require.Equal(t, map[string]any{"start": float64(5), "end": float64(9), "attempt": float64(1)}, entries[2].Event)
	require.Equal(t, "transfer:completed", entries[3].Name)
	require.Equal(t, map[string]any{
		"filename":        "foo.txt",
		"blocks":          float64(13),
		"bytes":           float64(12500),
		"retransmissions": float64(5),
	}, entries[3].Event)
	require.Contains(t, entries[4].Event, "error")
	require.NotContains(t, entries[4].Event, "verdict")
}

func TestClientTransferEvents(t *testing.T) {
	tracer, buf := newTracer(t, logging.PerspectiveClient)
	tracer.StartedTransfer("foo.txt", -1)
	tracer.CompletedTransfer(logging.TransferSummary{
		Filename:    "foo.txt",
		Blocks:      12,
		Bytes:       11000,
		Missing:     1,
		EndReceived: true,
		Verdict:     logging.VerdictMismatch,
	})
	tracer.CompletedTransfer(logging.TransferSummary{
		Filename: "bar.txt",
		Err:      errors.New("file not found"),
	})
	tracer.Close()

	_, entries := exportAndParse(t, buf)
	require.Len(t, entries, 3)
	// the receiver doesn't know the size of the file
	require.Equal(t, map[string]any{"filename": "foo.txt"}, entries[0].Event)
	require.Equal(t, map[string]any{
		"filename":     "foo.txt",
		"blocks":       float64(12),
		"bytes":        float64(11000),
		"missing":      float64(1),
		"end_received": true,
		"verdict":      logging.VerdictMismatch.String(),
	}, entries[1].Event)
	require.Equal(t, "file not found", entries[2].Event["error"])
}
