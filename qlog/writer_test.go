package qlog

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"testing"

	"github.com/udpftp/udpftp/logging"

	"github.com/stretchr/testify/require"
)

type nopWriteCloserImpl struct{ io.Writer }

func (nopWriteCloserImpl) Close() error { return nil }

func nopWriteCloser(w io.Writer) io.WriteCloser {
	return &nopWriteCloserImpl{Writer: w}
}

type limitedWriter struct {
	io.WriteCloser
	N       int
	written int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.N {
		return 0, errors.New("writer full")
	}
	n, err := w.WriteCloser.Write(p)
	w.written += n
	return n, err
}

func TestWritingStopping(t *testing.T) {
	buf := &bytes.Buffer{}
	tracer := NewConnectionTracer(
		&limitedWriter{WriteCloser: nopWriteCloser(buf), N: 500},
		logging.PerspectiveServer,
		logging.ConnectionID{0xde, 0xad, 0xbe, 0xef},
	)
	for i := range 1000 {
		tracer.AcknowledgedWindow(logging.SequenceNumber(i))
	}

	var logBuf bytes.Buffer
	log.SetOutput(&logBuf)
	defer log.SetOutput(os.Stdout)

	tracer.Close()
	require.Contains(t, logBuf.String(), "writer full")
	require.LessOrEqual(t, buf.Len(), 500)
}

func TestEventsAfterCloseAreDropped(t *testing.T) {
	buf := &bytes.Buffer{}
	tracer := NewConnectionTracer(nopWriteCloser(buf), logging.PerspectiveClient, logging.ConnectionID{})
	tracer.AcknowledgedWindow(4)
	tracer.Close()
	n := buf.Len()

	tracer.AcknowledgedWindow(9)
	tracer.Close() // closing twice is a no-op
	require.Equal(t, n, buf.Len())
	require.Len(t, bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte{'\n'}), 2)
}
