package udpftp

import (
	"errors"

	"github.com/udpftp/udpftp/internal/qerr"
)

type (
	HandshakeTimeoutError  = qerr.HandshakeTimeoutError
	HandshakeRejectedError = qerr.HandshakeRejectedError
	FileNotFoundError      = qerr.FileNotFoundError
	TransferAbortedError   = qerr.TransferAbortedError
	ChecksumMismatchError  = qerr.ChecksumMismatchError
	TransportError         = qerr.TransportError
	TimeoutError           = qerr.TimeoutError
)

// ErrChecksumUnavailable is returned by FetchResult.IntegrityErr if the checksum announcement was lost.
var ErrChecksumUnavailable = qerr.ErrChecksumUnavailable

// ErrServerClosed is returned by Server.Serve after a call to Close.
var ErrServerClosed = errors.New("udpftp: server closed")

// ErrConnectionClosed is returned when using a Conn after it was closed.
var ErrConnectionClosed = errors.New("udpftp: connection closed")

// A RequestError is returned when the server answered a request with an ERROR message.
type RequestError struct {
	Op     string
	Reason string
}

func (e *RequestError) Error() string {
	return "udpftp: " + e.Op + " failed: " + e.Reason
}

func (e *RequestError) Is(target error) bool {
	_, ok := target.(*RequestError)
	return ok
}
