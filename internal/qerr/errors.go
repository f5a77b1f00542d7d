package qerr

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/udpftp/udpftp/internal/protocol"
)

// ErrChecksumUnavailable is returned when the sender's checksum never arrived.
// The transferred data can't be verified, but it is still delivered.
var ErrChecksumUnavailable = errors.New("checksum unavailable")

// A HandshakeTimeoutError occurs when the peer didn't respond during the handshake.
type HandshakeTimeoutError struct {
	State   protocol.ConnState // the state the handshake was stuck in
	Timeout time.Duration
}

var _ error = &HandshakeTimeoutError{}

func (e *HandshakeTimeoutError) Timeout() bool   { return true }
func (e *HandshakeTimeoutError) Temporary() bool { return false }
func (e *HandshakeTimeoutError) Error() string {
	return fmt.Sprintf("timeout: handshake did not complete in time (state: %s, timeout: %s)", e.State, e.Timeout)
}

func (e *HandshakeTimeoutError) Is(target error) bool {
	_, ok := target.(*HandshakeTimeoutError)
	return ok
}

// A HandshakeRejectedError occurs when the peer replied, but not with what the handshake expected.
type HandshakeRejectedError struct {
	Reason string
}

var _ error = &HandshakeRejectedError{}

func (e *HandshakeRejectedError) Error() string {
	return "handshake rejected: " + e.Reason
}

func (e *HandshakeRejectedError) Is(target error) bool {
	_, ok := target.(*HandshakeRejectedError)
	return ok
}

// A FileNotFoundError is returned when the requested file doesn't exist in the file store.
type FileNotFoundError struct {
	Name   string
	Remote bool
}

var _ error = &FileNotFoundError{}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found (%s): %s", location(e.Remote), e.Name)
}

func (e *FileNotFoundError) Is(target error) bool {
	_, ok := target.(*FileNotFoundError)
	return ok
}

// A TransferAbortedError occurs when the sender exhausted its retransmission budget,
// or when the receiver was told so by the sender.
type TransferAbortedError struct {
	Remote bool
	// Reason is the reason sent by the peer, if Remote is set.
	Reason string
	// Attempts is the number of consecutive timeouts for the last window.
	// It is only known to the sender.
	Attempts int
	// WindowStart and WindowEnd are the bounds of the window that couldn't be delivered.
	// They are only known to the sender.
	WindowStart, WindowEnd protocol.SequenceNumber
}

var _ error = &TransferAbortedError{}

func (e *TransferAbortedError) Error() string {
	if e.Remote {
		if e.Reason == "" {
			return "transfer aborted (remote)"
		}
		return "transfer aborted (remote): " + e.Reason
	}
	return fmt.Sprintf("transfer aborted (local): no acknowledgment for blocks %d-%d after %d attempts", e.WindowStart, e.WindowEnd, e.Attempts)
}

func (e *TransferAbortedError) Is(target error) bool {
	_, ok := target.(*TransferAbortedError)
	return ok
}

// A ChecksumMismatchError is returned when the received data doesn't match the announced checksum.
type ChecksumMismatchError struct {
	Announced, Computed string
}

var _ error = &ChecksumMismatchError{}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: announced %s, computed %s", e.Announced, e.Computed)
}

func (e *ChecksumMismatchError) Is(target error) bool {
	_, ok := target.(*ChecksumMismatchError)
	return ok
}

// A TransportError is an I/O error on the underlying socket.
// Simulated packet loss is never reported as a TransportError.
type TransportError struct {
	Op  string
	Err error
}

var _ error = &TransportError{}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s: %s", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool {
	_, ok := target.(*TransportError)
	if ok {
		return true
	}
	return target == net.ErrClosed && errors.Is(e.Err, net.ErrClosed)
}

// A TimeoutError occurs when the peer didn't respond to a request.
type TimeoutError struct {
	Op      string
	Timeout time.Duration
}

var _ error = &TimeoutError{}

func (e *TimeoutError) Timeout() bool   { return true }
func (e *TimeoutError) Temporary() bool { return false }
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout: no response to %s within %s", e.Op, e.Timeout)
}

func (e *TimeoutError) Is(target error) bool {
	_, ok := target.(*TimeoutError)
	return ok
}

func location(remote bool) string {
	if remote {
		return "remote"
	}
	return "local"
}
