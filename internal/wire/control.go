package wire

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/udpftp/udpftp/internal/integrity"
	"github.com/udpftp/udpftp/internal/protocol"
)

// The literal control messages.
const (
	TextSyn    = "SYN"
	TextSynAck = "SYN-ACK"
	TextAck    = "ACK"
	TextList   = "ls"
	TextBye    = "bye"
)

const (
	parametersPrefix = "ACK "
	ackBlockPrefix   = "ACK_Block "
	getPrefix        = "get "
	checksumPrefix   = "CHECKSUM:"
	errorPrefix      = "ERROR:"
	listSeparator    = ", "
)

// Reasons sent in ERROR messages.
const (
	ReasonFileNotFound    = "file not found"
	ReasonTransferAborted = "transfer aborted"
	ReasonServerBusy      = "server busy"
)

// A ControlKind classifies a control message by its text.
// File listings can't be recognized by their content (a file might be called "bye"),
// so the receiver has to interpret KindText depending on what it's waiting for.
type ControlKind uint8

const (
	KindText ControlKind = iota
	KindSyn
	KindSynAck
	KindAck
	KindParameters
	KindList
	KindGet
	KindChecksum
	KindAckBlock
	KindBye
	KindError
)

func (k ControlKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindSyn:
		return "syn"
	case KindSynAck:
		return "syn_ack"
	case KindAck:
		return "ack"
	case KindParameters:
		return "parameters"
	case KindList:
		return "list"
	case KindGet:
		return "get"
	case KindChecksum:
		return "checksum"
	case KindAckBlock:
		return "ack_block"
	case KindBye:
		return "bye"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("unknown control kind (%d)", k)
	}
}

// Kind classifies the control message.
func (c *Control) Kind() ControlKind {
	switch c.Text {
	case TextSyn:
		return KindSyn
	case TextSynAck:
		return KindSynAck
	case TextAck:
		return KindAck
	case TextList:
		return KindList
	case TextBye:
		return KindBye
	}
	switch {
	case strings.HasPrefix(c.Text, ackBlockPrefix):
		return KindAckBlock
	case strings.HasPrefix(c.Text, parametersPrefix):
		return KindParameters
	case strings.HasPrefix(c.Text, getPrefix):
		return KindGet
	case strings.HasPrefix(c.Text, checksumPrefix):
		return KindChecksum
	case strings.HasPrefix(c.Text, errorPrefix):
		return KindError
	}
	return KindText
}

// NewParameters creates the message announcing the negotiated parameters.
func NewParameters(blockSize, windowSize int) *Control {
	return &Control{Text: fmt.Sprintf("%s%d %d", parametersPrefix, blockSize, windowSize)}
}

// ParseParameters parses an "ACK <blockSize> <windowSize>" message.
func ParseParameters(c *Control) (blockSize, windowSize int, err error) {
	if c.Kind() != KindParameters {
		return 0, 0, fmt.Errorf("not a parameters message: %q", c.Text)
	}
	fields := strings.Fields(strings.TrimPrefix(c.Text, parametersPrefix))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("invalid parameters message: %q", c.Text)
	}
	blockSize, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid block size: %w", err)
	}
	windowSize, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid window size: %w", err)
	}
	if blockSize < 1 || blockSize > protocol.MaxBlockSize {
		return 0, 0, fmt.Errorf("block size out of range: %d", blockSize)
	}
	if windowSize < 1 || windowSize > protocol.MaxWindowSize {
		return 0, 0, fmt.Errorf("window size out of range: %d", windowSize)
	}
	return blockSize, windowSize, nil
}

// NewAckBlock creates the cumulative acknowledgment for a window boundary.
func NewAckBlock(seq protocol.SequenceNumber) *Control {
	return &Control{Text: ackBlockPrefix + strconv.FormatUint(uint64(seq), 10)}
}

// ParseAckBlock parses an "ACK_Block <seq>" message.
func ParseAckBlock(c *Control) (protocol.SequenceNumber, error) {
	if c.Kind() != KindAckBlock {
		return 0, fmt.Errorf("not an ACK_Block message: %q", c.Text)
	}
	seq, err := strconv.ParseUint(strings.TrimPrefix(c.Text, ackBlockPrefix), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid ACK_Block sequence number: %w", err)
	}
	return protocol.SequenceNumber(seq), nil
}

// NewGet creates a download request.
func NewGet(filename string) *Control {
	return &Control{Text: getPrefix + filename}
}

// ParseGet returns the filename of a download request.
func ParseGet(c *Control) (string, error) {
	if c.Kind() != KindGet {
		return "", fmt.Errorf("not a get message: %q", c.Text)
	}
	name := strings.TrimSpace(strings.TrimPrefix(c.Text, getPrefix))
	if name == "" {
		return "", errors.New("get: missing filename")
	}
	return name, nil
}

// NewChecksum creates the message announcing the content hash of a file.
func NewChecksum(d integrity.Digest) *Control {
	return &Control{Text: checksumPrefix + d.String()}
}

// ParseChecksum parses a "CHECKSUM:<hex>" message.
func ParseChecksum(c *Control) (integrity.Digest, error) {
	if c.Kind() != KindChecksum {
		return integrity.Digest{}, fmt.Errorf("not a checksum message: %q", c.Text)
	}
	return integrity.ParseDigest(strings.TrimPrefix(c.Text, checksumPrefix))
}

// NewError creates an ERROR message.
func NewError(reason string) *Control {
	return &Control{Text: errorPrefix + " " + reason}
}

// ParseError returns the reason of an ERROR message.
func ParseError(c *Control) (string, error) {
	if c.Kind() != KindError {
		return "", fmt.Errorf("not an error message: %q", c.Text)
	}
	return strings.TrimSpace(strings.TrimPrefix(c.Text, errorPrefix)), nil
}

// NewFileList creates the response to a listing request.
func NewFileList(names []string) *Control {
	return &Control{Text: strings.Join(names, listSeparator)}
}

// ParseFileList parses the response to a listing request.
// An empty text is an empty directory.
func ParseFileList(c *Control) []string {
	if c.Text == "" {
		return []string{}
	}
	return strings.Split(c.Text, listSeparator)
}
