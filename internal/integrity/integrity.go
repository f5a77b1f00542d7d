// Package integrity computes and compares the content hash of transferred files.
package integrity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// DigestSize is the size of a Digest in bytes.
const DigestSize = sha256.Size

// A Digest is the SHA-256 hash of a file's content.
type Digest [DigestSize]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Hash computes the digest of b.
func Hash(b []byte) Digest {
	return sha256.Sum256(b)
}

// HashReader computes the digest of everything read from r.
func HashReader(r io.Reader) (Digest, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return Digest{}, err
	}
	var d Digest
	h.Sum(d[:0])
	return d, nil
}

// ParseDigest parses a hex-encoded digest.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if hex.DecodedLen(len(s)) != DigestSize {
		return d, fmt.Errorf("invalid digest length: %d", len(s))
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return d, fmt.Errorf("invalid digest: %w", err)
	}
	return d, nil
}

// A Verdict is the result of comparing the announced digest with the digest of the received data.
type Verdict uint8

const (
	// VerdictUnknown means that no digest was announced.
	VerdictUnknown Verdict = iota
	// VerdictMatch means that the received data is identical to the original.
	VerdictMatch
	// VerdictMismatch means that data was lost or corrupted.
	VerdictMismatch
)

func (v Verdict) String() string {
	switch v {
	case VerdictUnknown:
		return "unknown"
	case VerdictMatch:
		return "match"
	case VerdictMismatch:
		return "mismatch"
	default:
		return fmt.Sprintf("invalid verdict (%d)", v)
	}
}

// Compare classifies the computed digest against the announced one.
// A nil announced digest yields VerdictUnknown.
func Compare(announced *Digest, computed Digest) Verdict {
	if announced == nil {
		return VerdictUnknown
	}
	if *announced == computed {
		return VerdictMatch
	}
	return VerdictMismatch
}
