package protocol

import "time"

// DefaultPort is the UDP port the server listens on by default.
const DefaultPort = 2212

// DefaultBlockSize is the maximum payload size of a data block.
const DefaultBlockSize = 1024

// MaxBlockSize is the largest block size that still fits into a single UDP datagram,
// taking into account the message type and the sequence number.
const MaxBlockSize = MaxDatagramSize - DataHeaderSize

// DataHeaderSize is the size of the header of a data block (type and sequence number).
const DataHeaderSize = 1 + 4

// MaxDatagramSize is the maximum size of a datagram we read from the network.
const MaxDatagramSize = 65507

// DefaultWindowSize is the number of data blocks sent before waiting for an acknowledgment.
const DefaultWindowSize = 5

// DefaultTimeout is the time we wait for a packet before giving up (or retransmitting).
const DefaultTimeout = 3 * time.Second

// DefaultMaxAttempts is the number of consecutive timeouts tolerated for a single window.
const DefaultMaxAttempts = 5

// DefaultReliability is the probability that an outgoing datagram is delivered.
// By default, no loss is simulated.
const DefaultReliability = 1.0

// DefaultStoreDir is the directory served by the server if none is configured.
const DefaultStoreDir = "fichiers_serveur"

// MaxConnUnprocessedPackets is the max number of packets stored in each connection
// that are not yet processed.
const MaxConnUnprocessedPackets = 256

// MaxWindowSize is the largest window size.
// A full window must fit into the receive queue of the peer.
const MaxWindowSize = MaxConnUnprocessedPackets

// DefaultIdleTimeout is the time after which the server closes a connection without any requests.
const DefaultIdleTimeout = 5 * time.Minute
