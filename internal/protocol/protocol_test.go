package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPerspective(t *testing.T) {
	require.Equal(t, "client", PerspectiveClient.String())
	require.Equal(t, "server", PerspectiveServer.String())
	require.Equal(t, "invalid perspective", Perspective(0).String())
	require.Equal(t, PerspectiveServer, PerspectiveClient.Opposite())
	require.Equal(t, PerspectiveClient, PerspectiveServer.Opposite())
}

func TestConnStateString(t *testing.T) {
	require.Equal(t, "closed", StateClosed.String())
	require.Equal(t, "syn_sent", StateSynSent.String())
	require.Equal(t, "listening", StateListening.String())
	require.Equal(t, "syn_received", StateSynReceived.String())
	require.Equal(t, "established", StateEstablished.String())
	require.Equal(t, "unknown state (42)", ConnState(42).String())
}

func TestWindowBoundaries(t *testing.T) {
	for _, windowSize := range []int{1, 2, 5, 7} {
		var boundaries []SequenceNumber
		for seq := SequenceNumber(0); seq < 30; seq++ {
			if seq.IsWindowBoundary(windowSize) {
				boundaries = append(boundaries, seq)
			}
		}
		for i, b := range boundaries {
			require.Equal(t, SequenceNumber((i+1)*windowSize-1), b)
		}
		require.Len(t, boundaries, 30/windowSize)
	}
}

func TestWindowBoundaryAtMaxSequenceNumber(t *testing.T) {
	// 2^32 is divisible by 2, but the computation must not overflow
	require.True(t, MaxSequenceNumber.IsWindowBoundary(2))
	require.False(t, MaxSequenceNumber.IsWindowBoundary(3))
}

func TestBlockSizeFitsDatagram(t *testing.T) {
	require.Equal(t, MaxDatagramSize, MaxBlockSize+DataHeaderSize)
}
