package udpftp

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/udpftp/udpftp/internal/protocol"
	"github.com/udpftp/udpftp/internal/utils"
	"github.com/udpftp/udpftp/internal/wire"
)

// A receiveQueue holds the decoded messages of a single peer until they're processed.
// Add may be called concurrently with Receive, but there must only be a single reader.
type receiveQueue struct {
	c     chan wire.Message
	timer *utils.Timer

	closeOnce sync.Once
	closed    chan struct{}
	closeErr  error
}

func newReceiveQueue() *receiveQueue {
	return &receiveQueue{
		c:      make(chan wire.Message, protocol.MaxConnUnprocessedPackets),
		timer:  utils.NewTimer(),
		closed: make(chan struct{}),
	}
}

// Add queues a message.
// It returns false if the queue is full, in which case the message is dropped.
func (q *receiveQueue) Add(m wire.Message) bool {
	select {
	case q.c <- m:
		return true
	default:
		return false
	}
}

// Receive returns the next message.
// It returns os.ErrDeadlineExceeded if no message arrives before the deadline.
// A zero deadline means no timeout.
func (q *receiveQueue) Receive(ctx context.Context, deadline time.Time) (wire.Message, error) {
	// messages that were queued before the queue was closed are still delivered
	select {
	case m := <-q.c:
		return m, nil
	default:
	}

	q.timer.Reset(deadline)
	select {
	case m := <-q.c:
		return m, nil
	case <-q.timer.Chan():
		q.timer.SetRead()
		return nil, os.ErrDeadlineExceeded
	case <-q.closed:
		return nil, q.closeErr
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Clear discards all queued messages.
func (q *receiveQueue) Clear() (n int) {
	for {
		select {
		case <-q.c:
			n++
		default:
			return n
		}
	}
}

// CloseWithError makes all future calls to Receive return err, once the queue is drained.
func (q *receiveQueue) CloseWithError(err error) {
	q.closeOnce.Do(func() {
		q.closeErr = err
		close(q.closed)
	})
}
