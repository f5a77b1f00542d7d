package udpftp

import (
	"context"
	"net"
	"slices"
	"sync"
	"time"

	"github.com/udpftp/udpftp/internal/protocol"
	"github.com/udpftp/udpftp/internal/wire"
)

type memAddr string

func (a memAddr) Network() string { return "mem" }
func (a memAddr) String() string  { return string(a) }

type memDatagram struct {
	data []byte
	from net.Addr
}

// A memNetwork connects memPacketConns.
// Goroutines reading from a memPacketConn are durably blocked, so it can be used with synctest.
type memNetwork struct {
	mutex sync.Mutex
	conns map[string]*memPacketConn
	// drop decides if a datagram is lost in the network
	drop func(from, to string, m wire.Message) bool
	// sent records all datagrams that were delivered (or lost in the network)
	sent []memRecord
}

type memRecord struct {
	from, to string
	msg      wire.Message
}

func newMemNetwork() *memNetwork {
	return &memNetwork{conns: make(map[string]*memPacketConn)}
}

func (n *memNetwork) Listen(addr string) *memPacketConn {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	c := &memPacketConn{
		network: n,
		addr:    memAddr(addr),
		in:      make(chan memDatagram, 1024),
		closed:  make(chan struct{}),
	}
	n.conns[addr] = c
	return c
}

func (n *memNetwork) SetDropFunc(f func(from, to string, m wire.Message) bool) {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	n.drop = f
}

// Sent returns the messages sent by from.
func (n *memNetwork) Sent(from string) []wire.Message {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	var msgs []wire.Message
	for _, r := range n.sent {
		if r.from == from {
			msgs = append(msgs, r.msg)
		}
	}
	return msgs
}

func (n *memNetwork) deliver(from memAddr, to net.Addr, b []byte) {
	// undecodable datagrams are delivered, but not recorded
	m, err := wire.Parse(b)

	n.mutex.Lock()
	var drop bool
	if err == nil {
		n.sent = append(n.sent, memRecord{from: string(from), to: to.String(), msg: m})
		drop = n.drop != nil && n.drop(string(from), to.String(), m)
	}
	dst, ok := n.conns[to.String()]
	n.mutex.Unlock()

	if !ok || drop {
		return
	}
	select {
	case dst.in <- memDatagram{data: slices.Clone(b), from: from}:
	case <-dst.closed:
	default:
	}
}

type memPacketConn struct {
	network *memNetwork
	addr    memAddr

	in        chan memDatagram
	closeOnce sync.Once
	closed    chan struct{}
}

var _ net.PacketConn = &memPacketConn{}

func (c *memPacketConn) ReadFrom(b []byte) (int, net.Addr, error) {
	select {
	case d := <-c.in:
		return copy(b, d.data), d.from, nil
	case <-c.closed:
		return 0, nil, net.ErrClosed
	}
}

func (c *memPacketConn) WriteTo(b []byte, addr net.Addr) (int, error) {
	select {
	case <-c.closed:
		return 0, net.ErrClosed
	default:
	}
	c.network.deliver(c.addr, addr, b)
	return len(b), nil
}

func (c *memPacketConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func (c *memPacketConn) LocalAddr() net.Addr              { return c.addr }
func (c *memPacketConn) SetDeadline(time.Time) error      { return nil }
func (c *memPacketConn) SetReadDeadline(time.Time) error  { return nil }
func (c *memPacketConn) SetWriteDeadline(time.Time) error { return nil }

// A messagePipe connects two messageConns, without encoding messages.
type messagePipe struct {
	mutex sync.Mutex
	queue *receiveQueue
	peer  *messagePipe
	// drop decides if a message sent on this end is lost
	drop func(wire.Message) bool
	sent []wire.Message
}

var _ messageConn = &messagePipe{}

func newMessagePipe() (*messagePipe, *messagePipe) {
	a := &messagePipe{queue: newReceiveQueue()}
	b := &messagePipe{queue: newReceiveQueue(), peer: a}
	a.peer = b
	return a, b
}

func (p *messagePipe) Send(_ context.Context, m wire.Message) error {
	// make sure the receiver doesn't share buffers with the sender
	m, err := wire.Parse(m.Append(nil))
	if err != nil {
		return err
	}
	p.mutex.Lock()
	p.sent = append(p.sent, m)
	drop := p.drop != nil && p.drop(m)
	p.mutex.Unlock()
	if !drop {
		p.peer.queue.Add(m)
	}
	return nil
}

func (p *messagePipe) Receive(ctx context.Context, deadline time.Time) (wire.Message, error) {
	return p.queue.Receive(ctx, deadline)
}

func (p *messagePipe) SetDropFunc(f func(wire.Message) bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.drop = f
}

func (p *messagePipe) Sent() []wire.Message {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return slices.Clone(p.sent)
}

// sentDataSequences returns the sequence numbers of all data blocks in msgs.
func sentDataSequences(msgs []wire.Message) []protocol.SequenceNumber {
	var seqs []protocol.SequenceNumber
	for _, m := range msgs {
		if d, ok := m.(*wire.Data); ok {
			seqs = append(seqs, d.Sequence)
		}
	}
	return seqs
}

func controlTexts(msgs []wire.Message) []string {
	var texts []string
	for _, m := range msgs {
		if c, ok := m.(*wire.Control); ok {
			texts = append(texts, c.Text)
		}
	}
	return texts
}
