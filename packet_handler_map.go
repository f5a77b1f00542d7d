package udpftp

import (
	"net"
	"sync"

	"github.com/udpftp/udpftp/internal/wire"
)

// A packetHandler handles the messages of a single remote address.
type packetHandler interface {
	handleMessage(wire.Message)
	destroy(error)
}

// The packetHandlerMap stores the packetHandlers of a server, identified by remote address.
type packetHandlerMap struct {
	mutex sync.Mutex

	handlers map[string] /* net.Addr.String() */ packetHandler
	closed   bool
}

func newPacketHandlerMap() *packetHandlerMap {
	return &packetHandlerMap{handlers: make(map[string]packetHandler)}
}

func (h *packetHandlerMap) Get(addr net.Addr) (packetHandler, bool) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	handler, ok := h.handlers[addr.String()]
	return handler, ok
}

// Add adds a handler.
// It returns false after CloseAll was called.
func (h *packetHandlerMap) Add(addr net.Addr, handler packetHandler) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.closed {
		return false
	}
	h.handlers[addr.String()] = handler
	return true
}

// Remove removes the handler, if it is still the one registered for addr.
func (h *packetHandlerMap) Remove(addr net.Addr, handler packetHandler) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.handlers[addr.String()] == handler {
		delete(h.handlers, addr.String())
	}
}

// EvictIf removes a handler for which evict returns true, and returns it.
// The handler is not destroyed.
func (h *packetHandlerMap) EvictIf(evict func(packetHandler) bool) (packetHandler, bool) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for key, handler := range h.handlers {
		if evict(handler) {
			delete(h.handlers, key)
			return handler, true
		}
	}
	return nil, false
}

func (h *packetHandlerMap) Len() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	return len(h.handlers)
}

// CloseAll destroys all handlers.
// No handlers can be added after CloseAll was called.
func (h *packetHandlerMap) CloseAll(e error) {
	h.mutex.Lock()
	h.closed = true
	handlers := make([]packetHandler, 0, len(h.handlers))
	for _, handler := range h.handlers {
		handlers = append(handlers, handler)
	}
	h.mutex.Unlock()

	for _, handler := range handlers {
		handler.destroy(e)
	}
}
