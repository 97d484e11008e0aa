// Package spectate streams simulation frames to websocket viewers.
//
// Frames are msgpack-encoded sim.Frame values sent as binary messages. A
// viewer that falls behind is disconnected rather than slowing the game.
package spectate

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-invaders/internal/sim"
)

// Hub maintains the set of active viewers and broadcasts frames to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.Mutex
	last       []byte
	dropped    uint64
	logger     *log.Logger
}

// NewHub creates a hub. Call Run before serving connections.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		broadcast:  make(chan []byte, 1),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Run handles registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			h.logger.Info("spectator hub shutting down")
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			if h.last != nil {
				client.send <- h.last
			}
			n := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("spectator connected", "addr", client.addr, "viewers", n)
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info("spectator disconnected", "addr", client.addr)
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			h.last = message
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
					h.logger.Warn("dropping slow spectator", "addr", client.addr)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish encodes a frame and hands it to the hub without blocking. If the
// hub has not yet taken the previous frame, this one is dropped.
func (h *Hub) Publish(f sim.Frame) {
	data, err := msgpack.Marshal(&f)
	if err != nil {
		h.logger.Error("encode frame", "err", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		h.mu.Lock()
		h.dropped++
		h.mu.Unlock()
	}
}

// ClientCount returns the number of registered viewers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns how many frames Publish discarded.
func (h *Hub) Dropped() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}
