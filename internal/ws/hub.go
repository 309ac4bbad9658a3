package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

type userMessage struct {
	userID  uuid.UUID
	payload []byte
}

// Hub tracks live connections per user. All map mutation happens on the Run
// goroutine; the mutex only guards reads from other goroutines.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]struct{}
	direct     chan userMessage
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		direct:     make(chan userMessage, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run processes hub events until stop is closed, then closes every client.
// Run must not be called again after it returns.
func (h *Hub) Run(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			close(h.done)
			h.closeAll()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.userID] = set
			}
			set[client] = struct{}{}
			total := h.countLocked()
			h.mutex.Unlock()
			h.logf("WS connected | user_id=%s total_clients=%d", client.userID, total)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			removed := h.removeLocked(client)
			total := h.countLocked()
			h.mutex.Unlock()
			if removed {
				h.logf("WS disconnected | user_id=%s total_clients=%d", client.userID, total)
			}

		case msg := <-h.direct:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.clients[msg.userID]))
			for c := range h.clients[msg.userID] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					// slow consumer
					h.mutex.Lock()
					h.removeLocked(client)
					h.mutex.Unlock()
				}
			}
			h.logf("WS push | user_id=%s clients=%d", msg.userID, len(targets))
		}
	}
}

func (h *Hub) removeLocked(client *Client) bool {
	set, ok := h.clients[client.userID]
	if !ok {
		return false
	}
	if _, ok := set[client]; !ok {
		return false
	}
	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
	return true
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for userID, set := range h.clients {
		for c := range set {
			close(c.send)
		}
		delete(h.clients, userID)
	}
	// registrations queued before stop never reached the map
	for {
		select {
		case c := <-h.register:
			if c != nil {
				close(c.send)
			}
		default:
			return
		}
	}
}

func (h *Hub) countLocked() int {
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

// Register hands client to the hub. Once the hub has stopped the client's
// send channel is closed straight away so its WritePump exits.
func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	select {
	case <-h.done:
		close(client.send)
		return
	default:
	}
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

// Unregister never blocks after the hub has stopped.
func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// SendToUser queues payload for every connection of userID. It never
// blocks; when the queue is full the message is dropped.
func (h *Hub) SendToUser(userID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.direct <- userMessage{userID: userID, payload: payload}:
	default:
		h.logf("WS push dropped | user_id=%s reason=buffer_full", userID)
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.countLocked()
}

func (h *Hub) UserClientCount(userID uuid.UUID) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}
