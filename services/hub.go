package services

import (
	"net/http"
	"sync"

	"github.com/mekbib/bingo-gateway/game"
	"github.com/mekbib/bingo-gateway/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans session snapshots out to connected browser clients and
// feeds their actions into the round service.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	rounds  *RoundService
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*Client)}
}

// SetRounds attaches the round service after construction.
func (h *Hub) SetRounds(rs *RoundService) {
	h.mu.Lock()
	h.rounds = rs
	h.mu.Unlock()
}

func (h *Hub) roundService() *RoundService {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.rounds
}

func (h *Hub) addClient(c *Client) {
	h.mu.Lock()
	h.clients[c.id] = c
	n := len(h.clients)
	h.mu.Unlock()

	go c.writePump()
	go c.readPump()

	logger.Infof("[hub] client %s connected (total=%d)", c.id, n)
}

// removeClient closes the client under the hub lock so a concurrent
// broadcast can never send on a closed channel.
func (h *Hub) removeClient(id string) {
	h.mu.Lock()
	client, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
		client.Close()
	}
	h.mu.Unlock()
	if ok {
		logger.Infof("[hub] client %s disconnected", id)
	}
}

// BroadcastSnapshot pushes the session view to every client. Slow
// clients drop frames rather than block the round.
func (h *Hub) BroadcastSnapshot(snap game.Snapshot) {
	data := snapshotJSON(snap)
	if data == nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		select {
		case c.send <- data:
		default:
			logger.Warnf("[hub] dropping frame for client %s", c.id)
		}
	}
}

// HandleWS upgrades a browser connection and registers it with the hub.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Errorf("[hub] upgrade: %v", err)
		return
	}

	client := &Client{
		id:   uuid.NewString(),
		conn: conn,
		hub:  h,
		send: make(chan []byte, 32),
	}
	// Seed the send buffer with the current view before the pumps start.
	if rs := h.roundService(); rs != nil {
		if data := snapshotJSON(rs.Snapshot()); data != nil {
			client.send <- data
		}
	}
	h.addClient(client)
}
