package realtime

import (
	"encoding/json"
	"log"
	"sync"
)

// StaffRoom receives every event regardless of table.
const StaffRoom = "staff"

// --------------------------------------------------
// Hub
// --------------------------------------------------

// Hub fans order events out to the websocket clients of each table room.
// Customer clients join their table's room, staff clients join StaffRoom.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]bool),
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[c.room]
	if !ok {
		room = make(map[*Client]bool)
		h.rooms[c.room] = room
	}
	room[c] = true
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[c.room]
	if !ok {
		return
	}
	if _, ok := room[c]; !ok {
		return
	}

	delete(room, c)
	close(c.send)
	if len(room) == 0 {
		delete(h.rooms, c.room)
	}
}

// Publish sends an event to every client of the table's room and to the
// staff room. A client whose send buffer is full is dropped rather than
// allowed to stall the rest of the room.
func (h *Hub) Publish(tableID string, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("realtime: failed to encode event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.broadcast(tableID, payload)
	if tableID != StaffRoom {
		h.broadcast(StaffRoom, payload)
	}
}

func (h *Hub) broadcast(room string, payload []byte) {
	for c := range h.rooms[room] {
		select {
		case c.send <- payload:
		default:
			delete(h.rooms[room], c)
			close(c.send)
		}
	}
	if len(h.rooms[room]) == 0 {
		delete(h.rooms, room)
	}
}
