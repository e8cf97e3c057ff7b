// Package ws pushes offer events to pitch owners over WebSocket. A startup
// dashboard subscribes to its pitch and sees new offers without polling.
package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"pitchhub/internal/models"
)

// OfferEvent is the wire message broadcast when an offer changes.
type OfferEvent struct {
	Type    string       `json:"type"` // offer_created, offer_accepted, offer_rejected
	PitchID uint         `json:"pitch_id"`
	Offer   models.Offer `json:"offer"`
}

// subscriber wraps a connection with a write lock. gorilla/websocket allows
// only one concurrent writer per connection, and broadcasts for the same
// pitch can arrive from different request goroutines.
type subscriber struct {
	conn *websocket.Conn
	wmu  sync.Mutex
}

func (s *subscriber) send(data []byte) {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	_ = s.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub fans offer events out to the connections subscribed to each pitch.
type Hub struct {
	mu sync.RWMutex
	// pitchID -> conn -> subscriber
	subs map[uint]map[*websocket.Conn]*subscriber
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint]map[*websocket.Conn]*subscriber)}
}

// Subscribe registers a connection for a pitch's events.
func (h *Hub) Subscribe(pitchID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[pitchID]; !ok {
		h.subs[pitchID] = make(map[*websocket.Conn]*subscriber)
	}
	h.subs[pitchID][conn] = &subscriber{conn: conn}
}

// Unsubscribe removes a connection; called on disconnect.
func (h *Hub) Unsubscribe(pitchID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.subs[pitchID]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(h.subs, pitchID)
		}
	}
}

// Broadcast sends the event to every subscriber of its pitch. Write errors
// are ignored; dead connections clean themselves up on their read loop.
func (h *Hub) Broadcast(event OfferEvent) {
	h.mu.RLock()
	targets := make([]*subscriber, 0, len(h.subs[event.PitchID]))
	for _, s := range h.subs[event.PitchID] {
		targets = append(targets, s)
	}
	h.mu.RUnlock()

	if len(targets) == 0 {
		return
	}
	raw, err := json.Marshal(event)
	if err != nil {
		return
	}
	for _, s := range targets {
		s.send(raw)
	}
}

// Subscribers reports how many connections watch a pitch.
func (h *Hub) Subscribers(pitchID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[pitchID])
}
