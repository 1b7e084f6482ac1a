package service

import (
	"sync"

	"heat_capacity_game/internal/models"
)

// Hub fans snapshots out to subscribers. Each subscriber holds at most one
// pending snapshot; a slow reader only ever sees the latest one.
type Hub struct {
	mu   sync.Mutex
	subs map[chan models.Snapshot]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan models.Snapshot]struct{})}
}

// Subscribe registers a subscriber. The returned func unsubscribes and
// closes the channel; calling it more than once is safe.
func (h *Hub) Subscribe() (<-chan models.Snapshot, func()) {
	ch := make(chan models.Snapshot, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Publish never blocks.
func (h *Hub) Publish(s models.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- s:
			continue
		default:
		}
		// drop the stale one and retry once
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- s:
		default:
		}
	}
}

// Len reports the number of live subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
