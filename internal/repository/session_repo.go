package repository

import (
	"context"
	"sync"

	"heat_capacity_game/internal/models"
)

// SessionMemory keeps the session in process memory. Sessions are never
// written to disk; a restart starts a fresh game.
type SessionMemory struct {
	mu      sync.RWMutex
	session models.Session
}

func NewSessionMemory() *SessionMemory {
	return &SessionMemory{}
}

// Save replaces the stored session.
func (r *SessionMemory) Save(ctx context.Context, s models.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.session = s
	r.mu.Unlock()
	return nil
}

// Load returns the stored session, or the zero Session (Active == "")
// when nothing was saved yet.
func (r *SessionMemory) Load(ctx context.Context) (models.Session, error) {
	if err := ctx.Err(); err != nil {
		return models.Session{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.session, nil
}
