package repository

import (
	"context"
	"database/sql"
	"time"

	"heat_capacity_game/internal/models"
)

// SessionRepo holds the single live game session.
type SessionRepo interface {
	Save(ctx context.Context, s models.Session) error
	Load(ctx context.Context) (models.Session, error)
}

// EventRepo is the append-only game journal.
type EventRepo interface {
	Append(ctx context.Context, e models.GameEvent) error
	List(ctx context.Context, q EventQuery) ([]models.GameEvent, error)
}

// EventQuery filters journal reads. Zero values disable a condition.
type EventQuery struct {
	From  time.Time
	To    time.Time
	Type  string
	Limit int
}

type Repository struct {
	SessionRepo SessionRepo
	EventRepo   EventRepo
}

// NewRepository keeps the session in memory and the journal in db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		SessionRepo: NewSessionMemory(),
		EventRepo:   NewEventSQLite(db),
	}
}
