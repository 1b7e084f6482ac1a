package models

import "time"

// Event types written to the game journal.
const (
	EventSelectVessel = "SELECT_VESSEL"
	EventPlay         = "PLAY"
	EventPause        = "PAUSE"
	EventReset        = "RESET"
	EventComplete     = "COMPLETE"
)

// GameEvent is a single journal entry.
type GameEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // SELECT_VESSEL | PLAY | PAUSE | RESET | COMPLETE
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
