package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"heat_capacity_game/internal/models"
	"heat_capacity_game/internal/repository"
	"heat_capacity_game/internal/thermal"

	"github.com/google/uuid"
)

// ErrInvalidVessel is returned for a label other than "left" or "right".
var ErrInvalidVessel = errors.New("invalid vessel: must be left or right")

// ParseSide validates a vessel label coming from outside the process.
func ParseSide(s string) (models.Side, error) {
	side := models.Side(s)
	if !side.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidVessel, s)
	}
	return side, nil
}

// GameService owns the live session. Frame ticks and player intents take
// the same lock, so every intent lands between two ticks and tick n+1
// always sees the result of tick n.
type GameService struct {
	mu          sync.Mutex
	sessionRepo repository.SessionRepo
	eventRepo   repository.EventRepo
	hub         *Hub
	clock       FrameClock
	now         func() time.Time
}

func NewGameService(sessionRepo repository.SessionRepo, eventRepo repository.EventRepo, hub *Hub) *GameService {
	if hub == nil {
		hub = NewHub()
	}
	return &GameService{
		sessionRepo: sessionRepo,
		eventRepo:   eventRepo,
		hub:         hub,
		now:         time.Now,
	}
}

// load returns the current session, creating it on first use. Callers hold mu.
func (s *GameService) load(ctx context.Context) (models.Session, error) {
	st, err := s.sessionRepo.Load(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	return orInitial(st), nil
}

// commit stores next and publishes its snapshot. Callers hold mu.
func (s *GameService) commit(ctx context.Context, next models.Session, at time.Time) (models.Snapshot, error) {
	if err := s.sessionRepo.Save(ctx, next); err != nil {
		return models.Snapshot{}, fmt.Errorf("save session: %w", err)
	}
	snap := snapshotOf(next, at)
	s.hub.Publish(snap)
	return snap, nil
}

func (s *GameService) journal(ctx context.Context, at time.Time, typ, desc string, meta map[string]any) error {
	return s.eventRepo.Append(ctx, models.GameEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  at.UTC(),
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	})
}

// Tick advances the session by the time elapsed since the previous tick.
// now must be a monotonic timestamp from the frame scheduler. The boolean
// reports whether the session changed.
func (s *GameService) Tick(ctx context.Context, now time.Time) (models.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dt := s.clock.Delta(now)

	prev, err := s.load(ctx)
	if err != nil {
		return models.Snapshot{}, false, err
	}
	next := thermal.Advance(prev, dt)
	if next == prev {
		return snapshotOf(prev, now), false, nil
	}

	snap, err := s.commit(ctx, next, now)
	if err != nil {
		return models.Snapshot{}, false, err
	}

	if !prev.IsComplete && next.IsComplete {
		err = s.journal(ctx, now, models.EventComplete, "Both vessels reached the target band", map[string]any{
			"left_temp_c":  next.Left.TempC,
			"right_temp_c": next.Right.TempC,
			"target_c":     thermal.TargetC,
		})
	}
	return snap, true, err
}

// SetActiveVessel moves the heat source to side.
func (s *GameService) SetActiveVessel(ctx context.Context, side models.Side) (models.Snapshot, error) {
	if !side.Valid() {
		return models.Snapshot{}, fmt.Errorf("%w: %q", ErrInvalidVessel, side)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	prev, err := s.load(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	snap, err := s.commit(ctx, thermal.SetActiveVessel(prev, side), now)
	if err != nil {
		return models.Snapshot{}, err
	}

	return snap, s.journal(ctx, now, models.EventSelectVessel, "Heat moved to "+string(side), map[string]any{
		"from": string(prev.Active),
		"to":   string(side),
	})
}

// TogglePlaying pauses or resumes the simulation.
func (s *GameService) TogglePlaying(ctx context.Context) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	prev, err := s.load(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	next := thermal.TogglePlaying(prev)
	snap, err := s.commit(ctx, next, now)
	if err != nil {
		return models.Snapshot{}, err
	}

	typ, desc := models.EventPause, "Simulation paused"
	if next.IsRunning {
		typ, desc = models.EventPlay, "Simulation resumed"
	}
	return snap, s.journal(ctx, now, typ, desc, map[string]any{
		"is_complete": next.IsComplete,
	})
}

// Reset restores the initial session and forgets the last frame timestamp
// so the next tick starts from a zero delta.
func (s *GameService) Reset(ctx context.Context) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	prev, err := s.load(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	snap, err := s.commit(ctx, thermal.Reset(), now)
	if err != nil {
		return models.Snapshot{}, err
	}
	s.clock.Clear()

	return snap, s.journal(ctx, now, models.EventReset, "Session reset", map[string]any{
		"left_temp_c":  prev.Left.TempC,
		"right_temp_c": prev.Right.TempC,
		"was_complete": prev.IsComplete,
	})
}

// Snapshot returns the current projection without changing anything.
func (s *GameService) Snapshot(ctx context.Context) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	return snapshotOf(st, s.now()), nil
}
