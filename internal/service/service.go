package service

import (
	"context"
	"time"

	"heat_capacity_game/internal/logger"
	"heat_capacity_game/internal/models"
	"heat_capacity_game/internal/repository"
)

// Authorization guards the intent endpoints with an operator passphrase.
type Authorization interface {
	Enabled() bool
	GenerateToken(passphrase string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Game exposes the three player intents. Each returns the snapshot taken
// right after the transition.
type Game interface {
	SetActiveVessel(ctx context.Context, side models.Side) (models.Snapshot, error)
	TogglePlaying(ctx context.Context) (models.Snapshot, error)
	Reset(ctx context.Context) (models.Snapshot, error)
}

// Monitoring exposes the read-only projection of the session.
type Monitoring interface {
	GetState(ctx context.Context) (models.Snapshot, error)
	Subscribe() (<-chan models.Snapshot, func())
}

// EventLog exposes the journal with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.GameEvent, error)
}

// Simulator runs the frame loop that advances the session.
// Stop via context cancellation in main() for graceful shutdown.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services.
type Service struct {
	Game
	Monitoring
	EventLog
	Simulator
	Authorization
}

// NewService wires the repository layer into concrete services. All of
// them share one GameService so intents and frames hit the same session.
func NewService(repos *repository.Repository, auth AuthConfig, log *logger.Logger) *Service {
	hub := NewHub()
	game := NewGameService(repos.SessionRepo, repos.EventRepo, hub)
	return &Service{
		Game:          game,
		Monitoring:    NewMonitoringService(repos.SessionRepo, hub),
		EventLog:      NewEventLogService(repos.EventRepo),
		Simulator:     NewSimulatorService(game, log),
		Authorization: NewAuthService(auth),
	}
}
