package service

import (
	"context"
	"time"

	"heat_capacity_game/internal/models"
	"heat_capacity_game/internal/repository"
)

type MonitoringService struct {
	sessionRepo repository.SessionRepo
	hub         *Hub
}

func NewMonitoringService(sessionRepo repository.SessionRepo, hub *Hub) *MonitoringService {
	return &MonitoringService{sessionRepo: sessionRepo, hub: hub}
}

// GetState returns the latest session snapshot.
// If no session exists yet, returns the initial one.
func (s *MonitoringService) GetState(ctx context.Context) (models.Snapshot, error) {
	st, err := s.sessionRepo.Load(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	return snapshotOf(orInitial(st), time.Now()), nil
}

// Subscribe streams snapshots published after each change.
func (s *MonitoringService) Subscribe() (<-chan models.Snapshot, func()) {
	return s.hub.Subscribe()
}
