package service

import (
	"context"
	"time"

	"heat_capacity_game/internal/logger"
	"heat_capacity_game/internal/models"
)

// DefaultFrameInterval approximates a 60 Hz display refresh.
const DefaultFrameInterval = 16 * time.Millisecond

// ticker is the part of GameService the frame loop drives.
type ticker interface {
	Tick(ctx context.Context, now time.Time) (models.Snapshot, bool, error)
}

// SimulatorService is the frame scheduler of the server process.
type SimulatorService struct {
	game ticker
	log  *logger.Logger
}

// NewSimulatorService returns a frame loop over game. log may be nil.
func NewSimulatorService(game ticker, log *logger.Logger) *SimulatorService {
	return &SimulatorService{game: game, log: log}
}

// Run ticks at the given interval until ctx is canceled. Cancellation is
// immediate; a frame in flight is not waited for by the caller.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = DefaultFrameInterval
	}
	t := time.NewTicker(tick)
	defer t.Stop()

	if s.log != nil {
		s.log.Infow("frame_loop_started", "interval", tick)
	}
	for {
		select {
		case <-ctx.Done():
			if s.log != nil {
				s.log.Infow("frame_loop_stopped")
			}
			return
		case now := <-t.C:
			s.frame(ctx, now)
		}
	}
}

// frame runs one tick; errors are logged and never stop the loop.
func (s *SimulatorService) frame(ctx context.Context, now time.Time) {
	snap, changed, err := s.game.Tick(ctx, now)
	if err != nil {
		if s.log != nil && ctx.Err() == nil {
			s.log.Errorw("frame_tick_failed", "err", err)
		}
		return
	}
	// completion is the last change a session makes before reset
	if changed && snap.IsComplete && s.log != nil {
		s.log.Infow("session_complete",
			"left_temp_c", snap.Left.TempC, "right_temp_c", snap.Right.TempC)
	}
}
