// Package tui is the terminal client: it drives a local game session at
// frame rate and renders both vessels with tcell.
package tui

import (
	"context"
	"time"

	"heat_capacity_game/internal/logger"
	"heat_capacity_game/internal/models"

	"github.com/gdamore/tcell/v2"
)

// FrameInterval is the default redraw and simulation cadence (~60 FPS).
const FrameInterval = 16 * time.Millisecond

// Game is the part of the game service the terminal client drives.
type Game interface {
	Tick(ctx context.Context, now time.Time) (models.Snapshot, bool, error)
	SetActiveVessel(ctx context.Context, side models.Side) (models.Snapshot, error)
	TogglePlaying(ctx context.Context) (models.Snapshot, error)
	Reset(ctx context.Context) (models.Snapshot, error)
	Snapshot(ctx context.Context) (models.Snapshot, error)
}

type App struct {
	screen   tcell.Screen
	game     Game
	chime    Chime
	log      *logger.Logger
	interval time.Duration

	snap   models.Snapshot
	chimed bool
}

// NewApp wires a screen to a game. chime and log may be nil.
func NewApp(screen tcell.Screen, game Game, chime Chime, log *logger.Logger, interval time.Duration) *App {
	if chime == nil {
		chime = NopChime{}
	}
	if log == nil {
		log = logger.Nop()
	}
	if interval <= 0 {
		interval = FrameInterval
	}
	return &App{screen: screen, game: game, chime: chime, log: log, interval: interval}
}

// Run initialises the screen and loops until the player quits or ctx is
// canceled. The screen is finalised on return.
func (a *App) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return err
	}
	defer a.screen.Fini()

	snap, err := a.game.Snapshot(ctx)
	if err != nil {
		return err
	}
	a.observe(snap)
	a.draw()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go a.pollEvents(events, done)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if a.handleEvent(ctx, ev) {
				return nil
			}
		case now := <-ticker.C:
			a.frame(ctx, now)
		}
	}
}

// pollEvents forwards screen events until the screen is finalised.
func (a *App) pollEvents(out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func (a *App) frame(ctx context.Context, now time.Time) {
	snap, changed, err := a.game.Tick(ctx, now)
	if err != nil {
		a.log.Errorw("frame_tick_failed", "err", err)
		return
	}
	if changed {
		a.observe(snap)
		a.draw()
	}
}

// handleEvent applies one input event and reports whether to quit.
func (a *App) handleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ctx, ev)
	case *tcell.EventResize:
		a.screen.Sync()
		a.draw()
	}
	return false
}

func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		a.intent(a.game.SetActiveVessel(ctx, models.SideLeft))
	case tcell.KeyRight:
		a.intent(a.game.SetActiveVessel(ctx, models.SideRight))
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'a', 'A', '1':
			a.intent(a.game.SetActiveVessel(ctx, models.SideLeft))
		case 'd', 'D', '2':
			a.intent(a.game.SetActiveVessel(ctx, models.SideRight))
		case ' ', 'p', 'P':
			a.intent(a.game.TogglePlaying(ctx))
		case 'r', 'R':
			a.intent(a.game.Reset(ctx))
		}
	}
	return false
}

// intent takes the result of a player action.
func (a *App) intent(snap models.Snapshot, err error) {
	if err != nil {
		a.log.Errorw("intent_failed", "err", err)
		// the transition may have been committed before a journal error
		if snap.State == "" {
			return
		}
	}
	a.observe(snap)
	a.draw()
}

// observe stores snap and rings the chime on the transition into completion.
func (a *App) observe(snap models.Snapshot) {
	if snap.IsComplete && !a.chimed {
		a.chime.Play()
		a.chimed = true
	}
	if !snap.IsComplete {
		a.chimed = false
	}
	a.snap = snap
}
