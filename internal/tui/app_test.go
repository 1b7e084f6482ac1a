package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	"heat_capacity_game/internal/models"
	"heat_capacity_game/internal/repository"
	"heat_capacity_game/internal/service"
	"heat_capacity_game/internal/thermal"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopEvents drops journal writes; the terminal client never reads them.
type nopEvents struct{}

func (nopEvents) Append(context.Context, models.GameEvent) error { return nil }
func (nopEvents) List(context.Context, repository.EventQuery) ([]models.GameEvent, error) {
	return nil, nil
}

type countingChime struct {
	mu     sync.Mutex
	plays  int
	closed bool
}

func (c *countingChime) Play() {
	c.mu.Lock()
	c.plays++
	c.mu.Unlock()
}

func (c *countingChime) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func (c *countingChime) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plays
}

type fixture struct {
	app      *App
	screen   tcell.SimulationScreen
	sessions *repository.SessionMemory
	chime    *countingChime
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	sessions := repository.NewSessionMemory()
	game := service.NewGameService(sessions, nopEvents{}, nil)
	chime := &countingChime{}
	app := NewApp(screen, game, chime, nil, 0)

	snap, err := game.Snapshot(context.Background())
	require.NoError(t, err)
	app.observe(snap)
	return &fixture{app: app, screen: screen, sessions: sessions, chime: chime}
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestNewApp_Defaults(t *testing.T) {
	app := NewApp(tcell.NewSimulationScreen("UTF-8"), nil, nil, nil, 0)
	assert.Equal(t, FrameInterval, app.interval)
	assert.IsType(t, NopChime{}, app.chime)
	assert.NotNil(t, app.log)
}

func TestHandleKey_SelectsVessel(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want models.Side
	}{
		{"right arrow", key(tcell.KeyRight, 0), models.SideRight},
		{"left arrow", key(tcell.KeyLeft, 0), models.SideLeft},
		{"d", key(tcell.KeyRune, 'd'), models.SideRight},
		{"a", key(tcell.KeyRune, 'a'), models.SideLeft},
		{"2", key(tcell.KeyRune, '2'), models.SideRight},
		{"1", key(tcell.KeyRune, '1'), models.SideLeft},
	}
	f := newFixture(t)
	for _, tc := range cases {
		quit := f.app.handleKey(ctx, tc.ev)
		assert.False(t, quit, tc.name)
		assert.Equal(t, tc.want, f.app.snap.Active, tc.name)
		assert.True(t, f.app.snap.IsRunning, tc.name)
	}
}

func TestHandleKey_ToggleAndReset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.app.handleKey(ctx, key(tcell.KeyRune, ' '))
	assert.Equal(t, string(thermal.StatePaused), f.app.snap.State)

	f.app.handleKey(ctx, key(tcell.KeyRune, 'p'))
	assert.Equal(t, string(thermal.StateRunning), f.app.snap.State)

	f.app.handleKey(ctx, key(tcell.KeyRune, 'd'))
	f.app.handleKey(ctx, key(tcell.KeyRune, 'r'))
	assert.Equal(t, models.SideLeft, f.app.snap.Active)
	assert.Equal(t, thermal.AmbientC, f.app.snap.Left.TempC)
	assert.Equal(t, thermal.AmbientC, f.app.snap.Right.TempC)
}

func TestHandleKey_Quit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for _, ev := range []*tcell.EventKey{
		key(tcell.KeyRune, 'q'),
		key(tcell.KeyEscape, 0),
		key(tcell.KeyCtrlC, 0),
	} {
		assert.True(t, f.app.handleKey(ctx, ev))
	}
	assert.False(t, f.app.handleKey(ctx, key(tcell.KeyRune, 'x')))
}

func TestFrame_AdvancesSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	t0 := time.Now()

	f.app.frame(ctx, t0) // first delta is zero
	require.Equal(t, thermal.AmbientC, f.app.snap.Left.TempC)

	f.app.frame(ctx, t0.Add(FrameInterval))
	assert.Greater(t, f.app.snap.Left.TempC, thermal.AmbientC)
	assert.Equal(t, thermal.AmbientC, f.app.snap.Right.TempC)
}

func TestChime_OncePerCompletion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	onTarget := models.Session{
		Left:      models.Vessel{HeatCapacity: thermal.LeftHeatCapacity, TempC: thermal.TargetC},
		Right:     models.Vessel{HeatCapacity: thermal.RightHeatCapacity, TempC: thermal.TargetC},
		Active:    models.SideRight,
		IsRunning: true,
	}
	require.NoError(t, f.sessions.Save(ctx, onTarget))

	t0 := time.Now()
	f.app.frame(ctx, t0)
	require.True(t, f.app.snap.IsComplete)
	assert.Equal(t, 1, f.chime.count())

	// further frames and a resume of the completed session do not ring again
	f.app.frame(ctx, t0.Add(FrameInterval))
	f.app.handleKey(ctx, key(tcell.KeyRune, ' '))
	assert.Equal(t, 1, f.chime.count())

	// a new game can complete again
	f.app.handleKey(ctx, key(tcell.KeyRune, 'r'))
	require.NoError(t, f.sessions.Save(ctx, onTarget))
	f.app.frame(ctx, t0.Add(2*FrameInterval))
	assert.Equal(t, 2, f.chime.count())
}

func cellAt(s tcell.Screen, x, y int) (rune, tcell.Style) {
	r, _, style, _ := s.GetContent(x, y)
	return r, style
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		r, _ := cellAt(s, x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestDraw_BeakerFillAndMarker(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.sessions.Save(ctx, models.Session{
		Left:   models.Vessel{HeatCapacity: thermal.LeftHeatCapacity, TempC: 60},
		Right:  models.Vessel{HeatCapacity: thermal.RightHeatCapacity, TempC: thermal.AmbientC},
		Active: models.SideLeft,
	}))
	snap, err := f.app.game.Snapshot(ctx)
	require.NoError(t, err)
	f.app.observe(snap)
	f.app.draw()

	_, h := f.screen.Size()
	height := beakerHeight(h)
	bottom := beakerTop + height
	lx, rx := beakerColumns(80)

	// left liquid: bottom row coloured, above the fill line empty
	fill := int(0.5*float64(height) + 0.5) // (60-20)/(100-20)
	_, style := cellAt(f.screen, lx+1, bottom-1)
	_, bg, _ := style.Decompose()
	_, wantBg, _ := liquidStyle(60).Decompose()
	assert.Equal(t, wantBg, bg)

	_, style = cellAt(f.screen, lx+1, bottom-1-fill)
	_, bg, _ = style.Decompose()
	assert.NotEqual(t, wantBg, bg)

	// right vessel at ambient has no liquid rows
	_, style = cellAt(f.screen, rx+1, bottom-1)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.ColorDefault, bg)

	// target marker on both walls of both beakers
	markY := bottom - int(thermal.Progress(thermal.TargetC)*float64(height)+0.5)
	for _, x := range []int{lx, rx} {
		r, _ := cellAt(f.screen, x, markY)
		assert.Equal(t, '├', r)
		r, _ = cellAt(f.screen, x+beakerInner+1, markY)
		assert.Equal(t, '┤', r)
	}

	assert.Contains(t, rowText(f.screen, bottom+1), "HEAT")
	assert.Contains(t, rowText(f.screen, bottom+2), "LEFT")
	assert.Contains(t, rowText(f.screen, bottom+3), "60.00")
	assert.Contains(t, rowText(f.screen, h-2), "PAUSED")
	assert.Contains(t, rowText(f.screen, h-1), "q quit")
}

func TestDraw_CompleteBanner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.sessions.Save(ctx, models.Session{
		Left:       models.Vessel{HeatCapacity: thermal.LeftHeatCapacity, TempC: 71},
		Right:      models.Vessel{HeatCapacity: thermal.RightHeatCapacity, TempC: 73},
		Active:     models.SideRight,
		IsComplete: true,
	}))
	snap, err := f.app.game.Snapshot(ctx)
	require.NoError(t, err)
	f.app.observe(snap)
	f.app.draw()

	_, h := f.screen.Size()
	assert.Contains(t, rowText(f.screen, h-2), "COMPLETE")
	bottom := beakerTop + beakerHeight(h)
	assert.Contains(t, rowText(f.screen, bottom+3), "✓")
}

func TestBeakerHeight_Bounds(t *testing.T) {
	assert.Equal(t, minBeakerH, beakerHeight(3))
	assert.Equal(t, 15, beakerHeight(24))
	assert.Equal(t, maxBeakerH, beakerHeight(200))
}

func TestRun_StopsOnCancel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	game := service.NewGameService(repository.NewSessionMemory(), nopEvents{}, nil)
	app := NewApp(screen, game, NopChime{}, nil, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_QuitKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	game := service.NewGameService(repository.NewSessionMemory(), nopEvents{}, nil)
	app := NewApp(screen, game, NopChime{}, nil, 5*time.Millisecond)

	errc := make(chan error, 1)
	go func() { errc <- app.Run(context.Background()) }()

	// keep posting until the event loop is up and picks one
	deadline := time.After(2 * time.Second)
	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case err := <-errc:
			require.NoError(t, err)
			return
		case <-tick.C:
			_ = screen.PostEvent(key(tcell.KeyRune, 'q'))
		case <-deadline:
			t.Fatal("Run did not return after q")
		}
	}
}

func TestChimeStreamer_Length(t *testing.T) {
	s, err := chimeStreamer(sampleRate)
	require.NoError(t, err)

	buf := make([][2]float64, 1024)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, buf[i][0], chimeVolume+1e-9)
		}
		if !ok {
			break
		}
	}
	want := len(chimeNotes) * (sampleRate.N(noteDuration) + sampleRate.N(noteGap))
	assert.Equal(t, want, total)
}
