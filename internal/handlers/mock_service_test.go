package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"heat_capacity_game/internal/models"
	"heat_capacity_game/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	enabled       bool
	genTokenToken string
	genTokenErr   error
	parseSubject  string
	parseErr      error

	lastPassphrase string
	lastParseToken string
}

func (m *mockAuth) Enabled() bool { return m.enabled }

func (m *mockAuth) GenerateToken(passphrase string) (string, error) {
	m.lastPassphrase = passphrase
	return m.genTokenToken, m.genTokenErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseSubject, m.parseErr
}

// mockGame is shared with the websocket server goroutine, hence the mutex.
type mockGame struct {
	mu sync.Mutex

	snap models.Snapshot
	err  error

	lastSide    models.Side
	selectCalls int
	toggleCalls int
	resetCalls  int
}

func (m *mockGame) SetActiveVessel(ctx context.Context, side models.Side) (models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectCalls++
	m.lastSide = side
	snap := m.snap
	snap.Active = side
	return snap, m.err
}

func (m *mockGame) TogglePlaying(ctx context.Context) (models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.toggleCalls++
	return m.snap, m.err
}

func (m *mockGame) Reset(ctx context.Context) (models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetCalls++
	return m.snap, m.err
}

func (m *mockGame) calls() (sel, toggle, reset int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selectCalls, m.toggleCalls, m.resetCalls
}

type mockMonitoring struct {
	state   models.Snapshot
	err     error
	updates chan models.Snapshot

	mu           sync.Mutex
	unsubscribed int
}

func (m *mockMonitoring) GetState(ctx context.Context) (models.Snapshot, error) {
	return m.state, m.err
}

func (m *mockMonitoring) Subscribe() (<-chan models.Snapshot, func()) {
	ch := m.updates
	if ch == nil {
		ch = make(chan models.Snapshot)
	}
	return ch, func() {
		m.mu.Lock()
		m.unsubscribed++
		m.mu.Unlock()
	}
}

type mockEventLog struct {
	resp      []models.GameEvent
	err       error
	lastFrom  time.Time
	lastTo    time.Time
	lastType  string
	lastLimit int
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.GameEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	m.lastLimit = f.Limit
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// doRequest runs one request against r with an optional bearer token.
func doRequest(r http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, vv := range authHeader(token) {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleSnapshot() models.Snapshot {
	return models.Snapshot{
		State:     "RUNNING",
		IsRunning: true,
		Active:    models.SideLeft,
		Left:      models.VesselView{Side: models.SideLeft, TempC: 42.5, HeatCapacity: 1.2, IsActive: true, Color: "#3366cc"},
		Right:     models.VesselView{Side: models.SideRight, TempC: 30, HeatCapacity: 4.2, Color: "#3377dd"},
		AmbientC:  20,
		TargetC:   72,
	}
}
