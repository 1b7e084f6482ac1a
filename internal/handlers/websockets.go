package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"heat_capacity_game/internal/models"
	"heat_capacity_game/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 50 * time.Millisecond
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000 // 10s in ms
	replyBuffer      = 8
)

// Message types on the wire.
const (
	msgState  = "state"
	msgError  = "error"
	msgSelect = "select"
	msgToggle = "toggle"
	msgReset  = "reset"
)

var (
	errUnknownIntent   = errors.New("unknown intent type")
	errIntentForbidden = errors.New("intents require a controller token")
	errMalformedIntent = errors.New("malformed intent")
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// wsIntent is a client message: {"type":"select","vessel":"right"},
// {"type":"toggle"} or {"type":"reset"}.
type wsIntent struct {
	Type   string `json:"type"`
	Vessel string `json:"vessel,omitempty"`
}

// Upgrader for HTTP -> WebSocket.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origins once the browser client has a fixed host
}

// @Summary      Snapshot stream
// @Description  Upgrades to WebSocket. Pushes {"type":"state","data":Snapshot} on change, at most once per interval. Accepts select/toggle/reset intents; when auth is enabled they need ?token=.
// @Tags         session
// @Param        interval     query  string  false  "Push interval as a Go duration, up to 10s"  example(100ms)
// @Param        interval_ms  query  int     false  "Push interval in milliseconds, up to 10000"
// @Param        token        query  string  false  "Controller token"
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)
	canControl := h.wsCanControl(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	updates, unsubscribe := h.services.Monitoring.Subscribe()
	defer unsubscribe()

	// The reader never writes; replies go through the writer loop below.
	replies := make(chan wsEnvelope, replyBuffer)
	done := make(chan struct{})
	go h.startReader(ctx, conn, canControl, replies, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	// Send initial state immediately.
	initial, err := h.services.Monitoring.GetState(ctx)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_get_state_failed", "err", err)
		}
		return
	}
	if err := writeEnvelope(conn, wsEnvelope{Type: msgState, Data: initial}); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	// pending holds the newest snapshot not yet pushed; older ones are dropped.
	var pending *models.Snapshot
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case snap, ok := <-updates:
			if !ok {
				return
			}
			pending = &snap
		case reply := <-replies:
			if err := writeEnvelope(conn, reply); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if pending == nil {
				continue
			}
			if err := writeEnvelope(conn, wsEnvelope{Type: msgState, Data: *pending}); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
			pending = nil
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	interval := h.streamInterval
	if interval <= 0 {
		interval = defaultInterval
	}

	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return interval
}

// wsCanControl decides once per connection whether intents are accepted.
// Browsers cannot set headers on the upgrade request, so the token rides
// in the query string.
func (h *Handler) wsCanControl(c *gin.Context) bool {
	if !h.authEnabled() {
		return true
	}
	token := c.Query("token")
	if token == "" {
		return false
	}
	_, err := h.services.ParseToken(token)
	return err == nil
}

// startReader turns client messages into intents and detects closure.
func (h *Handler) startReader(ctx context.Context, conn *websocket.Conn, canControl bool, replies chan<- wsEnvelope, done chan<- struct{}) {
	defer close(done)
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}

		var reply wsEnvelope
		snap, err := h.applyIntent(ctx, raw, canControl)
		if err != nil {
			reply = wsEnvelope{Type: msgError, Error: err.Error()}
		} else {
			reply = wsEnvelope{Type: msgState, Data: snap}
		}

		select {
		case replies <- reply:
		case <-ctx.Done():
			return
		}
	}
}

// applyIntent decodes one client message and runs it against the game.
func (h *Handler) applyIntent(ctx context.Context, raw []byte, canControl bool) (models.Snapshot, error) {
	var in wsIntent
	if err := json.Unmarshal(raw, &in); err != nil {
		return models.Snapshot{}, errMalformedIntent
	}
	if !canControl {
		return models.Snapshot{}, errIntentForbidden
	}

	var (
		snap models.Snapshot
		err  error
	)
	switch in.Type {
	case msgSelect:
		side, perr := service.ParseSide(in.Vessel)
		if perr != nil {
			return models.Snapshot{}, perr
		}
		snap, err = h.services.Game.SetActiveVessel(ctx, side)
	case msgToggle:
		snap, err = h.services.Game.TogglePlaying(ctx)
	case msgReset:
		snap, err = h.services.Game.Reset(ctx)
	default:
		return models.Snapshot{}, errUnknownIntent
	}
	if err != nil && h.log != nil {
		h.log.Errorw("ws_intent_failed", "err", err, "type", in.Type)
	}
	return snap, err
}

// writeEnvelope writes one message with a write deadline.
func writeEnvelope(conn *websocket.Conn, env wsEnvelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
