package handlers

import (
	"errors"
	"net/http"

	"heat_capacity_game/internal/models"
	"heat_capacity_game/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK             = "ok"
	statusVesselSelected = "vessel_selected"
	statusToggled        = "toggled"
	statusReset          = "reset"

	errSelectVessel    = "failed to select vessel"
	errTogglePlay      = "failed to toggle play"
	errResetSession    = "failed to reset session"
	errGetState        = "failed to load state"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondWithSnapshot answers an intent with its status and the snapshot
// taken right after the transition.
func respondWithSnapshot(c *gin.Context, status string, snap models.Snapshot) {
	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"state":  snap,
	})
}

// SelectVesselRequest is the payload of POST /api/v1/session/active.
type SelectVesselRequest struct {
	// Vessel to heat. Allowed: left, right
	Vessel string `json:"vessel" binding:"required" example:"right"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Get session snapshot
// @Tags         session
// @Produce      json
// @Success      200  {object}  models.Snapshot
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/session/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	snap, err := h.services.Monitoring.GetState(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "session_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Select the heated vessel
// @Description  Temperatures are left untouched; only the heater moves.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      SelectVesselRequest  true  "Vessel payload"
// @Success      200   {object}  map[string]interface{}  "status, state"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/session/active [post]
// @Security     BearerAuth
func (h *Handler) selectVessel(c *gin.Context) {
	var req SelectVesselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	side, err := service.ParseSide(req.Vessel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, err := h.services.Game.SetActiveVessel(c.Request.Context(), side)
	if err != nil {
		if errors.Is(err, service.ErrInvalidVessel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errSelectVessel, "session_select_failed", err, "vessel", side)
		return
	}
	respondWithSnapshot(c, statusVesselSelected, snap)
}

// @Summary      Play or pause
// @Description  Flips the running flag in any state, including after completion.
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/session/toggle [post]
// @Security     BearerAuth
func (h *Handler) togglePlay(c *gin.Context) {
	snap, err := h.services.Game.TogglePlaying(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errTogglePlay, "session_toggle_failed", err)
		return
	}
	respondWithSnapshot(c, statusToggled, snap)
}

// @Summary      Reset session
// @Description  Restores both vessels to ambient with the left vessel heated.
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/session/reset [post]
// @Security     BearerAuth
func (h *Handler) resetSession(c *gin.Context) {
	snap, err := h.services.Game.Reset(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errResetSession, "session_reset_failed", err)
		return
	}
	respondWithSnapshot(c, statusReset, snap)
}
