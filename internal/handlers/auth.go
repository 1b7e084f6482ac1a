package handlers

import (
	"errors"
	"net/http"

	"heat_capacity_game/internal/service"

	"github.com/gin-gonic/gin"
)

// SignInRequest carries the operator passphrase.
type SignInRequest struct {
	Passphrase string `json:"passphrase" binding:"required" example:"correct horse battery staple"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("auth_bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Sign in
// @Description  Exchanges the operator passphrase for a controller token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      SignInRequest  true  "Passphrase"
// @Success      200   {object}  map[string]string  "token"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var input SignInRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	if !h.authEnabled() {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrAuthDisabled.Error()})
		return
	}

	token, err := h.services.GenerateToken(input.Passphrase)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"token": token})
	case errors.Is(err, service.ErrInvalidPassphrase):
		if h.log != nil {
			h.log.Infow("auth_sign_in_failed", "err", err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to issue token", "auth_token_failed", err)
	}
}
