package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const controllerCtxKey = "controller"

// authEnabled reports whether a passphrase guards the controller surface.
func (h *Handler) authEnabled() bool {
	return h.services.Authorization != nil && h.services.Authorization.Enabled()
}

// controllerMiddleware requires a bearer token when auth is enabled and
// lets every request through otherwise.
func (h *Handler) controllerMiddleware(c *gin.Context) {
	if !h.authEnabled() {
		c.Next()
		return
	}

	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	subject, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(controllerCtxKey, subject)
	c.Next()
}
