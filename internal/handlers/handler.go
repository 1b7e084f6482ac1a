package handlers

import (
	"time"

	_ "heat_capacity_game/docs" // swagger spec
	"heat_capacity_game/internal/logger"
	"heat_capacity_game/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	streamInterval time.Duration
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log, streamInterval: defaultInterval}
}

// SetStreamInterval changes the push interval used by /ws when the client
// does not ask for one. Values outside (0, maxInterval] are ignored.
func (h *Handler) SetStreamInterval(d time.Duration) {
	if d > 0 && d <= maxInterval {
		h.streamInterval = d
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected when a passphrase is configured)
	h.registerAPIRoutes(router)

	// Snapshot stream and intents over WebSocket on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.controllerMiddleware)
	{
		h.registerSessionRoutes(api)
		api.GET("/logs", h.getLogs)
	}
}

func (h *Handler) registerSessionRoutes(api *gin.RouterGroup) {
	session := api.Group("/session")
	{
		session.GET("/state", h.getState)
		// Body example: {"vessel":"right"}
		session.POST("/active", h.selectVessel)
		session.POST("/toggle", h.togglePlay)
		session.POST("/reset", h.resetSession)
	}
}
