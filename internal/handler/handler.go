package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"digital-reception-api/internal/service"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	db        *gorm.DB
	signup    *service.SignupService
	refresher *service.StatsRefresher
}

// NewHandlers creates new HTTP handlers
func NewHandlers(db *gorm.DB, signup *service.SignupService, refresher *service.StatsRefresher) *Handlers {
	return &Handlers{
		db:        db,
		signup:    signup,
		refresher: refresher,
	}
}

// SetupRoutes sets up all HTTP routes
func (h *Handlers) SetupRoutes(router *gin.Engine) {
	router.GET("/healthz", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		api.POST("/newsletter", h.Signup)
		api.GET("/newsletter", h.GetStats)

		api.POST("/refresher/run-once", h.RunRefresherOnce)
		api.GET("/refresher/status", h.GetRefresherStatus)
	}
}
