package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"grooming-dashboard-backend/config"
	"grooming-dashboard-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, handler *Handler) *gin.Engine {
	r := gin.Default()

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/technicians", caching, handler.GetTechnicians)
		api.POST("/technicians", handler.PutTechnician)

		api.GET("/appointments", handler.GetAppointments)
		api.POST("/appointments", handler.CreateAppointment)
		api.DELETE("/appointments/:id", handler.DeleteAppointment)

		api.POST("/blocks", handler.CreateBlock)

		api.POST("/appointments/availability", handler.SearchAvailability)
	}

	return r
}
