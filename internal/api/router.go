package api

import (
	"net/http"

	"battery-case/internal/api/handlers"
	"battery-case/internal/api/middleware"
	"battery-case/internal/config"
	"battery-case/internal/logging"

	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and routes.
func NewRouter(cfg config.ServerConfig, log *logging.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateBurst))

	presetHandler := handlers.NewPresetHandler(cfg.PresetDir, log)
	evaluateHandler := handlers.NewEvaluateHandler(presetHandler, log)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/parameters", handlers.ListParameters)
		v1.GET("/presets", presetHandler.ListPresets)
		v1.POST("/evaluate", evaluateHandler.Evaluate)
		v1.POST("/evaluate/chart", evaluateHandler.Chart)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	return router
}
