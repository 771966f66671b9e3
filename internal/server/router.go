package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/smartnotes-backend/internal/handlers"
)

type RouterConfig struct {
	RecordingHandler *handlers.RecordingHandler
	SmartifyHandler  *handlers.SmartifyHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/recordings", cfg.RecordingHandler.CreateRecording)
		api.GET("/recordings/:id", cfg.RecordingHandler.GetRecording)
		api.PUT("/recordings/:id/transcript", cfg.RecordingHandler.UpdateTranscript)

		api.POST("/recordings/:id/smartify/preview", cfg.SmartifyHandler.Preview)
		api.POST("/recordings/:id/smartify/commit", cfg.SmartifyHandler.Commit)
	}

	return router
}
