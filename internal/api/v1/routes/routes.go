package routes

import (
	"github.com/gin-gonic/gin"

	"audio-review/internal/api/v1/handlers"
	"audio-review/internal/api/v1/services"
)

// RegisterRoutes registers the review API under router, normally /api.
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	reviewHandler := handlers.NewReviewHandler(container.ReviewService)

	router.GET("/audio-files", reviewHandler.ListAudioFiles)
	router.POST("/save-transcription", reviewHandler.SaveTranscription)
	router.POST("/transcriptions/:id/rating", reviewHandler.RateTranscription)
	router.POST("/init-db", reviewHandler.InitDB)
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	ReviewService services.ReviewService
}
