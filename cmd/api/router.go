package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"summarizer-backend/internal/meeting/delivery"
	"summarizer-backend/internal/meeting/usecase"
)

func SetupRoutes(r *gin.Engine, meetingUsecase usecase.MeetingUsecase) {
	meetingHandler := delivery.NewMeetingHandler(meetingUsecase)

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.POST("/generate-summary/", meetingHandler.GenerateSummary)
		api.POST("/save-meeting/", meetingHandler.SaveMeeting)
		api.POST("/share-email/", meetingHandler.ShareViaEmail)
		api.GET("/meetings/", meetingHandler.ListMeetings)
		api.GET("/meeting/:id/", meetingHandler.GetMeeting)
		api.DELETE("/meeting/:id/", meetingHandler.DeleteMeeting)
	}
}
