package routes

import (
	"github.com/gin-gonic/gin"

	"clinicflow/handlers"
)

// RegisterScheduleRoutes sets up the endpoints for the scheduling engine.
func RegisterScheduleRoutes(r *gin.Engine, sh *handlers.ScheduleHandler) {
	api := r.Group("/api/schedule")
	{
		// Snapshot session lifecycle.
		api.POST("/session", sh.StartSession)
		api.PUT("/session/:sessionID", sh.RefreshSession)
		api.DELETE("/session/:sessionID", sh.CancelSession)

		// Queries against a cached session snapshot.
		api.GET("/session/:sessionID/slots", sh.GetDaySlots)
		api.POST("/session/:sessionID/matrix", sh.GetScheduleMatrix)
		api.POST("/session/:sessionID/timeline", sh.GetRoomTimeline)
		api.POST("/session/:sessionID/recurring", sh.GetRecurringAlternatives)
		api.POST("/session/:sessionID/can-book", sh.CanBook)
		api.POST("/session/:sessionID/doctor/can-book", sh.CheckDoctorBooking)
		api.GET("/session/:sessionID/doctor/slots", sh.GetDoctorSlots)

		// Sessionless variants: the snapshot rides along in the request body.
		api.POST("/matrix", sh.GetScheduleMatrixStateless)
		api.POST("/recurring", sh.GetRecurringAlternativesStateless)
	}
}
