package routes

import (
	"sparkle_shine/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimatorSessions = "/estimator/sessions"
)

func addEstimatorRoutes(rg *gin.RouterGroup, h *handlers.EstimatorHandler) {
	sessions := rg.Group(PathEstimatorSessions)
	{
		sessions.POST("", h.StartSession)
		sessions.GET("/:session_id", h.GetSession)
		sessions.PUT("/:session_id/package", h.SetPackage)
		sessions.POST("/:session_id/rooms", h.AdjustRoomCount)
		sessions.PUT("/:session_id/frequency", h.SetFrequency)
		sessions.POST("/:session_id/calendar/navigate", h.NavigateCalendar)
		sessions.POST("/:session_id/calendar/select", h.SelectDay)
		sessions.POST("/:session_id/submit", h.Submit)
		sessions.POST("/:session_id/reset", h.Reset)
	}
}
