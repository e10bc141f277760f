package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для управления бизнесами (CRUD) и чек-инами
	businesses := api.Group("/businesses")
	{
		businesses.POST("", h.createBusiness)
		businesses.GET("", h.listBusinesses)
		businesses.GET("/nearby", h.findNearby)
		businesses.GET("/:id", h.getBusiness)
		businesses.PUT("/:id", h.updateBusiness)
		businesses.DELETE("/:id", h.deleteBusiness)
		businesses.PUT("/:id/location", h.updateLocation)
		businesses.PUT("/:id/status", h.updateStatus)
		businesses.POST("/:id/checkin/eligibility", h.checkInEligibility)
		businesses.POST("/:id/checkin", h.checkIn)
		businesses.GET("/:id/schedule", h.listSchedule)
	}

	// Маршруты для записей расписания и посещаемости
	schedules := api.Group("/schedules")
	{
		schedules.POST("", h.createScheduleEntry)
		schedules.GET("/:id", h.getScheduleEntry)
		schedules.PUT("/:id", h.updateScheduleEntry)
		schedules.DELETE("/:id", h.deleteScheduleEntry)
		schedules.POST("/:id/attendance", h.toggleAttendance)
	}

	// Маршруты профилей и подписок
	profiles := api.Group("/profiles")
	{
		profiles.GET("/:id", h.getProfile)
		profiles.PUT("/:id", h.saveProfile)
		profiles.PUT("/:id/following/:businessId", h.followBusiness)
		profiles.DELETE("/:id/following/:businessId", h.unfollowBusiness)
	}

	// Маршрут для проверки близости
	api.POST("/notifications/check", h.checkProximity)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
