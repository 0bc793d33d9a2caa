package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/fleet_incident_reporting/internal/models"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты
	api.POST("/auth/login", h.login)
	api.GET("/system/health", h.healthCheck)

	// Маршруты под сессией
	authed := api.Group("")
	authed.Use(SessionAuthMiddleware(h.authService, h.logger))
	{
		authed.POST("/auth/logout", h.logout)
		authed.GET("/auth/me", h.currentUser)
		authed.PUT("/profile", h.updateProfile)

		authed.GET("/vehicles", h.listVehicles)

		incidents := authed.Group("/incidents")
		{
			incidents.POST("", h.createIncident)
			incidents.GET("/my", h.listMyIncidents)
			incidents.GET("/my/export", h.exportMyIncidents)
			incidents.GET("/:id", h.getIncident)
		}

		drafts := authed.Group("/drafts")
		{
			drafts.GET("", h.getDraft)
			drafts.PUT("", h.autosaveDraft)
			drafts.POST("/save", h.saveDraftNow)
			drafts.DELETE("", h.clearDraft)
		}

		notifications := authed.Group("/notifications")
		{
			notifications.GET("", h.listNotifications)
			notifications.POST("/:id/read", h.markNotificationRead)
			notifications.POST("/read-all", h.markAllNotificationsRead)
			notifications.DELETE("/:id", h.deleteNotification)
		}

		// Админские маршруты
		admin := authed.Group("")
		admin.Use(RequireRole(models.RoleAdmin, h.logger))
		{
			admin.POST("/vehicles", h.addVehicle)
			admin.PUT("/vehicles/:id", h.updateVehicle)
			admin.DELETE("/vehicles/:id", h.deleteVehicle)

			admin.GET("/users", h.listUsers)
			admin.POST("/users", h.addUser)
			admin.PUT("/users/:id", h.updateUser)
			admin.DELETE("/users/:id", h.deleteUser)

			admin.GET("/incidents", h.listIncidents)
			admin.GET("/incidents/export", h.exportIncidents)
			admin.PUT("/incidents/:id/status", h.updateIncidentStatus)

			admin.GET("/analytics", h.getAnalytics)
		}
	}
}
