package routes

import (
	"github.com/gin-gonic/gin"

	dashboardhandlers "helpdesk/internal/interfaces/http/handlers/dashboard"
	"helpdesk/internal/interfaces/http/middleware"
)

type DashboardRouteConfig struct {
	DashboardHandler *dashboardhandlers.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupDashboardRoutes registers the staff endpoints; every route
// requires an authenticated staff session.
func SetupDashboardRoutes(engine *gin.Engine, config *DashboardRouteConfig) {
	staff := engine.Group("/")
	staff.Use(config.AuthMiddleware.RequireAuth())
	{
		staff.GET("dashboard", config.DashboardHandler.Dashboard)
		staff.POST("update-status/:id", config.DashboardHandler.UpdateStatus)
		staff.DELETE("delete-ticket/:id", config.DashboardHandler.DeleteTicket)
		staff.POST("bulk-delete-tickets", config.DashboardHandler.BulkDeleteTickets)
		staff.GET("get-messages/:id", config.DashboardHandler.GetMessages)
		staff.POST("submit-reply/:id", config.DashboardHandler.SubmitReply)
	}
}
