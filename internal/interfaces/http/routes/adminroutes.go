package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "helpdesk/internal/interfaces/http/handlers/admin"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

type AdminRouteConfig struct {
	AdminHandler   *adminhandlers.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAdminRoutes registers the master register endpoints, restricted
// to superusers.
func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireSuperuser())
	{
		admin.POST("/students", config.AdminHandler.AddStudent)
		admin.POST("/students/deactivate", config.AdminHandler.DeactivateStudent)
		admin.POST("/staff", config.AdminHandler.AddStaff)
		admin.POST("/staff/deactivate", config.AdminHandler.DeactivateStaff)
	}
}
