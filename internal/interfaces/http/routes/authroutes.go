package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "helpdesk/internal/interfaces/http/handlers/auth"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.AuthHandler
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	engine.POST("/login", config.AuthHandler.Login)
	engine.POST("/refresh", config.AuthHandler.Refresh)
	engine.POST("/logout", config.AuthHandler.Logout)
}
