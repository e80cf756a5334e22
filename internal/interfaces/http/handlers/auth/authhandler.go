package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	loginUC      usecases.LoginExecutor
	refreshUC    usecases.RefreshSessionExecutor
	cookieConfig config.CookieConfig
	jwtConfig    config.JWTConfig
	logger       logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	refreshUC usecases.RefreshSessionExecutor,
	cookieConfig config.CookieConfig,
	jwtConfig config.JWTConfig,
) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		refreshUC:    refreshUC,
		cookieConfig: cookieConfig,
		jwtConfig:    jwtConfig,
		logger:       logger.NewLogger(),
	}
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "username and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	accessMaxAge := h.jwtConfig.AccessExpMinutes * 60
	refreshMaxAge := h.jwtConfig.RefreshExpDays * 24 * 60 * 60
	utils.SetAuthCookies(c, h.cookieConfig, result.AccessToken, result.RefreshToken, accessMaxAge, refreshMaxAge)

	utils.SuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
		AccountID:         result.AccountID,
		Username:          result.Username,
		DisplayName:       result.DisplayName,
		Superuser:         result.Superuser,
		DisplayDepartment: result.DisplayDepartment,
		ExpiresIn:         result.ExpiresIn,
	})
}

// Refresh handles POST /refresh, rotating the session cookies.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := utils.GetTokenFromCookie(c, utils.RefreshTokenCookie)
	if refreshToken == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "refresh token is required")
		return
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), usecases.RefreshSessionCommand{
		RefreshToken: refreshToken,
	})
	if err != nil {
		utils.ClearAuthCookies(c, h.cookieConfig)
		utils.ErrorResponseWithError(c, err)
		return
	}

	accessMaxAge := h.jwtConfig.AccessExpMinutes * 60
	refreshMaxAge := h.jwtConfig.RefreshExpDays * 24 * 60 * 60
	utils.SetAuthCookies(c, h.cookieConfig, result.AccessToken, result.RefreshToken, accessMaxAge, refreshMaxAge)

	utils.SuccessResponse(c, http.StatusOK, "Session refreshed", gin.H{
		"expires_in": result.ExpiresIn,
	})
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}
