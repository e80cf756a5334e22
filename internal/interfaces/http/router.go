package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUC "helpdesk/internal/application/auth/usecases"
	registryUC "helpdesk/internal/application/registry/usecases"
	ticketUC "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/auth"
	appConfig "helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/sanitize"
	adminhandlers "helpdesk/internal/interfaces/http/handlers/admin"
	authhandlers "helpdesk/internal/interfaces/http/handlers/auth"
	dashboardhandlers "helpdesk/internal/interfaces/http/handlers/dashboard"
	enquiryhandlers "helpdesk/internal/interfaces/http/handlers/enquiry"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine           *gin.Engine
	cfg              *appConfig.Config
	enquiryHandler   *enquiryhandlers.EnquiryHandler
	dashboardHandler *dashboardhandlers.DashboardHandler
	authHandler      *authhandlers.AuthHandler
	adminHandler     *adminhandlers.AdminHandler
	authMiddleware   *middleware.AuthMiddleware
	submitLimiter    gin.HandlerFunc
	logger           logger.Interface
}

// jwtServiceAdapter narrows the infrastructure JWT service to what the
// auth use cases need.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(accountID uint, username string, superuser bool) (*authUC.TokenPair, error) {
	pair, err := a.JWTService.Generate(accountID, username, superuser)
	if err != nil {
		return nil, err
	}
	return &authUC.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a *jwtServiceAdapter) Refresh(refreshToken string) (*authUC.TokenPair, error) {
	pair, err := a.JWTService.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	return &authUC.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *appConfig.Config, log logger.Interface) *Router {
	engine := gin.New()

	// Repositories
	ticketRepo := repository.NewTicketRepository(database)
	messageRepo := repository.NewMessageRepository(database)
	studentRepo := repository.NewStudentRepository(database)
	staffRegistryRepo := repository.NewStaffRegistryRepository(database)
	accountRepo := repository.NewStaffAccountRepository(database)
	profileRepo := repository.NewStaffProfileRepository(database)

	txManager := db.NewTransactionManager(database)
	sanitizer := sanitize.NewSanitizer()

	// Notifications
	mailer := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SendTimeout: cfg.Email.SendTimeout(),
	})
	notifier := email.NewDispatcher(mailer, cfg.Email.DepartmentEmails, cfg.Email.CentralEmail, log)

	// Auth
	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	// Use cases
	submitTicketUC := ticketUC.NewSubmitTicketUseCase(
		ticketRepo, messageRepo, studentRepo, staffRegistryRepo, txManager, sanitizer, notifier, log)
	trackTicketUC := ticketUC.NewTrackTicketUseCase(ticketRepo, messageRepo, log)
	addUserReplyUC := ticketUC.NewAddUserReplyUseCase(ticketRepo, messageRepo, txManager, sanitizer, log)
	dashboardUC := ticketUC.NewDashboardUseCase(ticketRepo, profileRepo, log)
	updateStatusUC := ticketUC.NewUpdateStatusUseCase(ticketRepo, log)
	deleteTicketUC := ticketUC.NewDeleteTicketUseCase(ticketRepo, txManager, log)
	bulkDeleteUC := ticketUC.NewBulkDeleteTicketsUseCase(ticketRepo, txManager, log)
	getMessagesUC := ticketUC.NewGetMessagesUseCase(ticketRepo, messageRepo, log)
	addStaffReplyUC := ticketUC.NewAddStaffReplyUseCase(
		ticketRepo, messageRepo, accountRepo, profileRepo, txManager, sanitizer, notifier, log)

	loginUC := authUC.NewLoginUseCase(accountRepo, profileRepo, hasher, &jwtServiceAdapter{jwtService}, log)
	refreshSessionUC := authUC.NewRefreshSessionUseCase(&jwtServiceAdapter{jwtService}, log)

	addStudentUC := registryUC.NewAddStudentRecordUseCase(studentRepo, log)
	addStaffUC := registryUC.NewAddStaffRecordUseCase(staffRegistryRepo, log)
	deactivateStudentUC := registryUC.NewDeactivateStudentRecordUseCase(studentRepo, log)
	deactivateStaffUC := registryUC.NewDeactivateStaffRecordUseCase(staffRegistryRepo, log)

	// Handlers
	enquiryHandler := enquiryhandlers.NewEnquiryHandler(submitTicketUC, trackTicketUC, addUserReplyUC)
	dashboardHandler := dashboardhandlers.NewDashboardHandler(
		dashboardUC, updateStatusUC, deleteTicketUC, bulkDeleteUC, getMessagesUC, addStaffReplyUC)
	authHandler := authhandlers.NewAuthHandler(loginUC, refreshSessionUC, cfg.Auth.Cookie, cfg.Auth.JWT)
	adminHandler := adminhandlers.NewAdminHandler(addStudentUC, addStaffUC, deactivateStudentUC, deactivateStaffUC)

	var submitLimiter gin.HandlerFunc
	if cfg.RateLimit.SubmitPerMinute > 0 {
		limiter := ratelimit.NewNoopRateLimiter()
		if redisClient != nil {
			limiter = ratelimit.NewRedisRateLimiter(redisClient)
		} else {
			log.Warn("redis disabled, submission rate limiting is a no-op")
		}
		submitLimiter = middleware.SubmitRateLimit(limiter, cfg.RateLimit.SubmitPerMinute)
	}

	return &Router{
		engine:           engine,
		cfg:              cfg,
		enquiryHandler:   enquiryHandler,
		dashboardHandler: dashboardHandler,
		authHandler:      authHandler,
		adminHandler:     adminHandler,
		authMiddleware:   middleware.NewAuthMiddleware(jwtService, log),
		submitLimiter:    submitLimiter,
		logger:           log,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.SecurityHeaders())
	if len(r.cfg.Server.AllowedOrigins) > 0 {
		r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	}

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupEnquiryRoutes(r.engine, &routes.EnquiryRouteConfig{
		EnquiryHandler: r.enquiryHandler,
		SubmitLimiter:  r.submitLimiter,
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})

	routes.SetupDashboardRoutes(r.engine, &routes.DashboardRouteConfig{
		DashboardHandler: r.dashboardHandler,
		AuthMiddleware:   r.authMiddleware,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminHandler:   r.adminHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
