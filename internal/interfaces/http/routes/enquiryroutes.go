package routes

import (
	"github.com/gin-gonic/gin"

	enquiryhandlers "helpdesk/internal/interfaces/http/handlers/enquiry"
)

type EnquiryRouteConfig struct {
	EnquiryHandler *enquiryhandlers.EnquiryHandler
	SubmitLimiter  gin.HandlerFunc
}

// SetupEnquiryRoutes registers the public endpoints. No authentication:
// submitters track their enquiries by reference number alone.
func SetupEnquiryRoutes(engine *gin.Engine, config *EnquiryRouteConfig) {
	submit := engine.Group("/api")
	if config.SubmitLimiter != nil {
		submit.Use(config.SubmitLimiter)
	}
	{
		submit.POST("/save-ticket", config.EnquiryHandler.SubmitTicket)
	}

	engine.GET("/", config.EnquiryHandler.Landing)
	engine.GET("/public-enquiry", config.EnquiryHandler.EnquiryForm)
	engine.GET("/track-enquiry", config.EnquiryHandler.TrackingForm)
	engine.GET("/track-query", config.EnquiryHandler.TrackTicket)
	engine.POST("/user-reply/:id", config.EnquiryHandler.UserReply)
}
