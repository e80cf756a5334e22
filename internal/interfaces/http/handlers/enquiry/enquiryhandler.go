package enquiry

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type EnquiryHandler struct {
	submitTicketUC usecases.SubmitTicketExecutor
	trackTicketUC  usecases.TrackTicketExecutor
	addUserReplyUC usecases.AddUserReplyExecutor
	logger         logger.Interface
}

func NewEnquiryHandler(
	submitTicketUC usecases.SubmitTicketExecutor,
	trackTicketUC usecases.TrackTicketExecutor,
	addUserReplyUC usecases.AddUserReplyExecutor,
) *EnquiryHandler {
	return &EnquiryHandler{
		submitTicketUC: submitTicketUC,
		trackTicketUC:  trackTicketUC,
		addUserReplyUC: addUserReplyUC,
		logger:         logger.NewLogger(),
	}
}

// Landing handles GET /
func (h *EnquiryHandler) Landing(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"service": "University Helpdesk",
		"submit":  "/api/save-ticket",
		"track":   "/track-query",
	})
}

// EnquiryForm handles GET /public-enquiry. The submission form builds its
// department and user type selects from this payload.
func (h *EnquiryHandler) EnquiryForm(c *gin.Context) {
	departments := vo.AllDepartments()
	names := make([]string, 0, len(departments))
	for _, d := range departments {
		names = append(names, d.String())
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"departments": names,
		"user_types":  []string{string(vo.UserTypeStudent), string(vo.UserTypeStaff), string(vo.UserTypeVisitor)},
	})
}

// TrackingForm handles GET /track-enquiry
func (h *EnquiryHandler) TrackingForm(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"reference_example": ticket.FormatReference(1),
		"query":             "/track-query?ref=",
	})
}

// SubmitTicket handles POST /api/save-ticket
func (h *EnquiryHandler) SubmitTicket(c *gin.Context) {
	var req SubmitTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.submitTicketUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Enquiry submitted successfully")
}

// TrackTicket handles GET /track-query?ref=UGC-00000001
func (h *EnquiryHandler) TrackTicket(c *gin.Context) {
	ref := c.Query("ref")
	if ref == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "reference number is required")
		return
	}

	result, err := h.trackTicketUC.Execute(c.Request.Context(), usecases.TrackTicketQuery{Reference: ref})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UserReply handles POST /user-reply/:id
func (h *EnquiryHandler) UserReply(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UserReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for user reply", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.addUserReplyUC.Execute(c.Request.Context(), usecases.AddUserReplyCommand{
		TicketID: ticketID,
		ParentID: req.ParentID,
		Body:     req.Message,
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			utils.ErrorResponse(c, http.StatusNotFound, "enquiry not found")
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Reply added successfully")
}
