package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type DashboardHandler struct {
	dashboardUC     usecases.DashboardExecutor
	updateStatusUC  usecases.UpdateStatusExecutor
	deleteTicketUC  usecases.DeleteTicketExecutor
	bulkDeleteUC    usecases.BulkDeleteTicketsExecutor
	getMessagesUC   usecases.GetMessagesExecutor
	addStaffReplyUC usecases.AddStaffReplyExecutor
	logger          logger.Interface
}

func NewDashboardHandler(
	dashboardUC usecases.DashboardExecutor,
	updateStatusUC usecases.UpdateStatusExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	bulkDeleteUC usecases.BulkDeleteTicketsExecutor,
	getMessagesUC usecases.GetMessagesExecutor,
	addStaffReplyUC usecases.AddStaffReplyExecutor,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC:     dashboardUC,
		updateStatusUC:  updateStatusUC,
		deleteTicketUC:  deleteTicketUC,
		bulkDeleteUC:    bulkDeleteUC,
		getMessagesUC:   getMessagesUC,
		addStaffReplyUC: addStaffReplyUC,
		logger:          logger.NewLogger(),
	}
}

// Dashboard handles GET /dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	accountID := c.GetUint(authorization.ContextKeyAccountID)
	superuser := c.GetBool(authorization.ContextKeySuperuser)

	result, err := h.dashboardUC.Execute(c.Request.Context(), usecases.DashboardQuery{
		AccountID: accountID,
		Superuser: superuser,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStatus handles POST /update-status/:id
func (h *DashboardHandler) UpdateStatus(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateStatusCommand{
		TicketID: ticketID,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", result)
}

// DeleteTicket handles DELETE /delete-ticket/:id
func (h *DashboardHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketID: ticketID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Enquiry deleted successfully", nil)
}

// BulkDeleteTickets handles POST /bulk-delete-tickets
func (h *DashboardHandler) BulkDeleteTickets(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.bulkDeleteUC.Execute(c.Request.Context(), usecases.BulkDeleteTicketsCommand{TicketIDs: req.TicketIDs})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Enquiries deleted successfully", result)
}

// GetMessages handles GET /get-messages/:id
func (h *DashboardHandler) GetMessages(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getMessagesUC.Execute(c.Request.Context(), usecases.GetMessagesQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SubmitReply handles POST /submit-reply/:id
func (h *DashboardHandler) SubmitReply(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req StaffReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	accountID := c.GetUint(authorization.ContextKeyAccountID)

	result, err := h.addStaffReplyUC.Execute(c.Request.Context(), usecases.AddStaffReplyCommand{
		TicketID:  ticketID,
		AccountID: accountID,
		ParentID:  req.ParentID,
		Body:      req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Reply sent successfully")
}
