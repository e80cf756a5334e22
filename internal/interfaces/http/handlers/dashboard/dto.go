package dashboard

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type StaffReplyRequest struct {
	Message  string `json:"message" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

type BulkDeleteRequest struct {
	TicketIDs []uint `json:"ticket_ids" binding:"required,min=1"`
}
