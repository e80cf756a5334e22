package enquiry

import (
	"helpdesk/internal/application/ticket/usecases"
)

type SubmitTicketRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"max=20"`
	UserType   string `json:"user_type"`
	StudentID  string `json:"student_id"`
	StaffID    string `json:"staff_id"`
	Department string `json:"department" binding:"required"`
	Subject    string `json:"subject" binding:"required,max=200"`
	Message    string `json:"message" binding:"required"`
}

func (r *SubmitTicketRequest) ToCommand() usecases.SubmitTicketCommand {
	return usecases.SubmitTicketCommand{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		UserType:   r.UserType,
		StudentID:  r.StudentID,
		StaffID:    r.StaffID,
		Department: r.Department,
		Subject:    r.Subject,
		Message:    r.Message,
	}
}

type UserReplyRequest struct {
	Message  string `json:"message" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}
