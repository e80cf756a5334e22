package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/biztime"
)

type TicketDTO struct {
	ID           uint      `json:"id"`
	Reference    string    `json:"reference"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	UserType     string    `json:"user_type"`
	Department   string    `json:"department"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	LastReplyBy  *string   `json:"last_reply_by"`
	ReplyMessage string    `json:"reply_message"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	SubmittedOn  string    `json:"submitted_on"`
}

type MessageDTO struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	ParentID    *uint     `json:"parent_id"`
	SenderName  string    `json:"sender_name"`
	Message     string    `json:"message"`
	IsStaff     bool      `json:"is_staff"`
	CreatedAt   time.Time `json:"created_at"`
	DisplayTime string    `json:"display_time"`
}

type DashboardEntryDTO struct {
	ID            uint   `json:"id"`
	Reference     string `json:"reference"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	UserType      string `json:"user_type"`
	Department    string `json:"department"`
	Subject       string `json:"subject"`
	Status        string `json:"status"`
	LastMessage   string `json:"last_message"`
	LastIsStaff   bool   `json:"last_is_staff"`
	LastStaffName string `json:"last_staff_name"`
	HasNew        bool   `json:"has_new"`
	UpdatedAt     string `json:"updated_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	var lastReplyBy *string
	if by := t.LastReplyBy(); by != nil {
		s := by.String()
		lastReplyBy = &s
	}

	return &TicketDTO{
		ID:           t.ID(),
		Reference:    t.Reference(),
		Name:         t.Name(),
		Email:        t.Email(),
		Phone:        t.Phone(),
		UserType:     t.UserType().String(),
		Department:   t.Department().String(),
		Subject:      t.Subject(),
		Message:      t.Message(),
		Status:       t.Status(),
		LastReplyBy:  lastReplyBy,
		ReplyMessage: t.ReplyMessage(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
		SubmittedOn:  biztime.FormatDate(t.CreatedAt()),
	}
}

func ToMessageDTO(m *ticket.Message) MessageDTO {
	return MessageDTO{
		ID:          m.ID(),
		TicketID:    m.TicketID(),
		ParentID:    m.ParentID(),
		SenderName:  m.SenderName(),
		Message:     m.Body(),
		IsStaff:     m.IsStaff(),
		CreatedAt:   m.CreatedAt(),
		DisplayTime: biztime.FormatThread(m.CreatedAt()),
	}
}

func ToMessageDTOs(messages []*ticket.Message) []MessageDTO {
	dtos := make([]MessageDTO, len(messages))
	for i, m := range messages {
		dtos[i] = ToMessageDTO(m)
	}
	return dtos
}

func ToDashboardEntryDTO(e *ticket.DashboardEntry) DashboardEntryDTO {
	t := e.Ticket
	return DashboardEntryDTO{
		ID:            t.ID(),
		Reference:     t.Reference(),
		Name:          t.Name(),
		Email:         t.Email(),
		UserType:      t.UserType().String(),
		Department:    t.Department().String(),
		Subject:       t.Subject(),
		Status:        t.Status(),
		LastMessage:   e.LastMessage,
		LastIsStaff:   e.LastIsStaff,
		LastStaffName: e.LastStaffName,
		HasNew:        e.HasUnreadUserActivity(),
		UpdatedAt:     biztime.FormatShort(t.UpdatedAt()),
	}
}
