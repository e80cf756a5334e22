// Package mappers converts between persistence models and domain
// entities. Domain invariants are re-checked on the way out of the
// database via the Reconstruct constructors.
package mappers

import (
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

type TicketMapper struct{}

func NewTicketMapper() TicketMapper {
	return TicketMapper{}
}

func (TicketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	var lastReplyBy *string
	if t.LastReplyBy() != nil {
		s := t.LastReplyBy().String()
		lastReplyBy = &s
	}

	return &models.TicketModel{
		ID:                 t.ID(),
		Name:               t.Name(),
		Email:              t.Email(),
		Phone:              t.Phone(),
		UserType:           t.UserType().String(),
		StudentID:          t.StudentID(),
		StaffID:            t.StaffID(),
		ValidatedStudentID: t.ValidatedStudentID(),
		ValidatedStaffID:   t.ValidatedStaffID(),
		Subject:            t.Subject(),
		Message:            t.Message(),
		Department:         t.Department().String(),
		Status:             t.Status(),
		LastReplyBy:        lastReplyBy,
		ReplyMessage:       t.ReplyMessage(),
		CreatedAt:          t.CreatedAt().UnixMilli(),
		UpdatedAt:          t.UpdatedAt().UnixMilli(),
	}
}

func (TicketMapper) ToDomain(m *models.TicketModel) (*ticket.Ticket, error) {
	var lastReplyBy *vo.ReplyBy
	if m.LastReplyBy != nil {
		by := vo.ReplyBy(*m.LastReplyBy)
		lastReplyBy = &by
	}

	return ticket.ReconstructTicket(
		m.ID,
		m.Name,
		m.Email,
		m.Phone,
		vo.UserType(m.UserType),
		m.StudentID,
		m.StaffID,
		m.ValidatedStudentID,
		m.ValidatedStaffID,
		m.Subject,
		m.Message,
		vo.Department(m.Department),
		m.Status,
		lastReplyBy,
		m.ReplyMessage,
		time.UnixMilli(m.CreatedAt).UTC(),
		time.UnixMilli(m.UpdatedAt).UTC(),
	)
}

func (TicketMapper) MessageToModel(m *ticket.Message) *models.TicketMessageModel {
	return &models.TicketMessageModel{
		ID:         m.ID(),
		TicketID:   m.TicketID(),
		ParentID:   m.ParentID(),
		SenderName: m.SenderName(),
		Message:    m.Body(),
		IsStaff:    m.IsStaff(),
		CreatedAt:  m.CreatedAt().UnixMilli(),
	}
}

func (TicketMapper) MessageToDomain(m *models.TicketMessageModel) (*ticket.Message, error) {
	return ticket.ReconstructMessage(
		m.ID,
		m.TicketID,
		m.ParentID,
		m.SenderName,
		m.Message,
		m.IsStaff,
		time.UnixMilli(m.CreatedAt).UTC(),
	)
}
