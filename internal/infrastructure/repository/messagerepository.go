package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *MessageRepository) Save(ctx context.Context, m *ticket.Message) error {
	model := r.mapper.MessageToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *MessageRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	var rows []models.TicketMessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*ticket.Message, len(rows))
	for i := range rows {
		m, err := r.mapper.MessageToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		messages[i] = m
	}

	return messages, nil
}

func (r *MessageRepository) Exists(ctx context.Context, id uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.TicketMessageModel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check message existence: %w", err)
	}

	return count > 0, nil
}

var _ ticket.MessageRepository = (*MessageRepository)(nil)
var _ ticket.Repository = (*TicketRepository)(nil)
