package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":        model.Status,
			"last_reply_by": model.LastReplyBy,
			"reply_message": model.ReplyMessage,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}

	// Cascade: the thread goes with the ticket.
	if err := tx.Where("ticket_id = ?", id).Delete(&models.TicketMessageModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket messages: %w", err)
	}

	return nil
}

func (r *TicketRepository) DeleteBatch(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("id IN ?", ids).Delete(&models.TicketModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete tickets: %w", result.Error)
	}

	if err := tx.Where("ticket_id IN ?", ids).Delete(&models.TicketMessageModel{}).Error; err != nil {
		return 0, fmt.Errorf("failed to delete ticket messages: %w", err)
	}

	return result.RowsAffected, nil
}

// dashboardRow is the scan target for the aggregated dashboard query.
// The derived columns come from correlated subselects so the listing
// never issues one query per ticket.
type dashboardRow struct {
	models.TicketModel
	LastMessage   *string
	LastIsStaff   *bool
	LastStaffName *string
}

func (r *TicketRepository) ListDashboard(ctx context.Context, department *vo.Department) ([]*ticket.DashboardEntry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.TicketModel{}).Select(`tickets.*,
		(SELECT m.message FROM ticket_messages m
			WHERE m.ticket_id = tickets.id
			ORDER BY m.created_at DESC, m.id DESC LIMIT 1) AS last_message,
		(SELECT m.is_staff FROM ticket_messages m
			WHERE m.ticket_id = tickets.id
			ORDER BY m.created_at DESC, m.id DESC LIMIT 1) AS last_is_staff,
		(SELECT m.sender_name FROM ticket_messages m
			WHERE m.ticket_id = tickets.id AND m.is_staff = ?
			ORDER BY m.created_at DESC, m.id DESC LIMIT 1) AS last_staff_name`, true)

	if department != nil {
		query = query.Where("department = ?", department.String())
	}

	var rows []dashboardRow
	if err := query.Order("updated_at DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list dashboard tickets: %w", err)
	}

	entries := make([]*ticket.DashboardEntry, len(rows))
	for i, row := range rows {
		t, err := r.mapper.ToDomain(&row.TicketModel)
		if err != nil {
			return nil, err
		}

		entry := &ticket.DashboardEntry{Ticket: t}
		if row.LastMessage != nil {
			entry.LastMessage = *row.LastMessage
		}
		if row.LastIsStaff != nil {
			entry.LastIsStaff = *row.LastIsStaff
		}
		if row.LastStaffName != nil {
			entry.LastStaffName = *row.LastStaffName
		}
		entries[i] = entry
	}

	return entries, nil
}
