package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateStatusCommand struct {
	TicketID uint
	Status   string
}

type UpdateStatusResult struct {
	TicketID  uint   `json:"ticket_id"`
	Reference string `json:"ref_id"`
	Status    string `json:"status"`
}

type UpdateStatusUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateStatusUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error) {
	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.ChangeStatus(cmd.Status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if !vo.TicketStatus(cmd.Status).IsKnown() {
		uc.logger.Warnw("setting non-standard ticket status",
			"ticket_id", t.ID(),
			"status", cmd.Status)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status updated", "ticket_id", t.ID(), "status", t.Status())

	return &UpdateStatusResult{
		TicketID:  t.ID(),
		Reference: t.Reference(),
		Status:    t.Status(),
	}, nil
}
