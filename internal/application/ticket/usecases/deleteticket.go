package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	txManager  TxManager
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, txManager TxManager, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	return nil
}
