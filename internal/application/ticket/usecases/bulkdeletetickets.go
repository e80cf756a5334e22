package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type BulkDeleteTicketsCommand struct {
	TicketIDs []uint
}

type BulkDeleteTicketsResult struct {
	// Requested is the number of ids submitted for deletion and is what
	// the operation reports back, even when some ids did not exist.
	Requested int   `json:"requested"`
	Deleted   int64 `json:"deleted"`
}

type BulkDeleteTicketsUseCase struct {
	ticketRepo ticket.Repository
	txManager  TxManager
	logger     logger.Interface
}

func NewBulkDeleteTicketsUseCase(ticketRepo ticket.Repository, txManager TxManager, logger logger.Interface) *BulkDeleteTicketsUseCase {
	return &BulkDeleteTicketsUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *BulkDeleteTicketsUseCase) Execute(ctx context.Context, cmd BulkDeleteTicketsCommand) (*BulkDeleteTicketsResult, error) {
	if len(cmd.TicketIDs) == 0 {
		return nil, errors.NewValidationError("no tickets selected")
	}

	var deleted int64
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = uc.ticketRepo.DeleteBatch(txCtx, cmd.TicketIDs)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to bulk delete tickets", "count", len(cmd.TicketIDs), "error", err)
		return nil, err
	}

	uc.logger.Infow("tickets bulk deleted",
		"requested", len(cmd.TicketIDs),
		"deleted", deleted)

	return &BulkDeleteTicketsResult{
		Requested: len(cmd.TicketIDs),
		Deleted:   deleted,
	}, nil
}
