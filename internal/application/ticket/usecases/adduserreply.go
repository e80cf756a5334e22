package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddUserReplyCommand struct {
	TicketID uint
	ParentID *uint
	Body     string
}

type AddUserReplyUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	txManager   TxManager
	sanitizer   Sanitizer
	logger      logger.Interface
}

func NewAddUserReplyUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	txManager TxManager,
	sanitizer Sanitizer,
	logger logger.Interface,
) *AddUserReplyUseCase {
	return &AddUserReplyUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		txManager:   txManager,
		sanitizer:   sanitizer,
		logger:      logger,
	}
}

func (uc *AddUserReplyUseCase) Execute(ctx context.Context, cmd AddUserReplyCommand) (*AddReplyResult, error) {
	body := uc.sanitizer.Clean(cmd.Body)

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	parentID := cmd.ParentID
	if parentID != nil {
		exists, err := uc.messageRepo.Exists(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if !exists {
			uc.logger.Warnw("reply parent no longer exists, attaching to thread root", "parent_id", *parentID)
			parentID = nil
		}
	}

	message, err := ticket.NewMessage(t.ID(), parentID, t.Name(), body, false)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.messageRepo.Save(txCtx, message); err != nil {
			return err
		}

		// A reply on a resolved enquiry reopens it.
		t.ApplyReply(message.Body(), false)
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to add user reply", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("user reply added",
		"ticket_id", t.ID(),
		"message_id", message.ID(),
		"status", t.Status())

	return &AddReplyResult{
		Message:      dto.ToMessageDTO(message),
		TicketStatus: t.Status(),
	}, nil
}
