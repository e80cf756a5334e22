package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type GetMessagesQuery struct {
	TicketID uint
}

type GetMessagesResult struct {
	Ticket   *dto.TicketDTO   `json:"ticket"`
	Messages []dto.MessageDTO `json:"messages"`
}

type GetMessagesUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewGetMessagesUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	logger logger.Interface,
) *GetMessagesUseCase {
	return &GetMessagesUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *GetMessagesUseCase) Execute(ctx context.Context, query GetMessagesQuery) (*GetMessagesResult, error) {
	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	messages, err := uc.messageRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket thread", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	return &GetMessagesResult{
		Ticket:   dto.ToTicketDTO(t),
		Messages: dto.ToMessageDTOs(messages),
	}, nil
}
