package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type TrackTicketQuery struct {
	Reference string
}

type TrackTicketResult struct {
	Ticket   *dto.TicketDTO   `json:"ticket"`
	Messages []dto.MessageDTO `json:"messages"`
}

type TrackTicketUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewTrackTicketUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	logger logger.Interface,
) *TrackTicketUseCase {
	return &TrackTicketUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *TrackTicketUseCase) Execute(ctx context.Context, query TrackTicketQuery) (*TrackTicketResult, error) {
	id, err := ticket.ParseReference(query.Reference)
	if err != nil {
		return nil, errors.NewValidationError("invalid reference number")
	}

	t, err := uc.ticketRepo.FindByID(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("no enquiry found for that reference number")
		}
		uc.logger.Errorw("failed to track ticket", "reference", query.Reference, "error", err)
		return nil, err
	}

	messages, err := uc.messageRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket thread", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	return &TrackTicketResult{
		Ticket:   dto.ToTicketDTO(t),
		Messages: dto.ToMessageDTOs(messages),
	}, nil
}
