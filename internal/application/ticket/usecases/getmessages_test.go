package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

func TestGetMessagesUseCase_Execute(t *testing.T) {
	tkt := ticketForTest(t, 30, "Open")
	parentID := uint(3)

	seed, err := ticket.ReconstructMessage(3, 30, nil, "Ama Mensah", "First message.", false, nowForTest())
	require.NoError(t, err)
	reply, err := ticket.ReconstructMessage(4, 30, &parentID, "Kofi Boateng", "Reply.", true, nowForTest())
	require.NoError(t, err)

	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
	}
	messageRepo := &mockMessageRepository{
		ListByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
			assert.Equal(t, uint(30), ticketID)
			return []*ticket.Message{seed, reply}, nil
		},
	}

	uc := NewGetMessagesUseCase(ticketRepo, messageRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetMessagesQuery{TicketID: 30})
	require.NoError(t, err)

	assert.Equal(t, uint(30), result.Ticket.ID)
	require.Len(t, result.Messages, 2)
	assert.Nil(t, result.Messages[0].ParentID)
	require.NotNil(t, result.Messages[1].ParentID)
	assert.Equal(t, uint(3), *result.Messages[1].ParentID)
}

func TestGetMessagesUseCase_Execute_TicketNotFound(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}

	uc := NewGetMessagesUseCase(ticketRepo, &mockMessageRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetMessagesQuery{TicketID: 404})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}
