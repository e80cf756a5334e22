package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

func TestTrackTicketUseCase_Execute(t *testing.T) {
	tkt := ticketForTest(t, 42, "Open")

	seed, err := ticket.ReconstructMessage(1, 42, nil, "Ama Mensah", "I cannot log into the student portal.", false, nowForTest())
	require.NoError(t, err)
	reply, err := ticket.ReconstructMessage(2, 42, nil, "Kofi Boateng", "Try resetting your password.", true, nowForTest())
	require.NoError(t, err)

	var requestedID uint
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			requestedID = id
			return tkt, nil
		},
	}
	messageRepo := &mockMessageRepository{
		ListByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
			return []*ticket.Message{seed, reply}, nil
		},
	}

	uc := NewTrackTicketUseCase(ticketRepo, messageRepo, &mockLogger{})

	tests := []struct {
		name      string
		reference string
	}{
		{name: "full reference", reference: "UGC-00000042"},
		{name: "bare digits", reference: "42"},
		{name: "digits with noise", reference: "ref:42abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Execute(context.Background(), TrackTicketQuery{Reference: tt.reference})
			require.NoError(t, err)
			require.NotNil(t, result)

			assert.Equal(t, uint(42), requestedID)
			assert.Equal(t, "UGC-00000042", result.Ticket.Reference)
			require.Len(t, result.Messages, 2)
			assert.False(t, result.Messages[0].IsStaff)
			assert.True(t, result.Messages[1].IsStaff)
		})
	}
}

func TestTrackTicketUseCase_Execute_InvalidReference(t *testing.T) {
	uc := NewTrackTicketUseCase(&mockTicketRepository{}, &mockMessageRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), TrackTicketQuery{Reference: "UGC-no-digits"})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "invalid reference number")
}

func TestTrackTicketUseCase_Execute_UnknownReference(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}

	uc := NewTrackTicketUseCase(ticketRepo, &mockMessageRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), TrackTicketQuery{Reference: "UGC-00099999"})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "no enquiry found for that reference number")
}
