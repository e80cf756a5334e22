package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	parentID := uint(5)

	m, err := NewMessage(42, &parentID, "Ama Mensah", "Any update on this?", false)
	require.NoError(t, err)

	assert.Equal(t, uint(0), m.ID())
	assert.Equal(t, uint(42), m.TicketID())
	require.NotNil(t, m.ParentID())
	assert.Equal(t, uint(5), *m.ParentID())
	assert.Equal(t, "Ama Mensah", m.SenderName())
	assert.False(t, m.IsStaff())
	assert.False(t, m.CreatedAt().IsZero())
}

func TestNewMessage_Validation(t *testing.T) {
	tests := []struct {
		name     string
		ticketID uint
		sender   string
		body     string
		wantErr  string
	}{
		{name: "zero ticket id", sender: "Ama", body: "hi", wantErr: "ticket ID is required"},
		{name: "empty sender", ticketID: 1, body: "hi", wantErr: "sender name is required"},
		{name: "empty body", ticketID: 1, sender: "Ama", wantErr: "message body cannot be empty"},
		{name: "body too long", ticketID: 1, sender: "Ama", body: strings.Repeat("x", 5001), wantErr: "message body exceeds maximum length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMessage(tt.ticketID, nil, tt.sender, tt.body, false)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMessage_SeverParent(t *testing.T) {
	parentID := uint(5)

	m, err := NewMessage(42, &parentID, "Ama Mensah", "Replying.", false)
	require.NoError(t, err)

	m.SeverParent()
	assert.Nil(t, m.ParentID())
}

func TestMessage_SetID(t *testing.T) {
	m, err := NewMessage(42, nil, "Ama Mensah", "hi", false)
	require.NoError(t, err)

	require.NoError(t, m.SetID(9))
	assert.Equal(t, uint(9), m.ID())
	assert.Error(t, m.SetID(10))
}

func TestDashboardEntry_HasUnreadUserActivity(t *testing.T) {
	entry := &DashboardEntry{LastMessage: "Any update?", LastIsStaff: false}
	assert.True(t, entry.HasUnreadUserActivity())

	entry = &DashboardEntry{LastMessage: "Done.", LastIsStaff: true}
	assert.False(t, entry.HasUnreadUserActivity())

	entry = &DashboardEntry{}
	assert.False(t, entry.HasUnreadUserActivity())
}
