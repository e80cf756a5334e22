package ticket

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

// Message is one entry in a ticket's conversation thread, optionally a
// reply to a specific earlier entry via parentID.
type Message struct {
	id         uint
	ticketID   uint
	parentID   *uint
	senderName string
	body       string
	isStaff    bool
	createdAt  time.Time
}

func NewMessage(
	ticketID uint,
	parentID *uint,
	senderName string,
	body string,
	isStaff bool,
) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(senderName) == 0 {
		return nil, fmt.Errorf("sender name is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("message body cannot be empty")
	}
	if len(body) > 5000 {
		return nil, fmt.Errorf("message body exceeds maximum length of 5000 characters")
	}

	return &Message{
		ticketID:   ticketID,
		parentID:   parentID,
		senderName: senderName,
		body:       body,
		isStaff:    isStaff,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructMessage(
	id uint,
	ticketID uint,
	parentID *uint,
	senderName string,
	body string,
	isStaff bool,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Message{
		id:         id,
		ticketID:   ticketID,
		parentID:   parentID,
		senderName: senderName,
		body:       body,
		isStaff:    isStaff,
		createdAt:  createdAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) TicketID() uint {
	return m.ticketID
}

func (m *Message) ParentID() *uint {
	return m.parentID
}

func (m *Message) SenderName() string {
	return m.senderName
}

func (m *Message) Body() string {
	return m.body
}

func (m *Message) IsStaff() bool {
	return m.isStaff
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// SeverParent drops the parent link, used when the referenced message
// no longer exists.
func (m *Message) SeverParent() {
	m.parentID = nil
}
