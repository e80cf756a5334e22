package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// DashboardEntry is the staff dashboard read model: one ticket plus the
// derived tail-of-thread fields, computed without per-ticket queries.
type DashboardEntry struct {
	Ticket *Ticket

	// LastMessage is the body of the most recent message regardless of author.
	LastMessage string
	// LastIsStaff reports whether that most recent message was written by staff.
	LastIsStaff bool
	// LastStaffName is the display name of the most recent staff author,
	// which may differ from the last message's author.
	LastStaffName string
}

// HasUnreadUserActivity flags tickets whose latest message came from the
// submitter side ("NEW" badge on the dashboard).
func (e *DashboardEntry) HasUnreadUserActivity() bool {
	return e.LastMessage != "" && !e.LastIsStaff
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	Delete(ctx context.Context, id uint) error
	DeleteBatch(ctx context.Context, ids []uint) (int64, error)
	// ListDashboard returns dashboard entries ordered by updated_at
	// descending. A nil department means university-wide visibility.
	ListDashboard(ctx context.Context, department *vo.Department) ([]*DashboardEntry, error)
}

type MessageRepository interface {
	Save(ctx context.Context, m *Message) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Message, error)
	Exists(ctx context.Context, id uint) (bool, error)
}
