package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
)

type SubmitTicketExecutor interface {
	Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error)
}

type TrackTicketExecutor interface {
	Execute(ctx context.Context, query TrackTicketQuery) (*TrackTicketResult, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type BulkDeleteTicketsExecutor interface {
	Execute(ctx context.Context, cmd BulkDeleteTicketsCommand) (*BulkDeleteTicketsResult, error)
}

type DashboardExecutor interface {
	Execute(ctx context.Context, query DashboardQuery) (*DashboardResult, error)
}

type GetMessagesExecutor interface {
	Execute(ctx context.Context, query GetMessagesQuery) (*GetMessagesResult, error)
}

type AddStaffReplyExecutor interface {
	Execute(ctx context.Context, cmd AddStaffReplyCommand) (*AddReplyResult, error)
}

type AddUserReplyExecutor interface {
	Execute(ctx context.Context, cmd AddUserReplyCommand) (*AddReplyResult, error)
}

// Notifier dispatches helpdesk notifications in the background.
// Implementations must never block or fail the calling operation.
type Notifier interface {
	NotifyTicketOpened(t *ticket.Ticket)
	NotifyStaffReply(t *ticket.Ticket, staffName, staffDepartment, replyBody string)
}

// Sanitizer strips markup from user submitted free text.
type Sanitizer interface {
	Clean(input string) string
}

// TxManager runs a function within a database transaction.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
