package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/registry"
	"helpdesk/internal/domain/staff"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func nowForTest() time.Time {
	return time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
}

type mockTicketRepository struct {
	SaveFunc          func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc        func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc      func(ctx context.Context, id uint) (*ticket.Ticket, error)
	DeleteFunc        func(ctx context.Context, id uint) error
	DeleteBatchFunc   func(ctx context.Context, ids []uint) (int64, error)
	ListDashboardFunc func(ctx context.Context, department *vo.Department) ([]*ticket.DashboardEntry, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) DeleteBatch(ctx context.Context, ids []uint) (int64, error) {
	if m.DeleteBatchFunc != nil {
		return m.DeleteBatchFunc(ctx, ids)
	}
	return 0, nil
}

func (m *mockTicketRepository) ListDashboard(ctx context.Context, department *vo.Department) ([]*ticket.DashboardEntry, error) {
	if m.ListDashboardFunc != nil {
		return m.ListDashboardFunc(ctx, department)
	}
	return nil, nil
}

type mockMessageRepository struct {
	SaveFunc           func(ctx context.Context, m *ticket.Message) error
	ListByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Message, error)
	ExistsFunc         func(ctx context.Context, id uint) (bool, error)
}

func (m *mockMessageRepository) Save(ctx context.Context, msg *ticket.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockMessageRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

type mockStudentRepository struct {
	FindActiveByIndexNumberFunc func(ctx context.Context, indexNumber string) (*registry.StudentRecord, error)
	SaveFunc                    func(ctx context.Context, record *registry.StudentRecord) error
	UpdateFunc                  func(ctx context.Context, record *registry.StudentRecord) error
}

func (m *mockStudentRepository) FindActiveByIndexNumber(ctx context.Context, indexNumber string) (*registry.StudentRecord, error) {
	if m.FindActiveByIndexNumberFunc != nil {
		return m.FindActiveByIndexNumberFunc(ctx, indexNumber)
	}
	return nil, nil
}

func (m *mockStudentRepository) Save(ctx context.Context, record *registry.StudentRecord) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, record)
	}
	return nil
}

func (m *mockStudentRepository) Update(ctx context.Context, record *registry.StudentRecord) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, record)
	}
	return nil
}

type mockStaffRegistryRepository struct {
	FindActiveByStaffIDFunc func(ctx context.Context, staffID string) (*registry.StaffRecord, error)
	SaveFunc                func(ctx context.Context, record *registry.StaffRecord) error
	UpdateFunc              func(ctx context.Context, record *registry.StaffRecord) error
}

func (m *mockStaffRegistryRepository) FindActiveByStaffID(ctx context.Context, staffID string) (*registry.StaffRecord, error) {
	if m.FindActiveByStaffIDFunc != nil {
		return m.FindActiveByStaffIDFunc(ctx, staffID)
	}
	return nil, nil
}

func (m *mockStaffRegistryRepository) Save(ctx context.Context, record *registry.StaffRecord) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, record)
	}
	return nil
}

func (m *mockStaffRegistryRepository) Update(ctx context.Context, record *registry.StaffRecord) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, record)
	}
	return nil
}

type mockAccountRepository struct {
	SaveFunc           func(ctx context.Context, account *staff.Account) error
	FindByIDFunc       func(ctx context.Context, id uint) (*staff.Account, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*staff.Account, error)
}

func (m *mockAccountRepository) Save(ctx context.Context, account *staff.Account) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, account)
	}
	return nil
}

func (m *mockAccountRepository) FindByID(ctx context.Context, id uint) (*staff.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAccountRepository) FindByUsername(ctx context.Context, username string) (*staff.Account, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

type mockProfileRepository struct {
	SaveFunc            func(ctx context.Context, profile *staff.Profile) error
	FindByAccountIDFunc func(ctx context.Context, accountID uint) (*staff.Profile, error)
}

func (m *mockProfileRepository) Save(ctx context.Context, profile *staff.Profile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepository) FindByAccountID(ctx context.Context, accountID uint) (*staff.Profile, error) {
	if m.FindByAccountIDFunc != nil {
		return m.FindByAccountIDFunc(ctx, accountID)
	}
	return nil, errors.NewNotFoundError("staff profile not found")
}

// mockTxManager runs the transactional function inline.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

// mockSanitizer passes text through unchanged unless configured.
type mockSanitizer struct {
	CleanFunc func(input string) string
}

func (m *mockSanitizer) Clean(input string) string {
	if m.CleanFunc != nil {
		return m.CleanFunc(input)
	}
	return input
}

type mockNotifier struct {
	TicketOpenedCalls []*ticket.Ticket
	StaffReplyCalls   []struct {
		Ticket     *ticket.Ticket
		StaffName  string
		Department string
		Body       string
	}
}

func (m *mockNotifier) NotifyTicketOpened(t *ticket.Ticket) {
	m.TicketOpenedCalls = append(m.TicketOpenedCalls, t)
}

func (m *mockNotifier) NotifyStaffReply(t *ticket.Ticket, staffName, staffDepartment, replyBody string) {
	m.StaffReplyCalls = append(m.StaffReplyCalls, struct {
		Ticket     *ticket.Ticket
		StaffName  string
		Department string
		Body       string
	}{t, staffName, staffDepartment, replyBody})
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                    {}
func (m *mockLogger) Info(msg string, args ...any)                     {}
func (m *mockLogger) Warn(msg string, args ...any)                     {}
func (m *mockLogger) Error(msg string, args ...any)                    {}
func (m *mockLogger) With(args ...any) logger.Interface                { return m }
func (m *mockLogger) Named(name string) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})  {}
