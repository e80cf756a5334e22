package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/registry"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SubmitTicketCommand struct {
	Name       string
	Email      string
	Phone      string
	UserType   string
	StudentID  string
	StaffID    string
	Department string
	Subject    string
	Message    string
}

type SubmitTicketResult struct {
	TicketID  uint      `json:"ticket_id"`
	Reference string    `json:"ref_id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type SubmitTicketUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	studentRepo registry.StudentRepository
	staffRepo   registry.StaffRepository
	txManager   TxManager
	sanitizer   Sanitizer
	notifier    Notifier
	logger      logger.Interface
}

func NewSubmitTicketUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	studentRepo registry.StudentRepository,
	staffRepo registry.StaffRepository,
	txManager TxManager,
	sanitizer Sanitizer,
	notifier Notifier,
	logger logger.Interface,
) *SubmitTicketUseCase {
	return &SubmitTicketUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		studentRepo: studentRepo,
		staffRepo:   staffRepo,
		txManager:   txManager,
		sanitizer:   sanitizer,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *SubmitTicketUseCase) Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error) {
	uc.logger.Infow("executing submit ticket use case", "department", cmd.Department, "user_type", cmd.UserType)

	name := uc.sanitizer.Clean(cmd.Name)
	subject := uc.sanitizer.Clean(cmd.Subject)
	message := uc.sanitizer.Clean(cmd.Message)

	department, err := vo.NewDepartment(cmd.Department)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	userType := vo.ParseUserType(cmd.UserType)

	newTicket, err := ticket.NewTicket(name, cmd.Email, cmd.Phone, userType, department, subject, message)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.verifyIdentity(ctx, newTicket, userType, cmd); err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}

		seed, err := ticket.NewMessage(newTicket.ID(), nil, newTicket.Name(), newTicket.Message(), false)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		return uc.messageRepo.Save(txCtx, seed)
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.notifier.NotifyTicketOpened(newTicket)

	uc.logger.Infow("ticket submitted successfully",
		"ticket_id", newTicket.ID(),
		"reference", newTicket.Reference())

	return &SubmitTicketResult{
		TicketID:  newTicket.ID(),
		Reference: newTicket.Reference(),
		Name:      newTicket.Name(),
		Status:    newTicket.Status(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

// verifyIdentity resolves claimed student or staff ids against the master
// registers. A claim that cannot be verified rejects the submission rather
// than silently downgrading the submitter to a visitor.
func (uc *SubmitTicketUseCase) verifyIdentity(ctx context.Context, t *ticket.Ticket, userType vo.UserType, cmd SubmitTicketCommand) error {
	switch userType {
	case vo.UserTypeStudent:
		if len(cmd.StudentID) == 0 {
			return errors.NewValidationError("student index number is required")
		}
		record, err := uc.studentRepo.FindActiveByIndexNumber(ctx, cmd.StudentID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				uc.logger.Warnw("student index number could not be verified", "student_id", cmd.StudentID)
				return errors.NewValidationError("student index number could not be verified")
			}
			return err
		}
		t.LinkStudent(cmd.StudentID, record.ID())

	case vo.UserTypeStaff:
		if len(cmd.StaffID) == 0 {
			return errors.NewValidationError("staff id is required")
		}
		record, err := uc.staffRepo.FindActiveByStaffID(ctx, cmd.StaffID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				uc.logger.Warnw("staff id could not be verified", "staff_id", cmd.StaffID)
				return errors.NewValidationError("staff id could not be verified")
			}
			return err
		}
		t.LinkStaff(cmd.StaffID, record.ID())
	}

	return nil
}
