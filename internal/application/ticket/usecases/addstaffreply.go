package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/staff"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddStaffReplyCommand struct {
	TicketID  uint
	AccountID uint
	ParentID  *uint
	Body      string
}

type AddReplyResult struct {
	Message      dto.MessageDTO `json:"message"`
	TicketStatus string         `json:"ticket_status"`
}

type AddStaffReplyUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	accountRepo staff.AccountRepository
	profileRepo staff.ProfileRepository
	txManager   TxManager
	sanitizer   Sanitizer
	notifier    Notifier
	logger      logger.Interface
}

func NewAddStaffReplyUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	accountRepo staff.AccountRepository,
	profileRepo staff.ProfileRepository,
	txManager TxManager,
	sanitizer Sanitizer,
	notifier Notifier,
	logger logger.Interface,
) *AddStaffReplyUseCase {
	return &AddStaffReplyUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		txManager:   txManager,
		sanitizer:   sanitizer,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *AddStaffReplyUseCase) Execute(ctx context.Context, cmd AddStaffReplyCommand) (*AddReplyResult, error) {
	body := uc.sanitizer.Clean(cmd.Body)

	account, err := uc.accountRepo.FindByID(ctx, cmd.AccountID)
	if err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	parentID, err := uc.resolveParent(ctx, cmd.ParentID)
	if err != nil {
		return nil, err
	}

	message, err := ticket.NewMessage(t.ID(), parentID, account.DisplayName(), body, true)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.messageRepo.Save(txCtx, message); err != nil {
			return err
		}

		t.ApplyReply(message.Body(), true)
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to add staff reply", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.notifier.NotifyStaffReply(t, account.DisplayName(), uc.displayDepartment(ctx, account.ID()), message.Body())

	uc.logger.Infow("staff reply added",
		"ticket_id", t.ID(),
		"message_id", message.ID(),
		"account_id", account.ID())

	return &AddReplyResult{
		Message:      dto.ToMessageDTO(message),
		TicketStatus: t.Status(),
	}, nil
}

// displayDepartment labels the responder for the submitter email.
// Accounts without a department profile sign as "Management".
func (uc *AddStaffReplyUseCase) displayDepartment(ctx context.Context, accountID uint) string {
	profile, err := uc.profileRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Warnw("failed to load staff profile for reply notification",
				"account_id", accountID, "error", err)
		}
		return "Management"
	}
	return profile.DisplayDepartment()
}

// resolveParent drops a parent reference that no longer exists so the
// reply lands on the thread root instead of failing.
func (uc *AddStaffReplyUseCase) resolveParent(ctx context.Context, parentID *uint) (*uint, error) {
	if parentID == nil {
		return nil, nil
	}

	exists, err := uc.messageRepo.Exists(ctx, *parentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		uc.logger.Warnw("reply parent no longer exists, attaching to thread root", "parent_id", *parentID)
		return nil, nil
	}

	return parentID, nil
}
