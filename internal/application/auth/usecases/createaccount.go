package usecases

import (
	"context"

	"helpdesk/internal/domain/staff"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateAccountCommand struct {
	Username   string
	Password   string
	FullName   string
	Email      string
	Superuser  bool
	Department string
	Role       string
}

type CreateAccountResult struct {
	AccountID uint
	Username  string
}

type CreateAccountUseCase struct {
	accountRepo staff.AccountRepository
	profileRepo staff.ProfileRepository
	hasher      PasswordHasher
	logger      logger.Interface
}

func NewCreateAccountUseCase(
	accountRepo staff.AccountRepository,
	profileRepo staff.ProfileRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *CreateAccountUseCase) Execute(ctx context.Context, cmd CreateAccountCommand) (*CreateAccountResult, error) {
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create account")
	}

	account, err := staff.NewAccount(cmd.Username, hash, cmd.FullName, cmd.Email, cmd.Superuser)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Save(ctx, account); err != nil {
		uc.logger.Errorw("failed to save account", "username", cmd.Username, "error", err)
		return nil, err
	}

	if cmd.Department != "" {
		profile, err := staff.NewProfile(account.ID(), cmd.Department, cmd.Role, cmd.Email)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.profileRepo.Save(ctx, profile); err != nil {
			uc.logger.Errorw("failed to save profile", "account_id", account.ID(), "error", err)
			return nil, err
		}
	}

	uc.logger.Infow("staff account created",
		"account_id", account.ID(),
		"username", account.Username(),
		"superuser", account.IsSuperuser())

	return &CreateAccountResult{
		AccountID: account.ID(),
		Username:  account.Username(),
	}, nil
}
