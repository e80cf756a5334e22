package usecases

import (
	"context"

	"helpdesk/internal/domain/staff"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	AccountID         uint
	Username          string
	DisplayName       string
	Superuser         bool
	ProfileDepartment string
	DisplayDepartment string
	AccessToken       string
	RefreshToken      string
	ExpiresIn         int64
}

type LoginUseCase struct {
	accountRepo staff.AccountRepository
	profileRepo staff.ProfileRepository
	hasher      PasswordHasher
	jwtService  JWTService
	logger      logger.Interface
}

func NewLoginUseCase(
	accountRepo staff.AccountRepository,
	profileRepo staff.ProfileRepository,
	hasher PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		hasher:      hasher,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if len(cmd.Username) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("username and password are required")
	}

	account, err := uc.accountRepo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same message whether the username or the password is wrong.
			return nil, errors.NewUnauthorizedError("invalid username or password")
		}
		uc.logger.Errorw("failed to look up account", "error", err)
		return nil, err
	}

	if !account.IsActive() {
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		uc.logger.Warnw("login attempt with wrong password", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	tokens, err := uc.jwtService.Generate(account.ID(), account.Username(), account.IsSuperuser())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err)
		return nil, errors.NewInternalError("failed to establish session")
	}

	result := &LoginResult{
		AccountID:    account.ID(),
		Username:     account.Username(),
		DisplayName:  account.DisplayName(),
		Superuser:    account.IsSuperuser(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}

	// A missing profile is allowed; such accounts only see the dashboard
	// if they are superusers.
	profile, err := uc.profileRepo.FindByAccountID(ctx, account.ID())
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to load staff profile", "account_id", account.ID(), "error", err)
			return nil, err
		}
	} else {
		result.ProfileDepartment = profile.Department()
		result.DisplayDepartment = profile.DisplayDepartment()
	}

	uc.logger.Infow("staff login successful", "account_id", account.ID(), "username", account.Username())

	return result, nil
}
