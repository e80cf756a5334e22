package usecases

import (
	"context"

	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RefreshSessionCommand struct {
	RefreshToken string
}

type RefreshSessionResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// RefreshSessionUseCase exchanges a valid refresh token for a new token pair.
type RefreshSessionUseCase struct {
	jwtService JWTService
	logger     logger.Interface
}

func NewRefreshSessionUseCase(jwtService JWTService, logger logger.Interface) *RefreshSessionUseCase {
	return &RefreshSessionUseCase{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *RefreshSessionUseCase) Execute(_ context.Context, cmd RefreshSessionCommand) (*RefreshSessionResult, error) {
	if len(cmd.RefreshToken) == 0 {
		return nil, errors.NewValidationError("refresh token is required")
	}

	tokens, err := uc.jwtService.Refresh(cmd.RefreshToken)
	if err != nil {
		uc.logger.Warnw("session refresh rejected", "error", err)
		return nil, errors.NewUnauthorizedError("invalid or expired session")
	}

	return &RefreshSessionResult{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
