package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/errors"
)

func TestRefreshSessionUseCase_Execute(t *testing.T) {
	jwtService := &mockJWTService{
		RefreshFunc: func(refreshToken string) (*TokenPair, error) {
			assert.Equal(t, "current-refresh-token", refreshToken)
			return &TokenPair{
				AccessToken:  "rotated-access-token",
				RefreshToken: "rotated-refresh-token",
				ExpiresIn:    900,
			}, nil
		},
	}

	uc := NewRefreshSessionUseCase(jwtService, &mockLogger{})

	result, err := uc.Execute(context.Background(), RefreshSessionCommand{RefreshToken: "current-refresh-token"})
	require.NoError(t, err)

	assert.Equal(t, "rotated-access-token", result.AccessToken)
	assert.Equal(t, "rotated-refresh-token", result.RefreshToken)
	assert.Equal(t, int64(900), result.ExpiresIn)
}

func TestRefreshSessionUseCase_Execute_InvalidToken(t *testing.T) {
	jwtService := &mockJWTService{
		RefreshFunc: func(refreshToken string) (*TokenPair, error) {
			return nil, fmt.Errorf("token is not a refresh token")
		},
	}

	uc := NewRefreshSessionUseCase(jwtService, &mockLogger{})

	result, err := uc.Execute(context.Background(), RefreshSessionCommand{RefreshToken: "tampered"})
	require.Error(t, err)
	assert.Nil(t, result)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	assert.Equal(t, "invalid or expired session", appErr.Message)
}

func TestRefreshSessionUseCase_Execute_MissingToken(t *testing.T) {
	uc := NewRefreshSessionUseCase(&mockJWTService{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), RefreshSessionCommand{})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}
