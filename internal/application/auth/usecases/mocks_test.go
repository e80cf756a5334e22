package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/staff"
	"helpdesk/internal/shared/logger"
)

func nowForTest() time.Time {
	return time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
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
	return nil, nil
}

// mockPasswordHasher matches plaintext against "hashed:" prefixed values.
type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockJWTService struct {
	GenerateFunc func(accountID uint, username string, superuser bool) (*TokenPair, error)
	RefreshFunc  func(refreshToken string) (*TokenPair, error)
}

func (m *mockJWTService) Generate(accountID uint, username string, superuser bool) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(accountID, username, superuser)
	}
	return &TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    900,
	}, nil
}

func (m *mockJWTService) Refresh(refreshToken string) (*TokenPair, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(refreshToken)
	}
	return &TokenPair{
		AccessToken:  "rotated-access-token",
		RefreshToken: "rotated-refresh-token",
		ExpiresIn:    900,
	}, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
