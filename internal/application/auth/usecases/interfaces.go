package usecases

import "context"

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type JWTService interface {
	Generate(accountID uint, username string, superuser bool) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type RefreshSessionExecutor interface {
	Execute(ctx context.Context, cmd RefreshSessionCommand) (*RefreshSessionResult, error)
}

type CreateAccountExecutor interface {
	Execute(ctx context.Context, cmd CreateAccountCommand) (*CreateAccountResult, error)
}
