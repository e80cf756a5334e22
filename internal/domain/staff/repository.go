package staff

import "context"

type AccountRepository interface {
	Save(ctx context.Context, account *Account) error
	FindByID(ctx context.Context, id uint) (*Account, error)
	FindByUsername(ctx context.Context, username string) (*Account, error)
}

type ProfileRepository interface {
	Save(ctx context.Context, profile *Profile) error
	// FindByAccountID returns a not-found error when the account has no
	// profile; callers on the reply path fall back to a generic label.
	FindByAccountID(ctx context.Context, accountID uint) (*Profile, error)
}
