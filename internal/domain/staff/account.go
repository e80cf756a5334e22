// Package staff models the helpdesk operator accounts and their
// department profiles. Accounts authenticate against the dashboard;
// profiles scope what they see there.
package staff

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

// Account is a staff login for the dashboard. Superusers see every
// department and may administer the master lists.
type Account struct {
	id           uint
	username     string
	passwordHash string
	fullName     string
	email        string
	superuser    bool
	active       bool
	createdAt    time.Time
}

func NewAccount(username, passwordHash, fullName, email string, superuser bool) (*Account, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 150 {
		return nil, fmt.Errorf("username exceeds maximum length of 150 characters")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	return &Account{
		username:     username,
		passwordHash: passwordHash,
		fullName:     fullName,
		email:        email,
		superuser:    superuser,
		active:       true,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructAccount(
	id uint,
	username string,
	passwordHash string,
	fullName string,
	email string,
	superuser bool,
	active bool,
	createdAt time.Time,
) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &Account{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		fullName:     fullName,
		email:        email,
		superuser:    superuser,
		active:       active,
		createdAt:    createdAt,
	}, nil
}

func (a *Account) ID() uint {
	return a.id
}

func (a *Account) Username() string {
	return a.username
}

func (a *Account) PasswordHash() string {
	return a.passwordHash
}

func (a *Account) FullName() string {
	return a.fullName
}

// DisplayName prefers the full name, falling back to the username.
func (a *Account) DisplayName() string {
	if a.fullName != "" {
		return a.fullName
	}
	return a.username
}

func (a *Account) Email() string {
	return a.email
}

func (a *Account) IsSuperuser() bool {
	return a.superuser
}

func (a *Account) IsActive() bool {
	return a.active
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}
