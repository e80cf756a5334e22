package staff

import (
	"fmt"

	"helpdesk/internal/shared/authorization"
)

// Profile attaches a department and role label to a staff account.
// The department is one of the ticket departments or "Super Command".
type Profile struct {
	id         uint
	accountID  uint
	department string
	role       string
	staffEmail string
}

func NewProfile(accountID uint, department, role, staffEmail string) (*Profile, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if len(department) == 0 {
		return nil, fmt.Errorf("department is required")
	}

	return &Profile{
		accountID:  accountID,
		department: department,
		role:       role,
		staffEmail: staffEmail,
	}, nil
}

func ReconstructProfile(
	id uint,
	accountID uint,
	department string,
	role string,
	staffEmail string,
) (*Profile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}

	return &Profile{
		id:         id,
		accountID:  accountID,
		department: department,
		role:       role,
		staffEmail: staffEmail,
	}, nil
}

func (p *Profile) ID() uint {
	return p.id
}

func (p *Profile) AccountID() uint {
	return p.accountID
}

func (p *Profile) Department() string {
	return p.department
}

func (p *Profile) Role() string {
	return p.role
}

func (p *Profile) StaffEmail() string {
	return p.staffEmail
}

func (p *Profile) IsSuperCommand() bool {
	return p.department == authorization.SuperCommandDepartment
}

// DisplayDepartment is the label shown to submitters in reply emails.
func (p *Profile) DisplayDepartment() string {
	if p.IsSuperCommand() {
		return "Super Admin"
	}
	return p.department + " Dept"
}

func (p *Profile) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("profile ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	p.id = id
	return nil
}
