package registry

import (
	"fmt"
)

// StaffRecord is one entry in the master staff list,
// e.g. staff id "UGC-STF-1004".
type StaffRecord struct {
	id       uint
	staffID  string
	fullName string
	email    string
	active   bool
}

func NewStaffRecord(staffID, fullName, email string) (*StaffRecord, error) {
	if len(staffID) == 0 {
		return nil, fmt.Errorf("staff ID is required")
	}
	if len(staffID) > 50 {
		return nil, fmt.Errorf("staff ID exceeds maximum length of 50 characters")
	}
	if len(fullName) == 0 {
		return nil, fmt.Errorf("full name is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	return &StaffRecord{
		staffID:  staffID,
		fullName: fullName,
		email:    email,
		active:   true,
	}, nil
}

func ReconstructStaffRecord(
	id uint,
	staffID string,
	fullName string,
	email string,
	active bool,
) (*StaffRecord, error) {
	if id == 0 {
		return nil, fmt.Errorf("staff record ID cannot be zero")
	}
	if len(staffID) == 0 {
		return nil, fmt.Errorf("staff ID is required")
	}

	return &StaffRecord{
		id:       id,
		staffID:  staffID,
		fullName: fullName,
		email:    email,
		active:   active,
	}, nil
}

func (s *StaffRecord) ID() uint {
	return s.id
}

func (s *StaffRecord) StaffID() string {
	return s.staffID
}

func (s *StaffRecord) FullName() string {
	return s.fullName
}

func (s *StaffRecord) Email() string {
	return s.email
}

func (s *StaffRecord) IsActive() bool {
	return s.active
}

func (s *StaffRecord) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("staff record ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("staff record ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *StaffRecord) Deactivate() {
	s.active = false
}
