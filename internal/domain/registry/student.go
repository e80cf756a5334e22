// Package registry holds the administrator-curated master lists used to
// verify submitter identity claims during ticket submission.
package registry

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

// StudentRecord is one entry in the master student list,
// e.g. index number "UGC-STU-2026-001".
type StudentRecord struct {
	id          uint
	indexNumber string
	fullName    string
	email       string
	course      string
	active      bool
	createdAt   time.Time
}

func NewStudentRecord(indexNumber, fullName, email, course string) (*StudentRecord, error) {
	if len(indexNumber) == 0 {
		return nil, fmt.Errorf("index number is required")
	}
	if len(indexNumber) > 50 {
		return nil, fmt.Errorf("index number exceeds maximum length of 50 characters")
	}
	if len(fullName) == 0 {
		return nil, fmt.Errorf("full name is required")
	}

	return &StudentRecord{
		indexNumber: indexNumber,
		fullName:    fullName,
		email:       email,
		course:      course,
		active:      true,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructStudentRecord(
	id uint,
	indexNumber string,
	fullName string,
	email string,
	course string,
	active bool,
	createdAt time.Time,
) (*StudentRecord, error) {
	if id == 0 {
		return nil, fmt.Errorf("student record ID cannot be zero")
	}
	if len(indexNumber) == 0 {
		return nil, fmt.Errorf("index number is required")
	}

	return &StudentRecord{
		id:          id,
		indexNumber: indexNumber,
		fullName:    fullName,
		email:       email,
		course:      course,
		active:      active,
		createdAt:   createdAt,
	}, nil
}

func (s *StudentRecord) ID() uint {
	return s.id
}

func (s *StudentRecord) IndexNumber() string {
	return s.indexNumber
}

func (s *StudentRecord) FullName() string {
	return s.fullName
}

func (s *StudentRecord) Email() string {
	return s.email
}

func (s *StudentRecord) Course() string {
	return s.course
}

func (s *StudentRecord) IsActive() bool {
	return s.active
}

func (s *StudentRecord) CreatedAt() time.Time {
	return s.createdAt
}

func (s *StudentRecord) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("student record ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("student record ID cannot be zero")
	}
	s.id = id
	return nil
}

// Deactivate removes the record from identity validation without
// deleting it.
func (s *StudentRecord) Deactivate() {
	s.active = false
}
