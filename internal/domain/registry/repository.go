package registry

import "context"

// StudentRepository looks up and maintains the master student list.
// Lookups are case-insensitive on the index number and only match
// active records.
type StudentRepository interface {
	FindActiveByIndexNumber(ctx context.Context, indexNumber string) (*StudentRecord, error)
	Save(ctx context.Context, record *StudentRecord) error
	Update(ctx context.Context, record *StudentRecord) error
}

// StaffRepository looks up and maintains the master staff list.
type StaffRepository interface {
	FindActiveByStaffID(ctx context.Context, staffID string) (*StaffRecord, error)
	Save(ctx context.Context, record *StaffRecord) error
	Update(ctx context.Context, record *StaffRecord) error
}
