package usecases

import "context"

type AddStudentRecordExecutor interface {
	Execute(ctx context.Context, cmd AddStudentRecordCommand) (*AddStudentRecordResult, error)
}

type AddStaffRecordExecutor interface {
	Execute(ctx context.Context, cmd AddStaffRecordCommand) (*AddStaffRecordResult, error)
}

type DeactivateStudentRecordExecutor interface {
	Execute(ctx context.Context, cmd DeactivateStudentRecordCommand) error
}

type DeactivateStaffRecordExecutor interface {
	Execute(ctx context.Context, cmd DeactivateStaffRecordCommand) error
}
