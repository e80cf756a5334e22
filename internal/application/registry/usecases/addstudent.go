package usecases

import (
	"context"

	"helpdesk/internal/domain/registry"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddStudentRecordCommand struct {
	IndexNumber string
	FullName    string
	Email       string
	Course      string
}

type AddStudentRecordResult struct {
	ID          uint
	IndexNumber string
}

type AddStudentRecordUseCase struct {
	studentRepo registry.StudentRepository
	logger      logger.Interface
}

func NewAddStudentRecordUseCase(studentRepo registry.StudentRepository, logger logger.Interface) *AddStudentRecordUseCase {
	return &AddStudentRecordUseCase{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

func (uc *AddStudentRecordUseCase) Execute(ctx context.Context, cmd AddStudentRecordCommand) (*AddStudentRecordResult, error) {
	record, err := registry.NewStudentRecord(cmd.IndexNumber, cmd.FullName, cmd.Email, cmd.Course)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.studentRepo.Save(ctx, record); err != nil {
		uc.logger.Errorw("failed to save student record", "index_number", cmd.IndexNumber, "error", err)
		return nil, err
	}

	uc.logger.Infow("student record added", "id", record.ID(), "index_number", record.IndexNumber())

	return &AddStudentRecordResult{
		ID:          record.ID(),
		IndexNumber: record.IndexNumber(),
	}, nil
}
