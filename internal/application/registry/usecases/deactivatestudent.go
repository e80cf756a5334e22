package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/domain/registry"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeactivateStudentRecordCommand struct {
	IndexNumber string
}

type DeactivateStudentRecordUseCase struct {
	studentRepo registry.StudentRepository
	logger      logger.Interface
}

func NewDeactivateStudentRecordUseCase(studentRepo registry.StudentRepository, logger logger.Interface) *DeactivateStudentRecordUseCase {
	return &DeactivateStudentRecordUseCase{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Execute removes a student from identity validation. The row stays in
// place so tickets already linked to the student keep their link.
func (uc *DeactivateStudentRecordUseCase) Execute(ctx context.Context, cmd DeactivateStudentRecordCommand) error {
	indexNumber := strings.TrimSpace(cmd.IndexNumber)
	if indexNumber == "" {
		return errors.NewValidationError("index number is required")
	}

	record, err := uc.studentRepo.FindActiveByIndexNumber(ctx, indexNumber)
	if err != nil {
		return err
	}

	record.Deactivate()
	if err := uc.studentRepo.Update(ctx, record); err != nil {
		uc.logger.Errorw("failed to deactivate student record", "index_number", indexNumber, "error", err)
		return err
	}

	uc.logger.Infow("student record deactivated", "id", record.ID(), "index_number", record.IndexNumber())
	return nil
}
