package usecases

import (
	"context"

	"helpdesk/internal/domain/registry"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddStaffRecordCommand struct {
	StaffID  string
	FullName string
	Email    string
}

type AddStaffRecordResult struct {
	ID      uint
	StaffID string
}

type AddStaffRecordUseCase struct {
	staffRepo registry.StaffRepository
	logger    logger.Interface
}

func NewAddStaffRecordUseCase(staffRepo registry.StaffRepository, logger logger.Interface) *AddStaffRecordUseCase {
	return &AddStaffRecordUseCase{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

func (uc *AddStaffRecordUseCase) Execute(ctx context.Context, cmd AddStaffRecordCommand) (*AddStaffRecordResult, error) {
	record, err := registry.NewStaffRecord(cmd.StaffID, cmd.FullName, cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.staffRepo.Save(ctx, record); err != nil {
		uc.logger.Errorw("failed to save staff record", "staff_id", cmd.StaffID, "error", err)
		return nil, err
	}

	uc.logger.Infow("staff record added", "id", record.ID(), "staff_id", record.StaffID())

	return &AddStaffRecordResult{
		ID:      record.ID(),
		StaffID: record.StaffID(),
	}, nil
}
