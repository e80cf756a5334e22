package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/domain/registry"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeactivateStaffRecordCommand struct {
	StaffID string
}

type DeactivateStaffRecordUseCase struct {
	staffRepo registry.StaffRepository
	logger    logger.Interface
}

func NewDeactivateStaffRecordUseCase(staffRepo registry.StaffRepository, logger logger.Interface) *DeactivateStaffRecordUseCase {
	return &DeactivateStaffRecordUseCase{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

func (uc *DeactivateStaffRecordUseCase) Execute(ctx context.Context, cmd DeactivateStaffRecordCommand) error {
	staffID := strings.TrimSpace(cmd.StaffID)
	if staffID == "" {
		return errors.NewValidationError("staff id is required")
	}

	record, err := uc.staffRepo.FindActiveByStaffID(ctx, staffID)
	if err != nil {
		return err
	}

	record.Deactivate()
	if err := uc.staffRepo.Update(ctx, record); err != nil {
		uc.logger.Errorw("failed to deactivate staff record", "staff_id", staffID, "error", err)
		return err
	}

	uc.logger.Infow("staff record deactivated", "id", record.ID(), "staff_id", record.StaffID())
	return nil
}
