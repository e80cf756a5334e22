package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/staff"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DashboardQuery struct {
	AccountID uint
	Superuser bool
}

type DashboardResult struct {
	Entries []dto.DashboardEntryDTO `json:"entries"`
	// Scope is the department the listing was filtered to, or empty for
	// university-wide visibility.
	Scope             string `json:"scope"`
	DisplayDepartment string `json:"display_department"`
}

type DashboardUseCase struct {
	ticketRepo  ticket.Repository
	profileRepo staff.ProfileRepository
	logger      logger.Interface
}

func NewDashboardUseCase(
	ticketRepo ticket.Repository,
	profileRepo staff.ProfileRepository,
	logger logger.Interface,
) *DashboardUseCase {
	return &DashboardUseCase{
		ticketRepo:  ticketRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *DashboardUseCase) Execute(ctx context.Context, query DashboardQuery) (*DashboardResult, error) {
	var department *vo.Department
	var scope, display string

	profile, err := uc.profileRepo.FindByAccountID(ctx, query.AccountID)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to load staff profile", "account_id", query.AccountID, "error", err)
		return nil, err
	}

	profileDepartment := ""
	if profile != nil {
		profileDepartment = profile.Department()
		display = profile.DisplayDepartment()
	}
	if query.Superuser && display == "" {
		display = "Super Admin"
	}

	if !authorization.HasGlobalVisibility(query.Superuser, profileDepartment) {
		if profile == nil {
			return nil, errors.NewForbiddenError("no department assigned")
		}
		dept, err := vo.NewDepartment(profileDepartment)
		if err != nil {
			uc.logger.Warnw("staff profile has unknown department", "department", profileDepartment)
			return nil, errors.NewForbiddenError("no department assigned")
		}
		department = &dept
		scope = dept.String()
	}

	entries, err := uc.ticketRepo.ListDashboard(ctx, department)
	if err != nil {
		uc.logger.Errorw("failed to load dashboard", "error", err)
		return nil, err
	}

	dtos := make([]dto.DashboardEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = dto.ToDashboardEntryDTO(e)
	}

	return &DashboardResult{
		Entries:           dtos,
		Scope:             scope,
		DisplayDepartment: display,
	}, nil
}
