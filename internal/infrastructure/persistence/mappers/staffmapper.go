package mappers

import (
	"time"

	"helpdesk/internal/domain/staff"
	"helpdesk/internal/infrastructure/persistence/models"
)

type StaffMapper struct{}

func NewStaffMapper() StaffMapper {
	return StaffMapper{}
}

func (StaffMapper) AccountToModel(a *staff.Account) *models.StaffAccountModel {
	return &models.StaffAccountModel{
		ID:           a.ID(),
		Username:     a.Username(),
		PasswordHash: a.PasswordHash(),
		FullName:     a.FullName(),
		Email:        a.Email(),
		IsSuperuser:  a.IsSuperuser(),
		IsActive:     a.IsActive(),
		CreatedAt:    a.CreatedAt().UnixMilli(),
	}
}

func (StaffMapper) AccountToDomain(m *models.StaffAccountModel) (*staff.Account, error) {
	return staff.ReconstructAccount(
		m.ID,
		m.Username,
		m.PasswordHash,
		m.FullName,
		m.Email,
		m.IsSuperuser,
		m.IsActive,
		time.UnixMilli(m.CreatedAt).UTC(),
	)
}

func (StaffMapper) ProfileToModel(p *staff.Profile) *models.StaffProfileModel {
	return &models.StaffProfileModel{
		ID:         p.ID(),
		AccountID:  p.AccountID(),
		Department: p.Department(),
		Role:       p.Role(),
		StaffEmail: p.StaffEmail(),
	}
}

func (StaffMapper) ProfileToDomain(m *models.StaffProfileModel) (*staff.Profile, error) {
	return staff.ReconstructProfile(
		m.ID,
		m.AccountID,
		m.Department,
		m.Role,
		m.StaffEmail,
	)
}
