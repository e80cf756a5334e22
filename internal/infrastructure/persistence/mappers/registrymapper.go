package mappers

import (
	"time"

	"helpdesk/internal/domain/registry"
	"helpdesk/internal/infrastructure/persistence/models"
)

type RegistryMapper struct{}

func NewRegistryMapper() RegistryMapper {
	return RegistryMapper{}
}

func (RegistryMapper) StudentToModel(r *registry.StudentRecord) *models.StudentMasterModel {
	return &models.StudentMasterModel{
		ID:          r.ID(),
		IndexNumber: r.IndexNumber(),
		FullName:    r.FullName(),
		Email:       r.Email(),
		Course:      r.Course(),
		IsActive:    r.IsActive(),
		CreatedAt:   r.CreatedAt().UnixMilli(),
	}
}

func (RegistryMapper) StudentToDomain(m *models.StudentMasterModel) (*registry.StudentRecord, error) {
	return registry.ReconstructStudentRecord(
		m.ID,
		m.IndexNumber,
		m.FullName,
		m.Email,
		m.Course,
		m.IsActive,
		time.UnixMilli(m.CreatedAt).UTC(),
	)
}

func (RegistryMapper) StaffToModel(r *registry.StaffRecord) *models.StaffMasterModel {
	return &models.StaffMasterModel{
		ID:       r.ID(),
		StaffID:  r.StaffID(),
		FullName: r.FullName(),
		Email:    r.Email(),
		IsActive: r.IsActive(),
	}
}

func (RegistryMapper) StaffToDomain(m *models.StaffMasterModel) (*registry.StaffRecord, error) {
	return registry.ReconstructStaffRecord(
		m.ID,
		m.StaffID,
		m.FullName,
		m.Email,
		m.IsActive,
	)
}
