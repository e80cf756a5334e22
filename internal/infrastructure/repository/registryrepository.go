package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"helpdesk/internal/domain/registry"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type StudentRepository struct {
	db     *gorm.DB
	mapper mappers.RegistryMapper
}

func NewStudentRepository(database *gorm.DB) *StudentRepository {
	return &StudentRepository{
		db:     database,
		mapper: mappers.NewRegistryMapper(),
	}
}

func (r *StudentRepository) FindActiveByIndexNumber(ctx context.Context, indexNumber string) (*registry.StudentRecord, error) {
	var model models.StudentMasterModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("LOWER(index_number) = ? AND is_active = ?", strings.ToLower(strings.TrimSpace(indexNumber)), true).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("student record not found")
		}
		return nil, fmt.Errorf("failed to find student record: %w", err)
	}

	return r.mapper.StudentToDomain(&model)
}

func (r *StudentRepository) Save(ctx context.Context, record *registry.StudentRecord) error {
	model := r.mapper.StudentToModel(record)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("index number already registered")
		}
		return fmt.Errorf("failed to save student record: %w", err)
	}

	return record.SetID(model.ID)
}

func (r *StudentRepository) Update(ctx context.Context, record *registry.StudentRecord) error {
	model := r.mapper.StudentToModel(record)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.StudentMasterModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"full_name": model.FullName,
			"email":     model.Email,
			"course":    model.Course,
			"is_active": model.IsActive,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update student record: %w", result.Error)
	}

	return nil
}

type StaffRegistryRepository struct {
	db     *gorm.DB
	mapper mappers.RegistryMapper
}

func NewStaffRegistryRepository(database *gorm.DB) *StaffRegistryRepository {
	return &StaffRegistryRepository{
		db:     database,
		mapper: mappers.NewRegistryMapper(),
	}
}

func (r *StaffRegistryRepository) FindActiveByStaffID(ctx context.Context, staffID string) (*registry.StaffRecord, error) {
	var model models.StaffMasterModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("LOWER(staff_id) = ? AND is_active = ?", strings.ToLower(strings.TrimSpace(staffID)), true).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("staff record not found")
		}
		return nil, fmt.Errorf("failed to find staff record: %w", err)
	}

	return r.mapper.StaffToDomain(&model)
}

func (r *StaffRegistryRepository) Save(ctx context.Context, record *registry.StaffRecord) error {
	model := r.mapper.StaffToModel(record)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("staff id or email already registered")
		}
		return fmt.Errorf("failed to save staff record: %w", err)
	}

	return record.SetID(model.ID)
}

func (r *StaffRegistryRepository) Update(ctx context.Context, record *registry.StaffRecord) error {
	model := r.mapper.StaffToModel(record)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.StaffMasterModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"full_name": model.FullName,
			"email":     model.Email,
			"is_active": model.IsActive,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update staff record: %w", result.Error)
	}

	return nil
}

var _ registry.StudentRepository = (*StudentRepository)(nil)
var _ registry.StaffRepository = (*StaffRegistryRepository)(nil)
