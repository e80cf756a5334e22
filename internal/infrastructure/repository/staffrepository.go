package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/staff"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type StaffAccountRepository struct {
	db     *gorm.DB
	mapper mappers.StaffMapper
}

func NewStaffAccountRepository(database *gorm.DB) *StaffAccountRepository {
	return &StaffAccountRepository{
		db:     database,
		mapper: mappers.NewStaffMapper(),
	}
}

func (r *StaffAccountRepository) Save(ctx context.Context, account *staff.Account) error {
	model := r.mapper.AccountToModel(account)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("username already taken")
		}
		return fmt.Errorf("failed to save staff account: %w", err)
	}

	return account.SetID(model.ID)
}

func (r *StaffAccountRepository) FindByID(ctx context.Context, id uint) (*staff.Account, error) {
	var model models.StaffAccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("staff account not found")
		}
		return nil, fmt.Errorf("failed to find staff account: %w", err)
	}

	return r.mapper.AccountToDomain(&model)
}

func (r *StaffAccountRepository) FindByUsername(ctx context.Context, username string) (*staff.Account, error) {
	var model models.StaffAccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("username = ?", username).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("staff account not found")
		}
		return nil, fmt.Errorf("failed to find staff account: %w", err)
	}

	return r.mapper.AccountToDomain(&model)
}

type StaffProfileRepository struct {
	db     *gorm.DB
	mapper mappers.StaffMapper
}

func NewStaffProfileRepository(database *gorm.DB) *StaffProfileRepository {
	return &StaffProfileRepository{
		db:     database,
		mapper: mappers.NewStaffMapper(),
	}
}

func (r *StaffProfileRepository) Save(ctx context.Context, profile *staff.Profile) error {
	model := r.mapper.ProfileToModel(profile)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("profile already exists for account")
		}
		return fmt.Errorf("failed to save staff profile: %w", err)
	}

	return profile.SetID(model.ID)
}

func (r *StaffProfileRepository) FindByAccountID(ctx context.Context, accountID uint) (*staff.Profile, error) {
	var model models.StaffProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("account_id = ?", accountID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("staff profile not found")
		}
		return nil, fmt.Errorf("failed to find staff profile: %w", err)
	}

	return r.mapper.ProfileToDomain(&model)
}

var _ staff.AccountRepository = (*StaffAccountRepository)(nil)
var _ staff.ProfileRepository = (*StaffProfileRepository)(nil)
