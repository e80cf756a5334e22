package migration

import (
	"helpdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TicketModel{},
		&models.TicketMessageModel{},
		&models.StudentMasterModel{},
		&models.StaffMasterModel{},
		&models.StaffAccountModel{},
		&models.StaffProfileModel{},
	}
}
