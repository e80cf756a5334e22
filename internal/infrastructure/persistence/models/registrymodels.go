package models

type StudentMasterModel struct {
	ID          uint   `gorm:"primaryKey"`
	IndexNumber string `gorm:"uniqueIndex;size:50;not null"`
	FullName    string `gorm:"size:150;not null"`
	Email       string `gorm:"size:254"`
	Course      string `gorm:"size:100"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (StudentMasterModel) TableName() string {
	return "student_master"
}

type StaffMasterModel struct {
	ID       uint   `gorm:"primaryKey"`
	StaffID  string `gorm:"uniqueIndex;size:50;not null"`
	FullName string `gorm:"size:150;not null"`
	Email    string `gorm:"uniqueIndex;size:254;not null"`
	IsActive bool   `gorm:"not null;default:true"`
}

func (StaffMasterModel) TableName() string {
	return "staff_master"
}
