package models

type StaffAccountModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:150;not null"`
	PasswordHash string `gorm:"size:100;not null"`
	FullName     string `gorm:"size:150"`
	Email        string `gorm:"size:254"`
	IsSuperuser  bool   `gorm:"not null;default:false"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (StaffAccountModel) TableName() string {
	return "staff_accounts"
}

type StaffProfileModel struct {
	ID         uint   `gorm:"primaryKey"`
	AccountID  uint   `gorm:"uniqueIndex;not null"`
	Department string `gorm:"size:50;not null"`
	Role       string `gorm:"size:50"`
	StaffEmail string `gorm:"size:254"`
}

func (StaffProfileModel) TableName() string {
	return "staff_profiles"
}
