package models

type TicketModel struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"size:100;not null"`
	Email              string `gorm:"size:254;not null"`
	Phone              string `gorm:"size:20"`
	UserType           string `gorm:"size:10;not null;default:VISITOR"`
	StudentID          string `gorm:"size:50"`
	StaffID            string `gorm:"size:50"`
	ValidatedStudentID *uint  `gorm:"index"`
	ValidatedStaffID   *uint  `gorm:"index"`
	Subject            string `gorm:"size:200;not null"`
	Message            string `gorm:"type:text;not null"`
	Department         string `gorm:"size:50;not null;index"`
	Status             string `gorm:"size:20;not null;default:Open"`
	LastReplyBy        *string `gorm:"size:20"`
	ReplyMessage       string `gorm:"type:text"`
	CreatedAt          int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64  `gorm:"autoUpdateTime:milli;not null;index"`

	// Note: No foreign key constraints or associations.
	// Cascade and sever semantics are handled by the repositories.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketMessageModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	ParentID   *uint  `gorm:"index"`
	SenderName string `gorm:"size:100;not null"`
	Message    string `gorm:"type:text;not null"`
	IsStaff    bool   `gorm:"not null;default:false"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketMessageModel) TableName() string {
	return "ticket_messages"
}
