package admin

type AddStudentRequest struct {
	IndexNumber string `json:"index_number" binding:"required,max=50"`
	FullName    string `json:"full_name" binding:"required,max=150"`
	Email       string `json:"email" binding:"omitempty,email"`
	Course      string `json:"course" binding:"max=100"`
}

type AddStaffRequest struct {
	StaffID  string `json:"staff_id" binding:"required,max=50"`
	FullName string `json:"full_name" binding:"required,max=150"`
	Email    string `json:"email" binding:"required,email"`
}

type DeactivateStudentRequest struct {
	IndexNumber string `json:"index_number" binding:"required,max=50"`
}

type DeactivateStaffRequest struct {
	StaffID string `json:"staff_id" binding:"required,max=50"`
}
