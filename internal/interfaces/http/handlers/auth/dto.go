package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccountID         uint   `json:"account_id"`
	Username          string `json:"username"`
	DisplayName       string `json:"display_name"`
	Superuser         bool   `json:"is_superuser"`
	DisplayDepartment string `json:"display_department"`
	ExpiresIn         int64  `json:"expires_in"`
}
