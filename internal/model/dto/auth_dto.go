package dto

// RegisterRequest signs up a company account together with its first
// subscription request: chosen plan, billing duration and the prepaid
// top-up codes used to pay.
type RegisterRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=8"`
	Name        string   `json:"name" binding:"required"`
	CompanyName string   `json:"company_name" binding:"required"`
	City        string   `json:"city"`
	Category    string   `json:"category"`
	Phone       string   `json:"phone"`
	Plan        string   `json:"plan" binding:"required"`
	Duration    string   `json:"duration"`
	Codes       []string `json:"codes" binding:"required,min=1"`
}

type RegisterResponse struct {
	UserID    int64 `json:"user_id"`
	CompanyID int64 `json:"company_id"`
	PaymentID int64 `json:"payment_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

type UserInfo struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CompanyID int64  `json:"company_id,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
