package dto

import "github.com/GlebRadaev/tipsters/internal/domain"

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"mario@example.com"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

type UserDTO struct {
	ID             int     `json:"id" example:"7"`
	Email          string  `json:"email" example:"mario@example.com"`
	EmailVerified  bool    `json:"email_verified" example:"true"`
	IsAdmin        bool    `json:"isAdmin" example:"false"`
	GPBalance      float64 `json:"gpBalance" example:"100"`
	AdvisorBalance float64 `json:"advisorBalance" example:"1.75"`
}

type LoginResponseDTO struct {
	Success bool    `json:"success" example:"true"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

type MeResponseDTO struct {
	Success bool    `json:"success" example:"true"`
	User    UserDTO `json:"user"`
}

func NewUserDTO(p domain.Profile) UserDTO {
	return UserDTO{
		ID:             p.User.ID,
		Email:          p.User.Email,
		EmailVerified:  p.User.EmailVerified,
		IsAdmin:        p.User.IsAdmin,
		GPBalance:      p.Balance,
		AdvisorBalance: p.WalletBalance,
	}
}
