package dto

import "time"

type RegisterInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Role        int    `json:"role"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type GoogleAuthInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

type StaffLoginResponse struct {
	StaffID    uint      `json:"id"`
	StaffName  string    `json:"name"`
	StaffEmail string    `json:"email"`
	StaffPhone string    `json:"phone"`
	StaffRole  int       `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
