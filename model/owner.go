package model

import "time"

type Owner struct {
	DTO
	Name          string   `json:"name"`
	BusinessName  string   `json:"businessName"`
	Email         string   `gorm:"unique;size:100" json:"email"`
	Password      string   `json:"-"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	// Default rate suggestions for new bills.
	VatLow        *float64 `json:"vatLow"`
	VatHigh       *float64 `json:"vatHigh"`
	ServiceTax    *float64 `json:"serviceTax"`
	ServiceCharge *float64 `json:"serviceCharge"`
}

type PasswordResetToken struct {
	DTO
	OwnerId   uint      `json:"ownerId"`
	Token     string    `gorm:"unique;size:64" json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type RegisterInput struct {
	Name         string `json:"name" validate:"required"`
	BusinessName string `json:"businessName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Phone        string `json:"phone"`
}

type EditOwnerInput struct {
	Name          string   `json:"name"`
	BusinessName  string   `json:"businessName"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	VatLow        *float64 `json:"vatLow" validate:"omitempty,gte=0,lte=100"`
	VatHigh       *float64 `json:"vatHigh" validate:"omitempty,gte=0,lte=100"`
	ServiceTax    *float64 `json:"serviceTax" validate:"omitempty,gte=0,lte=100"`
	ServiceCharge *float64 `json:"serviceCharge" validate:"omitempty,gte=0,lte=100"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
