package model

type Customer struct {
	DTO
	OwnerID    uint    `gorm:"uniqueIndex:idx_customer_owner_phone" json:"ownerId"`
	Name       string  `json:"name"`
	Phone      string  `gorm:"uniqueIndex:idx_customer_owner_phone;size:20" json:"phone"`
	Email      string  `json:"email"`
	Points     int     `json:"points"` // loyalty points balance
	TotalSpent float64 `json:"totalSpent"`
	OrderCount int     `json:"orderCount"`
}

type CreateCustomerInput struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

type EditCustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}
