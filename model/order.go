package model

import "time"

type Order struct {
	DTO
	OwnerID          uint        `gorm:"index" json:"ownerId"`
	PublicCode       string      `gorm:"unique;size:20" json:"publicCode"` // ORD000042
	TableNumber      *int        `json:"tableNumber,omitempty"`
	TableID          *uint       `json:"tableId,omitempty"`
	Table            *Table      `json:"table,omitempty"`
	CustomerID       *uint       `json:"customerId,omitempty"` // null for walk-in guests
	Customer         *Customer   `json:"customer,omitempty"`
	TotalAmount      float64     `json:"totalAmount"`
	DiscountAmount   float64     `json:"discountAmount"`
	PaymentMethod    string      `json:"paymentMethod"` // CASH, CARD, UPI...
	PaymentReference string      `json:"paymentReference"`
	EstimatedMinutes int         `json:"estimatedMinutes"`
	Status           string      `json:"status"` // Pending | Completed, derived from items
	Items            []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CompletedAt      *time.Time  `json:"completedAt,omitempty"`
}

// OrderItem snapshots the product name and price at order time so historical
// bills stay stable against later product edits.
type OrderItem struct {
	DTO
	OrderID   uint    `gorm:"index" json:"orderId"`
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Status    string  `json:"status"` // Pending | Completed
}

type CartItemInput struct {
	ProductID uint `json:"productId" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gte=1"`
}

type CreateOrderInput struct {
	Items            []CartItemInput `json:"items" validate:"required,min=1,dive"`
	TableNumber      *int            `json:"tableNumber"`
	CustomerID       *uint           `json:"customerId"`
	RedeemPoints     int             `json:"redeemPoints" validate:"gte=0"`
	PaymentMethod    string          `json:"paymentMethod" validate:"required,oneof=CASH CARD UPI"`
	EstimatedMinutes int             `json:"estimatedMinutes" validate:"gte=0"`
}

type PatchItemStatusInput struct {
	Status string `json:"status" validate:"required,oneof=Pending Completed"`
}
