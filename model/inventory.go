package model

type InventoryItem struct {
	DTO
	OwnerID   uint    `gorm:"uniqueIndex:idx_inventory_owner_name" json:"ownerId"`
	Name      string  `gorm:"uniqueIndex:idx_inventory_owner_name;size:100" json:"name"`
	Quantity  float64 `json:"quantity"` // may go negative, no floor on decrement
	Unit      string  `json:"unit"`
	Threshold float64 `json:"threshold"` // low-stock warning level
}

type CreateInventoryInput struct {
	Name      string  `json:"name" validate:"required"`
	Quantity  float64 `json:"quantity" validate:"gte=0"`
	Unit      string  `json:"unit" validate:"required"`
	Threshold float64 `json:"threshold" validate:"gte=0"`
}

type EditInventoryInput struct {
	Quantity  *float64 `json:"quantity"`
	Unit      string   `json:"unit"`
	Threshold *float64 `json:"threshold" validate:"omitempty,gte=0"`
}
