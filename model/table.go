package model

type Table struct {
	DTO
	OwnerID     uint `gorm:"uniqueIndex:idx_table_owner_number" json:"ownerId"`
	TableNumber int  `gorm:"uniqueIndex:idx_table_owner_number" json:"tableNumber"`
	Capacity    int  `json:"capacity"`
	Occupied    bool `json:"occupied"`
}

type CreateTableInput struct {
	TableNumber int `json:"tableNumber" validate:"required,gte=1"`
	Capacity    int `json:"capacity" validate:"required,gte=1"`
}

type EditTableInput struct {
	Capacity int   `json:"capacity" validate:"omitempty,gte=1"`
	Occupied *bool `json:"occupied"`
}
