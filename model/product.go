package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Ingredient is one recipe requirement of a product. Quantity is the amount
// of the inventory item consumed per unit of the product sold.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe is stored as a JSONB column on Product.
type Recipe []Ingredient

func (r Recipe) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

func (r *Recipe) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return errors.New("unsupported recipe column type")
	}
}

type Product struct {
	DTO
	OwnerID   uint    `json:"ownerId"`
	Name      string  `json:"name"`
	Slug      string  `gorm:"unique;size:120" json:"slug"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	ImageUrl  *string `json:"imageUrl,omitempty"`
	Available bool    `gorm:"default:true" json:"available"`
	Recipe    Recipe  `gorm:"type:jsonb" json:"recipe,omitempty"`
}

type CreateProductInput struct {
	Name     string       `json:"name" validate:"required"`
	Category string       `json:"category"`
	Price    float64      `json:"price" validate:"required,gt=0"`
	Recipe   []Ingredient `json:"recipe" validate:"omitempty,dive"`
}

type EditProductInput struct {
	Name      string        `json:"name"`
	Category  string        `json:"category"`
	Price     *float64      `json:"price" validate:"omitempty,gt=0"`
	Available *bool         `json:"available"`
	Recipe    *[]Ingredient `json:"recipe" validate:"omitempty,dive"`
}
