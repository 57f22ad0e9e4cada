package model

import "time"

// Bill is the settlement record for one order. The externally stored image of
// the rendered bill lives on Cloudinary; StoreItemID is the public ID used for
// signed deletes. Bills expire 24 hours after the last charges/image write and
// are removed by the reaper together with their images.
type Bill struct {
	DTO
	OwnerID             uint      `gorm:"index" json:"ownerId"`
	OrderID             uint      `gorm:"uniqueIndex" json:"orderId"`
	Order               *Order    `json:"order,omitempty"`
	VatLow              *float64  `json:"vatLow"`
	VatHigh             *float64  `json:"vatHigh"`
	ServiceTax          *float64  `json:"serviceTax"`
	ServiceCharge       *float64  `json:"serviceCharge"`
	TotalAmount         float64   `json:"totalAmount"`
	StoreLink           *string   `json:"storeLink,omitempty"`
	StoreItemID         *string   `json:"storeItemId,omitempty"`
	ModifiedStoreLink   *string   `json:"modifiedStoreLink,omitempty"`
	ModifiedStoreItemID *string   `json:"modifiedStoreItemId,omitempty"`
	ExpiresAt           time.Time `json:"expiresAt"`
}

type BillChargesInput struct {
	VatLow        *float64 `json:"vatLow" validate:"omitempty,gte=0,lte=100"`
	VatHigh       *float64 `json:"vatHigh" validate:"omitempty,gte=0,lte=100"`
	ServiceTax    *float64 `json:"serviceTax" validate:"omitempty,gte=0,lte=100"`
	ServiceCharge *float64 `json:"serviceCharge" validate:"omitempty,gte=0,lte=100"`
}

type BillStoreLinkInput struct {
	StoreLink   string `json:"storeLink" validate:"required,url"`
	StoreItemID string `json:"storeItemId" validate:"required"`
}
