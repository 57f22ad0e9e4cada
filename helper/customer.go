package helper

import (
	"errors"
	"restro_pos/database"
	"restro_pos/model"

	"gorm.io/gorm"
)

func CheckByPhoneNumberCustomer(ownerId uint, phoneNumber string, id *uint) (bool, error) {
	db := database.DB
	var count int64
	if id == nil {
		if err := db.Model(&model.Customer{}).Where("owner_id = ? AND phone = ?", ownerId, phoneNumber).Count(&count).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
	}
	if id != nil {
		if err := db.Model(&model.Customer{}).Where("owner_id = ? AND phone = ? AND id != ?", ownerId, phoneNumber, *id).Count(&count).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
	}
	return count > 0, nil
}

// AccruePoints is the loyalty earn rule: one point per ten currency units of
// the order total, truncated.
func AccruePoints(totalAmount float64) int {
	if totalAmount <= 0 {
		return 0
	}
	return int(totalAmount / 10)
}
