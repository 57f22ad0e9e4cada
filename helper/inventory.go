package helper

import (
	"log"
	"math"
	"restro_pos/model"

	"gorm.io/gorm"
)

// DecrementInventory walks each line item's product recipe and decrements the
// matching inventory rows (ingredient name + owner) by required*quantity.
// Bookkeeping is best effort: malformed quantities and missing rows are
// skipped, failures are logged, and nothing here ever fails order placement.
// There is deliberately no floor at zero, so stock can go negative.
func DecrementInventory(tx *gorm.DB, ownerId uint, items []model.OrderItem, products map[uint]model.Product) {
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		for _, ingredient := range product.Recipe {
			if ingredient.Name == "" {
				continue
			}
			amount := ingredient.Quantity * float64(item.Quantity)
			if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
				continue
			}
			result := tx.Model(&model.InventoryItem{}).
				Where("owner_id = ? AND name = ?", ownerId, ingredient.Name).
				Update("quantity", gorm.Expr("quantity - ?", amount))
			if result.Error != nil {
				log.Printf("inventory decrement failed for '%s': %v", ingredient.Name, result.Error)
			}
		}
	}
}
