package helper

import (
	"errors"
	"restro_pos/constants"
	"restro_pos/model"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DeriveOrderStatus is the single place order-level status comes from.
// Completed iff there is at least one item and every item is Completed.
func DeriveOrderStatus(items []model.OrderItem) string {
	if len(items) == 0 {
		return constants.ORDER_STATUS_PENDING
	}
	for _, item := range items {
		if item.Status != constants.ORDER_STATUS_COMPLETED {
			return constants.ORDER_STATUS_PENDING
		}
	}
	return constants.ORDER_STATUS_COMPLETED
}

// OrderBaseAmount is the pre-tax amount a bill is computed from: the sum of
// snapshotted price*quantity minus the order discount, floored at zero.
// Computed in exact decimal and returned rounded to 2 decimal places, so the
// value is safe to serialize as-is.
func OrderBaseAmount(items []model.OrderItem, discount float64) float64 {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	base := subtotal.Sub(decimal.NewFromFloat(discount))
	if base.IsNegative() {
		base = decimal.Zero
	}
	return base.Round(2).InexactFloat64()
}

// SyncOrderStatus reloads the order's items inside the caller's transaction,
// recomputes the cached order status and, when a bill exists, its total.
// Both writes happen in the same transaction so a reader never sees a fresh
// item status next to a stale order status.
func SyncOrderStatus(tx *gorm.DB, orderId uint) (string, error) {
	var order model.Order
	if err := tx.Preload("Items").First(&order, orderId).Error; err != nil {
		return "", err
	}

	status := DeriveOrderStatus(order.Items)
	updates := map[string]interface{}{"status": status}
	if status == constants.ORDER_STATUS_COMPLETED && order.CompletedAt == nil {
		updates["completed_at"] = time.Now()
	}
	if status == constants.ORDER_STATUS_PENDING {
		updates["completed_at"] = nil
	}
	if err := tx.Model(&model.Order{}).Where("id = ?", orderId).Updates(updates).Error; err != nil {
		return "", err
	}

	if err := RecalculateBillTotal(tx, order); err != nil {
		return "", err
	}
	return status, nil
}

// RecalculateBillTotal refreshes bill.total_amount from the order's current
// items and the bill's stored rates. No-op when the order has no bill yet.
func RecalculateBillTotal(tx *gorm.DB, order model.Order) error {
	var bill model.Bill
	if err := tx.Where("order_id = ?", order.ID).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	totals := CalculateTotals(OrderBaseAmount(order.Items, order.DiscountAmount), TaxRates{
		VatLow:        bill.VatLow,
		VatHigh:       bill.VatHigh,
		ServiceTax:    bill.ServiceTax,
		ServiceCharge: bill.ServiceCharge,
	})
	return tx.Model(&model.Bill{}).Where("id = ?", bill.ID).Update("total_amount", totals.TotalAmount).Error
}
