package handler

import (
	"restro_pos/constants"
	"restro_pos/database"
	"restro_pos/helper"
	"restro_pos/model"
	"restro_pos/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

func dayRange(day time.Time) (time.Time, time.Time) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return from, from.AddDate(0, 0, 1)
}

func revenueForDay(ownerId uint, day time.Time) (float64, int64) {
	db := database.DB
	from, to := dayRange(day)

	var revenue float64
	var count int64
	db.Model(&model.Order{}).
		Where("owner_id = ? AND status = ? AND created_at >= ? AND created_at < ?",
			ownerId, constants.ORDER_STATUS_COMPLETED, from, to).
		Count(&count)
	db.Model(&model.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("owner_id = ? AND status = ? AND created_at >= ? AND created_at < ?",
			ownerId, constants.ORDER_STATUS_COMPLETED, from, to).
		Scan(&revenue)
	return revenue, count
}

// GetSummary reports a day's revenue and order count with growth against the
// previous day.
func GetSummary(c *fiber.Ctx) error {
	claim := helper.GetInfoOwnerFromToken(c)

	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Date must be YYYY-MM-DD", err)
		}
		day = parsed
	}

	revenue, count := revenueForDay(claim.OwnerId, day)
	prevRevenue, prevCount := revenueForDay(claim.OwnerId, day.AddDate(0, 0, -1))

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"date":          day.Format("2006-01-02"),
		"revenue":       revenue,
		"orderCount":    count,
		"revenueGrowth": utils.CalculateGrowth(revenue, prevRevenue),
		"orderGrowth":   utils.CalculateGrowth(float64(count), float64(prevCount)),
	})
}

// GetTopProducts ranks by snapshot name so renamed products keep their
// historical sales.
func GetTopProducts(c *fiber.Ctx) error {
	claim := helper.GetInfoOwnerFromToken(c)

	limit := c.QueryInt("limit")
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	type TopProduct struct {
		Name    string  `json:"name"`
		Sold    int64   `json:"sold"`
		Revenue float64 `json:"revenue"`
	}
	var top []TopProduct
	err := database.DB.Model(&model.OrderItem{}).
		Select("order_items.name as name, SUM(order_items.quantity) as sold, SUM(order_items.price * order_items.quantity) as revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.owner_id = ?", claim.OwnerId).
		Group("order_items.name").
		Order("sold desc").
		Limit(limit).
		Scan(&top).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load top products", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, top)
}

// GetNegativeStock surfaces inventory rows that went below zero, since
// order-time decrements have no floor.
func GetNegativeStock(c *fiber.Ctx) error {
	claim := helper.GetInfoOwnerFromToken(c)

	var items []model.InventoryItem
	if err := database.DB.Where("owner_id = ? AND quantity < 0", claim.OwnerId).
		Order("quantity asc").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load inventory", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}
