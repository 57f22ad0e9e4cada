package handler

import (
	"context"
	"errors"
	"log"
	"restro_pos/constants"
	"restro_pos/database"
	"restro_pos/helper"
	"restro_pos/model"
	"restro_pos/utils"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func CreateOrder(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateOrderInput)
	ownerId := c.Locals("ownerId").(uint)
	products := c.Locals("products").(map[uint]model.Product)

	db := database.DB

	var order model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		items := make([]model.OrderItem, 0, len(input.Items))
		for _, cartItem := range input.Items {
			product := products[cartItem.ProductID]
			items = append(items, model.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  cartItem.Quantity,
				Status:    constants.ORDER_STATUS_PENDING,
			})
		}
		subtotal := helper.OrderBaseAmount(items, 0)

		// One loyalty point redeems one currency unit. Only points that fit
		// into the subtotal are spent; the rest stay on the customer balance.
		redeemed := input.RedeemPoints
		if float64(redeemed) > subtotal {
			redeemed = int(subtotal)
		}
		discount := float64(redeemed)
		total := helper.OrderBaseAmount(items, discount)

		order = model.Order{
			OwnerID:          ownerId,
			TableNumber:      input.TableNumber,
			CustomerID:       input.CustomerID,
			TotalAmount:      total,
			DiscountAmount:   discount,
			PaymentMethod:    input.PaymentMethod,
			PaymentReference: uuid.New().String(),
			EstimatedMinutes: input.EstimatedMinutes,
			Status:           helper.DeriveOrderStatus(items),
			Items:            items,
		}

		if table, ok := c.Locals("table").(model.Table); ok {
			order.TableID = &table.ID
			if err := tx.Model(&model.Table{}).Where("id = ?", table.ID).Update("occupied", true).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		order.PublicCode = helper.FormatOrderCode(order.ID)
		if err := tx.Model(&model.Order{}).Where("id = ?", order.ID).Update("public_code", order.PublicCode).Error; err != nil {
			return err
		}

		if customer, ok := c.Locals("customer").(model.Customer); ok {
			earned := helper.AccruePoints(total)
			updates := map[string]interface{}{
				"points":      gorm.Expr("points - ? + ?", redeemed, earned),
				"total_spent": gorm.Expr("total_spent + ?", total),
				"order_count": gorm.Expr("order_count + 1"),
			}
			if err := tx.Model(&model.Customer{}).Where("id = ?", customer.ID).Updates(updates).Error; err != nil {
				return err
			}
		}

		// Best effort, never blocks order placement.
		helper.DecrementInventory(tx, ownerId, order.Items, products)
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create order", err)
	}

	PublishKitchenEvent(ownerId, KitchenEvent{
		Type:       "order_created",
		OrderID:    order.ID,
		OrderCode:  order.PublicCode,
		Status:     order.Status,
		OccurredAt: time.Now(),
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

func GetOrders(c *fiber.Ctx) error {
	claim := helper.GetInfoOwnerFromToken(c)
	db := database.DB

	query := db.Model(&model.Order{}).Where("owner_id = ?", claim.OwnerId)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if tableNumber := c.Query("tableNumber"); tableNumber != "" {
		if n, err := strconv.Atoi(tableNumber); err == nil {
			query = query.Where("table_number = ?", n)
		}
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load orders", err)
	}

	var limit, page *int
	if l := c.QueryInt("limit"); l > 0 {
		limit = &l
	}
	if p := c.QueryInt("page"); p > 0 {
		page = &p
	}

	var orders []model.Order
	if err := utils.ApplyPagination(query.Preload("Items").Order("created_at desc"), limit, page).
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load orders", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      limit,
		Page:       page,
		TotalCount: totalCount,
	})
}

func GetOrderById(c *fiber.Ctx) error {
	order := c.Locals("order").(model.Order)

	if err := database.DB.Preload("Items").Preload("Customer").Preload("Table").
		First(&order, order.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// GetOrderByCode serves the public order-code lookup guests use to follow
// their order. The owning business sees the full record; everyone else gets
// the progress view only.
func GetOrderByCode(c *fiber.Ctx) error {
	claim := helper.GetInfoOwnerFromToken(c)
	orderCode := c.Params("orderCode")

	var order model.Order
	if err := database.DB.Preload("Items").Preload("Customer").Preload("Table").
		Where("public_code = ?", orderCode).First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}
	if order.OwnerID == claim.OwnerId {
		return utils.SuccessResponse(c, fiber.StatusOK, order)
	}

	items := make([]fiber.Map, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, fiber.Map{
			"name":     item.Name,
			"quantity": item.Quantity,
			"status":   item.Status,
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"publicCode":       order.PublicCode,
		"status":           order.Status,
		"estimatedMinutes": order.EstimatedMinutes,
		"totalAmount":      order.TotalAmount,
		"items":            items,
	})
}

// PatchOrderItemStatus updates one line item and recomputes the cached order
// status (and bill total) in the same transaction.
func PatchOrderItemStatus(c *fiber.Ctx) error {
	order := c.Locals("order").(model.Order)
	input := c.Locals("input").(model.PatchItemStatusInput)
	itemId, ok := c.Locals("itemId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing itemId"))
	}

	var found bool
	for _, item := range order.Items {
		if item.ID == itemId {
			found = true
			break
		}
	}
	if !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order item not found", errors.New("item of another order"))
	}

	var status string
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.OrderItem{}).Where("id = ?", itemId).Update("status", input.Status).Error; err != nil {
			return err
		}
		var err error
		status, err = helper.SyncOrderStatus(tx, order.ID)
		return err
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update item status", err)
	}

	PublishKitchenEvent(order.OwnerID, KitchenEvent{
		Type:       "item_updated",
		OrderID:    order.ID,
		OrderCode:  order.PublicCode,
		ItemID:     itemId,
		Status:     status,
		OccurredAt: time.Now(),
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"itemId":      itemId,
		"itemStatus":  input.Status,
		"orderStatus": status,
	})
}

// CompleteOrder marks every item Completed, which flips the derived order
// status in the same transaction.
func CompleteOrder(c *fiber.Ctx) error {
	order := c.Locals("order").(model.Order)

	if len(order.Items) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Order has no items", errors.New("empty order"))
	}

	var status string
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.OrderItem{}).Where("order_id = ?", order.ID).
			Update("status", constants.ORDER_STATUS_COMPLETED).Error; err != nil {
			return err
		}
		var err error
		status, err = helper.SyncOrderStatus(tx, order.ID)
		if err != nil {
			return err
		}
		if order.TableID != nil {
			if err := tx.Model(&model.Table{}).Where("id = ?", *order.TableID).Update("occupied", false).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot complete order", err)
	}

	PublishKitchenEvent(order.OwnerID, KitchenEvent{
		Type:       "order_completed",
		OrderID:    order.ID,
		OrderCode:  order.PublicCode,
		Status:     status,
		OccurredAt: time.Now(),
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"orderStatus": status})
}

func DeleteOrder(c *fiber.Ctx) error {
	order := c.Locals("order").(model.Order)

	if order.Status != constants.ORDER_STATUS_PENDING {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only pending orders can be deleted", errors.New("order already completed"))
	}

	var bill model.Bill
	hasBill := database.DB.Where("order_id = ?", order.ID).First(&bill).Error == nil

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if order.TableID != nil {
			if err := tx.Model(&model.Table{}).Where("id = ?", *order.TableID).Update("occupied", false).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&model.Bill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Order{}, order.ID).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete order", err)
	}

	if hasBill && billImageStore != nil {
		for _, id := range []*string{bill.StoreItemID, bill.ModifiedStoreItemID} {
			if id == nil {
				continue
			}
			if err := billImageStore.Destroy(context.Background(), *id); err != nil {
				log.Printf("failed to delete bill image %s: %v", *id, err)
			}
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": order.ID})
}
