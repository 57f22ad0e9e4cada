package validate

import (
	"errors"
	"fmt"
	"restro_pos/constants"
	"restro_pos/database"
	"restro_pos/helper"
	"restro_pos/model"
	"restro_pos/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder validates the cart before the handler opens its transaction:
// every product must exist, belong to the caller and be available; the table
// and customer, when given, must belong to the caller; redeemed points must
// be covered by the customer's balance.
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_BODY, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid order input", err)
		}

		claim := helper.GetInfoOwnerFromToken(c)
		if claim.OwnerId == 0 {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing owner identity", errors.New("no claim"))
		}
		db := database.DB

		productIds := make([]uint, 0, len(input.Items))
		for _, item := range input.Items {
			productIds = append(productIds, item.ProductID)
		}
		var products []model.Product
		if err := db.Where("id IN ?", productIds).Find(&products).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		productMap := make(map[uint]model.Product, len(products))
		for _, product := range products {
			productMap[product.ID] = product
		}
		for _, item := range input.Items {
			product, ok := productMap[item.ProductID]
			if !ok {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, fmt.Errorf("product %d", item.ProductID))
			}
			if product.OwnerID != claim.OwnerId {
				return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, fmt.Errorf("product %d", item.ProductID))
			}
			if !product.Available {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Product not available", fmt.Errorf("product %d unavailable", item.ProductID), "items")
			}
		}

		if input.TableNumber != nil {
			var table model.Table
			if err := db.Where("owner_id = ? AND table_number = ?", claim.OwnerId, *input.TableNumber).First(&table).Error; err != nil {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
			}
			c.Locals("table", table)
		}

		if input.CustomerID != nil {
			var customer model.Customer
			if err := db.First(&customer, *input.CustomerID).Error; err != nil {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CUSTOMER_NOT_FOUND, err)
			}
			if customer.OwnerID != claim.OwnerId {
				return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, errors.New("customer of another business"))
			}
			if input.RedeemPoints > customer.Points {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Not enough loyalty points", fmt.Errorf("%d points available", customer.Points), "redeemPoints")
			}
			c.Locals("customer", customer)
		} else if input.RedeemPoints > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Cannot redeem points without a customer", errors.New("no customer"), "redeemPoints")
		}

		c.Locals("input", input)
		c.Locals("ownerId", claim.OwnerId)
		c.Locals("products", productMap)
		return c.Next()
	}
}

// OwnOrder loads the order of the :orderId param and enforces ownership.
func OwnOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderId, ok := c.Locals("orderId").(uint)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing orderId"))
		}
		claim := helper.GetInfoOwnerFromToken(c)

		var order model.Order
		if err := database.DB.Preload("Items").First(&order, orderId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		if order.OwnerID != claim.OwnerId {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, errors.New("order of another business"))
		}

		c.Locals("order", order)
		c.Locals("ownerId", claim.OwnerId)
		return c.Next()
	}
}

func PatchItemStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PatchItemStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_BODY, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid status", err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}
