package handler

import (
	"errors"
	"restro_pos/constants"
	"restro_pos/database"
	"restro_pos/helper"
	"restro_pos/model"
	"restro_pos/utils"

	"github.com/gofiber/fiber/v2"
)

func GetInventory(c *fiber.Ctx) error {
	claim := helper.GetInfoOwnerFromToken(c)
	db := database.DB

	query := db.Model(&model.InventoryItem{}).Where("owner_id = ?", claim.OwnerId)
	if c.Query("low") == "true" {
		query = query.Where("quantity <= threshold")
	}

	var items []model.InventoryItem
	if err := query.Order("name asc").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load inventory", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func CreateInventory(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateInventoryInput)
	claim := helper.GetInfoOwnerFromToken(c)

	item := model.InventoryItem{
		OwnerID:   claim.OwnerId,
		Name:      input.Name,
		Quantity:  input.Quantity,
		Unit:      input.Unit,
		Threshold: input.Threshold,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create inventory item", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func EditInventory(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditInventoryInput)
	claim := helper.GetInfoOwnerFromToken(c)
	inventoryId := c.Locals("inventoryId").(uint)
	db := database.DB

	var item model.InventoryItem
	if err := db.First(&item, inventoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVENTORY_NOT_FOUND, err)
	}
	if item.OwnerID != claim.OwnerId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, errors.New("inventory of another business"))
	}

	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Unit != "" {
		item.Unit = input.Unit
	}
	if input.Threshold != nil {
		item.Threshold = *input.Threshold
	}
	if err := db.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update inventory item", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func DeleteInventory(c *fiber.Ctx) error {
	claim := helper.GetInfoOwnerFromToken(c)
	ids := c.Locals("ids").([]uint)

	result := database.DB.Where("owner_id = ? AND id IN ?", claim.OwnerId, ids).Delete(&model.InventoryItem{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete inventory items", result.Error)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}
