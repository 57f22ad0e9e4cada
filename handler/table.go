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

func GetTables(c *fiber.Ctx) error {
	claim := helper.GetInfoOwnerFromToken(c)

	var tables []model.Table
	if err := database.DB.Where("owner_id = ?", claim.OwnerId).Order("table_number asc").Find(&tables).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load tables", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tables)
}

func CreateTable(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTableInput)
	claim := helper.GetInfoOwnerFromToken(c)

	table := model.Table{
		OwnerID:     claim.OwnerId,
		TableNumber: input.TableNumber,
		Capacity:    input.Capacity,
	}
	if err := database.DB.Create(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create table", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, table)
}

func EditTable(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditTableInput)
	claim := helper.GetInfoOwnerFromToken(c)
	tableId := c.Locals("tableId").(uint)
	db := database.DB

	var table model.Table
	if err := db.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}
	if table.OwnerID != claim.OwnerId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, errors.New("table of another business"))
	}

	if input.Capacity > 0 {
		table.Capacity = input.Capacity
	}
	if input.Occupied != nil {
		table.Occupied = *input.Occupied
	}
	if err := db.Save(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update table", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

func DeleteTables(c *fiber.Ctx) error {
	claim := helper.GetInfoOwnerFromToken(c)
	ids := c.Locals("ids").([]uint)

	result := database.DB.Where("owner_id = ? AND id IN ?", claim.OwnerId, ids).Delete(&model.Table{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete tables", result.Error)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}
