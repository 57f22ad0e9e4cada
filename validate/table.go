package validate

import (
	"errors"
	"restro_pos/constants"
	"restro_pos/database"
	"restro_pos/helper"
	"restro_pos/model"
	"restro_pos/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTableInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_BODY, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid table input", err)
		}

		claim := helper.GetInfoOwnerFromToken(c)
		var count int64
		database.DB.Model(&model.Table{}).
			Where("owner_id = ? AND table_number = ?", claim.OwnerId, input.TableNumber).
			Count(&count)
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Table number already exists", errors.New("duplicate table"), "tableNumber")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditTableInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_BODY, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid table input", err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}
