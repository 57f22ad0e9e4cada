package validate

import (
	"restro_pos/constants"
	"restro_pos/model"
	"restro_pos/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateInventory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateInventoryInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_BODY, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid inventory input", err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func EditInventory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditInventoryInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_BODY, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid inventory input", err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}
