package validate

import (
	"restro_pos/constants"
	"restro_pos/model"
	"restro_pos/utils"

	"github.com/gofiber/fiber/v2"
)

func BillCharges() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BillChargesInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_BODY, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tax rates must be between 0 and 100", err)
		}
		c.Locals("charges", input)
		return c.Next()
	}
}

func BillStoreLink() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BillStoreLinkInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_BODY, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid store link input", err)
		}
		c.Locals("storeLink", input)
		return c.Next()
	}
}
