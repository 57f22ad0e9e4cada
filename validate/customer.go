package validate

import (
	"errors"
	"restro_pos/constants"
	"restro_pos/helper"
	"restro_pos/model"
	"restro_pos/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCustomerInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_BODY, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid customer input", err)
		}

		claim := helper.GetInfoOwnerFromToken(c)
		exists, err := helper.CheckByPhoneNumberCustomer(claim.OwnerId, input.Phone, nil)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if exists {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phone number already registered", errors.New("duplicate phone"), "phone")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditCustomerInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_BODY, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid customer input", err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}
