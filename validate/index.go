package validate

import (
	"errors"
	"restro_pos/constants"
	"restro_pos/model"
	"restro_pos/utils"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetById parses a numeric route param and stores it under the same key.
func GetById(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params(param)
		id64, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id64 == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid "+param, err)
		}
		c.Locals(param, uint(id64))
		return c.Next()
	}
}

func Delete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ArrayId
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_BODY, err)
		}
		if len(input.IDs) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "No ids given", errors.New("empty ids"))
		}
		c.Locals("ids", input.IDs)
		return c.Next()
	}
}
