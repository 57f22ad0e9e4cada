package validate

import (
	"errors"
	"fmt"
	"restro_pos/constants"
	"restro_pos/model"
	"restro_pos/utils"

	"github.com/gofiber/fiber/v2"
)

func checkRecipe(recipe []model.Ingredient) error {
	for i, ingredient := range recipe {
		if ingredient.Name == "" {
			return fmt.Errorf("recipe entry %d has no name", i)
		}
		if ingredient.Quantity <= 0 {
			return fmt.Errorf("recipe entry '%s' needs a positive quantity", ingredient.Name)
		}
	}
	return nil
}

func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateProductInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_BODY, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid product input", err)
		}
		if err := checkRecipe(input.Recipe); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid recipe", err, "recipe")
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func EditProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditProductInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_BODY, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid product input", err)
		}
		if input.Recipe != nil {
			if err := checkRecipe(*input.Recipe); err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid recipe", err, "recipe")
			}
		}
		if input.Name == "" && input.Category == "" && input.Price == nil && input.Available == nil && input.Recipe == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Nothing to update", errors.New("empty input"))
		}
		c.Locals("input", input)
		return c.Next()
	}
}
