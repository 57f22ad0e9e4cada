package handler

import (
	"errors"
	"fmt"
	"restro_pos/constants"
	"restro_pos/database"
	"restro_pos/helper"
	"restro_pos/model"
	"restro_pos/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetProducts(c *fiber.Ctx) error {
	claim := helper.GetInfoOwnerFromToken(c)
	db := database.DB

	query := db.Model(&model.Product{}).Where("owner_id = ?", claim.OwnerId)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("available") == "true" {
		query = query.Where("available = ?", true)
	}

	var products []model.Product
	if err := query.Order("name asc").Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load products", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, products)
}

func GetProductById(c *fiber.Ctx) error {
	claim := helper.GetInfoOwnerFromToken(c)
	productId := c.Locals("productId").(uint)

	var product model.Product
	if err := database.DB.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, err)
	}
	if product.OwnerID != claim.OwnerId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, errors.New("product of another business"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func CreateProduct(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateProductInput)
	claim := helper.GetInfoOwnerFromToken(c)
	db := database.DB

	var product model.Product
	err := db.Transaction(func(tx *gorm.DB) error {
		product = model.Product{
			OwnerID:   claim.OwnerId,
			Name:      input.Name,
			Slug:      helper.GenerateUniqueProductSlug(tx, input.Name),
			Category:  input.Category,
			Price:     input.Price,
			Available: true,
			Recipe:    model.Recipe(input.Recipe),
		}
		return tx.Create(&product).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create product", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, product)
}

func EditProduct(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditProductInput)
	claim := helper.GetInfoOwnerFromToken(c)
	productId := c.Locals("productId").(uint)
	db := database.DB

	var product model.Product
	if err := db.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, err)
	}
	if product.OwnerID != claim.OwnerId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, errors.New("product of another business"))
	}

	// Existing order items keep their snapshotted name and price.
	copier.CopyWithOption(&product, &input, copier.Option{IgnoreEmpty: true})
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Available != nil {
		product.Available = *input.Available
	}
	if input.Recipe != nil {
		product.Recipe = model.Recipe(*input.Recipe)
	}

	if err := db.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update product", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

// UploadProductImage stores the product photo on the image store and records
// its URL.
func UploadProductImage(c *fiber.Ctx) error {
	claim := helper.GetInfoOwnerFromToken(c)
	productId := c.Locals("productId").(uint)
	db := database.DB

	var product model.Product
	if err := db.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, err)
	}
	if product.OwnerID != claim.OwnerId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, errors.New("product of another business"))
	}
	if billImageStore == nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image store not configured", errors.New("no image store"))
	}

	file, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing image file", err)
	}
	reader, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot read image file", err)
	}
	defer reader.Close()

	publicID := fmt.Sprintf("product_%d_%d", product.ID, time.Now().Unix())
	url, _, err := billImageStore.Upload(c.Context(), reader, "products", publicID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot upload product image", err)
	}

	product.ImageUrl = &url
	if err := db.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot save product image", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func DeleteProducts(c *fiber.Ctx) error {
	claim := helper.GetInfoOwnerFromToken(c)
	ids := c.Locals("ids").([]uint)

	result := database.DB.Where("owner_id = ? AND id IN ?", claim.OwnerId, ids).Delete(&model.Product{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete products", result.Error)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}
