package handler

import (
	"errors"
	"restro_pos/constants"
	"restro_pos/database"
	"restro_pos/helper"
	"restro_pos/model"
	"restro_pos/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetCustomers(c *fiber.Ctx) error {
	claim := helper.GetInfoOwnerFromToken(c)
	db := database.DB

	query := db.Model(&model.Customer{}).Where("owner_id = ?", claim.OwnerId)
	if phone := c.Query("phone"); phone != "" {
		query = query.Where("phone = ?", phone)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load customers", err)
	}

	var limit, page *int
	if l := c.QueryInt("limit"); l > 0 {
		limit = &l
	}
	if p := c.QueryInt("page"); p > 0 {
		page = &p
	}

	var customers []model.Customer
	if err := utils.ApplyPagination(query.Order("name asc"), limit, page).Find(&customers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load customers", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       customers,
		Limit:      limit,
		Page:       page,
		TotalCount: totalCount,
	})
}

func GetCustomerById(c *fiber.Ctx) error {
	claim := helper.GetInfoOwnerFromToken(c)
	customerId := c.Locals("customerId").(uint)

	var customer model.Customer
	if err := database.DB.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CUSTOMER_NOT_FOUND, err)
	}
	if customer.OwnerID != claim.OwnerId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, errors.New("customer of another business"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func CreateCustomer(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateCustomerInput)
	claim := helper.GetInfoOwnerFromToken(c)

	var newCustomer model.Customer
	copier.Copy(&newCustomer, &input)
	newCustomer.OwnerID = claim.OwnerId

	if err := database.DB.Create(&newCustomer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create customer", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, newCustomer)
}

func EditCustomer(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditCustomerInput)
	claim := helper.GetInfoOwnerFromToken(c)
	customerId := c.Locals("customerId").(uint)
	db := database.DB

	var customer model.Customer
	if err := db.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CUSTOMER_NOT_FOUND, err)
	}
	if customer.OwnerID != claim.OwnerId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, errors.New("customer of another business"))
	}

	copier.CopyWithOption(&customer, &input, copier.Option{IgnoreEmpty: true})
	if err := db.Save(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update customer", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}
