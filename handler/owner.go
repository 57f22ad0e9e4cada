package handler

import (
	"errors"
	"fmt"
	"net/smtp"
	"os"
	"restro_pos/constants"
	"restro_pos/database"
	"restro_pos/helper"
	"restro_pos/model"
	"restro_pos/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/jordan-wright/email"
)

func Me(c *fiber.Ctx) error {
	claim := helper.GetInfoOwnerFromToken(c)

	var owner model.Owner
	if err := database.DB.First(&owner, claim.OwnerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Owner not found", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, owner)
}

func EditOwner(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.EditOwnerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	claim := helper.GetInfoOwnerFromToken(c)

	var owner model.Owner
	if err := database.DB.First(&owner, claim.OwnerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Owner not found", err)
	}

	copier.CopyWithOption(&owner, &input, copier.Option{IgnoreEmpty: true})
	if err := database.DB.Save(&owner).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, owner)
}

func ForgotPassword(c *fiber.Ctx) error {
	type EmailRequest struct {
		Email string `json:"email"`
	}
	var EmailInput EmailRequest
	if err := c.BodyParser(&EmailInput); err != nil || !helper.ValidEmail(EmailInput.Email) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Valid email is required", err)
	}

	db := database.DB
	var owner model.Owner
	if err := db.Where("email = ?", EmailInput.Email).First(&owner).Error; err != nil {
		// Do not leak which emails exist.
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "If the email exists, a reset link was sent"})
	}

	token := uuid.New().String()
	resetToken := model.PasswordResetToken{
		OwnerId:   owner.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
	if err := db.Create(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", os.Getenv("APP_BASE_URL"), token)
	e := email.NewEmail()
	e.From = os.Getenv("SMTP_FROM")
	e.To = []string{EmailInput.Email}
	e.Subject = "Password reset"
	e.Text = []byte(fmt.Sprintf("Click the link to reset your password: %s", resetLink))
	smtpAddr := fmt.Sprintf("%s:%s", os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"))
	err := e.Send(smtpAddr, smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), os.Getenv("SMTP_HOST")))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot send reset email", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "If the email exists, a reset link was sent"})
}

func ResetPassword(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("ResetPassword").(model.ResetPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var resetToken model.PasswordResetToken
	if err := db.Where("token = ? AND expires_at > ?", input.Token, time.Now()).First(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Token invalid or expired", err)
	}

	var owner model.Owner
	if err := db.First(&owner, resetToken.OwnerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Owner not found", err)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	owner.Password = hash
	if err := db.Save(&owner).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	db.Delete(&resetToken)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Password updated"})
}
