package handler

import (
	"errors"
	"restro_pos/constants"
	"restro_pos/database"
	"restro_pos/helper"
	"restro_pos/model"
	"restro_pos/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Register(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	owner := model.Owner{
		Name:         input.Name,
		BusinessName: input.BusinessName,
		Email:        input.Email,
		Password:     hash,
		Phone:        input.Phone,
	}
	if err := database.DB.Create(&owner).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"id":           owner.ID,
		"email":        owner.Email,
		"businessName": owner.BusinessName,
	})
}

func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	loginInput := new(LoginInput)

	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	if loginInput.Email == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("email and password are required"))
	}

	owner, err := helper.GetOwnerByEmail(loginInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if owner == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVALID_EMAIL, errors.New("email not registered"))
	}

	if !helper.CheckPasswordHash(loginInput.Password, owner.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match email"))
	}

	tokenClaim := model.TokenClaim{
		OwnerId: owner.ID,
		Email:   owner.Email,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "login success",
		"tokens": model.TokenData{
			AccessToken:  token,
			RefreshToken: refreshToken,
		},
		"owner": fiber.Map{
			"id":           owner.ID,
			"email":        owner.Email,
			"name":         owner.Name,
			"businessName": owner.BusinessName,
		},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	type RefreshTokenRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	req := new(RefreshTokenRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_BODY, err)
	}
	token := req.RefreshToken
	if token == "" {
		token = c.Cookies("refresh_token")
	}
	if token == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing refresh token", errors.New("no token"))
	}

	parsed, err := helper.ParseToken(token)
	if err != nil || !parsed.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", errors.New("bad claims"))
	}
	ownerId, ok := claims["ownerId"].(float64)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", errors.New("missing ownerId"))
	}
	email, _ := claims["email"].(string)

	accessToken, err := helper.GenerateAccessToken(model.TokenClaim{OwnerId: uint(ownerId), Email: email})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"accessToken": accessToken})
}
