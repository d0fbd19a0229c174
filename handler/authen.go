package handler

import (
	"errors"
	"time"

	"cinema_ticket/constants"
	"cinema_ticket/helper"
	"cinema_ticket/model"
	"cinema_ticket/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const accessTokenCookie = "access_token"

func (h *Handler) Login(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LoginInput)

	if input.Username != h.adminUsername || h.adminPasswordHash == "" ||
		!helper.CheckPasswordHash(input.Password, h.adminPasswordHash) {
		h.log.Warn("login rejected", zap.String("username", input.Username))
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("username or password does not match"))
	}

	tokenData, err := helper.GenerateAccessToken(model.TokenClaim{
		Username: input.Username,
		Role:     constants.ROLE_ADMIN,
	}, h.jwtSecret, helper.AccessTokenTTL)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// set access token vào HTTPOnly cookie, client API dùng Bearer từ body
	c.Cookie(&fiber.Cookie{
		Name:     accessTokenCookie,
		Value:    tokenData.AccessToken,
		Expires:  time.Unix(tokenData.ExpiresAt, 0),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	h.log.Info("admin logged in", zap.String("username", input.Username))
	return utils.SuccessResponse(c, fiber.StatusOK, tokenData)
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(accessTokenCookie)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "logout success"})
}

// Me trả về claim của token hiện tại (đã qua middleware.Protected)
func (h *Handler) Me(c *fiber.Ctx) error {
	claim, ok := c.Locals("user").(model.TokenClaim)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, errors.New("no user in context"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, claim)
}
