package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"healthcare-portal-api/internal/model"
	"healthcare-portal-api/internal/store"
)

func (h *Handler) GetProfile(c *fiber.Ctx) error {
	u, err := h.store.User(c.Context(), uid(c))
	if errors.Is(err, store.ErrNotFound) {
		return errJSON(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Failed to fetch user profile")
	}
	return c.JSON(u)
}

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	var patch model.UpdateUser
	if err := c.BodyParser(&patch); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid user data")
	}

	u, err := h.store.UpdateUser(c.Context(), uid(c), patch)
	if errors.Is(err, store.ErrNotFound) {
		return errJSON(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Failed to update user profile")
	}
	return c.JSON(u)
}
