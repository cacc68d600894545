package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"healthcare-portal-api/internal/model"
	"healthcare-portal-api/internal/store"
)

func (h *Handler) ListWearables(c *fiber.Ctx) error {
	readings, err := h.store.WearableReadings(c.Context(), uid(c))
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Failed to fetch wearable data")
	}
	if readings == nil {
		readings = []model.WearableReading{}
	}
	return c.JSON(readings)
}

func (h *Handler) LatestWearable(c *fiber.Ctx) error {
	r, err := h.store.LatestWearableReading(c.Context(), uid(c))
	if errors.Is(err, store.ErrNotFound) {
		return errJSON(c, fiber.StatusNotFound, "No wearable data found")
	}
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Failed to fetch wearable data")
	}
	return c.JSON(r)
}

func (h *Handler) CreateWearable(c *fiber.Ctx) error {
	var ins model.InsertWearableReading
	if err := c.BodyParser(&ins); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid wearable data")
	}
	ins.UserID = uid(c)
	if err := ins.Validate(); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid wearable data")
	}

	r, err := h.store.CreateWearableReading(c.Context(), ins)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Failed to create wearable data")
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}
