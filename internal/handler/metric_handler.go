package handler

import (
	"github.com/gofiber/fiber/v2"

	"healthcare-portal-api/internal/model"
)

func (h *Handler) ListHealthMetrics(c *fiber.Ctx) error {
	metrics, err := h.store.HealthMetrics(c.Context(), uid(c), c.Query("type"))
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Failed to fetch health metrics")
	}
	if metrics == nil {
		metrics = []model.HealthMetric{}
	}
	return c.JSON(metrics)
}

func (h *Handler) CreateHealthMetric(c *fiber.Ctx) error {
	var ins model.InsertHealthMetric
	if err := c.BodyParser(&ins); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid health metric data")
	}
	ins.UserID = uid(c)
	if err := ins.Validate(); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid health metric data")
	}

	mt, err := h.store.CreateHealthMetric(c.Context(), ins)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Failed to create health metric")
	}
	return c.Status(fiber.StatusCreated).JSON(mt)
}
