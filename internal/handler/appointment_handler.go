package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"healthcare-portal-api/internal/model"
	"healthcare-portal-api/internal/store"
)

func (h *Handler) ListAppointments(c *fiber.Ctx) error {
	appts, err := h.store.Appointments(c.Context(), uid(c))
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Failed to fetch appointments")
	}
	if appts == nil {
		appts = []model.Appointment{}
	}
	return c.JSON(appts)
}

func (h *Handler) GetAppointment(c *fiber.Ctx) error {
	a, err := h.store.Appointment(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return errJSON(c, fiber.StatusNotFound, "Appointment not found")
	}
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Failed to fetch appointment")
	}
	return c.JSON(a)
}

func (h *Handler) CreateAppointment(c *fiber.Ctx) error {
	var ins model.InsertAppointment
	if err := c.BodyParser(&ins); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid appointment data")
	}
	// whatever the body says, the record belongs to the caller
	ins.UserID = uid(c)
	if err := ins.Validate(); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid appointment data")
	}

	a, err := h.store.CreateAppointment(c.Context(), ins)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Failed to create appointment")
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

func (h *Handler) UpdateAppointment(c *fiber.Ctx) error {
	var patch model.UpdateAppointment
	if err := c.BodyParser(&patch); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid appointment data")
	}

	a, err := h.store.UpdateAppointment(c.Context(), c.Params("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		return errJSON(c, fiber.StatusNotFound, "Appointment not found")
	}
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Failed to update appointment")
	}
	return c.JSON(a)
}

func (h *Handler) DeleteAppointment(c *fiber.Ctx) error {
	deleted, err := h.store.DeleteAppointment(c.Context(), c.Params("id"))
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Failed to delete appointment")
	}
	if !deleted {
		return errJSON(c, fiber.StatusNotFound, "Appointment not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
