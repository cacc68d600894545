package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"healthcare-portal-api/internal/middleware"
	"healthcare-portal-api/internal/store"
)

type Handler struct {
	store      store.Store
	replyDelay time.Duration
}

// New builds the transport layer over st. replyDelay is how long the
// assistant waits before its canned chat reply.
func New(st store.Store, replyDelay time.Duration) *Handler {
	return &Handler{store: st, replyDelay: replyDelay}
}

// Register mounts the REST surface under /api.
func (h *Handler) Register(app fiber.Router) {
	api := app.Group("/api")

	api.Get("/user/profile", h.GetProfile)
	api.Patch("/user/profile", h.UpdateProfile)

	api.Get("/appointments", h.ListAppointments)
	api.Get("/appointments/:id", h.GetAppointment)
	api.Post("/appointments", h.CreateAppointment)
	api.Patch("/appointments/:id", h.UpdateAppointment)
	api.Delete("/appointments/:id", h.DeleteAppointment)

	api.Get("/chat/messages", h.ListChatMessages)
	api.Post("/chat/messages", h.CreateChatMessage)

	api.Get("/wearables", h.ListWearables)
	api.Get("/wearables/latest", h.LatestWearable)
	api.Post("/wearables", h.CreateWearable)

	api.Get("/health/metrics", h.ListHealthMetrics)
	api.Post("/health/metrics", h.CreateHealthMetric)
}

// uid reads the caller identity the middleware resolved.
func uid(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.UserIDKey).(string)
	return id
}

func errJSON(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
