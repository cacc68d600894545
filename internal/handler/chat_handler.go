package handler

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"healthcare-portal-api/internal/model"
)

const assistantReply = "I understand your concern. Let me help you with that. Based on your recent health data, I recommend scheduling a consultation with your healthcare provider."

func (h *Handler) ListChatMessages(c *fiber.Ctx) error {
	msgs, err := h.store.ChatMessages(c.Context(), uid(c))
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Failed to fetch messages")
	}
	if msgs == nil {
		msgs = []model.ChatMessage{}
	}
	return c.JSON(msgs)
}

func (h *Handler) CreateChatMessage(c *fiber.Ctx) error {
	var ins model.InsertChatMessage
	if err := c.BodyParser(&ins); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid message data")
	}
	ins.UserID = uid(c)
	if err := ins.Validate(); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid message data")
	}

	msg, err := h.store.CreateChatMessage(c.Context(), ins)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Failed to create message")
	}

	// Fire-and-forget assistant reply, decoupled from this request.
	// The caller polls /api/chat/messages to see it; a process exit
	// before the delay elapses loses it.
	userID := ins.UserID
	time.AfterFunc(h.replyDelay, func() {
		_, err := h.store.CreateChatMessage(context.Background(), model.InsertChatMessage{
			UserID:    userID,
			Message:   assistantReply,
			Sender:    model.SenderAssistant,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			log.Printf("assistant reply: %v", err)
		}
	})

	return c.Status(fiber.StatusCreated).JSON(msg)
}
