package controller

import (
	"securebank-assist-be/internal/dto"
	"securebank-assist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
}

func NewChatbotController(chatbotService service.IChatbotService) IChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/v1")
	h.Post("chat", c.Chat)
}

func (c *chatbotController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := c.chatbotService.ProcessQuery(ctx.Context(), &req)
	if err != nil {
		return err
	}

	// The chat surface returns the bare payload, not the envelope, to stay
	// compatible with existing clients.
	return ctx.JSON(res)
}
