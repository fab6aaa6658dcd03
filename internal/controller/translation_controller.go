package controller

import (
	"securebank-assist-be/internal/dto"
	"securebank-assist-be/internal/pkg/serverutils"
	"securebank-assist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITranslationController interface {
	RegisterRoutes(r fiber.Router)
	TranslateMessage(ctx *fiber.Ctx) error
	GenerateSummary(ctx *fiber.Ctx) error
	Languages(ctx *fiber.Ctx) error
}

type translationController struct {
	translationService service.ITranslationService
	summaryService     service.ISummaryService
}

func NewTranslationController(
	translationService service.ITranslationService,
	summaryService service.ISummaryService,
) ITranslationController {
	return &translationController{
		translationService: translationService,
		summaryService:     summaryService,
	}
}

func (c *translationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/v1")
	h.Post("translate-message", c.TranslateMessage)
	h.Post("generate-summary", c.GenerateSummary)
	h.Get("languages", c.Languages)
}

func (c *translationController) TranslateMessage(ctx *fiber.Ctx) error {
	var req dto.TranslateMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.translationService.TranslateMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Message translated", res))
}

func (c *translationController) GenerateSummary(ctx *fiber.Ctx) error {
	var req dto.GenerateSummaryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.summaryService.Generate(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Summary generated", res))
}

func (c *translationController) Languages(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Supported languages", c.translationService.Languages()))
}
