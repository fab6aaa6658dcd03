package controller

import (
	"securebank-assist-be/internal/dto"
	"securebank-assist-be/internal/pkg/serverutils"
	"securebank-assist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Clear(ctx *fiber.Ctx) error
	Archive(ctx *fiber.Ctx) error
	ListArchived(ctx *fiber.Ctx) error
	ShowArchived(ctx *fiber.Ctx) error
	DeleteArchived(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/v1")
	h.Post("clear-session", c.Clear)
	h.Post("archive-session", c.Archive)

	// Archive review is an agent-side surface.
	archived := h.Group("archived-sessions", serverutils.JwtMiddleware)
	archived.Get("", c.ListArchived)
	archived.Get(":sessionId", c.ShowArchived)
	archived.Delete(":sessionId", c.DeleteArchived)
}

func (c *sessionController) Clear(ctx *fiber.Ctx) error {
	var req dto.ClearSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.sessionService.Clear(&req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Session cleared - fresh start", nil))
}

func (c *sessionController) Archive(ctx *fiber.Ctx) error {
	var req dto.ArchiveSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.sessionService.Archive(&req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Session archived for review", nil))
}

func (c *sessionController) ListArchived(ctx *fiber.Ctx) error {
	sessions, err := c.sessionService.ListArchived()
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Archived sessions", sessions))
}

func (c *sessionController) ShowArchived(ctx *fiber.Ctx) error {
	res, err := c.sessionService.GetArchived(ctx.Params("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Archived session", res))
}

func (c *sessionController) DeleteArchived(ctx *fiber.Ctx) error {
	if err := c.sessionService.DeleteArchived(ctx.Params("sessionId")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Archived session deleted", nil))
}
