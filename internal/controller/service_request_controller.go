package controller

import (
	"securebank-assist-be/internal/dto"
	"securebank-assist-be/internal/pkg/serverutils"
	"securebank-assist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IServiceRequestController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type serviceRequestController struct {
	serviceRequestService service.IServiceRequestService
}

func NewServiceRequestController(serviceRequestService service.IServiceRequestService) IServiceRequestController {
	return &serviceRequestController{
		serviceRequestService: serviceRequestService,
	}
}

func (c *serviceRequestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/service-requests")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Patch(":id", serverutils.JwtMiddleware, c.UpdateStatus)
}

func (c *serviceRequestController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateServiceRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.serviceRequestService.Create(&req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Service request created", res))
}

func (c *serviceRequestController) List(ctx *fiber.Ctx) error {
	requests, err := c.serviceRequestService.List()
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Service requests", requests))
}

func (c *serviceRequestController) UpdateStatus(ctx *fiber.Ctx) error {
	var req dto.UpdateServiceRequestStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.serviceRequestService.UpdateStatus(ctx.Params("id"), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Service request updated", nil))
}
