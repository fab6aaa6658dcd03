package controller

import (
	"os"
	"path/filepath"
	"strings"

	"securebank-assist-be/internal/pkg/serverutils"
	"securebank-assist-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/v1")
	h.Post("upload-document", c.Upload)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	sessionId := ctx.FormValue("sessionId")
	if sessionId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing sessionId")
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing file")
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return fiber.NewError(fiber.StatusBadRequest, "Only PDF files are allowed")
	}

	tempPath := filepath.Join(os.TempDir(), uuid.NewString()+".pdf")
	if err := ctx.SaveFile(file, tempPath); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store upload")
	}

	res, err := c.documentService.Upload(sessionId, file.Filename, tempPath)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Document processing failed")
	}
	return ctx.JSON(serverutils.SuccessResponse("Document processed", res))
}
