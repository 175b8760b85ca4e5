package controller

import (
	"errors"
	"strconv"

	"timo-intelligence-be/internal/pkg/serverutils"
	"timo-intelligence-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IContentStoreController is the HTTP surface of the content API
// binary. The site backend is its only intended client.
type IContentStoreController interface {
	RegisterRoutes(r fiber.Router)
	GetContent(ctx *fiber.Ctx) error
	PutContent(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
}

type contentStoreController struct {
	service service.IContentStoreService
}

func NewContentStoreController(service service.IContentStoreService) IContentStoreController {
	return &contentStoreController{service: service}
}

func (c *contentStoreController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/content")
	h.Get("/", c.GetContent)
	h.Put("/", c.PutContent)
	h.Get("/history", c.GetHistory)
	h.Post("/restore/:id", c.Restore)
}

// GetContent returns the raw document body, not the JSON envelope; the
// site backend parses the body directly.
func (c *contentStoreController) GetContent(ctx *fiber.Ctx) error {
	document, err := c.service.Get(ctx.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoContent) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	ctx.Set("Content-Type", "application/json")
	return ctx.Send(document)
}

func (c *contentStoreController) PutContent(ctx *fiber.Ctx) error {
	if err := c.service.Put(ctx.Context(), ctx.Body()); err != nil {
		if errors.Is(err, service.ErrInvalidDocument) {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Content stored", nil))
}

func (c *contentStoreController) GetHistory(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "0"))
	history, err := c.service.History(ctx.Context(), limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Content history", history))
}

func (c *contentStoreController) Restore(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid snapshot ID"))
	}

	document, err := c.service.Restore(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSnapshotMissing) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		if errors.Is(err, service.ErrInvalidDocument) {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	ctx.Set("Content-Type", "application/json")
	return ctx.Send(document)
}
