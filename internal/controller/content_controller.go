package controller

import (
	"errors"
	"strings"
	"time"

	"timo-intelligence-be/internal/dto"
	"timo-intelligence-be/internal/pkg/serverutils"
	"timo-intelligence-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router, authGuard fiber.Handler)
	GetContent(ctx *fiber.Ctx) error
	ReplaceContent(ctx *fiber.Ctx) error
	UpdateSection(ctx *fiber.Ctx) error
	UpdateSolution(ctx *fiber.Ctx) error
	AddSolution(ctx *fiber.Ctx) error
	RemoveSolution(ctx *fiber.Ctx) error
	ForceSave(ctx *fiber.Ctx) error
	GetSaveStatus(ctx *fiber.Ctx) error
}

type contentController struct {
	service service.IContentService
}

func NewContentController(service service.IContentService) IContentController {
	return &contentController{service: service}
}

func (c *contentController) RegisterRoutes(r fiber.Router, authGuard fiber.Handler) {
	h := r.Group("/content/v1")
	h.Get("/", c.GetContent)

	// Everything below mutates content and needs an admin session.
	h.Put("/", authGuard, c.ReplaceContent)
	h.Put("/hero", authGuard, c.UpdateSection)
	h.Put("/about", authGuard, c.UpdateSection)
	h.Put("/partners", authGuard, c.UpdateSection)
	h.Put("/contact", authGuard, c.UpdateSection)
	h.Post("/solutions", authGuard, c.AddSolution)
	h.Put("/solutions/:id", authGuard, c.UpdateSolution)
	h.Delete("/solutions/:id", authGuard, c.RemoveSolution)
	h.Post("/save", authGuard, c.ForceSave)
	h.Get("/status", authGuard, c.GetSaveStatus)
}

func (c *contentController) GetContent(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Content document", c.service.Document()))
}

func (c *contentController) ReplaceContent(ctx *fiber.Ctx) error {
	var req dto.ReplaceContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := c.service.ReplaceDocument(&req.Content); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Content replaced", c.service.Document()))
}

// UpdateSection handles the four flat sections; the section name is
// the last path segment.
func (c *contentController) UpdateSection(ctx *fiber.Ctx) error {
	var req dto.UpdateFieldRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	var err error
	switch {
	case strings.HasSuffix(ctx.Path(), "/hero"):
		err = c.service.UpdateHero(req.Field, req.Value)
	case strings.HasSuffix(ctx.Path(), "/about"):
		err = c.service.UpdateAbout(req.Field, req.Value)
	case strings.HasSuffix(ctx.Path(), "/partners"):
		err = c.service.UpdatePartners(req.Field, req.Value)
	case strings.HasSuffix(ctx.Path(), "/contact"):
		err = c.service.UpdateContact(req.Field, req.Value)
	default:
		err = service.ErrUnknownField
	}

	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Content updated", nil))
}

func (c *contentController) UpdateSolution(ctx *fiber.Ctx) error {
	var req dto.UpdateSolutionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.service.UpdateSolution(ctx.Params("id"), req.Field, req.Value); err != nil {
		if errors.Is(err, service.ErrSolutionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Solution updated", nil))
}

func (c *contentController) AddSolution(ctx *fiber.Ctx) error {
	sol, err := c.service.AddSolution()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Solution added", sol))
}

func (c *contentController) RemoveSolution(ctx *fiber.Ctx) error {
	if err := c.service.RemoveSolution(ctx.Params("id")); err != nil {
		if errors.Is(err, service.ErrSolutionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Solution removed", nil))
}

func (c *contentController) ForceSave(ctx *fiber.Ctx) error {
	if err := c.service.ForceSave(ctx.Context()); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(serverutils.ErrorResponse(502, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Content saved", c.statusResponse()))
}

func (c *contentController) GetSaveStatus(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Save status", c.statusResponse()))
}

func (c *contentController) statusResponse() dto.SaveStatusResponse {
	status := c.service.SaveStatus()
	res := dto.SaveStatusResponse{
		IsSaving: status.IsSaving,
		Error:    status.Error,
	}
	if status.LastSaved != nil {
		formatted := status.LastSaved.Format(time.RFC3339)
		res.LastSaved = &formatted
	}
	return res
}
