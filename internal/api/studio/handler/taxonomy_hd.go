package studioHandler

import (
	"BlogStudio/internal/api/studio"
	contextPkg "BlogStudio/pkg/context"
	"BlogStudio/pkg/handlerUtil"
	"BlogStudio/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *StudioHandler) AddCategory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req studio.AddCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"name":       req.Name,
	}).Debug("Processing add category request")

	if err := h.stores.Taxonomy.AddCategory(c, req.Name); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Debug("Add category surfaced through status banner")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildEditorView())
	}
}

func (h *StudioHandler) AddSubcategory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req studio.AddSubcategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"name":       req.Name,
	}).Debug("Processing add subcategory request")

	if err := h.stores.Taxonomy.AddSubcategory(c, req.CategoryID, req.Name); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Debug("Add subcategory surfaced through status banner")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildEditorView())
	}
}

func (h *StudioHandler) SelectCategory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	var req studio.SelectTaxonomyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.stores.Taxonomy.SelectCategory(req.ID)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildEditorView())
}

func (h *StudioHandler) SelectSubcategory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	var req studio.SelectTaxonomyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.stores.Taxonomy.SelectSubcategory(req.ID)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildEditorView())
}
