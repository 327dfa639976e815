package studioHandler

import (
	"BlogStudio/internal/api/studio"
	contextPkg "BlogStudio/pkg/context"
	"BlogStudio/pkg/handlerUtil"
	"BlogStudio/pkg/log"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *StudioHandler) GetLibrary(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing library view request")

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildLibraryView())
}

func (h *StudioHandler) SearchBlogs(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing blog search request")

	var req studio.SearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	// A narrower result set starts from the first page.
	h.stores.List.SetPage(1)

	if err := h.stores.List.Load(c, strings.TrimSpace(req.Query)); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"query":      req.Query,
			"error":      err.Error(),
		}).Debug("Search surfaced through status banner")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildLibraryView())
	}
}

func (h *StudioHandler) SetPage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	var req studio.PageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.stores.List.SetPage(req.Page)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildLibraryView())
}

func (h *StudioHandler) RefreshLibrary(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing library refresh request")

	if err := h.stores.List.Reload(c); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Debug("Refresh surfaced through status banner")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildLibraryView())
	}
}

func (h *StudioHandler) PreviewBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog ID is required"), ctx.Path())
	}

	blog, ok := h.stores.List.Get(id)
	if !ok {
		return errHandler.Handle(ctx, requestID, studio.ErrBlogNotLoaded, ctx.Path(), "preview_blog")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, buildPreviewView(blog))
}

func (h *StudioHandler) LikeBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog ID is required"), ctx.Path())
	}

	if err := h.stores.List.Like(c, id); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Debug("Like surfaced through status banner")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildLibraryView())
	}
}

func (h *StudioHandler) ShareBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog ID is required"), ctx.Path())
	}

	if err := h.stores.List.Share(c, id); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Debug("Share surfaced through status banner")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildLibraryView())
	}
}

func (h *StudioHandler) DeleteBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete blog request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog ID is required"), ctx.Path())
	}

	if err := h.stores.List.Delete(c, id); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Debug("Delete surfaced through status banner")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildLibraryView())
	}
}
