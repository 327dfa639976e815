package studioHandler

import (
	"BlogStudio/internal/api/studio"
	contextPkg "BlogStudio/pkg/context"
	"BlogStudio/pkg/handlerUtil"
	"BlogStudio/pkg/log"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *StudioHandler) GetEditor(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing editor view request")

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildEditorView())
}

func (h *StudioHandler) SelectBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing select blog request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog ID is required"), ctx.Path())
	}

	blog, ok := h.stores.List.Get(id)
	if !ok {
		return errHandler.Handle(ctx, requestID, studio.ErrBlogNotLoaded, ctx.Path(), "select_blog")
	}

	h.stores.Form.LoadFromEntity(blog)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildEditorView())
}

func (h *StudioHandler) ResetEditor(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing editor reset request")

	h.stores.Form.Reset()

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildEditorView())
}

func (h *StudioHandler) UpdateField(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	var req studio.UpdateFieldRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.stores.Form.UpdateField(req.Name, req.Value); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildEditorView())
}

func (h *StudioHandler) SetSpotlight(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	var req studio.SpotlightRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.stores.Form.SetSpotlight(*req.Spotlight)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildEditorView())
}

func (h *StudioHandler) AddFaq(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing add FAQ request")

	h.stores.Form.AddFaq()

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildEditorView())
}

func (h *StudioHandler) UpdateFaq(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	index, err := strconv.Atoi(ctx.Params("index"))
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("FAQ index must be a number"), ctx.Path())
	}

	var req studio.FaqUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.stores.Form.UpdateFaq(index, req.Field, req.Value); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildEditorView())
}

func (h *StudioHandler) RemoveFaq(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	index, err := strconv.Atoi(ctx.Params("index"))
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("FAQ index must be a number"), ctx.Path())
	}

	// The editor always shows at least one slot; the store itself does not
	// enforce a minimum.
	if h.stores.Form.FaqCount() <= 1 {
		return errHandler.HandleValidationError(ctx, requestID, studio.ErrLastFaqSlot, ctx.Path())
	}

	if err := h.stores.Form.RemoveFaq(index); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildEditorView())
}

// UploadFiles stages picked files into the draft. A new pick replaces the
// slot wholesale, like a file input change.
func (h *StudioHandler) UploadFiles(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing file staging request")

	key := ctx.Params("key")
	if key != studio.FileKeyImage && key != studio.FileKeyAdminPhoto && key != studio.FileKeyBlogImage {
		return errHandler.HandleValidationError(ctx, requestID, studio.ErrUnknownFileKey, ctx.Path())
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	files := form.File["file"]
	if len(files) == 0 {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("at least one file is required"), ctx.Path())
	}
	if key != studio.FileKeyBlogImage {
		files = files[:1]
	}

	if err := h.stores.Form.ClearFiles(key); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "stage_file")
		}

		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "stage_file")
		}

		staged := studio.StagedFile{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Data:        data,
			Size:        fileHeader.Size,
		}
		if err := h.stores.Form.StageFile(key, staged); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildEditorView())
}

func (h *StudioHandler) ClearFiles(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	key := ctx.Params("key")
	if err := h.stores.Form.ClearFiles(key); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildEditorView())
}

func (h *StudioHandler) SubmitDraft(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing draft submit request")

	if err := h.stores.Form.Submit(c); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Debug("Submit surfaced through status banner")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildEditorView())
	}
}
