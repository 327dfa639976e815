package studioHandler

import (
	"BlogStudio/pkg/handlerUtil"
	"BlogStudio/pkg/log"

	"github.com/gofiber/fiber/v2"
)

func (h *StudioHandler) GetHeader(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing header view request")

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.buildHeaderView())
}
