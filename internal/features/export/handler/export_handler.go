package handler

import (
	"nfe-tracker/internal/features/export/exporter"
	"nfe-tracker/internal/features/tracking/domain"
	trackinghandler "nfe-tracker/internal/features/tracking/handler"
	trackingservice "nfe-tracker/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
)

// ExportHandler handles HTTP requests for PDF exports.
type ExportHandler struct {
	trackingService *trackingservice.TrackingService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(trackingService *trackingservice.TrackingService) *ExportHandler {
	return &ExportHandler{
		trackingService: trackingService,
	}
}

// GetPDF godoc
// @Summary Export a tracking record as PDF
// @Description Looks up the access key and returns a single-page PDF sized to the record's content
// @Tags export
// @Produce application/pdf
// @Param key path string true "44-digit access key"
// @Success 200 {file} binary
// @Failure 400 {object} trackinghandler.ErrorResponse
// @Failure 404 {object} trackinghandler.ErrorResponse
// @Router /tracking/{key}/pdf [get]
func (h *ExportHandler) GetPDF(c *fiber.Ctx) error {
	key, err := domain.ParseAccessKey(c.Params("key"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(trackinghandler.ErrorResponse{
			Message: "access key must be exactly 44 numeric digits",
			RayID:   c.Locals("requestid").(string),
		})
	}

	record, err := h.trackingService.Track(c.UserContext(), key, nil)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(trackinghandler.ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	data, err := exporter.RenderPDF(record)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(trackinghandler.ErrorResponse{
			Message: "failed to render PDF export",
			RayID:   c.Locals("requestid").(string),
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="tracking-`+string(key)+`.pdf"`)
	return c.Send(data)
}
