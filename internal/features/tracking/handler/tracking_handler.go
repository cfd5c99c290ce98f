package handler

import (
	"errors"
	"io"

	"nfe-tracker/internal/features/nfe/extractor"
	"nfe-tracker/internal/features/tracking/domain"
	"nfe-tracker/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
)

// TrackingHandler handles HTTP requests for tracking lookups.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// GetTracking godoc
// @Summary Track a shipment by access key
// @Description Looks up the fiscal document access key at the tracking provider and returns the normalized record
// @Tags tracking
// @Produce json
// @Param key path string true "44-digit access key"
// @Success 200 {object} domain.TrackingRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tracking/{key} [get]
func (h *TrackingHandler) GetTracking(c *fiber.Ctx) error {
	key, err := domain.ParseAccessKey(c.Params("key"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "access key must be exactly 44 numeric digits",
			RayID:   c.Locals("requestid").(string),
		})
	}

	record, err := h.trackingService.Track(c.UserContext(), key, nil)
	if err != nil {
		return h.lookupError(c, err)
	}

	return c.JSON(record)
}

// TrackFromXML godoc
// @Summary Track a shipment from an uploaded NF-e XML
// @Description Extracts the access key and shipment hints from the uploaded XML, then looks the key up at the tracking provider
// @Tags tracking
// @Accept multipart/form-data
// @Produce json
// @Param document formData file true "NF-e XML file"
// @Success 200 {object} domain.TrackingRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /tracking/xml [post]
func (h *TrackingHandler) TrackFromXML(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "an XML file is required in the 'document' field",
			RayID:   c.Locals("requestid").(string),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "failed to open uploaded file",
			RayID:   c.Locals("requestid").(string),
		})
	}
	defer file.Close()

	// The whole document is read into memory before parsing; NF-e files are
	// a few kilobytes.
	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "failed to read uploaded file",
			RayID:   c.Locals("requestid").(string),
		})
	}

	result, err := extractor.Extract(data)
	if err != nil {
		return h.extractionError(c, err)
	}

	record, err := h.trackingService.Track(c.UserContext(), result.Key, result.Hints)
	if err != nil {
		return h.lookupError(c, err)
	}

	return c.JSON(record)
}

// extractionError maps each XML-stage failure to one human-readable message.
func (h *TrackingHandler) extractionError(c *fiber.Ctx, err error) error {
	rayID := c.Locals("requestid").(string)

	var invalidKey *extractor.InvalidKeyError
	switch {
	case errors.Is(err, extractor.ErrMalformedXML):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
			Message: "the uploaded file is not valid XML",
			RayID:   rayID,
		})
	case errors.Is(err, extractor.ErrMissingRoot):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
			Message: "the uploaded XML does not contain a fiscal document",
			RayID:   rayID,
		})
	case errors.Is(err, extractor.ErrKeyNotFound):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
			Message: "the fiscal document does not contain an access key",
			RayID:   rayID,
		})
	case errors.As(err, &invalidKey):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
			Message: "the fiscal document carries a corrupted access key: " + invalidKey.Value,
			RayID:   rayID,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	}
}

// lookupError maps provider-stage failures.
func (h *TrackingHandler) lookupError(c *fiber.Ctx, err error) error {
	rayID := c.Locals("requestid").(string)

	var provErr *domain.ProviderError
	if errors.As(err, &provErr) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: provErr.Error(),
			RayID:   rayID,
		})
	}

	return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
		Message: "tracking provider is unreachable, try again later",
		RayID:   rayID,
	})
}
