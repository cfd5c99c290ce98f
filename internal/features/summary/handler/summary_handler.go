package handler

import (
	"nfe-tracker/internal/features/summary/service"
	"nfe-tracker/internal/features/tracking/domain"
	trackinghandler "nfe-tracker/internal/features/tracking/handler"
	trackingservice "nfe-tracker/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
)

// SummaryHandler handles HTTP requests for shipment summaries.
type SummaryHandler struct {
	trackingService *trackingservice.TrackingService
	summaryService  *service.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(trackingService *trackingservice.TrackingService, summaryService *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		trackingService: trackingService,
		summaryService:  summaryService,
	}
}

// SummaryResponse carries the generated prose.
type SummaryResponse struct {
	// AccessKey is the key the summary was generated for.
	AccessKey string `json:"access_key"`
	// Summary is the generated prose, or the fixed placeholder.
	Summary string `json:"summary"`
}

// GetSummary godoc
// @Summary Summarize a shipment in plain language
// @Description Looks up the access key and returns an AI-generated prose summary of the tracking record
// @Tags summary
// @Produce json
// @Param key path string true "44-digit access key"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} trackinghandler.ErrorResponse
// @Failure 404 {object} trackinghandler.ErrorResponse
// @Router /tracking/{key}/summary [get]
func (h *SummaryHandler) GetSummary(c *fiber.Ctx) error {
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

	return c.JSON(SummaryResponse{
		AccessKey: string(key),
		Summary:   h.summaryService.Summarize(c.UserContext(), record),
	})
}
