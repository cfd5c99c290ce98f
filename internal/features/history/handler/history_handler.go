package handler

import (
	"nfe-tracker/internal/features/history/service"
	trackinghandler "nfe-tracker/internal/features/tracking/handler"

	"github.com/gofiber/fiber/v2"
)

// HistoryHandler handles HTTP requests for the lookup journal.
type HistoryHandler struct {
	historyService *service.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

// GetHistory godoc
// @Summary List recent lookups
// @Description Returns the bounded journal of recent tracking lookups, most recent first
// @Tags history
// @Produce json
// @Success 200 {array} domain.Entry
// @Failure 500 {object} trackinghandler.ErrorResponse
// @Router /history [get]
func (h *HistoryHandler) GetHistory(c *fiber.Ctx) error {
	entries, err := h.historyService.Recent(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(trackinghandler.ErrorResponse{
			Message: "failed to load lookup history",
			RayID:   c.Locals("requestid").(string),
		})
	}
	return c.JSON(entries)
}
