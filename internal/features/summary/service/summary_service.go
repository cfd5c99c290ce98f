package service

import (
	"context"
	"fmt"
	"strings"

	"nfe-tracker/internal/core/logger"
	"nfe-tracker/internal/features/summary/ports"
	"nfe-tracker/internal/features/tracking/domain"

	"go.uber.org/zap"
)

// PlaceholderSummary is returned whenever the summarizer is unavailable or
// fails. Summary failures never surface as errors to the caller.
const PlaceholderSummary = "An automatic summary is not available for this shipment right now."

// maxSummaryEvents bounds how many recent events are rendered into the prompt.
const maxSummaryEvents = 5

// SummaryService produces a short prose summary of a tracking record.
type SummaryService struct {
	summarizer ports.Summarizer
	logger     *zap.Logger
}

// NewSummaryService creates a new SummaryService. The summarizer is optional;
// pass nil to always get the placeholder.
func NewSummaryService(summarizer ports.Summarizer) *SummaryService {
	return &SummaryService{
		summarizer: summarizer,
		logger:     logger.Get(),
	}
}

// Summarize renders the record as plain text and asks the summarizer for
// prose. Any failure degrades to the fixed placeholder.
func (s *SummaryService) Summarize(ctx context.Context, record *domain.TrackingRecord) string {
	if s.summarizer == nil {
		return PlaceholderSummary
	}

	text, err := s.summarizer.Summarize(ctx, BuildPrompt(record))
	if err != nil {
		s.logger.Warn("Summarizer failed, using placeholder",
			zap.String("access_key", string(record.ID)),
			zap.Error(err),
		)
		return PlaceholderSummary
	}
	return strings.TrimSpace(text)
}

// BuildPrompt renders the record as plain text, bounded to the most recent
// events, followed by the summarization instruction.
func BuildPrompt(record *domain.TrackingRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Shipment %s\n", record.ID)
	fmt.Fprintf(&b, "Carrier: %s\n", record.Carrier)
	fmt.Fprintf(&b, "Current status: %s\n", record.CurrentStatus)
	fmt.Fprintf(&b, "Estimated delivery: %s\n", record.EstimatedDelivery)
	fmt.Fprintf(&b, "From: %s\nTo: %s\n", record.Origin, record.Destination)
	if record.Weight != "" {
		fmt.Fprintf(&b, "Weight: %s\n", record.Weight)
	}

	events := record.Events
	if len(events) > maxSummaryEvents {
		events = events[:maxSummaryEvents]
	}
	b.WriteString("Recent events (most recent first):\n")
	for _, e := range events {
		fmt.Fprintf(&b, "- %s | %s | %s\n", e.Timestamp.Format("02/01/2006 15:04"), e.Status, e.Location)
	}

	b.WriteString("\nSummarize this shipment's situation for the recipient in two short sentences of plain language.")
	return b.String()
}
