package service

import (
	"context"
	"fmt"

	"nfe-tracker/internal/core/logger"
	"nfe-tracker/internal/features/tracking/domain"
	"nfe-tracker/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// TrackingService orchestrates one lookup: provider fetch + normalization,
// diagnostic logging and journal recording.
type TrackingService struct {
	provider ports.TrackingProvider
	journal  ports.LookupJournal
	logger   *zap.Logger
}

// NewTrackingService creates a new TrackingService. The journal is optional;
// pass nil to run without lookup history.
func NewTrackingService(provider ports.TrackingProvider, journal ports.LookupJournal) *TrackingService {
	return &TrackingService{
		provider: provider,
		journal:  journal,
		logger:   logger.Get(),
	}
}

// Track resolves the canonical record for an access key, overlaying the
// optional XML-derived hints.
func (s *TrackingService) Track(ctx context.Context, key domain.AccessKey, hints *domain.ShipmentHints) (*domain.TrackingRecord, error) {
	record, diags, err := s.provider.Track(ctx, key, hints)
	if err != nil {
		return nil, fmt.Errorf("failed to get tracking from provider: %w", err)
	}

	for _, d := range diags {
		s.logger.Warn("Recovered anomaly while normalizing tracking payload",
			zap.String("access_key", string(key)),
			zap.String("field", d.Field),
			zap.String("reason", d.Reason),
		)
	}

	if s.journal != nil {
		if err := s.journal.RecordLookup(ctx, string(key), record.CurrentStatus); err != nil {
			// Journal failures never fail the lookup.
			s.logger.Warn("Failed to record lookup in history journal",
				zap.String("access_key", string(key)),
				zap.Error(err),
			)
		}
	}

	return record, nil
}
