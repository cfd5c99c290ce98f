package ports

import (
	"context"

	"nfe-tracker/internal/features/tracking/domain"
)

// TrackingProvider defines the interface for tracking-payload sources.
type TrackingProvider interface {
	// Track fetches the raw payload for the access key and normalizes it into
	// the canonical record, overlaying the optional XML-derived hints.
	// Diagnostics carry the non-fatal anomalies recovered along the way.
	Track(ctx context.Context, key domain.AccessKey, hints *domain.ShipmentHints) (*domain.TrackingRecord, []domain.Diagnostic, error)
}

// LookupJournal records completed lookups so they can be listed later.
type LookupJournal interface {
	// RecordLookup appends one lookup to the journal. Failures must not abort
	// the lookup itself.
	RecordLookup(ctx context.Context, accessKey, status string) error
}
