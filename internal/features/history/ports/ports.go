package ports

import (
	"context"

	"nfe-tracker/internal/features/history/domain"
)

// JournalRepository stores the bounded recent-lookup journal.
type JournalRepository interface {
	// Push prepends one entry, trimming the journal to its bound.
	Push(ctx context.Context, entry domain.Entry) error
	// Recent returns the journal entries, most recent first.
	Recent(ctx context.Context) ([]domain.Entry, error)
}
