package service

import (
	"context"
	"fmt"
	"time"

	"nfe-tracker/internal/features/history/domain"
	"nfe-tracker/internal/features/history/ports"
)

// HistoryService maintains the recent-lookup journal. It also satisfies the
// tracking feature's LookupJournal port.
type HistoryService struct {
	repository ports.JournalRepository
	now        func() time.Time
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(repository ports.JournalRepository) *HistoryService {
	return &HistoryService{
		repository: repository,
		now:        time.Now,
	}
}

// RecordLookup appends one completed lookup to the journal.
func (s *HistoryService) RecordLookup(ctx context.Context, accessKey, status string) error {
	entry := domain.Entry{
		AccessKey:  accessKey,
		Status:     status,
		LookedUpAt: s.now().UTC(),
	}
	if err := s.repository.Push(ctx, entry); err != nil {
		return fmt.Errorf("failed to journal lookup: %w", err)
	}
	return nil
}

// Recent lists the journal, most recent first.
func (s *HistoryService) Recent(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.repository.Recent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lookup journal: %w", err)
	}
	if entries == nil {
		entries = []domain.Entry{}
	}
	return entries, nil
}
