package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"nfe-tracker/internal/core/cache"
	"nfe-tracker/internal/features/history/domain"
)

const journalKey = "lookup_journal"

// RedisJournalRepository implements ports.JournalRepository on top of the
// cache port. The whole journal is stored as one JSON array under a single
// key; with a small bound this stays cheaper than one key per entry.
type RedisJournalRepository struct {
	cache cache.Cache
	limit int
}

// NewRedisJournalRepository creates a new RedisJournalRepository bounded to
// limit entries.
func NewRedisJournalRepository(c cache.Cache, limit int) *RedisJournalRepository {
	if limit <= 0 {
		limit = 20
	}
	return &RedisJournalRepository{
		cache: c,
		limit: limit,
	}
}

// Push prepends an entry and trims the journal to its bound.
func (r *RedisJournalRepository) Push(ctx context.Context, entry domain.Entry) error {
	entries, err := r.Recent(ctx)
	if err != nil {
		return err
	}

	entries = append([]domain.Entry{entry}, entries...)
	if len(entries) > r.limit {
		entries = entries[:r.limit]
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal lookup journal: %w", err)
	}

	// No TTL: the journal is bounded by length, not by age.
	if err := r.cache.Set(ctx, journalKey, data, 0); err != nil {
		return fmt.Errorf("failed to save lookup journal: %w", err)
	}
	return nil
}

// Recent returns the journal entries, most recent first.
func (r *RedisJournalRepository) Recent(ctx context.Context) ([]domain.Entry, error) {
	data, err := r.cache.Get(ctx, journalKey)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load lookup journal: %w", err)
	}

	var entries []domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lookup journal: %w", err)
	}
	return entries, nil
}
