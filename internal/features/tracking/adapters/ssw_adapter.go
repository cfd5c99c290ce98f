package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"nfe-tracker/internal/core/httpclient"
	"nfe-tracker/internal/core/logger"
	"nfe-tracker/internal/features/tracking/domain"

	"go.uber.org/zap"
)

// SSWAdapter queries the SSW tracking API for a fiscal document access key.
type SSWAdapter struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewSSWAdapter creates a new SSWAdapter pointing at the given endpoint URL.
func NewSSWAdapter(baseURL string, timeout time.Duration) *SSWAdapter {
	return &SSWAdapter{
		baseURL: baseURL,
		client:  httpclient.NewClient(timeout),
		logger:  logger.Get(),
	}
}

// Track fetches the raw payload for the key and normalizes it.
func (a *SSWAdapter) Track(ctx context.Context, key domain.AccessKey, hints *domain.ShipmentHints) (*domain.TrackingRecord, []domain.Diagnostic, error) {
	raw, err := a.fetchPayload(ctx, key)
	if err != nil {
		return nil, nil, err
	}
	return NormalizeResponse(raw, hints, key)
}

// fetchPayload performs the single provider round-trip: one POST carrying the
// access key, body returned verbatim.
func (a *SSWAdapter) fetchPayload(ctx context.Context, key domain.AccessKey) ([]byte, error) {
	body, err := json.Marshal(map[string]string{"chave_nfe": string(key)})
	if err != nil {
		return nil, fmt.Errorf("failed to encode provider request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tracking provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tracking provider returned status: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	a.logger.Debug("Provider payload fetched",
		zap.String("access_key", string(key)),
		zap.Int("bytes", len(raw)),
	)

	return raw, nil
}
