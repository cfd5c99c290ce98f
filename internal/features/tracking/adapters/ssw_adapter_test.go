package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestSSWAdapter_Track verifies the full fetch-then-normalize path against a
// stub provider.
func TestSSWAdapter_Track(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, string(testKey), body["chave_nfe"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"documento": {
				"header": {"remetente": "A", "destinatario": "B", "transportadora": "C"},
				"tracking": [
					{"data_hora": "2024-04-01T08:30:00", "ocorrencia": "EMISSAO DO CTRC", "tipo": "80"}
				]
			}
		}`))
	}))
	defer server.Close()

	adapter := &SSWAdapter{
		baseURL: server.URL,
		client:  server.Client(),
		logger:  zap.NewNop(),
	}

	record, diags, err := adapter.Track(context.Background(), testKey, nil)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, "C", record.Carrier)
	require.Len(t, record.Events, 1)
	assert.Equal(t, "EMISSAO DO CTRC", record.CurrentStatus)
}

// TestSSWAdapter_Track_ServerError verifies non-200 responses fail the lookup.
func TestSSWAdapter_Track_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	adapter := &SSWAdapter{
		baseURL: server.URL,
		client:  server.Client(),
		logger:  zap.NewNop(),
	}

	_, _, err := adapter.Track(context.Background(), testKey, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned status: 502")
}

// TestSSWAdapter_Track_NetworkFailure verifies transport errors surface
// wrapped, not swallowed.
func TestSSWAdapter_Track_NetworkFailure(t *testing.T) {
	adapter := &SSWAdapter{
		baseURL: "http://127.0.0.1:1/unreachable",
		client:  &http.Client{Timeout: 500 * time.Millisecond},
		logger:  zap.NewNop(),
	}

	_, _, err := adapter.Track(context.Background(), testKey, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tracking provider request failed")
}
