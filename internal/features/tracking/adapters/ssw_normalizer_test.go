package adapter

import (
	"testing"
	"time"

	"nfe-tracker/internal/features/tracking/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = domain.AccessKey("35240112345678000190550010000012341000012349")

// TestNormalizeResponse_DocumentoShape verifies the trackingdanfe payload
// variant maps completely.
func TestNormalizeResponse_DocumentoShape(t *testing.T) {
	payload := `{
		"success": true,
		"documento": {
			"header": {
				"remetente": "INDUSTRIA MODELO LTDA",
				"destinatario": "COMERCIO EXEMPLO SA",
				"transportadora": "RODOVIARIO EXPRESSO",
				"previsao_entrega": "15/04/2024",
				"peso": "12,5"
			},
			"tracking": [
				{
					"data_hora": "2024-04-01T08:30:00",
					"ocorrencia": "EMISSAO DO CTRC",
					"descricao": "Documento emitido na filial SAO PAULO",
					"cidade": "SAO PAULO/SP",
					"tipo": "80"
				},
				{
					"data_hora": "2024-04-03T14:10:00",
					"ocorrencia": "SAIDA DE UNIDADE",
					"descricao": "Em transferencia para CAMPINAS",
					"cidade": "SAO PAULO/SP",
					"tipo": "81"
				}
			]
		}
	}`

	record, diags, err := NormalizeResponse([]byte(payload), nil, testKey)
	require.NoError(t, err)
	assert.Empty(t, diags)

	assert.Equal(t, testKey, record.ID)
	assert.Equal(t, "RODOVIARIO EXPRESSO", record.Carrier)
	assert.Equal(t, "INDUSTRIA MODELO LTDA", record.Origin)
	assert.Equal(t, "COMERCIO EXEMPLO SA", record.Destination)
	assert.Equal(t, "15/04/2024", record.EstimatedDelivery)
	assert.Equal(t, "12.50 kg", record.Weight)

	require.Len(t, record.Events, 2)
	// Most recent first.
	assert.Equal(t, "SAIDA DE UNIDADE", record.Events[0].Status)
	assert.Equal(t, "SAIDA DE UNIDADE", record.CurrentStatus)
	assert.Equal(t, time.Date(2024, time.April, 3, 14, 10, 0, 0, time.UTC), record.Events[0].Timestamp)
}

// TestNormalizeResponse_ResultShape verifies the legacy endpoint variant with
// its different field names.
func TestNormalizeResponse_ResultShape(t *testing.T) {
	payload := `{
		"success": true,
		"result": [
			{
				"nome_remetente": "LOJA ORIGEM",
				"nome_destinatario": "CLIENTE DESTINO",
				"nome_transportadora": "TRANSPORTES LEGADO",
				"eventos": [
					{
						"data": "2024-02-10 09:00:00",
						"situacao": "MERCADORIA ENTREGUE",
						"unidade": "CURITIBA/PR",
						"detalhe": "Recebido por JOSE",
						"codigo": "85"
					}
				]
			}
		]
	}`

	record, diags, err := NormalizeResponse([]byte(payload), nil, testKey)
	require.NoError(t, err)
	assert.Empty(t, diags)

	assert.Equal(t, "TRANSPORTES LEGADO", record.Carrier)
	assert.Equal(t, "LOJA ORIGEM", record.Origin)
	assert.Equal(t, "CLIENTE DESTINO", record.Destination)
	require.Len(t, record.Events, 1)
	assert.Equal(t, "CURITIBA/PR", record.Events[0].Location)
	assert.Equal(t, "MERCADORIA ENTREGUE", record.CurrentStatus)
}

// TestNormalizeResponse_ProviderFailure verifies the success-flag check is the
// only fatal path and carries the provider message.
func TestNormalizeResponse_ProviderFailure(t *testing.T) {
	payload := `{"success": false, "message": "Chave invalida ou nao localizada"}`

	_, _, err := NormalizeResponse([]byte(payload), nil, testKey)
	require.Error(t, err)

	var provErr *domain.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "Chave invalida ou nao localizada", provErr.Message)
}

// TestNormalizeResponse_MissingSuccessFlag verifies a structurally absent flag
// is treated as failure with a generic message.
func TestNormalizeResponse_MissingSuccessFlag(t *testing.T) {
	_, _, err := NormalizeResponse([]byte(`{}`), nil, testKey)

	var provErr *domain.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Contains(t, provErr.Error(), "did not recognize")
}

// TestNormalizeResponse_ZeroEvents verifies the degraded-but-valid record: a
// document can legitimately have header data and no events.
func TestNormalizeResponse_ZeroEvents(t *testing.T) {
	payload := `{
		"success": true,
		"documento": {
			"header": {"remetente": "SOMENTE HEADER", "transportadora": "TRANSP X"},
			"tracking": []
		}
	}`

	record, _, err := NormalizeResponse([]byte(payload), nil, testKey)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusNoEvents, record.CurrentStatus)
	assert.Empty(t, record.Events)
	assert.Equal(t, "SOMENTE HEADER", record.Origin)
	assert.Equal(t, "TRANSP X", record.Carrier)
	assert.Equal(t, domain.ValueUnavailable, record.Destination)
	assert.Equal(t, domain.ValueUnavailable, record.EstimatedDelivery)
}

// TestNormalizeResponse_IssuanceScrape verifies delivery estimate and weight
// recovery from the issuance event's free text.
func TestNormalizeResponse_IssuanceScrape(t *testing.T) {
	payload := `{
		"success": true,
		"documento": {
			"header": {"remetente": "A", "destinatario": "B"},
			"tracking": [
				{
					"data_hora": "2025-12-01T10:00:00",
					"ocorrencia": "EMISSAO DO CTRC",
					"descricao": "CTRC 4501 emitido. Previsao de entrega: 10/12/25. Peso declarado 15.50 Kg em 2 volumes.",
					"cidade": "BELO HORIZONTE/MG",
					"tipo": "80"
				}
			]
		}
	}`

	record, _, err := NormalizeResponse([]byte(payload), nil, testKey)
	require.NoError(t, err)

	assert.Equal(t, "10/12/2025", record.EstimatedDelivery)
	assert.Equal(t, "15.50 kg", record.Weight)
}

// TestNormalizeResponse_IssuanceByPhrase verifies the substring half of the
// issuance heuristic when the occurrence code is absent.
func TestNormalizeResponse_IssuanceByPhrase(t *testing.T) {
	payload := `{
		"success": true,
		"documento": {
			"header": {},
			"tracking": [
				{
					"data_hora": "2025-11-30T09:00:00",
					"ocorrencia": "Emissão do documento",
					"descricao": "Previsao de entrega: 05/12/2025 - peso 3,2 kg"
				}
			]
		}
	}`

	record, _, err := NormalizeResponse([]byte(payload), nil, testKey)
	require.NoError(t, err)

	assert.Equal(t, "05/12/2025", record.EstimatedDelivery)
	assert.Equal(t, "3.20 kg", record.Weight)
}

// TestNormalizeResponse_NoIssuanceMatch verifies both fields stay at their
// sentinels when the heuristic misses.
func TestNormalizeResponse_NoIssuanceMatch(t *testing.T) {
	payload := `{
		"success": true,
		"documento": {
			"header": {},
			"tracking": [
				{"data_hora": "2024-01-05T10:00:00", "ocorrencia": "SAIDA DE UNIDADE", "tipo": "81"}
			]
		}
	}`

	record, _, err := NormalizeResponse([]byte(payload), nil, testKey)
	require.NoError(t, err)

	assert.Equal(t, domain.ValueUnavailable, record.EstimatedDelivery)
	assert.Empty(t, record.Weight)
}

// TestNormalizeResponse_BadEventDate verifies unparseable dates keep the event
// with the fixed epoch fallback and surface a diagnostic.
func TestNormalizeResponse_BadEventDate(t *testing.T) {
	payload := `{
		"success": true,
		"documento": {
			"header": {},
			"tracking": [
				{"data_hora": "amanha de manha", "ocorrencia": "EM TRANSITO", "tipo": "81"},
				{"data_hora": "2024-01-05T10:00:00", "ocorrencia": "SAIDA DE UNIDADE", "tipo": "81"}
			]
		}
	}`

	record, diags, err := NormalizeResponse([]byte(payload), nil, testKey)
	require.NoError(t, err)

	require.Len(t, record.Events, 2)
	// The bad-date event sorts last on the epoch fallback, not dropped.
	assert.Equal(t, "EM TRANSITO", record.Events[1].Status)
	assert.Equal(t, domain.EpochFallback, record.Events[1].Timestamp)

	require.NotEmpty(t, diags)
	assert.Equal(t, "events[0].timestamp", diags[0].Field)
}

// TestNormalizeResponse_EventDefaults verifies per-event sentinel defaults.
func TestNormalizeResponse_EventDefaults(t *testing.T) {
	payload := `{
		"success": true,
		"documento": {
			"header": {},
			"tracking": [{"data_hora": "2024-01-05T10:00:00"}]
		}
	}`

	record, diags, err := NormalizeResponse([]byte(payload), nil, testKey)
	require.NoError(t, err)

	require.Len(t, record.Events, 1)
	assert.Equal(t, domain.StatusUnknown, record.Events[0].Status)
	assert.Equal(t, domain.LocationUnknown, record.Events[0].Location)
	assert.Empty(t, record.Events[0].Details)
	// No code present means no unknown-code diagnostic either.
	assert.Empty(t, diags)
}

// TestNormalizeResponse_UnknownCodeDiagnostic verifies unknown occurrence
// codes are recorded, never fatal.
func TestNormalizeResponse_UnknownCodeDiagnostic(t *testing.T) {
	payload := `{
		"success": true,
		"documento": {
			"header": {},
			"tracking": [{"data_hora": "2024-01-05T10:00:00", "ocorrencia": "X", "tipo": "999"}]
		}
	}`

	_, diags, err := NormalizeResponse([]byte(payload), nil, testKey)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Reason, `"999"`)
}

// TestNormalizeResponse_SortAndDeterminism verifies strict descending order
// and byte-identical output across runs.
func TestNormalizeResponse_SortAndDeterminism(t *testing.T) {
	payload := `{
		"success": true,
		"documento": {
			"header": {},
			"tracking": [
				{"data_hora": "2024-01-01T10:00:00", "ocorrencia": "A", "tipo": "80"},
				{"data_hora": "2024-01-03T10:00:00", "ocorrencia": "C", "tipo": "82"},
				{"data_hora": "2024-01-02T10:00:00", "ocorrencia": "B", "tipo": "81"}
			]
		}
	}`

	first, _, err := NormalizeResponse([]byte(payload), nil, testKey)
	require.NoError(t, err)

	require.Len(t, first.Events, 3)
	assert.Equal(t, "C", first.Events[0].Status)
	assert.Equal(t, "B", first.Events[1].Status)
	assert.Equal(t, "A", first.Events[2].Status)
	for i := 0; i < len(first.Events)-1; i++ {
		assert.True(t, first.Events[i].Timestamp.After(first.Events[i+1].Timestamp))
	}

	second, _, err := NormalizeResponse([]byte(payload), nil, testKey)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestNormalizeResponse_HintsMerge verifies hints fill gaps without touching
// provider-sourced values.
func TestNormalizeResponse_HintsMerge(t *testing.T) {
	hints := &domain.ShipmentHints{
		CarrierName: "XML CARRIER LTDA",
		Volume:      &domain.VolumeInfo{Quantity: "2"},
	}

	// No carrier in the payload: the hint fills in.
	payload := `{"success": true, "documento": {"header": {}, "tracking": []}}`
	record, _, err := NormalizeResponse([]byte(payload), hints, testKey)
	require.NoError(t, err)
	assert.Equal(t, "XML CARRIER LTDA", record.Carrier)
	require.NotNil(t, record.Hints)
	assert.Equal(t, "2", record.Hints.Volume.Quantity)

	// Carrier in the payload: the hint never overrides it.
	payload = `{"success": true, "documento": {"header": {"transportadora": "PROVIDER CARRIER"}, "tracking": []}}`
	record, _, err = NormalizeResponse([]byte(payload), hints, testKey)
	require.NoError(t, err)
	assert.Equal(t, "PROVIDER CARRIER", record.Carrier)
}

// TestNormalizeResponse_InvalidJSON verifies a non-JSON body errors out
// instead of producing a half-built record.
func TestNormalizeResponse_InvalidJSON(t *testing.T) {
	_, _, err := NormalizeResponse([]byte(`<html>gateway error</html>`), nil, testKey)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse provider response")
}
