package adapter

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"nfe-tracker/internal/features/tracking/domain"
)

// displayDateLayout is how estimated-delivery dates are rendered.
const displayDateLayout = "02/01/2006"

// issuanceCode marks the document issuance event on the trackingdanfe
// endpoint. The substring match below covers payloads where the code is
// missing or renamed. This pairing is a best-effort heuristic over the
// provider's current vocabulary, not a contract: when it stops matching,
// delivery estimate and weight simply stay at their sentinels.
const issuanceCode = "80"

var (
	deliveryPattern = regexp.MustCompile(`(?i)previs[ãa]o de entrega:?\s*(\d{1,2}/\d{1,2}/\d{2,4})`)
	weightPattern   = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*kg`)
)

// sswKnownCodes are the occurrence codes seen on the trackingdanfe endpoint.
var sswKnownCodes = map[string]bool{
	"80": true, // EMISSAO DO CTRC
	"81": true, // SAIDA DE UNIDADE
	"82": true, // CHEGADA EM UNIDADE
	"84": true, // SAIDA PARA ENTREGA
	"85": true, // MERCADORIA ENTREGUE
	"86": true, // ENTREGA NAO REALIZADA
	"59": true, // DOCUMENTO LIBERADO
}

// sswResponse mirrors the provider payload. Two endpoint variants exist: the
// trackingdanfe endpoint nests everything under "documento", while the legacy
// tracking endpoint returns a flat "result" array under different field names.
type sswResponse struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	Documento *sswDocumento `json:"documento"`
	Result    []sswResult   `json:"result"`
}

type sswDocumento struct {
	Header   sswHeader  `json:"header"`
	Tracking []sswEvent `json:"tracking"`
}

type sswHeader struct {
	Remetente      string `json:"remetente"`
	Destinatario   string `json:"destinatario"`
	Transportadora string `json:"transportadora"`
	Produto        string `json:"produto"`
	Previsao       string `json:"previsao_entrega"`
	Peso           string `json:"peso"`
}

type sswEvent struct {
	DataHora   string `json:"data_hora"`
	Ocorrencia string `json:"ocorrencia"`
	Descricao  string `json:"descricao"`
	Cidade     string `json:"cidade"`
	Tipo       string `json:"tipo"`
}

type sswResult struct {
	Remetente      string           `json:"nome_remetente"`
	Destinatario   string           `json:"nome_destinatario"`
	Transportadora string           `json:"nome_transportadora"`
	Produto        string           `json:"descricao_produto"`
	Eventos        []sswResultEvent `json:"eventos"`
}

type sswResultEvent struct {
	Data     string `json:"data"`
	Situacao string `json:"situacao"`
	Unidade  string `json:"unidade"`
	Detalhe  string `json:"detalhe"`
	Codigo   string `json:"codigo"`
}

// rawShipment is the shape-independent intermediate both payload variants
// map into before normalization proper.
type rawShipment struct {
	origin      string
	destination string
	carrier     string
	product     string
	delivery    string
	weight      string
	events      []rawEvent
}

type rawEvent struct {
	date     string
	status   string
	location string
	details  string
	code     string
}

// NormalizeResponse builds the canonical TrackingRecord from the raw provider
// payload. Only the success-flag check is fatal; every other missing or
// malformed field degrades to a documented default, recorded as a diagnostic.
func NormalizeResponse(raw []byte, hints *domain.ShipmentHints, key domain.AccessKey) (*domain.TrackingRecord, []domain.Diagnostic, error) {
	var resp sswResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, nil, fmt.Errorf("failed to parse provider response: %w", err)
	}

	if !resp.Success {
		return nil, nil, &domain.ProviderError{Message: strings.TrimSpace(resp.Message)}
	}

	shipment := flattenResponse(resp)

	var diags []domain.Diagnostic

	events := make([]domain.TrackingEvent, 0, len(shipment.events))
	for i, e := range shipment.events {
		ts := domain.ParseDateLenient(e.date, domain.EpochFallback)
		if ts.Equal(domain.EpochFallback) && !isEpochDate(e.date) {
			diags = append(diags, domain.Diagnostic{
				Field:  fmt.Sprintf("events[%d].timestamp", i),
				Reason: fmt.Sprintf("unparseable date %q, using epoch fallback", e.date),
			})
		}
		if e.code != "" && !sswKnownCodes[e.code] {
			diags = append(diags, domain.Diagnostic{
				Field:  fmt.Sprintf("events[%d].code", i),
				Reason: fmt.Sprintf("unknown occurrence code %q", e.code),
			})
		}
		events = append(events, domain.TrackingEvent{
			Timestamp: ts,
			Status:    defaultText(e.status, domain.StatusUnknown),
			Location:  defaultText(e.location, domain.LocationUnknown),
			Details:   e.details,
		})
	}

	domain.SortEventsDesc(events)

	record := &domain.TrackingRecord{
		ID:                key,
		Carrier:           defaultText(shipment.carrier, domain.ValueUnavailable),
		EstimatedDelivery: formatDelivery(shipment.delivery),
		CurrentStatus:     domain.StatusNoEvents,
		Origin:            defaultText(shipment.origin, domain.ValueUnavailable),
		Destination:       defaultText(shipment.destination, domain.ValueUnavailable),
		ProductName:       strings.TrimSpace(shipment.product),
		Weight:            formatWeight(shipment.weight),
		Events:            events,
	}

	// A document can legitimately have zero events yet valid header data; the
	// record stays renderable with the explicit no-events sentinel.
	if len(events) > 0 {
		record.CurrentStatus = events[0].Status
	}

	scrapeIssuanceDetails(record, shipment.events, &diags)

	record.MergeHints(hints)

	return record, diags, nil
}

// flattenResponse maps whichever payload variant is present into the common
// intermediate. The nested documento object wins when both appear.
func flattenResponse(resp sswResponse) rawShipment {
	if doc := resp.Documento; doc != nil {
		s := rawShipment{
			origin:      doc.Header.Remetente,
			destination: doc.Header.Destinatario,
			carrier:     doc.Header.Transportadora,
			product:     doc.Header.Produto,
			delivery:    doc.Header.Previsao,
			weight:      doc.Header.Peso,
		}
		for _, e := range doc.Tracking {
			s.events = append(s.events, rawEvent{
				date:     e.DataHora,
				status:   e.Ocorrencia,
				location: e.Cidade,
				details:  e.Descricao,
				code:     e.Tipo,
			})
		}
		return s
	}

	if len(resp.Result) > 0 {
		r := resp.Result[0]
		s := rawShipment{
			origin:      r.Remetente,
			destination: r.Destinatario,
			carrier:     r.Transportadora,
			product:     r.Produto,
		}
		for _, e := range r.Eventos {
			s.events = append(s.events, rawEvent{
				date:     e.Data,
				status:   e.Situacao,
				location: e.Unidade,
				details:  e.Detalhe,
				code:     e.Codigo,
			})
		}
		return s
	}

	return rawShipment{}
}

// scrapeIssuanceDetails recovers delivery estimate and weight from the
// issuance event's free text when the header did not carry them structurally.
// Both extractions are best-effort and never abort normalization.
func scrapeIssuanceDetails(record *domain.TrackingRecord, events []rawEvent, diags *[]domain.Diagnostic) {
	if record.EstimatedDelivery != domain.ValueUnavailable && record.Weight != "" {
		return
	}

	issuance, found := findIssuanceEvent(events)
	if !found {
		return
	}

	if record.EstimatedDelivery == domain.ValueUnavailable {
		if m := deliveryPattern.FindStringSubmatch(issuance.details); m != nil {
			if t, ok := domain.ParseDate(m[1]); ok {
				record.EstimatedDelivery = t.Format(displayDateLayout)
			} else {
				*diags = append(*diags, domain.Diagnostic{
					Field:  "estimated_delivery",
					Reason: fmt.Sprintf("issuance text carries unparseable date %q", m[1]),
				})
			}
		}
	}

	if record.Weight == "" {
		if m := weightPattern.FindStringSubmatch(issuance.details); m != nil {
			if w, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64); err == nil {
				record.Weight = fmt.Sprintf("%.2f kg", w)
			}
		}
	}
}

// findIssuanceEvent matches the issuance record by occurrence code or by the
// issuance phrase in its status text.
func findIssuanceEvent(events []rawEvent) (rawEvent, bool) {
	for _, e := range events {
		if e.code == issuanceCode || strings.Contains(strings.ToLower(e.status), "emiss") {
			return e, true
		}
	}
	return rawEvent{}, false
}

// formatDelivery renders a structural delivery date for display, falling back
// to the sentinel when absent or unparseable.
func formatDelivery(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.ValueUnavailable
	}
	if t, ok := domain.ParseDate(raw); ok {
		return t.Format(displayDateLayout)
	}
	t := domain.ParseDateLenient(raw, domain.EpochFallback)
	if !t.Equal(domain.EpochFallback) {
		return t.Format(displayDateLayout)
	}
	return domain.ValueUnavailable
}

// formatWeight renders a structural weight field as "NN.NN kg", or empty when
// absent or unparseable.
func formatWeight(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if m := weightPattern.FindStringSubmatch(raw); m != nil {
		raw = m[1]
	}
	w, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%.2f kg", w)
}

// isEpochDate reports whether the raw text legitimately encodes the fallback
// instant, so a real 01/01/2000 event is not flagged as unparseable.
func isEpochDate(raw string) bool {
	t := domain.ParseDateLenient(raw, domain.EpochFallback.Add(1))
	return t.Equal(domain.EpochFallback)
}

func defaultText(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}
