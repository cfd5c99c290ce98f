package domain

import (
	"errors"
	"sort"
	"time"
)

// Display sentinels. Records are always fully populated so the rendering
// layer never has to deal with empty required fields.
const (
	ValueUnavailable = "Not available"
	StatusUnknown    = "Unknown status"
	LocationUnknown  = "Unknown location"
	StatusNoEvents   = "No tracking events"
)

// EpochFallback is the timestamp assigned to events whose provider date cannot
// be parsed. It is a fixed constant rather than time.Now() so normalization of
// identical input always yields identical output.
var EpochFallback = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ErrInvalidAccessKey is returned when a candidate string is not a valid access key.
var ErrInvalidAccessKey = errors.New("access key must be exactly 44 numeric digits")

// AccessKey is the 44-digit numeric access key of a fiscal transport document
// (NF-e). It is only constructed through ParseAccessKey.
type AccessKey string

// ParseAccessKey validates a raw candidate against the 44-digit-numeric rule.
func ParseAccessKey(raw string) (AccessKey, error) {
	if len(raw) != 44 {
		return "", ErrInvalidAccessKey
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return "", ErrInvalidAccessKey
		}
	}
	return AccessKey(raw), nil
}

// TrackingEvent represents a single event in the shipment's lifecycle.
type TrackingEvent struct {
	// Timestamp is the UTC-normalized instant when the event occurred.
	Timestamp time.Time `json:"timestamp"`
	// Status is the provider's short status text for this event.
	Status string `json:"status"`
	// Location is the place where the event occurred.
	Location string `json:"location"`
	// Details is the provider's free-text description, passed through verbatim.
	Details string `json:"details,omitempty"`
}

// VolumeInfo describes the transported volume block of an NF-e.
type VolumeInfo struct {
	Quantity    string `json:"quantity,omitempty"`
	Species     string `json:"species,omitempty"`
	NetWeight   string `json:"net_weight,omitempty"`
	GrossWeight string `json:"gross_weight,omitempty"`
}

// InvoiceInfo describes the billing block of an NF-e.
type InvoiceInfo struct {
	Number        string `json:"number,omitempty"`
	OriginalValue string `json:"original_value,omitempty"`
	DiscountValue string `json:"discount_value,omitempty"`
	NetValue      string `json:"net_value,omitempty"`
}

// Installment is a single payment installment of an NF-e billing block.
type Installment struct {
	Number  string `json:"number,omitempty"`
	DueDate string `json:"due_date,omitempty"`
	Value   string `json:"value,omitempty"`
}

// ShipmentHints carries shipment metadata recovered from an uploaded NF-e XML.
// Hints are advisory overlays: they fill fields the provider payload leaves
// absent but never override provider-sourced data.
type ShipmentHints struct {
	CarrierName  string        `json:"carrier_name,omitempty"`
	Volume       *VolumeInfo   `json:"volume,omitempty"`
	Invoice      *InvoiceInfo  `json:"invoice,omitempty"`
	Installments []Installment `json:"installments,omitempty"`
}

// IsEmpty reports whether the hints carry no usable data at all.
func (h *ShipmentHints) IsEmpty() bool {
	if h == nil {
		return true
	}
	return h.CarrierName == "" && h.Volume == nil && h.Invoice == nil && len(h.Installments) == 0
}

// TrackingRecord is the canonical tracking result for one access key. It is
// built once per successful lookup and not mutated afterwards.
type TrackingRecord struct {
	// ID is the access key the record was looked up with.
	ID AccessKey `json:"access_key"`
	// Carrier is the carrier display name.
	Carrier string `json:"carrier"`
	// EstimatedDelivery is a formatted date or the unavailable sentinel, never empty.
	EstimatedDelivery string `json:"estimated_delivery"`
	// CurrentStatus mirrors the most recent event's status.
	CurrentStatus string `json:"current_status"`
	// Origin is the sender display name/location.
	Origin string `json:"origin"`
	// Destination is the recipient display name/location.
	Destination string `json:"destination"`
	// ProductName is optional and may be empty.
	ProductName string `json:"product_name,omitempty"`
	// Weight is optional, formatted as "NN.NN kg" when known.
	Weight string `json:"weight,omitempty"`
	// Events is sorted descending by timestamp, most recent first.
	Events []TrackingEvent `json:"events"`
	// Hints carries the XML-derived shipment metadata, when an XML was uploaded.
	Hints *ShipmentHints `json:"shipment_hints,omitempty"`
}

// SortEventsDesc orders events most recent first. The sort is stable so
// events sharing a timestamp keep the provider's original order.
func SortEventsDesc(events []TrackingEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
}

// MergeHints overlays XML-derived hints onto the record. The carrier name only
// fills in when the provider supplied none; volume, invoice and installments
// have no payload-side equivalent and attach verbatim.
func (r *TrackingRecord) MergeHints(hints *ShipmentHints) {
	if hints.IsEmpty() {
		return
	}
	if hints.CarrierName != "" && (r.Carrier == "" || r.Carrier == ValueUnavailable) {
		r.Carrier = hints.CarrierName
	}
	r.Hints = hints
}

// Diagnostic records a non-fatal anomaly recovered during parsing or
// normalization. Callers decide whether to surface or log it.
type Diagnostic struct {
	// Field names the record field or input element involved.
	Field string `json:"field"`
	// Reason describes what was recovered and how.
	Reason string `json:"reason"`
}
