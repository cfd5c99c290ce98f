package domain

import "time"

// Entry is one recorded lookup: which key was queried, what the shipment's
// status was at that moment, and when. No payload data is kept, so a listed
// entry says nothing about the shipment's current state.
type Entry struct {
	// AccessKey is the 44-digit key that was looked up.
	AccessKey string `json:"access_key"`
	// Status is the record's current status at lookup time.
	Status string `json:"status"`
	// LookedUpAt is when the lookup completed.
	LookedUpAt time.Time `json:"looked_up_at"`
}
