package slots

import "encoding/json"

// DateLayout is the date format the booking API expects (DD/MM/YYYY).
const DateLayout = "02/01/2006"

// SlotRecord is one available slot.
// StartTime and EndTime are passed through exactly as the API sent them.
type SlotRecord struct {
	Court     string          `json:"court"`
	Time      string          `json:"time"`
	StartTime json.RawMessage `json:"startTime"`
	EndTime   json.RawMessage `json:"endTime"`
	IsPeak    bool            `json:"isPeak"`
}

// DateEntry holds the available slots of one facility on one date.
type DateEntry struct {
	Date           string          `json:"-"`
	Slots          []SlotRecord    `json:"slots"`
	OutletDivision string          `json:"outletDivision"`
	Price          json.RawMessage `json:"price"`
}
