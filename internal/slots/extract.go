package slots

import (
	"encoding/json"

	"onepaslots/internal/booking"
)

const (
	unknownCourt    = "Unknown"
	availableStatus = "Available"
)

// Extract returns the available slots of p in payload order: courts in
// resourceList order, slots in slotList order.
//
// A slot is available when isAvailable is truthy or availabilityStatus is
// "Available"; the API does not keep the two consistent. A nil payload or one
// without a response yields no slots.
func Extract(p *booking.Payload) []SlotRecord {
	if p == nil || p.Response == nil {
		return nil
	}
	var out []SlotRecord
	for _, r := range p.Response.ResourceList {
		court := unknownCourt
		if r.Name != nil {
			court = *r.Name
		}
		for _, s := range r.SlotList {
			if !bool(s.IsAvailable) && s.AvailabilityStatus != availableStatus {
				continue
			}
			out = append(out, SlotRecord{
				Court:     court,
				Time:      s.TimeRangeName,
				StartTime: cloneRaw(s.StartTime),
				EndTime:   cloneRaw(s.EndTime),
				IsPeak:    bool(s.IsPeak),
			})
		}
	}
	return out
}

// NewDateEntry builds the entry recorded for date from its payload and the
// slots extracted from it.
func NewDateEntry(date string, p *booking.Payload, slots []SlotRecord) DateEntry {
	e := DateEntry{Date: date, Slots: slots, Price: json.RawMessage("{}")}
	if p != nil && p.Response != nil {
		e.OutletDivision = p.Response.OutletDivision
		if len(p.Response.Price) > 0 {
			e.Price = cloneRaw(p.Response.Price)
		}
	}
	return e
}

func cloneRaw(b json.RawMessage) json.RawMessage {
	if b == nil {
		return nil
	}
	return append(json.RawMessage(nil), b...)
}
