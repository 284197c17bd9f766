package slots

import (
	"bytes"
	"encoding/json"
)

// Aggregate maps facility -> date -> DateEntry.
//
// Both levels keep first-insertion order: facilities in scan order, dates in
// the order the scanner walked them (chronological). Lookups never create
// entries.
type Aggregate struct {
	facilities []string
	byFacility map[string]*dateIndex
}

type dateIndex struct {
	dates   []string
	entries map[string]DateEntry
}

func NewAggregate() *Aggregate {
	return &Aggregate{byFacility: map[string]*dateIndex{}}
}

// Put records e under (facility, e.Date). Replacing an existing date keeps its
// position.
func (a *Aggregate) Put(facility string, e DateEntry) {
	idx, ok := a.byFacility[facility]
	if !ok {
		idx = &dateIndex{entries: map[string]DateEntry{}}
		a.byFacility[facility] = idx
		a.facilities = append(a.facilities, facility)
	}
	if _, ok := idx.entries[e.Date]; !ok {
		idx.dates = append(idx.dates, e.Date)
	}
	idx.entries[e.Date] = e
}

// Facilities returns facility ids in insertion order.
func (a *Aggregate) Facilities() []string {
	return append([]string(nil), a.facilities...)
}

// Dates returns the dates recorded for facility in insertion order.
func (a *Aggregate) Dates(facility string) []string {
	idx, ok := a.byFacility[facility]
	if !ok {
		return nil
	}
	return append([]string(nil), idx.dates...)
}

func (a *Aggregate) Entry(facility, date string) (DateEntry, bool) {
	idx, ok := a.byFacility[facility]
	if !ok {
		return DateEntry{}, false
	}
	e, ok := idx.entries[date]
	return e, ok
}

// TotalSlots counts slots across every facility and date.
func (a *Aggregate) TotalSlots() int {
	n := 0
	for _, idx := range a.byFacility {
		for _, e := range idx.entries {
			n += len(e.Slots)
		}
	}
	return n
}

// FacilitiesWithSlots counts facilities that have at least one date.
func (a *Aggregate) FacilitiesWithSlots() int {
	n := 0
	for _, idx := range a.byFacility {
		if len(idx.dates) > 0 {
			n++
		}
	}
	return n
}

// MarshalJSON encodes {facility: {date: entry}} in insertion order.
func (a *Aggregate) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range a.facilities {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, f); err != nil {
			return nil, err
		}
		idx := a.byFacility[f]
		buf.WriteByte('{')
		for j, d := range idx.dates {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeKey(&buf, d); err != nil {
				return nil, err
			}
			b, err := json.Marshal(idx.entries[d])
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, k string) error {
	b, err := json.Marshal(k)
	if err != nil {
		return err
	}
	buf.Write(b)
	buf.WriteByte(':')
	return nil
}
