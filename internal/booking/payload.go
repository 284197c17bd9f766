package booking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Known values of responseStatusCode.
const (
	StatusOK = Status("200")
	// StatusNoMoreDays means no further dates are bookable for the facility.
	StatusNoMoreDays = Status("2008")
)

// Status is the API-level responseStatusCode. The API sends it either as a
// JSON number or as a string; both decode to the same Status.
type Status string

func (s Status) String() string { return string(s) }

// Accepted reports whether a payload with this status is usable.
// StatusNoMoreDays is accepted so its payload can still be inspected.
func (s Status) Accepted() bool { return s == StatusOK || s == StatusNoMoreDays }

// NoMoreDays reports whether s is the end-of-window sentinel.
func (s Status) NoMoreDays() bool { return s == StatusNoMoreDays }

func (s *Status) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*s = ""
		return nil
	case b[0] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Status(strings.TrimSpace(str))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("responseStatusCode: unsupported value %s", b)
	}
	*s = Status(canonicalNumber(n))
	return nil
}

// canonicalNumber renders whole numbers without a fraction, so 200, 200.0
// and 2e2 all become "200".
func canonicalNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) >= 1<<53 {
		return n.String()
	}
	return strconv.FormatInt(int64(f), 10)
}

// Flag is a loosely typed boolean: true/false, numbers (non-zero is true),
// strings (non-empty is true) and null (false) are all accepted.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*f = false
		return nil
	}
	switch b[0] {
	case 'n':
		*f = false
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = Flag(v)
	case '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = v != ""
	case '{', '[':
		*f = len(bytes.TrimSpace(b[1:len(b)-1])) > 0
	default:
		v, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return fmt.Errorf("invalid flag %s", b)
		}
		*f = v != 0
	}
	return nil
}

// Payload is the decoded body of GetFacilitySlots.
type Payload struct {
	Status   Status    `json:"responseStatusCode"`
	Response *Response `json:"response"`
}

type Response struct {
	ResourceList []Resource `json:"resourceList"`
	// The API spells this key "outletDivison".
	OutletDivision string          `json:"outletDivison"`
	Price          json.RawMessage `json:"price"`
}

// Resource is one court of the facility.
type Resource struct {
	Name     *string `json:"resourceName"`
	SlotList []Slot  `json:"slotList"`
}

type Slot struct {
	IsAvailable        Flag            `json:"isAvailable"`
	AvailabilityStatus string          `json:"availabilityStatus"`
	TimeRangeName      string          `json:"timeRangeName"`
	StartTime          json.RawMessage `json:"startTime"`
	EndTime            json.RawMessage `json:"endTime"`
	IsPeak             Flag            `json:"isPeak"`
}

// DecodePayload decodes a GetFacilitySlots body.
func DecodePayload(b []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return &p, nil
}
