package booking

import (
	"errors"
	"testing"
)

func TestStatusDecoding(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		body     string
		status   Status
		accepted bool
		noMore   bool
	}{
		{name: "int 200", body: `{"responseStatusCode":200}`, status: "200", accepted: true},
		{name: "string 200", body: `{"responseStatusCode":"200"}`, status: "200", accepted: true},
		{name: "int 2008", body: `{"responseStatusCode":2008}`, status: "2008", accepted: true, noMore: true},
		{name: "string 2008", body: `{"responseStatusCode":"2008"}`, status: "2008", accepted: true, noMore: true},
		{name: "float 200", body: `{"responseStatusCode":200.0}`, status: "200", accepted: true},
		{name: "float 2008", body: `{"responseStatusCode":2008.0}`, status: "2008", accepted: true, noMore: true},
		{name: "exponent 200", body: `{"responseStatusCode":2e2}`, status: "200", accepted: true},
		{name: "fractional", body: `{"responseStatusCode":200.5}`, status: "200.5"},
		{name: "other", body: `{"responseStatusCode":500}`, status: "500"},
		{name: "missing", body: `{}`, status: ""},
		{name: "null", body: `{"responseStatusCode":null}`, status: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := DecodePayload([]byte(tt.body))
			if err != nil {
				t.Fatalf("DecodePayload: %v", err)
			}
			if p.Status != tt.status {
				t.Fatalf("Status = %q, want %q", p.Status, tt.status)
			}
			if p.Status.Accepted() != tt.accepted {
				t.Fatalf("Accepted = %v, want %v", p.Status.Accepted(), tt.accepted)
			}
			if p.Status.NoMoreDays() != tt.noMore {
				t.Fatalf("NoMoreDays = %v, want %v", p.Status.NoMoreDays(), tt.noMore)
			}
		})
	}
}

func TestFlagDecoding(t *testing.T) {
	t.Parallel()
	tests := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`null`, false},
		{`1`, true},
		{`0`, false},
		{`"yes"`, true},
		{`""`, false},
	}
	for _, tt := range tests {
		p, err := DecodePayload([]byte(`{"response":{"resourceList":[{"slotList":[{"isPeak":` + tt.raw + `}]}]}}`))
		if err != nil {
			t.Fatalf("DecodePayload(%s): %v", tt.raw, err)
		}
		if got := bool(p.Response.ResourceList[0].SlotList[0].IsPeak); got != tt.want {
			t.Fatalf("flag %s = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestDecodePayloadMalformed(t *testing.T) {
	t.Parallel()
	_, err := DecodePayload([]byte(`<html>maintenance</html>`))
	if !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("err = %v, want ErrMalformedPayload", err)
	}
}

func TestDecodePayloadFields(t *testing.T) {
	t.Parallel()
	body := `{
		"responseStatusCode": "200",
		"response": {
			"outletDivison": "Central",
			"price": {"peak": 5.35},
			"resourceList": [
				{"resourceName": "Court 1", "slotList": [
					{"isAvailable": true, "availabilityStatus": "Available", "timeRangeName": "7:00 PM - 8:00 PM",
					 "startTime": "19:00", "endTime": "20:00", "isPeak": true}
				]}
			]
		}
	}`
	p, err := DecodePayload([]byte(body))
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if p.Response.OutletDivision != "Central" {
		t.Fatalf("OutletDivision = %q", p.Response.OutletDivision)
	}
	if string(p.Response.Price) != `{"peak": 5.35}` {
		t.Fatalf("Price = %s", p.Response.Price)
	}
	r := p.Response.ResourceList[0]
	if r.Name == nil || *r.Name != "Court 1" {
		t.Fatalf("unexpected resource name: %v", r.Name)
	}
	s := r.SlotList[0]
	if !bool(s.IsAvailable) || !bool(s.IsPeak) || s.TimeRangeName != "7:00 PM - 8:00 PM" || string(s.StartTime) != `"19:00"` {
		t.Fatalf("unexpected slot: %+v", s)
	}
}
