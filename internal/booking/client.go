package booking

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	logx "onepaslots/pkg/logx"
	"onepaslots/pkg/tgui"
)

// Query parameter names of GetFacilitySlots.
const (
	paramFacility = "selectedFacility"
	paramDate     = "selectedDate"
)

// Client issues single GetFacilitySlots requests. It never retries; see Poller.
type Client struct {
	baseURL string
	http    *resty.Client
	log     logx.Logger
}

func NewClient(baseURL string, opts ...Option) *Client {
	o := newOptions()
	for _, opt := range opts {
		opt(o)
	}

	var rc *resty.Client
	if o.httpClient != nil {
		rc = resty.NewWithClient(o.httpClient)
	} else {
		rc = resty.New()
	}
	rc.SetTimeout(o.timeout).
		SetHeader("User-Agent", o.userAgent).
		SetHeader("Accept", "application/json").
		SetRetryCount(0).
		SetLogger(&requestLogger{log: o.log.With(logx.String("comp", "resty"))})

	return &Client{baseURL: baseURL, http: rc, log: o.log}
}

// Fetch performs one GET for facility on date (DD/MM/YYYY) and decodes the
// body. Transport errors, non-2xx responses and undecodable bodies are
// returned as errors; the API-level status is left for the caller to judge.
func (c *Client) Fetch(ctx context.Context, facility, date string) (*Payload, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			paramFacility: facility,
			paramDate:     date,
		}).
		Get(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("get facility slots: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: %d %s", ErrHTTPStatus, resp.StatusCode(), tgui.TruncRunes(string(resp.Body()), 200))
	}
	return DecodePayload(resp.Body())
}

// requestLogger routes resty's internal messages into logx.
type requestLogger struct{ log logx.Logger }

func (l *requestLogger) Errorf(format string, v ...any) { l.log.Error(fmt.Sprintf(format, v...)) }
func (l *requestLogger) Warnf(format string, v ...any)  { l.log.Warn(fmt.Sprintf(format, v...)) }
func (l *requestLogger) Debugf(format string, v ...any) {
	if !l.log.Enabled(logx.LevelDebug) {
		return
	}
	l.log.Debug(fmt.Sprintf(format, v...))
}
